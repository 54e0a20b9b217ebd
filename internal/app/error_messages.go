// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the HTTP handlers and the
// command line.
package app

const (
	// MsgInternalServerError replaces the detail of unexpected failures in
	// API responses.
	MsgInternalServerError = "internal server error"

	// MsgNotFound answers requests to paths the API does not serve.
	MsgNotFound = "not found"

	// MsgSiteValid is printed by the validate command on success.
	MsgSiteValid = "site configuration is valid"

	// MsgSiteInvalid prefixes validation failures reported by the CLI.
	MsgSiteInvalid = "site configuration is invalid"
)
