// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RouteInfo describes the route template registered for one content type.
type RouteInfo struct {
	ContentType string   `json:"contentType" yaml:"contentType"`
	Template    string   `json:"template" yaml:"template"`
	Params      []string `json:"params" yaml:"params"`
}

// ResolvedRoute is a concrete path produced from a route template.
type ResolvedRoute struct {
	ContentType string `json:"contentType"`
	Template    string `json:"template"`
	Path        string `json:"path"`
}
