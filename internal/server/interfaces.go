// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT is received.
	RunServer()

	// RunContext serves until ctx is done or the listener fails. A clean
	// shutdown returns nil.
	RunContext(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
