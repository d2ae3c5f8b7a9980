// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run() error
}

// UI is the interactive front the application hands the terminal to.
type UI interface {
	Run(ctx context.Context) error
}

// VersionChecker asks the server for its version.
type VersionChecker interface {
	ServerVersion(ctx context.Context) (string, error)
}
