// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// CounterRuntime is the background part of the application: the pull and
// push sources feeding the display state.
type CounterRuntime interface {
	Start(ctx context.Context)
	Stop()
	Close() error
}

// UI is the foreground part of the application. Run blocks until the user
// quits.
type UI interface {
	Run(ctx context.Context) error
}
