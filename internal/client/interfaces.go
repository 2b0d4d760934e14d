// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-ticket-keeper/internal/connectivity"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and blocks until it finishes.
	Run(ctx context.Context, args []string) error
}

// Prober probes the remote API once per command and keeps probing while the
// watch view is open. *connectivity.Prober satisfies it.
type Prober interface {
	Probe(ctx context.Context) connectivity.State
	Run(ctx context.Context) error
}

// Watcher runs the live status view. *tui.TUI satisfies it.
type Watcher interface {
	Watch(ctx context.Context) error
}
