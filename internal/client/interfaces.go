// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command in args and returns when it is done. For
	// long-running commands it blocks until ctx is cancelled.
	Run(ctx context.Context, args []string) error
}
