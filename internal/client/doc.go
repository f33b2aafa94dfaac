// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client runtime.
//
// It wires the local sqlite store, the remote service adapter, the client
// services and the background sync worker, and dispatches CLI commands
// (sync, list, add, edit, rm, status, watch) against them.
package client
