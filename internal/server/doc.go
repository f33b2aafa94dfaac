// Package server wires and runs the emulator's HTTP server.
//
// It provides the server lifecycle: startup, signal handling, and graceful
// shutdown.
package server
