// Package config provides configuration loading, merging, and validation
// for the sync client and the emulator server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetClientConfig] and [GetServerConfig]; both take
// the command-line arguments without the program name.
package config
