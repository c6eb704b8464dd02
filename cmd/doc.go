// Package cmd implements the command-line interface for the kvstore
// file-backed key-value store. It provides a hierarchical command structure
// for interacting with a store directory.
//
// The package is organized into several subpackages:
//
//   - kv: Commands for key-value store operations (put, get, remove, contains, clear, perf)
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See kvstore -help for a list of all commands.
package cmd
