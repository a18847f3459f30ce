// Package app wires application dependencies for the CLI.
//
// It resolves the default key from the environment via Config and builds
// the concrete cipher and encryption service for commands to use.
package app
