// Package cli wires together the Cobra command tree for the codedump binary.
//
// The root command runs the dump pipeline: it loads configuration, resolves
// the repository root, builds the collector, composer and writer through a
// dig container, and prints the output path. Subcommands cover config
// management (init, set, show), dump verification, and the version.
//
// Handlers record the process exit code instead of returning runtime
// errors, so [Run] can distinguish usage errors from failed runs.
package cli
