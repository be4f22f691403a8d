// Package model defines the domain types and value objects for the
// warp-journal locator core.
//
// This package contains pure data structures with no external dependencies.
// All entities (ResolvedPath, CacheVersion, PortCandidate) are transient —
// they are computed once per process invocation and never persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
