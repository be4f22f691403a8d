// Package platform resolves the per-user application-data directory for
// warp-journal across operating systems.
//
// The resolution rules differ by host OS (roaming app-data on Windows,
// XDG data home on Linux, Application Support on macOS), so the Resolver
// takes the OS identifier as plain data rather than branching on
// runtime.GOOS internally. This keeps every platform's rules testable on
// any host.
package platform
