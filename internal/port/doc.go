// Package port discovers a usable local TCP port for the companion
// viewer via a bounded bind-then-probe scan.
//
// Candidates are ten consecutive ports starting at the base port. Each
// candidate is classified by asking the OS directly (net.Listen on
// localhost — the most reliable check, no /proc parsing or external
// tools) and, when the bind fails, by a short-timeout HTTP liveness
// probe that distinguishes a prior warp-journal instance from a foreign
// process.
//
// The bind-then-probe protocol is inherently racy between the failed
// bind and the probe. That window is accepted: this is a single local
// companion tool, not a high-contention service.
package port
