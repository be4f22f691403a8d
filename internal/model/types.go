// Package model defines the domain types for the warp-journal locator core.
//
// All values here are computed on demand, once per process invocation.
// Nothing is persisted: the copied cache file on Windows is a side effect
// of the cache locator, not a managed entity.
package model

import (
	"fmt"
	"strings"
)

// Provenance records which evidence source produced a resolved game path.
// The locator tries sources in a fixed priority order and stops at the
// first match, so the provenance also tells you which sources were skipped.
type Provenance string

const (
	// ProvenanceOverride means the path came from the GAME_PATH
	// environment variable. Override paths are treated as authoritative
	// and are not existence-checked beyond the Games subdirectory probe.
	ProvenanceOverride Provenance = "override"

	// ProvenanceLogScrape means the path was captured from a
	// "Loading player data from …" line in the game's Player.log.
	ProvenanceLogScrape Provenance = "log-scrape"

	// ProvenanceLauncherConfig means the path came from a third-party
	// launcher's config.json (global or china region entry).
	ProvenanceLauncherConfig Provenance = "launcher-config"

	// ProvenanceNone means no source produced a usable path. The game
	// is treated as "cache unavailable", which is not an error.
	ProvenanceNone Provenance = "none"
)

// String returns the string representation of the Provenance.
func (p Provenance) String() string {
	return string(p)
}

// IsValid checks whether the Provenance value is one of the
// predefined sources.
func (p Provenance) IsValid() bool {
	switch p {
	case ProvenanceOverride, ProvenanceLogScrape, ProvenanceLauncherConfig, ProvenanceNone:
		return true
	default:
		return false
	}
}

// ResolvedPath is an absolute filesystem path paired with the provenance
// of the evidence that produced it.
//
// Invariant: a found ResolvedPath (Provenance != ProvenanceNone) refers to
// a path that existed at resolution time, with one documented exception —
// an override path without a Games subdirectory is returned unmodified
// and unchecked, because the user explicitly asked for it.
type ResolvedPath struct {
	// Path is the absolute filesystem path. Empty when nothing was found.
	Path string `json:"path,omitempty"`

	// Provenance identifies the evidence source that produced Path.
	Provenance Provenance `json:"provenance"`
}

// Found reports whether the resolution produced a usable path.
func (r ResolvedPath) Found() bool {
	return r.Provenance != ProvenanceNone && r.Path != ""
}

// String returns a human-readable representation, e.g.
// "/opt/games/StarRail (launcher-config)".
func (r ResolvedPath) String() string {
	if !r.Found() {
		return "(not found)"
	}
	return fmt.Sprintf("%s (%s)", r.Path, r.Provenance)
}

// NoPath is the ResolvedPath returned when every evidence source missed.
func NoPath() ResolvedPath {
	return ResolvedPath{Provenance: ProvenanceNone}
}

// CacheVersion is the ordered component tuple parsed from a versioned
// web-cache directory name such as "2.15.0.0".
//
// Comparison is component-wise and lexicographic over the split string
// parts, NOT numeric. This matches the directory-naming convention of the
// game's embedded browser and is preserved deliberately: "10.0" sorts
// below "9.0" under this ordering. See DESIGN.md before "fixing" this.
type CacheVersion struct {
	// Name is the original directory name, kept for path reconstruction.
	Name string

	// parts holds the dot-split components used for ordering.
	parts []string
}

// ParseCacheVersion splits a directory name into its comparison components.
// Any name qualifies; the caller is responsible for pre-filtering to names
// that contain a literal dot (the version-directory convention).
func ParseCacheVersion(name string) CacheVersion {
	return CacheVersion{
		Name:  name,
		parts: strings.Split(name, "."),
	}
}

// Compare returns -1, 0, or +1 as v orders before, equal to, or after o.
// Shorter tuples that are a prefix of longer ones order first.
func (v CacheVersion) Compare(o CacheVersion) int {
	n := len(v.parts)
	if len(o.parts) < n {
		n = len(o.parts)
	}
	for i := 0; i < n; i++ {
		if v.parts[i] != o.parts[i] {
			if v.parts[i] < o.parts[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(v.parts) < len(o.parts):
		return -1
	case len(v.parts) > len(o.parts):
		return 1
	default:
		return 0
	}
}

// Less reports whether v orders strictly before o.
func (v CacheVersion) Less(o CacheVersion) bool {
	return v.Compare(o) < 0
}

// String returns the original directory name.
func (v CacheVersion) String() string {
	return v.Name
}

// MaxCacheVersion returns the maximum version among the given directory
// names under the CacheVersion ordering. The result is deterministic and
// independent of input order. Returns false when names is empty.
func MaxCacheVersion(names []string) (CacheVersion, bool) {
	if len(names) == 0 {
		return CacheVersion{}, false
	}
	max := ParseCacheVersion(names[0])
	for _, name := range names[1:] {
		if v := ParseCacheVersion(name); max.Less(v) {
			max = v
		}
	}
	return max, true
}

// PortState describes what the allocator learned about a candidate port.
type PortState string

const (
	// PortFree means a listening socket could be bound to the port.
	PortFree PortState = "free"

	// PortBoundBySelf means the port is occupied by a prior instance of
	// this application, identified via the liveness probe. The port is
	// safe to reuse.
	PortBoundBySelf PortState = "bound-by-self"

	// PortBoundByOther means the port is occupied by an unrelated
	// process. The allocator skips it.
	PortBoundByOther PortState = "bound-by-other"
)

// String returns the string representation of the PortState.
func (s PortState) String() string {
	return string(s)
}

// PortCandidate is one port from the fixed probe range together with the
// state the allocator determined for it.
type PortCandidate struct {
	// Port is a TCP port number within the probe range.
	Port int `json:"port"`

	// State is the availability classification for Port.
	State PortState `json:"state"`
}

// String returns a human-readable representation, e.g. "6193 (free)".
func (c PortCandidate) String() string {
	return fmt.Sprintf("%d (%s)", c.Port, c.State)
}

// ExitCode defines the process exit codes used by the CLI.
//
// The failure contract is deliberately coarse: every fatal condition
// (unsupported platform, data-directory path conflict, exhausted port
// range) terminates with ExitFailure after logging and a best-effort
// dialog. Soft misses never terminate the process.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitFailure indicates a fatal condition was reported and the
	// process must terminate.
	ExitFailure ExitCode = 1
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
