// Package report surfaces terminal failure messages and terminates the
// process.
//
// The contract is "best-effort user notification, always logs": a fatal
// condition is logged at error level, shown to the user if a display is
// plausibly available (interactive dialog) or written to stderr
// otherwise, and then the process exits with status 1. No fatal
// condition is retried.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Reporter delivers a terminal failure message to the user.
// Implementations are best-effort; delivery failures are swallowed
// because the message has already been logged.
type Reporter interface {
	Report(message string)
}

// Headless writes the failure message to a plain writer. It is selected
// when no display is available (SSH sessions, CI, servers).
type Headless struct {
	// Out receives the message. Nil means stderr.
	Out io.Writer
}

// Report writes the message to the configured writer.
func (h *Headless) Report(message string) {
	out := h.Out
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "warp-journal: %s\n", message)
}

// NewReporter selects a Reporter implementation for the current
// environment: the interactive dialog when a display is plausibly
// available, stderr otherwise.
func NewReporter(goos string, getenv func(string) string) Reporter {
	if getenv == nil {
		getenv = os.Getenv
	}
	if displayAvailable(goos, getenv) {
		return &Dialog{}
	}
	return &Headless{}
}

// displayAvailable guesses whether a GUI session exists. Windows and
// macOS sessions always have one; on Linux the X11 or Wayland socket
// variables decide.
func displayAvailable(goos string, getenv func(string) string) bool {
	switch goos {
	case "windows", "darwin":
		return true
	default:
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	}
}

// Failer runs the fatal-condition protocol: log, notify, quit.
type Failer struct {
	logger   *slog.Logger
	reporter Reporter

	// exit terminates the process. Injected so tests can observe the
	// status instead of dying.
	exit func(int)
}

// NewFailer creates a Failer. A nil reporter falls back to stderr.
func NewFailer(logger *slog.Logger, reporter Reporter) *Failer {
	if reporter == nil {
		reporter = &Headless{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Failer{logger: logger, reporter: reporter, exit: os.Exit}
}

// Fatal logs the message at error level, surfaces it to the user, and
// terminates the process with exit status 1. It does not return.
func (f *Failer) Fatal(message string) {
	f.logger.Error(message)
	f.reporter.Report(message)
	f.logger.Info("quitting")
	f.exit(1)
}
