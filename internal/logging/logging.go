// Package logging configures the process-wide logger.
//
// The logger is constructed once at startup and passed explicitly to
// the components that need it — there is no ambient global state. Log
// lines go to stdout and to warp-journal.log in the data directory, at
// debug level when the DEBUG environment variable is set and info level
// otherwise.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// EnvDebug is the environment variable that switches logging to debug
// level when set to any non-empty value.
const EnvDebug = "DEBUG"

// FileName is the log file name inside the data directory.
const FileName = "warp-journal.log"

// DebugEnabled reports whether the debug toggle is set in the process
// environment.
func DebugEnabled() bool {
	return os.Getenv(EnvDebug) != ""
}

// Setup opens the log file beneath dataDir and returns a logger writing
// to both stdout and the file. The returned close function flushes and
// releases the file; call it at process exit.
//
// When dataDir is empty (the data directory itself failed to resolve),
// the logger falls back to stdout only so early failures still surface.
func Setup(dataDir string, debug bool) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var out io.Writer = os.Stdout
	closer := func() {}

	if dataDir != "" {
		path := filepath.Join(dataDir, FileName)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file %s: %w", path, err)
		}
		out = io.MultiWriter(os.Stdout, f)
		closer = func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}
