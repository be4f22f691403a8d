package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DataDirName is the directory name warp-journal claims beneath the
// OS-specific application-data root.
const DataDirName = "warp-journal"

// EnvXDGDataHome overrides the data root on Linux and macOS when set.
const EnvXDGDataHome = "XDG_DATA_HOME"

// EnvAppData is the Windows per-user roaming application-data variable.
const EnvAppData = "APPDATA"

// Sentinel errors.
var (
	// ErrUnsupportedPlatform is returned for OS identifiers that
	// warp-journal is not designed to run on. This is a fatal condition.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrPathConflict is returned when the data directory path exists
	// but is occupied by a regular file. This is a fatal condition.
	ErrPathConflict = errors.New("data directory path is occupied by a file")
)

// Resolver maps an OS identifier plus environment lookups to the base
// application-data directory.
//
// The OS identifier and environment accessor are injected so each
// platform's rules can be exercised in tests regardless of the host.
// Production callers pass runtime.GOOS and leave the environment nil.
type Resolver struct {
	// goos is the OS identifier, e.g. "windows", "linux", "darwin".
	goos string

	// getenv looks up environment variables. Defaults to os.Getenv.
	getenv func(string) string

	// logger receives debug output about resolution decisions.
	logger *slog.Logger
}

// NewResolver creates a Resolver for the given OS identifier.
// A nil logger disables debug output.
func NewResolver(goos string, logger *slog.Logger) *Resolver {
	return &Resolver{
		goos:   goos,
		getenv: os.Getenv,
		logger: ensureLogger(logger),
	}
}

// newResolverWithEnv is the test seam: identical to NewResolver but with
// an explicit environment accessor.
func newResolverWithEnv(goos string, getenv func(string) string, logger *slog.Logger) *Resolver {
	return &Resolver{
		goos:   goos,
		getenv: getenv,
		logger: ensureLogger(logger),
	}
}

// BaseDataDir computes the warp-journal data directory for the resolver's
// OS without touching the filesystem.
//
// Rules, per OS identifier:
//   - "windows": %APPDATA%\warp-journal
//   - "linux":   $XDG_DATA_HOME/warp-journal, else ~/.local/share/warp-journal
//   - "darwin":  $XDG_DATA_HOME/warp-journal, else ~/Library/Application Support/warp-journal
//
// Any other identifier fails with ErrUnsupportedPlatform.
func (r *Resolver) BaseDataDir() (string, error) {
	switch r.goos {
	case "windows":
		appData := r.getenv(EnvAppData)
		if appData == "" {
			return "", fmt.Errorf("%s environment variable is not set", EnvAppData)
		}
		return filepath.Join(appData, DataDirName), nil

	case "linux":
		if xdg := r.getenv(EnvXDGDataHome); xdg != "" {
			r.logger.Debug("using XDG data home override", "dir", xdg)
			return filepath.Join(xdg, DataDirName), nil
		}
		home, err := r.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", DataDirName), nil

	case "darwin":
		if xdg := r.getenv(EnvXDGDataHome); xdg != "" {
			r.logger.Debug("using XDG data home override", "dir", xdg)
			return filepath.Join(xdg, DataDirName), nil
		}
		home, err := r.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, "Library", "Application Support", DataDirName), nil

	default:
		return "", fmt.Errorf("%w: warp-journal is only designed to run on Windows, Linux, or macOS (got %q)",
			ErrUnsupportedPlatform, r.goos)
	}
}

// EnsureDataDir returns the base data directory, creating the directory
// tree if it is absent.
//
// It fails with ErrPathConflict when the path already exists but is a
// regular file — silently writing next to it would shadow user data, so
// the caller treats this as fatal.
func (r *Resolver) EnsureDataDir() (string, error) {
	dir, err := r.BaseDataDir()
	if err != nil {
		return "", err
	}

	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrPathConflict, dir)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		// MkdirAll also reports ENOTDIR when a parent component is a
		// file; fold that into the same conflict classification.
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrPathConflict, dir)
		}
		return "", fmt.Errorf("creating data directory %s: %w", dir, err)
	}

	r.logger.Debug("data directory ready", "dir", dir)
	return dir, nil
}

// homeDir resolves the user's home directory, preferring the injected
// environment (HOME) and falling back to os.UserHomeDir.
func (r *Resolver) homeDir() (string, error) {
	if home := r.getenv("HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

// ensureLogger substitutes a discard logger for nil so callers can skip
// logger wiring in tests.
func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
