package gamepath

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/warp-journal/warp-journal/internal/model"
)

// EnvGamePath is the environment variable that overrides game-path
// discovery entirely. The override is treated as authoritative.
const EnvGamePath = "GAME_PATH"

// gamesSubdir is the launcher's nesting convention on Windows: the
// launcher folder contains a "Games" subfolder holding the actual game
// data. Custom launchers on Linux don't add this level.
const gamesSubdir = "Games"

// playerLogRelPath is the per-user game log location beneath the
// Windows user profile.
var playerLogRelPath = filepath.Join("AppData", "LocalLow", "Cognosphere", "Star Rail", "Player.log")

// playerDataRe captures the installation directory from the data-load
// line the game writes on startup. The suffix marker is fixed; the
// capture group is everything before it.
var playerDataRe = regexp.MustCompile(`Loading player data from (.+)/StarRail_Data/data\.unity3d`)

// Locator resolves the game installation directory.
//
// Like platform.Resolver, it takes the OS identifier and environment
// accessor as data so the per-platform chains are testable on any host.
type Locator struct {
	goos   string
	getenv func(string) string
	logger *slog.Logger
}

// NewLocator creates a Locator for the given OS identifier.
// A nil logger disables debug output.
func NewLocator(goos string, logger *slog.Logger) *Locator {
	return &Locator{
		goos:   goos,
		getenv: os.Getenv,
		logger: ensureLogger(logger),
	}
}

// newLocatorWithEnv is the test seam with an explicit environment.
func newLocatorWithEnv(goos string, getenv func(string) string, logger *slog.Logger) *Locator {
	return &Locator{
		goos:   goos,
		getenv: getenv,
		logger: ensureLogger(logger),
	}
}

// Locate runs the priority chain and returns the game directory with its
// provenance. A not-found result is normal operation, not an error: it
// means the viewer runs without cache access.
//
// configured is an optional override from the settings file. The
// GAME_PATH environment variable takes priority over it; both are
// treated as authoritative when present.
func (l *Locator) Locate(configured string) model.ResolvedPath {
	// 1. Explicit override, environment before settings file.
	if override := l.getenv(EnvGamePath); override != "" {
		return l.fromOverride(override)
	}
	if configured != "" {
		return l.fromOverride(configured)
	}

	switch l.goos {
	case "windows":
		return l.fromPlayerLog()
	case "linux":
		return l.fromLauncherConfig()
	default:
		l.logger.Debug("no game-path discovery for this platform", "goos", l.goos)
		return model.NoPath()
	}
}

// fromOverride applies the launcher nesting convention to an override
// path: if it contains the Games subfolder, the game data lives there;
// otherwise the user pointed us directly at the game directory. No
// further existence check — the override is authoritative.
func (l *Locator) fromOverride(override string) model.ResolvedPath {
	sub := filepath.Join(override, gamesSubdir)
	if _, err := os.Stat(sub); err == nil {
		l.logger.Debug("game path from override", "dir", sub)
		return model.ResolvedPath{Path: sub, Provenance: model.ProvenanceOverride}
	}
	l.logger.Debug("game path from override", "dir", override)
	return model.ResolvedPath{Path: override, Provenance: model.ProvenanceOverride}
}

// fromPlayerLog derives the installation directory from the game's own
// log file beneath the Windows user profile.
func (l *Locator) fromPlayerLog() model.ResolvedPath {
	profile := l.getenv("USERPROFILE")
	if profile == "" {
		l.logger.Debug("USERPROFILE environment variable does not exist")
		return model.NoPath()
	}
	return l.scrapePlayerLog(filepath.Join(profile, playerLogRelPath))
}

// scrapePlayerLog scans the log file top to bottom and returns the
// directory captured from the first matching data-load line. Scanning
// returns immediately on the first match, so the earliest qualifying
// occurrence always wins.
func (l *Locator) scrapePlayerLog(logPath string) model.ResolvedPath {
	f, err := os.Open(logPath)
	if err != nil {
		l.logger.Debug("Player.log not found", "path", logPath)
		return model.NoPath()
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	// Unity log lines can exceed bufio's default 64KiB token limit when
	// the game dumps stack traces; give the scanner headroom.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		dir, ok := matchPlayerDataLine(scanner.Text())
		if !ok {
			continue
		}
		if _, err := os.Stat(dir); err != nil {
			l.logger.Debug("game path from Player.log no longer exists", "dir", dir)
			return model.NoPath()
		}
		l.logger.Debug("game path from Player.log", "dir", dir)
		return model.ResolvedPath{Path: dir, Provenance: model.ProvenanceLogScrape}
	}
	if err := scanner.Err(); err != nil {
		l.logger.Debug("error while scanning Player.log", "err", err.Error())
		return model.NoPath()
	}

	l.logger.Debug("game path not found in Player.log")
	return model.NoPath()
}

// matchPlayerDataLine extracts the installation directory from a single
// log line, reporting whether the line matched the data-load pattern.
func matchPlayerDataLine(line string) (string, bool) {
	m := playerDataRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// homeDir resolves the user's home directory, preferring the injected
// environment (HOME) and falling back to os.UserHomeDir.
func (l *Locator) homeDir() (string, error) {
	if home := l.getenv("HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return home, nil
}

// ensureLogger substitutes a discard logger for nil.
func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
