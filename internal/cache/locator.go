// Package cache locates the game's web-cache data file beneath an
// installation directory.
//
// The game's embedded browser writes its cache under versioned
// subdirectories of StarRail_Data/webCaches (one per browser component
// version, named like "2.15.0.0"). The newest version under the
// component-wise lexicographic ordering holds the cache of interest.
//
// On Windows the running game holds an exclusive lock on the cache file,
// which in-process copy primitives cannot bypass, so the locator
// delegates a copy-aside to PowerShell's Copy-Item and hands back the
// copy instead. A failed copy is a soft failure: it is logged at error
// level and the caller proceeds without cache access.
package cache

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/warp-journal/warp-journal/internal/model"
)

// Relative layout beneath the game directory down to the cache data file.
var (
	webCachesRelPath = filepath.Join("StarRail_Data", "webCaches")
	cacheDataRelPath = filepath.Join("Cache", "Cache_Data", "data_2")
)

// copyName is the file name of the Windows copy-aside in the data dir.
const copyName = "data_2"

// Info describes a located cache data file.
type Info struct {
	// Version is the name of the selected web-cache version directory.
	Version string `json:"version"`

	// Path is the readable cache data file: the original path, or the
	// copy-aside location on Windows.
	Path string `json:"path"`

	// Copied reports whether Path is a Windows copy-aside rather than
	// the live cache file.
	Copied bool `json:"copied"`
}

// Locator finds the newest versioned cache data file for a game
// installation.
type Locator struct {
	// goos selects the platform-conditional finalization step.
	goos string

	// dataDir is the application data directory receiving the Windows
	// copy-aside.
	dataDir string

	// copyFile performs the lock-bypassing copy. Injected so tests can
	// exercise both outcomes without PowerShell.
	copyFile func(src, dst string) error

	logger *slog.Logger
}

// NewLocator creates a Locator. dataDir is only used on Windows, for the
// copy-aside destination. A nil logger disables debug output.
func NewLocator(goos, dataDir string, logger *slog.Logger) *Locator {
	l := &Locator{
		goos:    goos,
		dataDir: dataDir,
		logger:  ensureLogger(logger),
	}
	l.copyFile = l.powershellCopy
	return l
}

// Locate resolves the cache data file beneath gameDir. The boolean
// result is false for every soft miss: empty game dir, no webCaches
// directory, no qualifying version directories, missing data file, or a
// failed Windows copy-aside.
func (l *Locator) Locate(gameDir string) (*Info, bool) {
	if gameDir == "" {
		return nil, false
	}

	webCaches := filepath.Join(gameDir, webCachesRelPath)
	version, ok := l.latestVersion(webCaches)
	if !ok {
		l.logger.Debug("could not find latest webCaches subfolder", "dir", webCaches)
		return nil, false
	}

	path := filepath.Join(webCaches, version.Name, cacheDataRelPath)
	l.logger.Debug("cache path resolved", "path", path)
	if _, err := os.Stat(path); err != nil {
		l.logger.Debug("cache file does not exist", "path", path)
		return nil, false
	}

	if l.goos != "windows" {
		return &Info{Version: version.Name, Path: path}, true
	}

	// The live game process holds an exclusive lock on the cache file;
	// copy it aside so it can be read while the game is running.
	dst := filepath.Join(l.dataDir, copyName)
	if err := l.copyFile(path, dst); err != nil {
		l.logger.Error("could not create copy of cache file", "src", path, "err", err.Error())
		return nil, false
	}
	return &Info{Version: version.Name, Path: dst, Copied: true}, true
}

// latestVersion lists the version directories beneath webCaches (by
// convention, directory entries whose name contains a literal dot) and
// returns the maximum under the CacheVersion ordering.
func (l *Locator) latestVersion(webCaches string) (model.CacheVersion, bool) {
	entries, err := os.ReadDir(webCaches)
	if err != nil {
		return model.CacheVersion{}, false
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && strings.Contains(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	return model.MaxCacheVersion(names)
}

// powershellCopy delegates the copy to PowerShell's Copy-Item, the one
// copy primitive on Windows that reads through the game's exclusive
// lock.
func (l *Locator) powershellCopy(src, dst string) error {
	cmd := exec.Command("powershell.exe", "-Command",
		fmt.Sprintf("Copy-Item '%s' '%s'", src, dst))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("powershell Copy-Item: %w (output: %s)", err, strings.TrimSpace(string(out)))
	}
	return nil
}

// ensureLogger substitutes a discard logger for nil.
func ensureLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
