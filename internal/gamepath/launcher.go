// launcher.go inspects the honkers-railway launcher's configuration to
// find the game directory on Linux, where the official launcher (and its
// Player.log location) does not exist.
//
// The launcher writes a config.json recording install paths per game
// region. The file is user-editable JSON, so it is run through
// github.com/tidwall/jsonc before parsing: stray comments or trailing
// commas should not break discovery.
package gamepath

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/warp-journal/warp-journal/internal/model"
)

// launcherConfigRelPath is the launcher configuration location beneath
// the user's home directory.
var launcherConfigRelPath = filepath.Join(".local", "share", "honkers-railway-launcher", "config.json")

// launcherConfig mirrors the subset of the launcher's config.json that
// matters for game-path discovery. Other fields are silently ignored.
//
// Expected shape:
//
//	{ "game": { "path": { "global": "<dir>", "china": "<dir>" } } }
type launcherConfig struct {
	Game struct {
		Path struct {
			// Global is the install path for the global-region client.
			Global string `json:"global"`

			// China is the install path for the china-region client.
			China string `json:"china"`
		} `json:"path"`
	} `json:"game"`
}

// fromLauncherConfig reads the launcher configuration and returns the
// first region path, global before china, that exists on disk.
// Every failure mode here — missing file, malformed JSON, missing keys,
// vanished directories — is a soft miss.
func (l *Locator) fromLauncherConfig() model.ResolvedPath {
	home, err := l.homeDir()
	if err != nil {
		l.logger.Debug("could not resolve home directory", "err", err.Error())
		return model.NoPath()
	}

	configPath := filepath.Join(home, launcherConfigRelPath)
	data, err := os.ReadFile(configPath)
	if err != nil {
		l.logger.Debug("launcher configuration not found", "path", configPath)
		return model.NoPath()
	}

	var cfg launcherConfig
	if err := json.Unmarshal(jsonc.ToJSON(data), &cfg); err != nil {
		l.logger.Debug("launcher configuration could not be parsed", "path", configPath, "err", err.Error())
		return model.NoPath()
	}

	// Fixed region order: global first, china second. The first path
	// that exists on disk wins.
	for _, dir := range []string{cfg.Game.Path.Global, cfg.Game.Path.China} {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); err == nil {
			l.logger.Debug("game path from launcher configuration", "dir", dir)
			return model.ResolvedPath{Path: dir, Provenance: model.ProvenanceLauncherConfig}
		}
	}

	l.logger.Debug("game folder configuration in launcher could not be found")
	return model.NoPath()
}
