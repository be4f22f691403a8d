// Package cli — locate.go implements the "warp-journal locate" command.
//
// The locate command runs the full resolution pipeline: game directory
// (override / log scrape / launcher config), then the newest versioned
// web-cache data file beneath it. Misses are reported as ordinary
// output, not errors — "no cache" is a normal state for this tool.
package cli

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/warp-journal/warp-journal/internal/cache"
	"github.com/warp-journal/warp-journal/internal/gamepath"
	"github.com/warp-journal/warp-journal/internal/model"
)

// locateResult is the JSON shape of the locate command output.
type locateResult struct {
	Game  model.ResolvedPath `json:"game"`
	Cache *cache.Info        `json:"cache,omitempty"`
}

// NewLocateCommand creates the "locate" cobra command.
func NewLocateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "locate",
		Short: "Locate the game installation and its web-cache data file",
		Long: `Locate the game installation directory and the newest versioned
web-cache data file beneath it.

Examples:
  warp-journal locate
  warp-journal locate --json
  GAME_PATH=/opt/games/StarRail warp-journal locate`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocate()
		},
	}
}

// runLocate is the main logic function for the locate command.
func runLocate() error {
	env := bootstrap()
	defer env.closeLog()

	// Step 1: resolve the game directory through the priority chain.
	locator := gamepath.NewLocator(runtime.GOOS, env.logger)
	game := locator.Locate(env.cfg.GamePath)

	result := locateResult{Game: game}

	// Step 2: resolve the cache data file beneath it. Skipped when the
	// game itself was not found.
	if game.Found() {
		cacheLocator := cache.NewLocator(runtime.GOOS, env.dataDir, env.logger)
		if info, ok := cacheLocator.Locate(game.Path); ok {
			result.Cache = info
		}
	}

	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitFailure, "encoding locate result", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if !game.Found() {
		fmt.Println("Game installation: not found (viewer will run without cache access)")
		return nil
	}

	fmt.Printf("Game installation: %s\n", game)
	if result.Cache == nil {
		fmt.Println("Cache data file:   not found")
		return nil
	}
	fmt.Printf("Cache version:     %s\n", result.Cache.Version)
	fmt.Printf("Cache data file:   %s\n", result.Cache.Path)
	if result.Cache.Copied {
		fmt.Println("                   (copy-aside; the live file is locked by the game)")
	}
	return nil
}
