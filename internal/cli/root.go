// Package cli implements the cobra-based CLI commands for warp-journal.
//
// Each subcommand (locate, port) is defined in its own file within this
// package. This file defines the root command, the global flags, and
// the shared startup sequence that every subcommand runs through.
package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/warp-journal/warp-journal/internal/config"
	"github.com/warp-journal/warp-journal/internal/logging"
	"github.com/warp-journal/warp-journal/internal/model"
	"github.com/warp-journal/warp-journal/internal/platform"
	"github.com/warp-journal/warp-journal/internal/report"
)

// Global flag variables shared across all subcommands.
var (
	// jsonOutput controls whether command output is formatted as JSON
	// for machine consumption instead of human-readable text.
	jsonOutput bool

	// verbose switches logging to debug level, same as the DEBUG
	// environment variable or the settings file.
	verbose bool
)

// Version, Commit, and Date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
//
// The root command itself does not perform any action — it only
// provides help text and global flags. Actual functionality is provided
// by the locate and port subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "warp-journal",
		Short: "Honkai: Star Rail warp-history companion locator",
		Long: `warp-journal locates a Honkai: Star Rail installation, its newest
web-cache data file, and a usable local port for the companion viewer.

Game-path discovery tries the GAME_PATH environment variable first,
then platform-specific evidence: the game's Player.log on Windows, the
honkers-railway launcher configuration on Linux. A missing game is not
an error — the viewer simply runs without cache access.`,

		// We format errors ourselves (text or JSON based on --json),
		// so cobra must not print usage or errors on its own.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(NewLocateCommand())
	rootCmd.AddCommand(NewPortCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
//
// Fatal domain conditions (unsupported platform, data-directory
// conflict, port exhaustion) never reach this point — they go through
// report.Failer, which logs, notifies, and exits. What arrives here are
// usage errors and unexpected I/O failures.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(err.Error(), nil)
		os.Exit(int(model.ExitFailure))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag. Errors always go to
// stderr; stdout is reserved for successful command output.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// appEnv is the shared startup state every subcommand needs: the
// resolved data directory, the settings, the configured logger, and the
// fatal-condition reporter.
type appEnv struct {
	dataDir  string
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func()
	failer   *report.Failer
}

// bootstrap runs the startup sequence. It does not return on fatal
// conditions: an unsupported platform or a data-directory path conflict
// is logged, surfaced via the failure reporter, and terminates the
// process with status 1.
func bootstrap() *appEnv {
	// Until the data directory exists, log to stdout only so early
	// failures still surface somewhere.
	bootLogger, _, _ := logging.Setup("", logging.DebugEnabled() || verbose)
	failer := report.NewFailer(bootLogger, report.NewReporter(runtime.GOOS, nil))

	resolver := platform.NewResolver(runtime.GOOS, bootLogger)
	dataDir, err := resolver.EnsureDataDir()
	if err != nil {
		failer.Fatal(err.Error())
	}

	cfg, err := config.Load(dataDir)
	if err != nil {
		// A broken settings file should not take the tool down;
		// warn and continue with defaults.
		bootLogger.Warn("ignoring settings file", "err", err.Error())
		cfg = &config.Config{}
	}

	debug := verbose || cfg.Debug || logging.DebugEnabled()
	logger, closeLog, err := logging.Setup(dataDir, debug)
	if err != nil {
		failer.Fatal(err.Error())
	}
	logger.Info("starting warp-journal", "version", Version)

	return &appEnv{
		dataDir:  dataDir,
		cfg:      cfg,
		logger:   logger,
		closeLog: closeLog,
		failer:   report.NewFailer(logger, report.NewReporter(runtime.GOOS, nil)),
	}
}
