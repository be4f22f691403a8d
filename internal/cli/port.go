// Package cli — port.go implements the "warp-journal port" command.
//
// The port command runs the bounded bind-then-probe scan and prints the
// usable port for the companion viewer. Range exhaustion is the fatal
// case: it is surfaced through the failure reporter and terminates the
// process with status 1.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warp-journal/warp-journal/internal/model"
	"github.com/warp-journal/warp-journal/internal/port"
)

// NewPortCommand creates the "port" cobra command.
func NewPortCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "port",
		Short: "Find a usable local port for the companion viewer",
		Long: `Scan the candidate port range for the first port that is either free
or held by a prior warp-journal instance (identified via the liveness
probe on ` + port.ProbePath + `).

Examples:
  warp-journal port
  warp-journal port --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPort()
		},
	}
}

// runPort is the main logic function for the port command.
func runPort() error {
	env := bootstrap()
	defer env.closeLog()

	allocator := port.NewAllocator(env.cfg.BasePort, env.logger)
	candidate, err := allocator.UsablePort()
	if err != nil {
		// Exhaustion is fatal: log, notify, exit 1.
		env.logger.Debug("port scan exhausted", "err", err.Error())
		env.failer.Fatal("No suitable port found.")
		return nil // unreachable
	}

	if jsonOutput {
		data, err := json.MarshalIndent(candidate, "", "  ")
		if err != nil {
			return model.WrapCLIError(model.ExitFailure, "encoding port result", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Port %d (%s)\n", candidate.Port, candidate.State)
	return nil
}
