package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
)

// newDownCmd creates the down command
func newDownCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Move the working copy to the parent of the current change",
		Long: `Move the working copy to the parent of the current change.

Navigates down the stack toward trunk. By default, moves one level down;
use --steps to move several.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1")
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				for i := 0; i < steps; i++ {
					result, err := ctx.Engine.StackDown(cmd.Context())
					if err != nil {
						return err
					}
					if !result.Moved {
						ctx.Splog.Info("Already at the bottom of the stack (%s).",
							output.ColorChangeID(result.To.ChangeID))
						return nil
					}
					ctx.Splog.Info("Now at %s: %s",
						output.ColorChangeID(result.To.ChangeID), result.To.Description)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of levels to move down")

	return cmd
}
