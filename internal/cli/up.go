package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
)

// newUpCmd creates the up command
func newUpCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "up",
		Short: "Move the working copy to the child of the current change",
		Long: `Move the working copy to the child of the current change.

Navigates up the stack away from trunk. By default, moves one level up;
use --steps to move several. Stopping at the stack tip is not an error.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("steps must be at least 1")
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				for i := 0; i < steps; i++ {
					result, err := ctx.Engine.StackUp(cmd.Context())
					if err != nil {
						var ambiguous *jigerrors.AmbiguousStackError
						if errors.As(err, &ambiguous) {
							ctx.Splog.Warn("Current change has %d children; use 'jj edit' to pick one.", ambiguous.Candidates)
						}
						return err
					}
					if !result.Moved {
						ctx.Splog.Info("Already at the top of the stack (%s).",
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

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of levels to move up")

	return cmd
}
