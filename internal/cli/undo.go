package cli

import (
	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
)

// newUndoCmd creates the undo command
func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Revert the most recent repository operation",
		Long: `Revert the most recent repository operation, whether it came from jig or
from the backend directly. Running undo twice reverts the undo itself.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Engine.Undo(cmd.Context())
				if err != nil {
					return err
				}
				ctx.Splog.Info("Reverted: %s", output.ColorDim(result.Operation))
				return nil
			})
		},
	}

	return cmd
}

// newRepairCmd creates the repair command
func newRepairCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repair",
		Short: "Refresh a stale working copy",
		Long: `Refresh a working copy left stale by an operation run from another
workspace. Safe to run repeatedly; a fresh working copy is a no-op.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Engine.UpdateStale(cmd.Context())
				if err != nil {
					return err
				}
				if result.Updated {
					ctx.Splog.Info("Working copy refreshed.")
				} else {
					ctx.Splog.Info("Working copy is already up to date.")
				}
				return nil
			})
		},
	}

	return cmd
}
