package cli

import (
	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/engine"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
)

// newSyncCmd creates the sync command
func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch trunk and rebase the stack onto it",
		Long: `Fetch trunk updates from the remote and rebase the current stack onto the
updated trunk. Changes whose content already landed on trunk are abandoned.
When a secondary workspace's entire stack has merged, the workspace itself
is cleaned up.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Engine.Sync(cmd.Context())
				if err != nil {
					return err
				}
				reportSyncResult(ctx, result)
				return nil
			})
		},
	}

	return cmd
}

// newRestackCmd creates the restack command
func newRestackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "restack",
		Short:        "Rebase the stack onto the current trunk without fetching",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Engine.Restack(cmd.Context())
				if err != nil {
					return err
				}
				reportSyncResult(ctx, result)
				return nil
			})
		},
	}

	return cmd
}

func reportSyncResult(ctx *runtime.Context, result *engine.SyncResult) {
	if !result.Rebased {
		ctx.Splog.Info("Stack is already up to date with trunk.")
		return
	}

	if result.Conflicted {
		ctx.Splog.Warn("Rebase completed with conflicts.")
		ctx.Splog.Tip("Resolve them in the working copy, or run %s to revert.", output.ColorDim("jig undo"))
		return
	}

	ctx.Splog.Info("Rebased stack onto trunk %s.", output.ColorChangeID(result.TrunkChangeID))
	for _, change := range result.AbandonedMergedChanges {
		ctx.Splog.Info("Abandoned %s (already merged): %s",
			output.ColorChangeID(change.ChangeID), change.Description)
	}
	if result.StackFullyMerged {
		ctx.Splog.Info("All changes in this stack have merged into trunk. 🎉")
	}
	if result.CleanedUpWorkspace != "" {
		ctx.Splog.Info("Cleaned up workspace %s.", result.CleanedUpWorkspace)
	}
	if result.Warning != "" {
		ctx.Splog.Warn("%s", result.Warning)
	}
}
