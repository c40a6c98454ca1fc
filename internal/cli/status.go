package cli

import (
	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "status",
		Short:        "Show the current change and workspace",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				current, err := ctx.Engine.CurrentChange(cmd.Context())
				if err != nil {
					return err
				}
				workspaceName, err := ctx.Engine.CurrentWorkspaceName()
				if err != nil {
					return err
				}
				stack, err := ctx.Engine.Stack(cmd.Context())
				if err != nil {
					return err
				}

				ctx.Splog.Info("Workspace: %s", workspaceName)
				ctx.Splog.Info("Current change: %s", formatChange(*current))
				ctx.Splog.Info("Stack size: %d", len(stack))
				if current.IsConflicted {
					ctx.Splog.Warn("The current change has unresolved conflicts.")
				}
				if ctx.Forge == nil {
					ctx.Splog.Tip("Set %s to enable pull request commands.", output.ColorDim("GITHUB_TOKEN"))
				}
				return nil
			})
		},
	}

	return cmd
}
