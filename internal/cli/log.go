package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/engine"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
)

// newLogCmd creates the log command
func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the current stack",
		Long: `Show the current stack: every change between trunk and the working copy,
tip first.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				stack, err := ctx.Engine.Stack(cmd.Context())
				if err != nil {
					return err
				}
				if len(stack) == 0 {
					ctx.Splog.Info("Stack is empty; working copy is on trunk.")
					return nil
				}

				// Tip first, matching how the backend renders history.
				for i := len(stack) - 1; i >= 0; i-- {
					ctx.Splog.Info("%s", formatChange(stack[i]))
				}
				return nil
			})
		},
	}

	return cmd
}

func formatChange(change engine.Change) string {
	var b strings.Builder

	if change.IsWorkingCopy {
		b.WriteString(output.ColorWorkingCopy("@ "))
	} else {
		b.WriteString("  ")
	}
	b.WriteString(output.ColorChangeID(change.ChangeID))

	if len(change.Bookmarks) > 0 {
		b.WriteString(" ")
		b.WriteString(output.ColorBookmark(strings.Join(change.Bookmarks, " ")))
	}
	if change.IsConflicted {
		b.WriteString(" ")
		b.WriteString(output.ColorConflict("(conflict)"))
	}

	b.WriteString(" ")
	if change.Description == "" {
		b.WriteString(output.ColorDim("(no description)"))
	} else {
		b.WriteString(change.Description)
	}
	return b.String()
}
