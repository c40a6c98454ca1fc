package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
	"jig.dev/jig/internal/utils"
)

// newNewCmd creates the new command
func newNewCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "new [message]",
		Short: "Create a new change on top of the current one",
		Long: `Create a new change on top of the current one and move the working copy
into it. The message becomes the change's description; without one, you
will be prompted when running interactively.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				message = strings.Join(args, " ")
			}

			if message == "" {
				if !utils.IsInteractive() {
					return fmt.Errorf("a change description is required (pass a message or use -m)")
				}
				prompt := &survey.Input{Message: "Describe the new change"}
				if err := survey.AskOne(prompt, &message, survey.WithValidator(survey.Required)); err != nil {
					return fmt.Errorf("canceled")
				}
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				change, err := ctx.Engine.NewChange(cmd.Context(), message)
				if err != nil {
					return err
				}
				ctx.Splog.Info("Created change %s: %s",
					output.ColorChangeID(change.ChangeID), change.Description)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Description for the new change")

	return cmd
}
