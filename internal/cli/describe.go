package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/runtime"
	"jig.dev/jig/internal/utils"
)

// newDescribeCmd creates the describe command
func newDescribeCmd() *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:          "describe [message]",
		Short:        "Set the description of the current change",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				message = strings.Join(args, " ")
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if message == "" {
					if !utils.IsInteractive() {
						return fmt.Errorf("a description is required (pass a message or use -m)")
					}
					current, err := ctx.Engine.CurrentChange(cmd.Context())
					if err != nil {
						return err
					}
					prompt := &survey.Input{
						Message: "Describe this change",
						Default: current.Description,
					}
					if err := survey.AskOne(prompt, &message, survey.WithValidator(survey.Required)); err != nil {
						return fmt.Errorf("canceled")
					}
				}

				if err := ctx.Engine.Describe(cmd.Context(), message); err != nil {
					return err
				}
				ctx.Splog.Info("Updated description.")
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "New description for the current change")

	return cmd
}
