package cli

import (
	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/engine"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
)

// newSubmitCmd creates the submit command
func newSubmitCmd() *cobra.Command {
	var (
		bookmark  string
		draft     bool
		title     string
		body      string
		sessionID string
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Push the current change and open or update its pull request",
		Long: `Push the current change's bookmark to the remote and open a pull request
for it, or update the existing one. Without --bookmark, a bookmark name is
derived from the workspace's task association or the change description.

Stacked changes get stacked PRs: the base branch is the parent change's
bookmark when it has one, trunk otherwise.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				result, err := ctx.Engine.Submit(cmd.Context(), engine.SubmitOptions{
					Bookmark:  bookmark,
					Draft:     draft,
					Title:     title,
					Body:      body,
					SessionID: sessionID,
				})
				if err != nil {
					return err
				}

				if result.BookmarkCreated {
					ctx.Splog.Info("Created bookmark %s.", output.ColorBookmark(result.Bookmark))
				}
				ctx.Splog.Info("Pushed %s.", output.ColorBookmark(result.Bookmark))

				switch result.Status {
				case engine.SubmitCreated:
					ctx.Splog.Info("Opened pull request #%d: %s", result.PRNumber, result.PRURL)
				case engine.SubmitUpdated:
					ctx.Splog.Info("Updated pull request #%d: %s", result.PRNumber, result.PRURL)
				case engine.SubmitExists:
					ctx.Splog.Info("Pull request #%d is up to date: %s", result.PRNumber, result.PRURL)
				}

				if result.Warning != "" {
					ctx.Splog.Warn("%s", result.Warning)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&bookmark, "bookmark", "b", "", "Bookmark to submit (default: derived)")
	cmd.Flags().BoolVarP(&draft, "draft", "d", false, "Open the pull request as a draft")
	cmd.Flags().StringVar(&title, "title", "", "Pull request title (default: change description)")
	cmd.Flags().StringVar(&body, "body", "", "Pull request body")
	cmd.Flags().StringVar(&sessionID, "session", "", "Session ID to subscribe for webhook events on the stack's PRs")

	return cmd
}
