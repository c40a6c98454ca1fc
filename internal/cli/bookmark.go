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

// newBookmarkCmd creates the bookmark command group
func newBookmarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bookmark",
		Aliases: []string{"bm"},
		Short:   "Manage bookmarks on the current change",
	}

	cmd.AddCommand(
		newBookmarkCreateCmd(),
		newBookmarkMoveCmd(),
		newBookmarkDeleteCmd(),
		newBookmarkListCmd(),
	)

	return cmd
}

func newBookmarkCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "create <name>",
		Short:        "Create a bookmark pointing at the current change",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if err := ctx.Engine.CreateBookmark(cmd.Context(), name); err != nil {
					if errors.Is(err, jigerrors.ErrBookmarkExists) {
						return fmt.Errorf("bookmark %s already exists; use 'jig bookmark move' to repoint it", name)
					}
					return err
				}
				ctx.Splog.Info("Created bookmark %s.", output.ColorBookmark(name))
				return nil
			})
		},
	}
	return cmd
}

func newBookmarkMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "move <name>",
		Short:        "Move an existing bookmark to the current change",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if err := ctx.Engine.MoveBookmark(cmd.Context(), name); err != nil {
					if errors.Is(err, jigerrors.ErrBookmarkNotFound) {
						return fmt.Errorf("bookmark %s does not exist; use 'jig bookmark create' first", name)
					}
					return err
				}
				ctx.Splog.Info("Moved bookmark %s.", output.ColorBookmark(name))
				return nil
			})
		},
	}
	return cmd
}

func newBookmarkDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delete <name>",
		Short:        "Delete a bookmark",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if err := ctx.Engine.DeleteBookmark(cmd.Context(), name); err != nil {
					return err
				}
				ctx.Splog.Info("Deleted bookmark %s.", output.ColorBookmark(name))
				return nil
			})
		},
	}
	return cmd
}

func newBookmarkListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List bookmarks",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				names, err := ctx.Engine.ListBookmarks(cmd.Context())
				if err != nil {
					return err
				}
				for _, name := range names {
					ctx.Splog.Info("%s", output.ColorBookmark(name))
				}
				return nil
			})
		},
	}
	return cmd
}
