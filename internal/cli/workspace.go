package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"jig.dev/jig/internal/cli/helpers"
	"jig.dev/jig/internal/engine"
	jigerrors "jig.dev/jig/internal/errors"
	"jig.dev/jig/internal/output"
	"jig.dev/jig/internal/runtime"
	"jig.dev/jig/internal/utils"
)

// newWorkspaceCmd creates the workspace command group
func newWorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workspace",
		Aliases: []string{"ws"},
		Short:   "Manage workspaces for parallel stacks",
		Long: `Manage workspaces: independent working directories sharing one repository,
each carrying its own stack.`,
	}

	cmd.AddCommand(
		newWorkspaceCreateCmd(),
		newWorkspaceListCmd(),
		newWorkspaceForgetCmd(),
	)

	return cmd
}

func newWorkspaceCreateCmd() *cobra.Command {
	var (
		path        string
		stackName   string
		taskID      string
		description string
	)

	cmd := &cobra.Command{
		Use:          "create <name>",
		Short:        "Create a workspace",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if name == engine.DefaultWorkspaceName {
				return fmt.Errorf("%s is a reserved workspace name", name)
			}

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				if path == "" {
					path = filepath.Join(filepath.Dir(ctx.RepoRoot), filepath.Base(ctx.RepoRoot)+"-"+name)
				}

				ws, err := ctx.Engine.CreateWorkspace(cmd.Context(), name, path, engine.WorkspaceOptions{
					StackName:   stackName,
					TaskID:      taskID,
					Description: description,
				})
				if err != nil {
					return err
				}
				ctx.Splog.Info("Created workspace %s at %s.", ws.Name, output.ColorDim(ws.Path))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Directory for the workspace (default: sibling of the repo root)")
	cmd.Flags().StringVar(&stackName, "stack", "", "Stack name to associate with the workspace")
	cmd.Flags().StringVar(&taskID, "task", "", "Tracker task ID to associate with the workspace")
	cmd.Flags().StringVar(&description, "description", "", "Free-form description of the workspace's purpose")

	return cmd
}

func newWorkspaceListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list",
		Short:        "List workspaces",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				workspaces, err := ctx.Engine.ListWorkspaces(cmd.Context())
				if err != nil {
					return err
				}
				for _, ws := range workspaces {
					line := ws.Name
					if ws.IsDefault {
						line += output.ColorDim(" (default)")
					}
					if ws.CurrentChangeID != "" {
						line += " " + output.ColorChangeID(ws.CurrentChangeID)
					}
					if ws.TaskID != "" {
						line += output.ColorDim(" ["+ws.TaskID+"]")
					}
					ctx.Splog.Info("%s", line)
				}
				return nil
			})
		},
	}

	return cmd
}

func newWorkspaceForgetCmd() *cobra.Command {
	var (
		force     bool
		deleteDir bool
	)

	cmd := &cobra.Command{
		Use:   "forget <name>",
		Short: "Detach a workspace from the repository",
		Long: `Detach a workspace from the repository. The workspace directory is left
on disk unless --delete is given. The default workspace cannot be
forgotten.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				var dirToDelete string
				if deleteDir {
					workspaces, err := ctx.Engine.ListWorkspaces(cmd.Context())
					if err != nil {
						return err
					}
					for _, ws := range workspaces {
						if ws.Name == name {
							dirToDelete = ws.Path
						}
					}
				}

				if !force && utils.IsInteractive() {
					confirmed := false
					prompt := &survey.Confirm{
						Message: fmt.Sprintf("Forget workspace %s?", name),
					}
					if err := survey.AskOne(prompt, &confirmed); err != nil || !confirmed {
						return fmt.Errorf("canceled")
					}
				}

				if err := ctx.Engine.ForgetWorkspace(cmd.Context(), name); err != nil {
					if errors.Is(err, jigerrors.ErrDefaultWorkspace) {
						return fmt.Errorf("the default workspace cannot be forgotten")
					}
					return err
				}
				ctx.Splog.Info("Forgot workspace %s.", name)

				if deleteDir && dirToDelete != "" {
					if err := os.RemoveAll(dirToDelete); err != nil {
						ctx.Splog.Warn("Workspace forgotten but its directory was not removed: %v", err)
						return nil
					}
					ctx.Splog.Info("Removed %s.", output.ColorDim(dirToDelete))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip confirmation prompt")
	cmd.Flags().BoolVar(&deleteDir, "delete", false, "Also remove the workspace directory from disk")

	return cmd
}
