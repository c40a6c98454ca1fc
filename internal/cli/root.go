// Package cli wires the cobra command tree. Commands stay thin: they parse
// flags, build the runtime context, call the engine, and render results.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jig",
		Short: "Jig is a command line tool for working with stacked changes on jj",
		Long: `Jig is a command line tool that makes working with stacked changes on a
jj repository fast & intuitive: create and describe changes, navigate the
stack, sync it onto the latest trunk, and submit pull requests.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newNewCmd(),
		newDescribeCmd(),
		newUpCmd(),
		newDownCmd(),
		newLogCmd(),
		newStatusCmd(),
		newSyncCmd(),
		newRestackCmd(),
		newSubmitCmd(),
		newUndoCmd(),
		newRepairCmd(),
		newWorkspaceCmd(),
		newBookmarkCmd(),
		newEventsCmd(),
	)

	return rootCmd
}
