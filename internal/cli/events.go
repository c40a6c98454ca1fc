package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jig.dev/jig/internal/events"
)

// newEventsCmd creates the events command group
func newEventsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Manage the local webhook event forwarder",
	}

	cmd.AddCommand(newEventsForwardCmd())

	return cmd
}

func newEventsForwardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forward <command> [args...]",
		Short: "Run a webhook forwarder and keep it alive for this session",
		Long: `Run a webhook forwarder subprocess (for example a tunnel client that
relays pull-request webhooks to a local port) and keep it alive until
interrupted. The child is always terminated on exit.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			supervisor := events.NewForwarderSupervisor()
			if err := supervisor.Start(args[0], args[1:]...); err != nil {
				return err
			}
			fmt.Fprintln(os.Stderr, "Forwarder running; press Ctrl-C to stop.")

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
			<-sigs
			return supervisor.Stop()
		},
	}

	return cmd
}
