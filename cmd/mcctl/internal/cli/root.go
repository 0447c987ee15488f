package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds flags shared by every subcommand.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand builds the mcctl root command.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "mcctl",
		Short: "mcctl drives a masterclock schedule from a YAML participant profile",
		Long: `mcctl loads a small multi-chip system description (CPUs, timers,
serial ports, A/D converters, one profile per chip) and runs it through a
masterclock.MasterClock until every participant has stopped, logging every
voluntary exit, exception, and linked-stop cascade along the way.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newScheduleCommand(opts))

	return cmd
}
