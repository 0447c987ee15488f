package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// newScheduleCommand builds the `schedule` subcommand, a dry run that
// prints the participants a profile would register without ever starting
// the clock.
func newScheduleCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule <profile.yaml>",
		Short: "Print the participants a profile would register, without running",
		Args:  cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return describeProfile(args[0], cmd)
		},
	}
	return cmd
}

func describeProfile(path string, cmd *cobra.Command) error {
	profile, err := LoadProfile(path)
	if err != nil {
		return errors.Wrap(err, "mcctl schedule")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "sync_play: %v\n", profile.SyncPlay)
	for _, chip := range profile.Chips {
		fmt.Fprintf(out, "chip %d:\n", chip.ID)
		if chip.CPU != nil {
			fmt.Fprintf(out, "  cpu: %d Hz", chip.CPU.FrequencyHz)
			if chip.CPU.HaltAfter > 0 {
				fmt.Fprintf(out, " (halts after %d ticks: %q)", chip.CPU.HaltAfter, chip.CPU.HaltReason)
			}
			fmt.Fprintln(out)
		}
		for _, tm := range chip.Timers {
			fmt.Fprintf(out, "  timer: %d Hz\n", tm.FrequencyHz)
		}
		for _, sp := range chip.Serial {
			fmt.Fprintf(out, "  serial: %d baud (precise=%v)\n", sp.BaudHz, sp.Precise)
		}
		for _, ad := range chip.ADCs {
			fmt.Fprintf(out, "  adc: %d Hz\n", ad.FrequencyHz)
		}
	}
	return nil
}
