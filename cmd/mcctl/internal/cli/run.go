package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// newRunCommand builds the `run` subcommand.
func newRunCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <profile.yaml>",
		Short: "Run a participant profile to completion",
		Long: `Run loads a YAML participant profile, registers every declared CPU,
timer, serial port, and A/D converter with a MasterClock, and runs the
engine synchronously until every participant has stopped.

Example:
  mcctl run --verbose cmd/mcctl/testdata/two-chip.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfile(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runProfile(rootOpts *RootOptions, path string, cmd *cobra.Command) error {
	profile, err := LoadProfile(path)
	if err != nil {
		return errors.Wrap(err, "mcctl run")
	}

	logger := newLogger(rootOpts.Verbose)
	clock := buildClock(profile, logger)

	clock.Run()

	fmt.Fprintf(cmd.OutOrStdout(), "halted after %s of virtual time\n", clock.FormattedElapsedMS())
	return nil
}
