// Command mcctl runs a masterclock schedule from a YAML participant
// profile, for local experimentation and for exercising the engine
// outside of a test binary.
package main

import (
	"fmt"
	"os"

	"github.com/nikonhacker/masterclock/cmd/mcctl/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
