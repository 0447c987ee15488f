package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCommandHaltsOnProfile(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"run", "../../testdata/two-chip.yaml"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "halted after")
}

func TestScheduleCommandDescribesProfile(t *testing.T) {
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"schedule", "../../testdata/two-chip.yaml"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "chip 0:")
	assert.Contains(t, out.String(), "chip 1:")
}

func TestRunCommandRejectsMissingProfile(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetArgs([]string{"run", "../../testdata/does-not-exist.yaml"})
	cmd.SetOut(&bytes.Buffer{})

	err := cmd.Execute()
	require.Error(t, err)
}
