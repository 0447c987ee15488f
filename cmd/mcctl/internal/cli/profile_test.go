package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile("../../testdata/two-chip.yaml")
	require.NoError(t, err)
	require.Len(t, p.Chips, 2)

	assert.True(t, p.SyncPlay)
	assert.Equal(t, uint32(4_000_000), p.Chips[0].CPU.FrequencyHz)
	assert.Equal(t, uint64(2), p.Chips[0].CPU.HaltAfter)
	assert.Equal(t, "power off", p.Chips[0].CPU.HaltReason)
	require.Len(t, p.Chips[0].Serial, 1)
	assert.False(t, p.Chips[0].Serial[0].Precise)
	assert.Zero(t, p.Chips[1].CPU.HaltAfter)
}

func TestLoadProfileRejectsMissingFile(t *testing.T) {
	_, err := LoadProfile("../../testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestBuildParticipantsCountsEveryEntry(t *testing.T) {
	p, err := LoadProfile("../../testdata/two-chip.yaml")
	require.NoError(t, err)

	built := buildParticipants(p)
	// chip0: cpu + timer + serial = 3, chip1: cpu + timer = 2
	assert.Len(t, built, 5)
}
