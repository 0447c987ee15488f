package mctest

import (
	"testing"

	"github.com/nikonhacker/masterclock"
)

// AssertRateFidelity checks spec.md's invariant 1: over elapsedPS
// picoseconds of virtual time, a precise entry running at freqHz must have
// been activated floor(elapsedPS * freqHz / 1e12) or that value + 1 times.
func AssertRateFidelity(t *testing.T, freqHz uint32, elapsedPS int64, activations uint64) {
	t.Helper()
	if freqHz == 0 {
		if activations != 0 {
			t.Fatalf("zero-frequency entry should never activate, got %d activations", activations)
		}
		return
	}
	expected := uint64(elapsedPS) * uint64(freqHz) / 1_000_000_000_000
	if activations != expected && activations != expected+1 {
		t.Fatalf("rate fidelity violated at %d Hz over %dps: expected %d or %d activations, got %d",
			freqHz, elapsedPS, expected, expected+1, activations)
	}
}

// StopAfter is a masterclock.Clockable that calls Stop on its owning clock
// once it has been activated afterTicks times. It exists purely to give
// tests a deterministic way to run a MasterClock for a bounded number of
// activations without a wall-clock timer — Stop is cooperative (spec.md
// §4.D), so the engine still finishes its current pass through the
// compiled step list before halting.
type StopAfter struct {
	mc         *masterclock.MasterClock
	chip       int
	freqHz     uint32
	afterTicks uint64
	n          uint64
}

// NewStopAfter returns a StopAfter bound to mc, registered on chip at
// freqHz, that stops mc after afterTicks activations of itself.
func NewStopAfter(mc *masterclock.MasterClock, chip int, freqHz uint32, afterTicks uint64) *StopAfter {
	return &StopAfter{mc: mc, chip: chip, freqHz: freqHz, afterTicks: afterTicks}
}

func (s *StopAfter) FrequencyHz() uint32 { return s.freqHz }
func (s *StopAfter) Chip() int           { return s.chip }

func (s *StopAfter) OnClockTick() (*masterclock.ExitToken, error) {
	s.n++
	if s.n >= s.afterTicks {
		s.mc.Stop()
	}
	return nil, nil
}
