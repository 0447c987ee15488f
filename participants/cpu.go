package participants

import (
	"sync/atomic"

	"github.com/nikonhacker/masterclock"
)

// CPU is a reference CPU-core Clockable. It implements
// masterclock.CPUEmulator, so disabling it triggers the linked-stop
// cascade to every other entry sharing its chip id.
type CPU struct {
	chip      int
	freqHz    atomic.Uint32
	ticks     atomic.Uint64
	haltAfter uint64 // 0 means never halt on its own
	haltRea   string
}

// NewCPU returns a CPU on the given chip, running at freqHz.
func NewCPU(chip int, freqHz uint32) *CPU {
	c := &CPU{chip: chip}
	c.freqHz.Store(freqHz)
	return c
}

// HaltAfter arranges for the CPU to voluntarily exit with reason after the
// given number of activations. A count of 0 disables the voluntary halt.
func (c *CPU) HaltAfter(count uint64, reason string) {
	c.haltAfter = count
	c.haltRea = reason
}

// SetFrequencyHz changes the CPU's nominal clock rate. Callers must call
// (*masterclock.MasterClock).RequestReschedule afterwards.
func (c *CPU) SetFrequencyHz(hz uint32) { c.freqHz.Store(hz) }

// FrequencyHz implements masterclock.Clockable.
func (c *CPU) FrequencyHz() uint32 { return c.freqHz.Load() }

// Chip implements masterclock.Clockable.
func (c *CPU) Chip() int { return c.chip }

// IsCPUEmulator implements masterclock.CPUEmulator.
func (c *CPU) IsCPUEmulator() {}

// Ticks returns the number of activations so far.
func (c *CPU) Ticks() uint64 { return c.ticks.Load() }

// OnClockTick implements masterclock.Clockable.
func (c *CPU) OnClockTick() (*masterclock.ExitToken, error) {
	n := c.ticks.Add(1)
	if c.haltAfter != 0 && n >= c.haltAfter {
		return &masterclock.ExitToken{Reason: c.haltRea}, nil
	}
	return nil, nil
}
