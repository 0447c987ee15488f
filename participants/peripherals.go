package participants

import (
	"sync/atomic"

	"github.com/nikonhacker/masterclock"
)

// Timer is a reference peripheral Clockable: a plain free-running counter
// bound to a chip, with no CPUEmulator capability — it is only ever
// disabled as a side effect of its chip's CPU stopping.
type Timer struct {
	chip   int
	freqHz atomic.Uint32
	ticks  atomic.Uint64
}

// NewTimer returns a Timer on the given chip, running at freqHz.
func NewTimer(chip int, freqHz uint32) *Timer {
	t := &Timer{chip: chip}
	t.freqHz.Store(freqHz)
	return t
}

func (t *Timer) SetFrequencyHz(hz uint32) { t.freqHz.Store(hz) }
func (t *Timer) FrequencyHz() uint32      { return t.freqHz.Load() }
func (t *Timer) Chip() int                { return t.chip }
func (t *Timer) Ticks() uint64            { return t.ticks.Load() }

func (t *Timer) OnClockTick() (*masterclock.ExitToken, error) {
	t.ticks.Add(1)
	return nil, nil
}

// SerialPort is a reference low-baud peripheral: the kind of participant
// spec.md §4.C calls out as a natural candidate for the imprecise flag,
// since a serial line's exact bit timing rarely needs to land on the same
// base tick as a CPU core running orders of magnitude faster.
type SerialPort struct {
	chip    int
	baudHz  atomic.Uint32
	ticks   atomic.Uint64
}

// NewSerialPort returns a SerialPort on the given chip, running at baudHz.
func NewSerialPort(chip int, baudHz uint32) *SerialPort {
	s := &SerialPort{chip: chip}
	s.baudHz.Store(baudHz)
	return s
}

func (s *SerialPort) SetBaudHz(hz uint32) { s.baudHz.Store(hz) }
func (s *SerialPort) FrequencyHz() uint32 { return s.baudHz.Load() }
func (s *SerialPort) Chip() int           { return s.chip }
func (s *SerialPort) Ticks() uint64       { return s.ticks.Load() }

func (s *SerialPort) OnClockTick() (*masterclock.ExitToken, error) {
	s.ticks.Add(1)
	return nil, nil
}

// ADConverter is a reference analog-to-digital converter peripheral. The
// actual analog value source is out of scope for masterclock (spec.md §1);
// Sample is a caller-supplied callback standing in for that external
// collaborator.
type ADConverter struct {
	chip   int
	freqHz atomic.Uint32
	ticks  atomic.Uint64
	Sample func() int
}

// NewADConverter returns an ADConverter on the given chip, running at
// freqHz. sample may be nil.
func NewADConverter(chip int, freqHz uint32, sample func() int) *ADConverter {
	a := &ADConverter{chip: chip, Sample: sample}
	a.freqHz.Store(freqHz)
	return a
}

func (a *ADConverter) SetFrequencyHz(hz uint32) { a.freqHz.Store(hz) }
func (a *ADConverter) FrequencyHz() uint32      { return a.freqHz.Load() }
func (a *ADConverter) Chip() int                { return a.chip }
func (a *ADConverter) Ticks() uint64            { return a.ticks.Load() }

func (a *ADConverter) OnClockTick() (*masterclock.ExitToken, error) {
	a.ticks.Add(1)
	if a.Sample != nil {
		a.Sample()
	}
	return nil, nil
}
