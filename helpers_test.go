package masterclock

import "sync/atomic"

// fakeClockable is a minimal Clockable used across the package's white-box
// tests: schedule compilation and the engine loop.
type fakeClockable struct {
	freq   atomic.Uint32
	chipID int
	ticks  atomic.Uint64

	exitAfter uint64 // 0 means never
	reason    string
	failAfter uint64 // 0 means never
	failErr   error
}

func newFake(chip int, freq uint32) *fakeClockable {
	f := &fakeClockable{chipID: chip}
	f.freq.Store(freq)
	return f
}

func (f *fakeClockable) FrequencyHz() uint32 { return f.freq.Load() }
func (f *fakeClockable) Chip() int           { return f.chipID }
func (f *fakeClockable) Ticks() uint64       { return f.ticks.Load() }

func (f *fakeClockable) OnClockTick() (*ExitToken, error) {
	n := f.ticks.Add(1)
	if f.failAfter != 0 && n >= f.failAfter {
		return nil, f.failErr
	}
	if f.exitAfter != 0 && n >= f.exitAfter {
		return &ExitToken{Reason: f.reason}, nil
	}
	return nil, nil
}

// fakeCPU wraps fakeClockable and implements CPUEmulator, for tests
// exercising the linked-stop cascade.
type fakeCPU struct{ *fakeClockable }

func newFakeCPU(chip int, freq uint32) *fakeCPU {
	return &fakeCPU{newFake(chip, freq)}
}

func (f *fakeCPU) IsCPUEmulator() {}

// fakeHandler is a CallbackHandler recording every call it received.
type fakeHandler struct {
	normalExits []string
	exceptions  []error
}

func (h *fakeHandler) OnNormalExit(reason string) {
	h.normalExits = append(h.normalExits, reason)
}

func (h *fakeHandler) OnException(err error) {
	h.exceptions = append(h.exceptions, err)
}
