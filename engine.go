package masterclock

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// MasterClock drives a set of Clockable participants forward in virtual
// time according to a schedule compiled from their frequencies. See the
// package doc for the full model.
//
// The zero value is not usable; construct one with New.
type MasterClock struct {
	reg      *registry
	handlers []CallbackHandler
	logger   *slog.Logger

	syncPlay             atomic.Bool
	running              atomic.Bool
	rescheduleRequested  atomic.Bool
	elapsedPS            atomic.Int64

	sched atomic.Pointer[schedule]

	startMu sync.Mutex // serializes Start against itself
}

// New constructs an idle MasterClock. logger may be nil, in which case
// slog.Default() is used.
func New(logger *slog.Logger) *MasterClock {
	if logger == nil {
		logger = slog.Default()
	}
	mc := &MasterClock{logger: logger}
	mc.reg = newRegistry(mc.RequestReschedule)
	return mc
}

// Add registers clockable with the given callback chip (-1 for none),
// initial enabled state, and precise flag. See registry.Add.
func (mc *MasterClock) Add(clockable Clockable, callbackChip int, enabled, precise bool) Handle {
	return mc.reg.Add(clockable, callbackChip, enabled, precise)
}

// AddSimple registers clockable with no callback, enabled, and precise.
func (mc *MasterClock) AddSimple(clockable Clockable) Handle {
	return mc.reg.AddSimple(clockable)
}

// Remove unregisters clockable by identity. Absence is not an error.
func (mc *MasterClock) Remove(clockable Clockable) {
	mc.reg.Remove(clockable)
}

// RemoveHandle unregisters the entry identified by h.
func (mc *MasterClock) RemoveHandle(h Handle) {
	mc.reg.RemoveHandle(h)
}

// Enable re-enables clockable, cascading to its chip's peripherals if it is
// a CPUEmulator.
func (mc *MasterClock) Enable(clockable Clockable) {
	mc.reg.Enable(clockable)
}

// SetCallbackHandlers installs the chip-indexed handler table. Must be
// called before Start; the table is read-only once the engine is running.
func (mc *MasterClock) SetCallbackHandlers(handlers []CallbackHandler) {
	mc.handlers = handlers
}

// SetSyncPlay toggles cross-chip cascading stop.
func (mc *MasterClock) SetSyncPlay(on bool) {
	mc.syncPlay.Store(on)
}

// RequestReschedule marks the compiled schedule stale. Safe from any
// goroutine at any time; honored between steps, never mid-step.
func (mc *MasterClock) RequestReschedule() {
	mc.rescheduleRequested.Store(true)
}

// ResetElapsed zeros the elapsed virtual time counter without stopping the
// clock.
func (mc *MasterClock) ResetElapsed() {
	mc.elapsedPS.Store(0)
}

// ElapsedPS returns total elapsed virtual time, in picoseconds.
func (mc *MasterClock) ElapsedPS() int64 {
	return mc.elapsedPS.Load()
}

// SetElapsedPSForTest forces the elapsed virtual time counter to an
// arbitrary value. It exists to let test harnesses fast-forward a clock
// to a known point (e.g. just before a rollover boundary) without
// replaying every intervening tick; production code should use
// ResetElapsed instead.
func (mc *MasterClock) SetElapsedPSForTest(elapsedPS int64) {
	mc.elapsedPS.Store(elapsedPS)
}

// FormattedElapsedMS renders ElapsedPS as milliseconds with a fixed-width
// "0000.000000000" format, matching the source's DecimalFormat.
func (mc *MasterClock) FormattedElapsedMS() string {
	return formatElapsedMS(mc.ElapsedPS()) + "ms"
}

// Start is idempotent: it transitions Idle to Running by spawning a worker
// goroutine that calls Run. It is a no-op if already running.
func (mc *MasterClock) Start() {
	mc.startMu.Lock()
	defer mc.startMu.Unlock()
	if mc.running.Load() {
		return
	}
	mc.running.Store(true)
	go mc.Run()
}

// Stop requests cooperative shutdown: the engine exits once it finishes its
// current pass through the compiled step list, or earlier at a pending
// reschedule. There is no forced interruption of a participant tick.
func (mc *MasterClock) Stop() {
	mc.running.Store(false)
}

// Run executes the compiled schedule until stopped, either because Stop
// was called, or because every registered entry has become disabled, or
// because no entry can ever be activated (schedule compiled to nothing).
// It may be called directly for a synchronous run, or indirectly via
// Start for an asynchronous one.
func (mc *MasterClock) Run() {
	mc.running.Store(true)
	stepIndex := 0

	for mc.running.Load() {
		if mc.rescheduleRequested.CompareAndSwap(true, false) {
			sc := compile(mc.reg.entries(), mc.logger)
			if sc == nil {
				mc.running.Store(false)
				break
			}
			mc.sched.Store(sc)
			stepIndex = 0
		}

		sc := mc.sched.Load()
		if sc == nil || len(sc.steps) == 0 {
			mc.running.Store(false)
			break
		}
		if mc.allEntriesDisabled() {
			mc.running.Store(false)
			return
		}

		for stepIndex = 0; stepIndex < len(sc.steps); stepIndex++ {
			st := sc.steps[stepIndex]
			var pendingDisable []*entry

			for _, e := range st.entries {
				if !e.enabled.Load() || e.isFrequencyZero {
					continue
				}
				tok, err := e.clockable.OnClockTick()
				switch {
				case err != nil:
					pendingDisable = append(pendingDisable, e)
					if e.callbackChip >= 0 && e.callbackChip < len(mc.handlers) {
						mc.handlers[e.callbackChip].OnException(err)
					}
				case tok != nil:
					pendingDisable = append(pendingDisable, e)
					if e.callbackChip >= 0 && e.callbackChip < len(mc.handlers) {
						mc.handlers[e.callbackChip].OnNormalExit(tok.Reason)
					}
				}
			}

			for _, e := range pendingDisable {
				mc.disableEntry(e)
			}
			if len(pendingDisable) > 0 && mc.allEntriesDisabled() {
				mc.running.Store(false)
				break
			}

			mc.elapsedPS.Add(int64(st.durationPS))

			if mc.rescheduleRequested.Load() {
				break
			}
		}
	}

	mc.rotateSteps(stepIndex)
}

// allEntriesDisabled reports whether every registered entry (not just
// those in the current schedule) is disabled.
func (mc *MasterClock) allEntriesDisabled() bool {
	for _, e := range mc.reg.entries() {
		if e.enabled.Load() {
			return false
		}
	}
	return true
}

// rotateSteps rotates the compiled step list left by stepIndex+1 so that a
// later restart resumes with the step that was about to run, rather than
// restarting the period from position zero. index is clamped to the last
// step, so a pass that ran to completion leaves the list as it is; a
// schedule-less halt is a no-op.
func (mc *MasterClock) rotateSteps(index int) {
	sc := mc.sched.Load()
	if sc == nil || len(sc.steps) == 0 {
		return
	}
	n := len(sc.steps)
	if index > n-1 {
		index = n - 1
	}
	shift := (index + 1) % n
	if shift == 0 {
		return
	}
	rotated := make([]step, n)
	for i := 0; i < n; i++ {
		rotated[i] = sc.steps[(i+shift)%n]
	}
	mc.sched.Store(&schedule{tickPS: sc.tickPS, steps: rotated})
}
