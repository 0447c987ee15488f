package masterclock

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// A Handle is an opaque, stable identity for a registered Clockable. Add
// mints one per distinct clockable and returns it so callers that cannot
// rely on Go interface-value identity (e.g. a Clockable implemented by a
// value type that would compare unequal to itself across calls) have an
// explicit way to refer back to the same entry in RemoveHandle. Enable
// takes the clockable itself; there is no Handle-based form of it.
type Handle uuid.UUID

// entry is the registry's internal wrapper around a registered Clockable.
// enabled is read by the engine's hot loop and written both by the engine
// (linked-stop cascades) and by any goroutine calling Enable, so it is an
// atomic.Bool. The counters below are touched only from the worker
// goroutine that runs compile and the engine loop, so they need no
// synchronization of their own.
type entry struct {
	handle       Handle
	clockable    Clockable
	callbackChip int // index into the callback handler table, or -1
	enabled      atomic.Bool
	isPrecise    bool

	isFrequencyZero bool
	frequencyHz     uint32 // snapshot taken at the start of each compile

	counterThreshold uint32 // base ticks between two activations; >=1 when active
	counterValue     uint32 // fractional progress, rescaled across reschedules
}

func newEntry(h Handle, c Clockable, callbackChip int, enabled, precise bool) *entry {
	e := &entry{
		handle:       h,
		clockable:    c,
		callbackChip: callbackChip,
		isPrecise:    precise,
	}
	e.enabled.Store(enabled)
	return e
}

// cpuEmulator reports whether this entry's clockable implements CPUEmulator,
// the marker capability the linked-stop policy triggers on.
func (e *entry) cpuEmulator() (CPUEmulator, bool) {
	ce, ok := e.clockable.(CPUEmulator)
	return ce, ok
}
