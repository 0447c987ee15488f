package masterclock

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// registry is the ordered collection of entries a MasterClock drives.
// Mutators (add/remove/enable) are serialized by mu and build a new
// snapshot slice; the engine reads the current snapshot via an atomic
// pointer without ever blocking on mu, so a long-running compile or tick
// never stalls a concurrent Add/Remove/Enable and vice versa.
type registry struct {
	mu       sync.Mutex
	snapshot atomic.Pointer[[]*entry]

	// onMutate is called with mu held whenever the registered set changes
	// in a way that requires a reschedule (add/remove, never enable/
	// disable alone). Set once by the owning MasterClock at construction.
	onMutate func()
}

func newRegistry(onMutate func()) *registry {
	r := &registry{onMutate: onMutate}
	empty := make([]*entry, 0)
	r.snapshot.Store(&empty)
	return r
}

// entries returns the current snapshot. Safe for concurrent use; the
// returned slice must not be mutated by the caller.
func (r *registry) entries() []*entry {
	return *r.snapshot.Load()
}

// findLocked returns the entry for c, if already registered. Must be called
// with mu held.
func (r *registry) findLocked(c Clockable) *entry {
	for _, e := range r.entries() {
		if e.clockable == c {
			return e
		}
	}
	return nil
}

// Add registers c. If c is already present, it is simply re-enabled
// (idempotent re-add) and its existing Handle is returned; otherwise a new
// entry is appended with the given flags and a freshly minted Handle.
// Either way a reschedule is requested.
func (r *registry) Add(c Clockable, callbackChip int, enabled, precise bool) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e := r.findLocked(c); e != nil {
		e.enabled.Store(true)
		r.onMutate()
		return e.handle
	}

	h := Handle(uuid.New())
	e := newEntry(h, c, callbackChip, enabled, precise)
	cur := r.entries()
	next := make([]*entry, len(cur)+1)
	copy(next, cur)
	next[len(cur)] = e
	r.snapshot.Store(&next)
	r.onMutate()
	return h
}

// AddSimple registers c with callbackChip -1 (no callback), enabled, and
// precise — the original source's convenience overload.
func (r *registry) AddSimple(c Clockable) Handle {
	return r.Add(c, -1, true, true)
}

// Remove unregisters c by identity, if present. Absence is not an error.
// Always requests a reschedule, even if c was never present — mirroring
// the source, which does the same.
func (r *registry) Remove(c Clockable) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.entries()
	next := make([]*entry, 0, len(cur))
	for _, e := range cur {
		if e.clockable != c {
			next = append(next, e)
		}
	}
	r.snapshot.Store(&next)
	r.onMutate()
}

// RemoveHandle is Remove by Handle instead of by clockable identity.
func (r *registry) RemoveHandle(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.entries()
	next := make([]*entry, 0, len(cur))
	for _, e := range cur {
		if e.handle != h {
			next = append(next, e)
		}
	}
	r.snapshot.Store(&next)
	r.onMutate()
}

// Enable sets c's entry enabled, and if c is a CPU-class participant, also
// enables every entry sharing its chip id. Unlike Add/Remove this never
// requests a reschedule: enabling does not change any frequency or
// threshold, only which already-scheduled entries run.
func (r *registry) Enable(c Clockable) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.findLocked(c)
	if e == nil {
		return
	}
	e.enabled.Store(true)
	if _, ok := e.cpuEmulator(); ok {
		r.setChipEnabledLocked(e.clockable.Chip(), true)
	}
}

// setChipEnabledLocked enables or disables every entry whose chip id
// equals chip. Must be called with mu held.
func (r *registry) setChipEnabledLocked(chip int, enabled bool) {
	for _, e := range r.entries() {
		if e.clockable.Chip() == chip {
			e.enabled.Store(enabled)
		}
	}
}
