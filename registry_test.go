package masterclock

import "testing"

func TestRegistry_IdempotentReAdd(t *testing.T) {
	var notified int
	r := newRegistry(func() { notified++ })

	c := newFake(0, 100)
	h1 := r.Add(c, -1, true, true)
	if len(r.entries()) != 1 {
		t.Fatalf("expected 1 entry after first add, got %d", len(r.entries()))
	}

	r.entries()[0].enabled.Store(false)
	h2 := r.Add(c, -1, true, true)
	if h1 != h2 {
		t.Errorf("re-adding the same clockable minted a new handle: %v != %v", h1, h2)
	}
	if len(r.entries()) != 1 {
		t.Fatalf("re-add duplicated the entry: now %d entries", len(r.entries()))
	}
	if !r.entries()[0].enabled.Load() {
		t.Error("re-add should have re-enabled the entry")
	}
	if notified != 2 {
		t.Errorf("expected onMutate called twice (add + re-add), got %d", notified)
	}
}

func TestRegistry_RemoveAbsentIsNotAnError(t *testing.T) {
	r := newRegistry(func() {})
	r.Remove(newFake(0, 10)) // never added
	if len(r.entries()) != 0 {
		t.Fatalf("expected empty registry, got %d entries", len(r.entries()))
	}
}

func TestRegistry_RemovePreservesOrder(t *testing.T) {
	r := newRegistry(func() {})
	a, b, c := newFake(0, 1), newFake(0, 2), newFake(0, 3)
	r.Add(a, -1, true, true)
	r.Add(b, -1, true, true)
	r.Add(c, -1, true, true)

	r.Remove(b)

	entries := r.entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries after removal, got %d", len(entries))
	}
	if entries[0].clockable != Clockable(a) || entries[1].clockable != Clockable(c) {
		t.Errorf("removal did not preserve relative order of survivors")
	}
}

func TestRegistry_EnableCascadesToChipPeers(t *testing.T) {
	r := newRegistry(func() {})
	cpu := newFakeCPU(0, 1000)
	peripheral := newFake(0, 60)
	r.Add(cpu, -1, false, true)
	r.Add(peripheral, -1, false, true)

	r.Enable(cpu)

	for _, e := range r.entries() {
		if !e.enabled.Load() {
			t.Errorf("entry for chip 0 should be enabled after enabling its CPU, clockable=%v", e.clockable)
		}
	}
}

func TestRegistry_EnableOfPlainPeripheralDoesNotCascade(t *testing.T) {
	r := newRegistry(func() {})
	peripheralA := newFake(0, 60)
	peripheralB := newFake(0, 60)
	r.Add(peripheralA, -1, false, true)
	r.Add(peripheralB, -1, false, true)

	r.Enable(peripheralA)

	entries := r.entries()
	if !entries[0].enabled.Load() {
		t.Error("peripheralA should be enabled")
	}
	if entries[1].enabled.Load() {
		t.Error("peripheralB should not have been cascaded to")
	}
}
