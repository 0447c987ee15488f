package masterclock

import "fmt"

// disableEntry disables e and, if e's clockable implements CPUEmulator,
// cascades the linked-stop policy: every entry on the same chip is
// disabled too, and under sync-play every other CPU-emulator entry (and
// its own chip's peripherals) is disabled as well. This is the policy that
// eventually collapses a multi-chip system to fully disabled, which is the
// engine's signal to halt.
func (mc *MasterClock) disableEntry(e *entry) {
	e.enabled.Store(false)

	if _, ok := e.cpuEmulator(); !ok {
		return
	}

	chip := e.clockable.Chip()
	mc.disablePeripherals(chip, e, fmt.Sprintf("Sync stop due to chip %d stopping.", chip))

	if !mc.syncPlay.Load() {
		return
	}

	for _, other := range mc.reg.entries() {
		if other == e {
			continue
		}
		if _, ok := other.cpuEmulator(); !ok || !other.enabled.Load() {
			continue
		}
		mc.notifyAndDisable(other, fmt.Sprintf("Sync stop due to %T", e.clockable))
		mc.disablePeripherals(other.clockable.Chip(), other, fmt.Sprintf("Sync stop due to chip %d stopping.", other.clockable.Chip()))
	}
}

// disablePeripherals disables every entry sharing chip, other than skip
// itself, notifying each previously-enabled one's callback handler first.
func (mc *MasterClock) disablePeripherals(chip int, skip *entry, reason string) {
	for _, other := range mc.reg.entries() {
		if other == skip || other.clockable.Chip() != chip {
			continue
		}
		if other.enabled.Load() {
			mc.notifyAndDisable(other, reason)
		} else {
			other.enabled.Store(false)
		}
	}
}

// notifyAndDisable invokes OnNormalExit for e's callback handler, if any,
// then disables e. The order matters: the handler may still query e's
// last-known state.
func (mc *MasterClock) notifyAndDisable(e *entry, reason string) {
	if e.callbackChip >= 0 && e.callbackChip < len(mc.handlers) {
		mc.handlers[e.callbackChip].OnNormalExit(reason)
	}
	e.enabled.Store(false)
}
