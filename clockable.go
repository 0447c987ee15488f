package masterclock

// A Clockable is a participant that can be activated periodically by a
// MasterClock: a CPU core, a timer, a serial port, an A/D converter, or any
// other peripheral with a nominal clock rate.
type Clockable interface {
	// FrequencyHz returns the participant's current nominal frequency, in
	// whole hertz. Zero means the participant is currently silent: it is
	// registered but never activated until its frequency becomes positive
	// again. The frequency may change at runtime; the participant is
	// expected to call (*MasterClock).RequestReschedule afterwards.
	FrequencyHz() uint32

	// Chip returns the small non-negative chip identifier this participant
	// belongs to, used for linked-stop grouping.
	Chip() int

	// OnClockTick activates the participant once. A nil ExitToken means the
	// participant continues running; a non-nil one carries the reason the
	// participant is voluntarily terminating and the entry will be
	// disabled. An error return also disables the entry and is reported to
	// the chip's CallbackHandler instead.
	OnClockTick() (*ExitToken, error)
}

// An ExitToken is returned by Clockable.OnClockTick to voluntarily signal
// that the participant should stop being activated.
type ExitToken struct {
	Reason string
}

// CPUEmulator is a marker sub-capability. Clockables that implement it are
// subject to the linked-stop policy: disabling one disables every other
// entry sharing its Chip id and, under sync-play, cascades to peer chips.
// A Clockable may or may not also implement CPUEmulator; plain peripherals
// normally don't.
type CPUEmulator interface {
	Clockable
	IsCPUEmulator()
}

// A CallbackHandler receives notifications for the entries routed to it
// through their callback chip index.
type CallbackHandler interface {
	// OnNormalExit is invoked when an entry voluntarily exits (its tick
	// returned a non-nil ExitToken) or is stopped by the linked-stop
	// policy. reason is either the ExitToken's Reason or a synthetic
	// message naming the stopping chip/clockable.
	OnNormalExit(reason string)

	// OnException is invoked when an entry's tick returns a non-nil error.
	OnException(err error)
}
