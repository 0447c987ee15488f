// Package masterclock implements a deterministic multi-rate tick scheduler
// for emulating a multi-chip embedded device.
//
// It coordinates a heterogeneous set of clocked participants — CPU cores,
// timers, serial ports, A/D converters and other peripherals — each
// advertising its own nominal frequency in hertz, and drives them forward in
// virtual time so that over any sufficiently long interval each participant
// is activated approximately frequency × elapsed_seconds times. Total
// elapsed virtual time is tracked at picosecond resolution.
//
// The scheduler computes a compact periodic execution schedule from the
// least common multiple of the registered frequencies, then runs that
// schedule in a tight loop on a single worker goroutine, advancing virtual
// time by integer addition only — it never sleeps or paces against wall
// clock time.
package masterclock
