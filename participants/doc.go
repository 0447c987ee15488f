// Package participants provides reference masterclock.Clockable
// implementations — a CPU core, a timer, a serial port, and an A/D
// converter — useful both as masterclock test fixtures and as a starting
// point for real emulator participants.
package participants
