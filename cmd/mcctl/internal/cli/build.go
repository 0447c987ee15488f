package cli

import (
	"log/slog"
	"os"

	"github.com/nikonhacker/masterclock"
	"github.com/nikonhacker/masterclock/participants"
)

// newLogger builds the stderr text logger mcctl shares across commands,
// at debug level when verbose is set.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// buildParticipants instantiates one Clockable per entry described in the
// profile, grouped by chip.
func buildParticipants(p *Profile) []builtParticipant {
	var built []builtParticipant
	for _, chip := range p.Chips {
		if chip.CPU != nil {
			cpu := participants.NewCPU(chip.ID, chip.CPU.FrequencyHz)
			if chip.CPU.HaltAfter > 0 {
				cpu.HaltAfter(chip.CPU.HaltAfter, chip.CPU.HaltReason)
			}
			built = append(built, builtParticipant{clockable: cpu, chip: chip.ID, precise: true})
		}
		for _, tm := range chip.Timers {
			built = append(built, builtParticipant{
				clockable: participants.NewTimer(chip.ID, tm.FrequencyHz),
				chip:      chip.ID,
				precise:   true,
			})
		}
		for _, sp := range chip.Serial {
			built = append(built, builtParticipant{
				clockable: participants.NewSerialPort(chip.ID, sp.BaudHz),
				chip:      chip.ID,
				precise:   sp.Precise,
			})
		}
		for _, ad := range chip.ADCs {
			built = append(built, builtParticipant{
				clockable: participants.NewADConverter(chip.ID, ad.FrequencyHz, func() int { return 0 }),
				chip:      chip.ID,
				precise:   true,
			})
		}
	}
	return built
}

// loggingHandler is a masterclock.CallbackHandler that logs every
// notification through logger at the given chip index, in lieu of a real
// emulator UI.
type loggingHandler struct {
	logger *slog.Logger
	chip   int
}

func (h loggingHandler) OnNormalExit(reason string) {
	h.logger.Info("participant stopped", "chip", h.chip, "reason", reason)
}

func (h loggingHandler) OnException(err error) {
	h.logger.Error("participant faulted", "chip", h.chip, "error", err)
}

// buildClock assembles a MasterClock from p: every built participant is
// registered, routed to a per-chip loggingHandler, with sync-play set per
// the profile.
func buildClock(p *Profile, logger *slog.Logger) *masterclock.MasterClock {
	maxChip := 0
	for _, chip := range p.Chips {
		if chip.ID > maxChip {
			maxChip = chip.ID
		}
	}
	handlers := make([]masterclock.CallbackHandler, maxChip+1)
	for i := range handlers {
		handlers[i] = loggingHandler{logger: logger, chip: i}
	}

	clock := masterclock.New(logger)
	clock.SetCallbackHandlers(handlers)
	clock.SetSyncPlay(p.SyncPlay)

	for _, bp := range buildParticipants(p) {
		clock.Add(bp.clockable, bp.chip, true, bp.precise)
	}
	return clock
}
