package masterclock

import "log/slog"

const psPerSec uint64 = 1_000_000_000_000

// step is one position in the compiled periodic schedule: the entries due
// for activation and the virtual-time quantum this position lasts.
type step struct {
	entries    []*entry
	durationPS uint64
}

// schedule is the output of compile: the base tick quantum and the compact,
// circular sequence of productive steps whose durations sum to one full
// period (periodSteps * tickPS).
type schedule struct {
	tickPS uint64
	steps  []step
}

// compile derives tickPS and the step list from the current entry snapshot,
// following spec §4.C. Zero-frequency entries are excluded from the
// compiled step list entirely (a deliberate departure from the original
// source, which only checked is_frequency_zero at activation time — see
// DESIGN.md); this also sidesteps a division by an unset counter threshold
// when every registered entry is currently silent.
//
// A nil schedule means no entry can ever be activated
// (every entry has frequency zero, or there are no entries at all); callers
// must treat that as an immediate halt condition rather than an error.
func compile(entries []*entry, logger *slog.Logger) *schedule {
	// Step 1: frequency snapshot.
	for _, e := range entries {
		e.frequencyHz = e.clockable.FrequencyHz()
		e.isFrequencyZero = e.frequencyHz == 0
	}

	// Step 2: baseline LCM over precise entries; track max imprecise freq.
	var lcmFreq uint64 = 1
	var maxImprecise uint64 = 1
	for _, e := range entries {
		if e.isFrequencyZero {
			continue
		}
		if e.isPrecise {
			lcmFreq = lcm64(lcmFreq, uint64(e.frequencyHz))
		} else if uint64(e.frequencyHz) > maxImprecise {
			maxImprecise = uint64(e.frequencyHz)
		}
	}

	// Step 3: imprecise inclusion rule — fold in imprecise entries if the
	// precise LCM doesn't already dominate them by 4x.
	if lcmFreq < 4*maxImprecise {
		for _, e := range entries {
			if !e.isFrequencyZero && !e.isPrecise {
				lcmFreq = lcm64(lcmFreq, uint64(e.frequencyHz))
			}
		}
	}

	// Step 4: per-entry threshold, rescaling counterValue to preserve phase.
	var periodSteps uint64 = 1
	active := false
	for _, e := range entries {
		if e.isFrequencyZero {
			e.counterThreshold = 0
			e.counterValue = 0
			continue
		}
		active = true
		newThreshold := uint32(lcmFreq / uint64(e.frequencyHz))
		if e.counterThreshold != 0 {
			e.counterValue = uint32((uint64(e.counterValue) * uint64(newThreshold)) / uint64(e.counterThreshold))
		}
		e.counterThreshold = newThreshold
		periodSteps = lcm64(periodSteps, uint64(newThreshold))
	}

	if !active {
		return nil
	}

	// Step 5: counter-period LCM already accumulated above as periodSteps.
	if periodSteps > degenerateStepThreshold {
		logger.Warn("schedule period exceeds soft limit; frequencies are too disparate to schedule efficiently",
			"period_steps", periodSteps, "lcm_frequency", lcmFreq, "threshold", degenerateStepThreshold)
	}

	// Step 6: base tick quantum.
	tickPS := psPerSec / lcmFreq

	// Step 7: step emission with empty-tick folding.
	steps := make([]step, 0, periodSteps)
	for k := uint64(0); k < periodSteps; k++ {
		var due []*entry
		for _, e := range entries {
			if e.isFrequencyZero {
				continue
			}
			if k%uint64(e.counterThreshold) == 0 {
				due = append(due, e)
			}
		}
		if len(due) == 0 {
			steps[len(steps)-1].durationPS += tickPS
			continue
		}
		steps = append(steps, step{entries: due, durationPS: tickPS})
	}

	return &schedule{tickPS: tickPS, steps: steps}
}
