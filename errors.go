package masterclock

import "github.com/pkg/errors"

// ErrNoParticipants is returned by callers that build a registry from an
// external description (e.g. cmd/mcctl's profile loader) when that
// description names no participants at all. The engine itself never
// returns it: an empty or all-zero-frequency registry instead compiles to
// a nil schedule (see compile), and an all-disabled one is detected before
// the next pass; either way Run halts cleanly.
var ErrNoParticipants = errors.New("masterclock: no participants registered")

// degenerateStepThreshold is the soft limit on compiled period length past
// which compile logs a warning. See spec §4.C step 5.
const degenerateStepThreshold = 20_000
