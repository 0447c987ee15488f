package cli

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/nikonhacker/masterclock"
)

// Profile describes a small multi-chip system to drive through a
// MasterClock: one or more chips, each with a CPU and an optional set of
// peripherals. It is the on-disk shape mcctl reads with `run`.
type Profile struct {
	SyncPlay bool          `yaml:"sync_play"`
	Chips    []ChipProfile `yaml:"chips"`
}

// ChipProfile describes one chip's participants.
type ChipProfile struct {
	ID     int              `yaml:"id"`
	CPU    *CPUProfile      `yaml:"cpu"`
	Timers []TimerProfile   `yaml:"timers"`
	Serial []SerialProfile  `yaml:"serial_ports"`
	ADCs   []ADConvProfile  `yaml:"ad_converters"`
}

// CPUProfile describes a chip's CPU core. HaltAfter of 0 means the CPU
// never halts on its own; the chip only stops via an external Stop or a
// sync-play cascade from another chip.
type CPUProfile struct {
	FrequencyHz uint32 `yaml:"frequency_hz"`
	HaltAfter   uint64 `yaml:"halt_after"`
	HaltReason  string `yaml:"halt_reason"`
}

// TimerProfile describes a free-running peripheral timer.
type TimerProfile struct {
	FrequencyHz uint32 `yaml:"frequency_hz"`
}

// SerialProfile describes a serial port, registered as imprecise by
// default since baud-rate timing rarely needs to land on the same base
// tick as a CPU core running orders of magnitude faster.
type SerialProfile struct {
	BaudHz  uint32 `yaml:"baud_hz"`
	Precise bool   `yaml:"precise"`
}

// ADConvProfile describes an A/D converter. Its Sample callback always
// returns zero; mcctl has no real analog source, only the schedule.
type ADConvProfile struct {
	FrequencyHz uint32 `yaml:"frequency_hz"`
}

// LoadProfile reads and parses a YAML profile from path.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "mcctl: reading profile %s", path)
	}
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrapf(err, "mcctl: parsing profile %s", path)
	}
	if len(p.Chips) == 0 {
		return nil, errors.Wrapf(masterclock.ErrNoParticipants, "mcctl: profile %s", path)
	}
	return &p, nil
}

// builtParticipant pairs a constructed Clockable with the chip and
// precision flags it should be registered with.
type builtParticipant struct {
	clockable masterclock.Clockable
	chip      int
	precise   bool
}
