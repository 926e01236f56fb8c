package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// MaxDiscs matches the largest board the solver will replay.
const MaxDiscs = 16

// ErrInvalidConfig is wrapped by every Validate error.
var ErrInvalidConfig = errors.New("config: invalid hanoi config")

// ApplyHanoiPreset sets the disc count of a difficulty preset.
// Unknown presets leave the config untouched.
func ApplyHanoiPreset(cfg *HanoiConfig, preset DifficultyPreset) {
	if n := DiscsForPreset(preset); n > 0 {
		ApplyDiscCount(cfg, n)
	}
}

// ApplyDiscCount sets the disc count, clamped to [1, MaxDiscs], and raises
// the flight altitude when the rods would reach it.
func ApplyDiscCount(cfg *HanoiConfig, discs int) {
	cfg.Puzzle.Discs = core.Clamp(discs, 1, MaxDiscs)
	fitAltitude(&cfg.Layout, cfg.Puzzle.Discs)
}

// fitAltitude keeps one disc thickness of clearance above the rod tops.
func fitAltitude(l *LayoutConfig, discs int) {
	top := l.Board().DrawnRodHeight(discs)
	if l.FlightAltitude <= top {
		l.FlightAltitude = top + l.DiscThickness
	}
}

// Validate reports the first problem with cfg.
func (cfg HanoiConfig) Validate() error {
	p, l := cfg.Puzzle, cfg.Layout
	switch {
	case p.Discs < 1 || p.Discs > MaxDiscs:
		return fmt.Errorf("%w: discs %d not in 1..%d", ErrInvalidConfig, p.Discs, MaxDiscs)
	case p.Pegs < 3:
		return fmt.Errorf("%w: need at least 3 pegs, got %d", ErrInvalidConfig, p.Pegs)
	case l.PegSpacing <= 0 || l.DiscThickness <= 0 || l.Speed <= 0 || l.DiameterStep <= 0:
		return fmt.Errorf("%w: layout sizes and speed must be positive", ErrInvalidConfig)
	case l.MinDiscDiameter <= l.RodDiameter:
		return fmt.Errorf("%w: min_disc_diameter must exceed rod_diameter", ErrInvalidConfig)
	case l.FlightAltitude <= l.Board().DrawnRodHeight(p.Discs):
		return fmt.Errorf("%w: flight_altitude %.2f does not clear the rods of %d discs", ErrInvalidConfig, l.FlightAltitude, p.Discs)
	case cfg.Playback.PauseMS < 0:
		return fmt.Errorf("%w: negative pause_ms", ErrInvalidConfig)
	}
	for _, w := range p.WinPegs {
		if w < 2 || w > p.Pegs {
			return fmt.Errorf("%w: win peg %d not in 2..%d", ErrInvalidConfig, w, p.Pegs)
		}
	}
	return nil
}
