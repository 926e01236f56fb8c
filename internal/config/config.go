// Package config provides YAML-based puzzle configuration loading and
// difficulty presets for the hanoi platform.
package config

import hcore "github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"

// HanoiConfig contains all configuration for the puzzle.
type HanoiConfig struct {
	Puzzle   PuzzleConfig   `yaml:"puzzle"`
	Layout   LayoutConfig   `yaml:"layout"`
	Playback PlaybackConfig `yaml:"playback"`
}

// PuzzleConfig defines the board size.
type PuzzleConfig struct {
	Discs int `yaml:"discs"`
	Pegs  int `yaml:"pegs"`
	// WinPegs lists the 1-based pegs that count as solved for the classic
	// variant. Empty means the last peg.
	WinPegs []int `yaml:"win_pegs"`
}

// LayoutConfig defines the world-space dimensions of the board.
type LayoutConfig struct {
	PegSpacing      float64 `yaml:"peg_spacing"`
	RodDiameter     float64 `yaml:"rod_diameter"`
	RodHeight       float64 `yaml:"rod_height"`
	DiscThickness   float64 `yaml:"disc_thickness"`
	MinDiscDiameter float64 `yaml:"min_disc_diameter"`
	DiameterStep    float64 `yaml:"diameter_step"`
	FlightAltitude  float64 `yaml:"flight_altitude"`
	Speed           float64 `yaml:"speed"` // world units per millisecond
}

// Board converts the config section into the puzzle core's layout.
func (l LayoutConfig) Board() hcore.Layout {
	return hcore.Layout{
		PegSpacing:      l.PegSpacing,
		RodDiameter:     l.RodDiameter,
		RodHeight:       l.RodHeight,
		DiscThickness:   l.DiscThickness,
		MinDiscDiameter: l.MinDiscDiameter,
		DiameterStep:    l.DiameterStep,
		FlightAltitude:  l.FlightAltitude,
		Speed:           l.Speed,
	}
}

// PlaybackConfig defines the auto-solve cadence.
type PlaybackConfig struct {
	PauseMS int `yaml:"pause_ms"`
}

// DifficultyPreset represents a named disc count.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets lists every preset in increasing difficulty.
var Presets = []DifficultyPreset{
	DifficultyEasy,
	DifficultyNormal,
	DifficultyHard,
	DifficultyExpert,
}

// DiscsForPreset returns the disc count of a difficulty preset, or 0 for an
// unknown preset.
func DiscsForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 3
	case DifficultyNormal:
		return 4
	case DifficultyHard:
		return 6
	case DifficultyExpert:
		return 8
	default:
		return 0
	}
}

// ParsePreset converts a CLI value into a preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	p := DifficultyPreset(s)
	return p, DiscsForPreset(p) > 0
}
