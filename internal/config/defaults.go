package config

import (
	_ "embed"
)

//go:embed defaults/hanoi.yaml
var defaultHanoiYAML []byte

// DefaultHanoiConfig returns the default puzzle configuration.
func DefaultHanoiConfig() HanoiConfig {
	return HanoiConfig{
		Puzzle: PuzzleConfig{
			Discs: 4,
			Pegs:  3,
		},
		Layout: LayoutConfig{
			PegSpacing:      1.6,
			RodDiameter:     0.2,
			RodHeight:       0.6,
			DiscThickness:   0.1,
			MinDiscDiameter: 0.6,
			DiameterStep:    0.2,
			FlightAltitude:  0.8,
			Speed:           0.002,
		},
		Playback: PlaybackConfig{
			PauseMS: 500,
		},
	}
}
