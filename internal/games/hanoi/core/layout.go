// Package core implements the Towers of Hanoi rules: peg/disc ownership,
// move legality, win detection, the three-phase disc flight animation and
// the recursive solver. It has no platform dependencies beyond the shared
// geometry and color types.
package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-hanoi/internal/core"
)

// Layout holds the world-space dimensions of the board.
// Units are arbitrary world units; time is measured in milliseconds.
type Layout struct {
	PegSpacing      float64 // Distance between the centers of neighbouring pegs
	RodDiameter     float64 // Diameter of a rod (inner diameter of every disc)
	RodHeight       float64 // Minimum drawn rod height
	DiscThickness   float64 // Height of one disc
	MinDiscDiameter float64 // Outer diameter of the smallest disc
	DiameterStep    float64 // Diameter difference between neighbouring discs
	FlightAltitude  float64 // Height a disc rises to before moving sideways
	Speed           float64 // Flight speed in world units per millisecond
}

// DefaultLayout returns the dimensions of the classic board.
func DefaultLayout() Layout {
	return Layout{
		PegSpacing:      1.6,
		RodDiameter:     0.2,
		RodHeight:       0.6,
		DiscThickness:   0.1,
		MinDiscDiameter: 0.6,
		DiameterStep:    0.2,
		FlightAltitude:  0.8,
		Speed:           0.002,
	}
}

// Validate checks that the layout can animate a board with the given disc count.
// A disc traverses at the flight altitude, so the altitude must lie above the
// drawn rod top, which itself is above the tallest possible stack.
func (l Layout) Validate(discs int) error {
	switch {
	case l.PegSpacing <= 0:
		return fmt.Errorf("%w: peg spacing must be positive", ErrInvalidLayout)
	case l.DiscThickness <= 0:
		return fmt.Errorf("%w: disc thickness must be positive", ErrInvalidLayout)
	case l.Speed <= 0:
		return fmt.Errorf("%w: speed must be positive", ErrInvalidLayout)
	case l.MinDiscDiameter <= l.RodDiameter:
		return fmt.Errorf("%w: smallest disc must be wider than the rod", ErrInvalidLayout)
	case l.DiameterStep <= 0:
		return fmt.Errorf("%w: diameter step must be positive", ErrInvalidLayout)
	}

	if top := l.DrawnRodHeight(discs); l.FlightAltitude <= top {
		return fmt.Errorf("%w: flight altitude %.2f does not clear the rods of a %d-disc board (%.2f)",
			ErrInvalidLayout, l.FlightAltitude, discs, top)
	}
	return nil
}

// PegPosition returns the base center of peg index (1-based) among pegs,
// centered around the origin along X.
func (l Layout) PegPosition(index, pegs int) platformcore.Vec3 {
	offset := float64(index) - float64(pegs+1)/2
	return platformcore.V3(offset*l.PegSpacing, 0, 0)
}

// DiscDiameter returns the outer diameter of disc id (1 = largest) of discs.
func (l Layout) DiscDiameter(id, discs int) float64 {
	return l.MinDiscDiameter + l.DiameterStep*float64(discs-id)
}

// RestHeight returns the resting height of a disc placed on a stack of n discs.
func (l Layout) RestHeight(n int) float64 {
	return float64(n) * l.DiscThickness
}

// DrawnRodHeight returns the rod height tall enough to hold every disc.
func (l Layout) DrawnRodHeight(discs int) float64 {
	h := l.RestHeight(discs) + l.DiscThickness
	if l.RodHeight > h {
		return l.RodHeight
	}
	return h
}
