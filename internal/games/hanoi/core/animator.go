package core

import (
	"time"

	platformcore "github.com/vovakirdan/tui-hanoi/internal/core"
)

// Phase is the current stage of a disc flight.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseAscending
	PhaseTraversing
	PhaseDescending
)

// String returns a human-readable phase name.
func (ph Phase) String() string {
	switch ph {
	case PhaseIdle:
		return "idle"
	case PhaseAscending:
		return "ascending"
	case PhaseTraversing:
		return "traversing"
	case PhaseDescending:
		return "descending"
	default:
		return "unknown"
	}
}

// MoveCompleter receives the landing of an in-flight disc.
type MoveCompleter interface {
	CompleteMove()
}

// Animator flies the in-flight disc up to the flight altitude, across to the
// point above the destination peg and down onto its stack. Rising clear of
// every rod before moving sideways keeps the disc from crossing other discs.
type Animator struct {
	layout    Layout
	completer MoveCompleter

	phase    Phase
	move     MoveAccepted
	lastTime time.Duration
	primed   bool // false until the first Advance after Start records the baseline
}

// NewAnimator creates an idle animator that reports landings to completer.
func NewAnimator(layout Layout, completer MoveCompleter) *Animator {
	return &Animator{
		layout:    layout,
		completer: completer,
	}
}

// Phase returns the current phase.
func (a *Animator) Phase() Phase {
	return a.phase
}

// Idle reports whether no disc is being animated.
func (a *Animator) Idle() bool {
	return a.phase == PhaseIdle
}

// Start begins animating an accepted move. The disc does not move until the
// Advance after the first one, which only records the time baseline.
// Starting while a flight is in progress is ignored.
func (a *Animator) Start(mv MoveAccepted, now time.Duration) {
	if a.phase != PhaseIdle || mv.Disc == nil || mv.Dest == nil {
		return
	}
	a.move = mv
	a.phase = PhaseAscending
	a.lastTime = now
	a.primed = false
}

// Advance moves the disc for the time elapsed since the previous call.
// It returns true on the call that lands the disc. Calls while idle do nothing.
func (a *Animator) Advance(now time.Duration) bool {
	if a.phase == PhaseIdle {
		return false
	}

	dt := now - a.lastTime
	a.lastTime = now
	if dt < 0 {
		dt = 0
	}
	if !a.primed {
		a.primed = true
		return false
	}

	step := a.layout.Speed * float64(dt) / float64(time.Millisecond)
	disc := a.move.Disc
	altitude := a.layout.FlightAltitude

	switch a.phase {
	case PhaseAscending:
		if disc.Position.Y+step < altitude {
			disc.Position.Y += step
		} else {
			disc.Position.Y = altitude
			a.phase = PhaseTraversing
		}

	case PhaseTraversing:
		target := platformcore.V3(a.move.Dest.Position.X, altitude, a.move.Dest.Position.Z)
		if disc.Position.Distance(target) > step {
			dir := target.Sub(disc.Position).Normalize()
			disc.Position = disc.Position.Add(dir.Scale(step))
		} else {
			disc.Position = target
			a.phase = PhaseDescending
		}

	case PhaseDescending:
		dest := a.move.Dest
		rest := a.layout.RestHeight(dest.Len())
		if disc.Position.Y-step > rest {
			disc.Position = platformcore.V3(dest.Position.X, disc.Position.Y-step, dest.Position.Z)
		} else {
			disc.Position = platformcore.V3(dest.Position.X, rest, dest.Position.Z)
			a.phase = PhaseIdle
			a.move = MoveAccepted{}
			a.completer.CompleteMove()
			return true
		}
	}

	return false
}
