package core

// Snapshot captures the puzzle and animation state for determinism tests.
type Snapshot struct {
	Pegs     [][]int // Disc IDs per peg, bottom to top
	InFlight int     // ID of the disc in flight, 0 when none
	Phase    Phase
	HasWon   bool
	Moves    int
}

// TakeSnapshot records the current state of p and a. a may be nil.
func TakeSnapshot(p *Puzzle, a *Animator) Snapshot {
	s := Snapshot{
		Pegs:   p.State(),
		HasWon: p.HasWon(),
		Moves:  p.MoveCount(),
	}
	if d := p.InFlight(); d != nil {
		s.InFlight = d.ID
	}
	if a != nil {
		s.Phase = a.Phase()
	}
	return s
}
