package core

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-hanoi/internal/core"
)

// MaxDiscs bounds the disc count; the optimal solution has 2^n - 1 moves.
const MaxDiscs = 16

// Disc is a single disc. Position is owned by the peg it rests on, or by the
// animator while the disc is in flight.
type Disc struct {
	ID       int     // 1 is the largest disc
	Size     float64 // Outer diameter, distinct for every disc
	Color    platformcore.Color
	Position platformcore.Vec3
}

// Peg is a rod holding a stack of discs, bottom to top.
type Peg struct {
	Index    int // 1-based
	Position platformcore.Vec3
	discs    []*Disc
}

// Len returns the number of discs on the peg.
func (p *Peg) Len() int {
	return len(p.discs)
}

// Top returns the top disc, or nil when the peg is empty.
func (p *Peg) Top() *Disc {
	if len(p.discs) == 0 {
		return nil
	}
	return p.discs[len(p.discs)-1]
}

// Discs returns a copy of the stack, bottom to top.
func (p *Peg) Discs() []*Disc {
	out := make([]*Disc, len(p.discs))
	copy(out, p.discs)
	return out
}

func (p *Peg) push(d *Disc) {
	p.discs = append(p.discs, d)
}

func (p *Peg) pop() *Disc {
	d := p.Top()
	if d != nil {
		p.discs = p.discs[:len(p.discs)-1]
	}
	return d
}

// Move is a single relocation between two 1-based pegs.
type Move struct {
	From int
	To   int
}

// String formats the move as "1→3".
func (m Move) String() string {
	return fmt.Sprintf("%d→%d", m.From, m.To)
}

// MoveAccepted describes a move that has been taken off the source peg and
// is ready to be animated.
type MoveAccepted struct {
	Disc   *Disc
	From   int
	To     int
	Source *Peg
	Dest   *Peg
}

// Puzzle owns the pegs and discs and enforces the rules.
// It is not safe for concurrent use; the host loop drives it from one goroutine.
type Puzzle struct {
	layout  Layout
	pegs    []*Peg
	discs   []*Disc
	winPegs []int

	inFlight *Disc
	source   *Peg
	dest     *Peg
	hasWon   bool

	history []Move
}

// Option configures a Puzzle.
type Option func(*Puzzle)

// WithWinPegs sets the pegs that count as solved. A puzzle is won when every
// disc sits on any one of them. Defaults to the last peg.
func WithWinPegs(pegs ...int) Option {
	return func(p *Puzzle) {
		p.winPegs = append([]int(nil), pegs...)
	}
}

// NewPuzzle creates a puzzle with every disc stacked on peg 1, largest at the bottom.
func NewPuzzle(discs, pegs int, layout Layout, opts ...Option) (*Puzzle, error) {
	if discs < 1 || discs > MaxDiscs {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidDiscCount, discs, MaxDiscs)
	}
	if pegs < 3 {
		return nil, fmt.Errorf("%w: %d (want at least 3)", ErrInvalidPegCount, pegs)
	}
	if err := layout.Validate(discs); err != nil {
		return nil, err
	}

	p := &Puzzle{
		layout:  layout,
		winPegs: []int{pegs},
	}
	for _, opt := range opts {
		opt(p)
	}
	if err := p.checkWinPegs(pegs); err != nil {
		return nil, err
	}

	p.pegs = make([]*Peg, pegs)
	for i := range p.pegs {
		p.pegs[i] = &Peg{
			Index:    i + 1,
			Position: layout.PegPosition(i+1, pegs),
		}
	}

	first := p.pegs[0]
	p.discs = make([]*Disc, discs)
	for i := range p.discs {
		d := &Disc{
			ID:    i + 1,
			Size:  layout.DiscDiameter(i+1, discs),
			Color: platformcore.PaletteColor(i),
			Position: platformcore.V3(
				first.Position.X,
				layout.RestHeight(i),
				first.Position.Z,
			),
		}
		p.discs[i] = d
		first.push(d)
	}

	return p, nil
}

func (p *Puzzle) checkWinPegs(pegs int) error {
	if len(p.winPegs) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidWinPegs)
	}
	for _, w := range p.winPegs {
		// Peg 1 holds the starting stack; counting it would win immediately.
		if w < 2 || w > pegs {
			return fmt.Errorf("%w: peg %d (want 2..%d)", ErrInvalidWinPegs, w, pegs)
		}
	}
	return nil
}

// Layout returns the board dimensions.
func (p *Puzzle) Layout() Layout {
	return p.layout
}

// PegCount returns N, the number of pegs.
func (p *Puzzle) PegCount() int {
	return len(p.pegs)
}

// DiscCount returns the fixed number of discs.
func (p *Puzzle) DiscCount() int {
	return len(p.discs)
}

// Peg returns peg i (1-based), or nil when out of range.
func (p *Puzzle) Peg(i int) *Peg {
	if !p.validPeg(i) {
		return nil
	}
	return p.pegs[i-1]
}

// Discs returns every disc, largest first.
func (p *Puzzle) Discs() []*Disc {
	out := make([]*Disc, len(p.discs))
	copy(out, p.discs)
	return out
}

// WinPegs returns the pegs that count as solved.
func (p *Puzzle) WinPegs() []int {
	return append([]int(nil), p.winPegs...)
}

// Moving reports whether a disc is in flight.
func (p *Puzzle) Moving() bool {
	return p.inFlight != nil
}

// InFlight returns the disc currently in flight, or nil.
func (p *Puzzle) InFlight() *Disc {
	return p.inFlight
}

// HasWon reports whether the current solved state has already been celebrated.
func (p *Puzzle) HasWon() bool {
	return p.hasWon
}

// History returns every accepted move in order.
func (p *Puzzle) History() []Move {
	return append([]Move(nil), p.history...)
}

// MoveCount returns the number of accepted moves.
func (p *Puzzle) MoveCount() int {
	return len(p.history)
}

func (p *Puzzle) validPeg(i int) bool {
	return i >= 1 && i <= len(p.pegs)
}

// TryMove validates a move and, if legal, lifts the top disc of from into flight.
// Checks run in order: a disc already in flight, an empty source, then a
// smaller disc on top of the destination. Rejections return a *MoveError and
// leave every field untouched.
func (p *Puzzle) TryMove(from, to int) (MoveAccepted, error) {
	if !p.validPeg(from) || !p.validPeg(to) {
		return MoveAccepted{}, fmt.Errorf("%w: %d→%d with %d pegs", ErrPegOutOfRange, from, to, len(p.pegs))
	}
	if p.inFlight != nil {
		return MoveAccepted{}, &MoveError{Reason: AlreadyMoving, From: from, To: to}
	}

	src := p.pegs[from-1]
	dst := p.pegs[to-1]
	if src.Len() == 0 {
		return MoveAccepted{}, &MoveError{Reason: SourceEmpty, From: from, To: to}
	}
	// An empty destination skips the comparison entirely.
	if top := dst.Top(); top != nil && top.Size < src.Top().Size {
		return MoveAccepted{}, &MoveError{Reason: DestTooSmall, From: from, To: to}
	}

	// Leaving the last peg re-arms the win check.
	if from == len(p.pegs) {
		p.hasWon = false
	}

	disc := src.pop()
	p.inFlight = disc
	p.source = src
	p.dest = dst
	p.history = append(p.history, Move{From: from, To: to})

	return MoveAccepted{
		Disc:   disc,
		From:   from,
		To:     to,
		Source: src,
		Dest:   dst,
	}, nil
}

// CompleteMove lands the in-flight disc on the destination peg.
// Calling it with nothing in flight is a no-op.
func (p *Puzzle) CompleteMove() {
	if p.inFlight == nil {
		return
	}
	p.dest.push(p.inFlight)
	p.inFlight = nil
	p.source = nil
	p.dest = nil
}

// CheckWin reports the transition into a solved state. It returns true once
// per solved state: nothing in flight, every disc on one winning peg, and the
// state not yet celebrated.
func (p *Puzzle) CheckWin() bool {
	if p.hasWon || p.inFlight != nil {
		return false
	}
	for _, w := range p.winPegs {
		if p.pegs[w-1].Len() == len(p.discs) {
			p.hasWon = true
			return true
		}
	}
	return false
}

// Solved reports whether every disc rests on a winning peg, ignoring the
// edge-triggered celebration flag.
func (p *Puzzle) Solved() bool {
	if p.inFlight != nil {
		return false
	}
	for _, w := range p.winPegs {
		if p.pegs[w-1].Len() == len(p.discs) {
			return true
		}
	}
	return false
}

// State returns the disc IDs of every peg, bottom to top. The in-flight disc
// is not part of any stack.
func (p *Puzzle) State() [][]int {
	state := make([][]int, len(p.pegs))
	for i, peg := range p.pegs {
		ids := make([]int, peg.Len())
		for j, d := range peg.discs {
			ids[j] = d.ID
		}
		state[i] = ids
	}
	return state
}

// Solution returns the moves that bring every disc to dest from the current
// stacks. It refuses while a disc is in flight.
func (p *Puzzle) Solution(dest int) ([]Move, error) {
	if p.inFlight != nil {
		return nil, &MoveError{Reason: AlreadyMoving}
	}
	return Solve(p.State(), len(p.discs), dest)
}
