package core_test

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

const tick = 16 * time.Millisecond

// newPuzzle creates a default-layout puzzle or fails the test.
func newPuzzle(t *testing.T, discs, pegs int, opts ...core.Option) (*core.Puzzle, *core.Animator) {
	t.Helper()
	p, err := core.NewPuzzle(discs, pegs, core.DefaultLayout(), opts...)
	if err != nil {
		t.Fatalf("NewPuzzle(%d, %d) failed: %v", discs, pegs, err)
	}
	return p, core.NewAnimator(p.Layout(), p)
}

// fly starts an accepted move and advances the clock until it lands.
// Returns the clock after landing.
func fly(t *testing.T, p *core.Puzzle, a *core.Animator, mv core.MoveAccepted, now time.Duration) time.Duration {
	t.Helper()
	a.Start(mv, now)
	for i := 0; i < 100000; i++ {
		now += tick
		if a.Advance(now) {
			return now
		}
	}
	t.Fatalf("move %d→%d never landed", mv.From, mv.To)
	return now
}

// mustMove performs a full move or fails the test.
func mustMove(t *testing.T, p *core.Puzzle, a *core.Animator, from, to int, now time.Duration) time.Duration {
	t.Helper()
	mv, err := p.TryMove(from, to)
	if err != nil {
		t.Fatalf("TryMove(%d, %d) rejected: %v", from, to, err)
	}
	return fly(t, p, a, mv, now)
}

// checkInvariants verifies conservation and stack ordering.
func checkInvariants(t *testing.T, p *core.Puzzle) {
	t.Helper()
	seen := make(map[int]bool)
	for i := 1; i <= p.PegCount(); i++ {
		discs := p.Peg(i).Discs()
		for j, d := range discs {
			if seen[d.ID] {
				t.Fatalf("disc %d appears twice", d.ID)
			}
			seen[d.ID] = true
			if j > 0 && discs[j-1].Size <= d.Size {
				t.Fatalf("peg %d: disc %d (%.2f) rests on smaller disc %d (%.2f)",
					i, d.ID, d.Size, discs[j-1].ID, discs[j-1].Size)
			}
		}
	}
	if d := p.InFlight(); d != nil {
		if seen[d.ID] {
			t.Fatalf("in-flight disc %d is also stacked", d.ID)
		}
		seen[d.ID] = true
	}
	if len(seen) != p.DiscCount() {
		t.Fatalf("found %d discs, want %d", len(seen), p.DiscCount())
	}
}
