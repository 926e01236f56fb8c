package core_test

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

// Every preset must fly its top disc over the middle rod, not through it.
func TestPresetFlightClearsRods(t *testing.T) {
	for _, preset := range config.Presets {
		t.Run(string(preset), func(t *testing.T) {
			cfg := config.DefaultHanoiConfig()
			config.ApplyHanoiPreset(&cfg, preset)
			if err := cfg.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}

			discs := cfg.Puzzle.Discs
			p, err := core.NewPuzzle(discs, 3, cfg.Layout.Board())
			if err != nil {
				t.Fatalf("NewPuzzle(%d) failed: %v", discs, err)
			}
			a := core.NewAnimator(p.Layout(), p)
			layout := p.Layout()
			rodTop := layout.DrawnRodHeight(discs)
			middle := p.Peg(2).Position.X

			mv, err := p.TryMove(1, 3)
			if err != nil {
				t.Fatal(err)
			}
			reach := (layout.DiscDiameter(mv.Disc.ID, discs) + layout.RodDiameter) / 2

			a.Start(mv, 0)
			now, crossed := time.Duration(0), false
			for i := 0; ; i++ {
				if i > 100000 {
					t.Fatal("flight never landed")
				}
				now += tick
				landed := a.Advance(now)
				pos := mv.Disc.Position
				if a.Phase() == core.PhaseTraversing {
					if pos.Y <= rodTop {
						t.Fatalf("discs=%d: traversing at y=%.2f, rod top %.2f", discs, pos.Y, rodTop)
					}
					if pos.X > middle-reach && pos.X < middle+reach {
						crossed = true
					}
				}
				if landed {
					break
				}
			}
			if !crossed {
				t.Error("disc never passed over the middle rod")
			}
		})
	}
}
