package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*core.Layout)
		discs  int
		ok     bool
	}{
		{"default four discs", func(*core.Layout) {}, 4, true},
		{"default six discs", func(*core.Layout) {}, 6, true},
		{"default seven discs reach the altitude", func(*core.Layout) {}, 7, false},
		{"default eight discs", func(*core.Layout) {}, 8, false},
		{"default nine discs", func(*core.Layout) {}, 9, false},
		{"zero spacing", func(l *core.Layout) { l.PegSpacing = 0 }, 3, false},
		{"zero thickness", func(l *core.Layout) { l.DiscThickness = 0 }, 3, false},
		{"zero speed", func(l *core.Layout) { l.Speed = 0 }, 3, false},
		{"disc narrower than rod", func(l *core.Layout) { l.MinDiscDiameter = 0.1 }, 3, false},
		{"negative step", func(l *core.Layout) { l.DiameterStep = -0.1 }, 3, false},
		{"high altitude", func(l *core.Layout) { l.FlightAltitude = 5 }, 16, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := core.DefaultLayout()
			tc.modify(&l)
			err := l.Validate(tc.discs)
			if tc.ok && err != nil {
				t.Errorf("Validate(%d) = %v, want nil", tc.discs, err)
			}
			if !tc.ok && !errors.Is(err, core.ErrInvalidLayout) {
				t.Errorf("Validate(%d) = %v, want ErrInvalidLayout", tc.discs, err)
			}
		})
	}
}

func TestLayoutPegPositions(t *testing.T) {
	l := core.DefaultLayout()

	tests := []struct {
		index, pegs int
		want        float64
	}{
		{1, 3, -1.6},
		{2, 3, 0},
		{3, 3, 1.6},
		{1, 4, -2.4},
		{4, 4, 2.4},
	}
	for _, tc := range tests {
		got := l.PegPosition(tc.index, tc.pegs)
		if diff := got.X - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("PegPosition(%d, %d).X = %.3f, want %.3f", tc.index, tc.pegs, got.X, tc.want)
		}
		if got.Y != 0 || got.Z != 0 {
			t.Errorf("PegPosition(%d, %d) = %v, want Y = Z = 0", tc.index, tc.pegs, got)
		}
	}
}

func TestLayoutDiscSizesStrictlyDecrease(t *testing.T) {
	l := core.DefaultLayout()
	const n = 8
	prev := l.DiscDiameter(1, n) + 1
	for id := 1; id <= n; id++ {
		d := l.DiscDiameter(id, n)
		if d >= prev {
			t.Errorf("disc %d diameter %.2f not smaller than %.2f", id, d, prev)
		}
		if d <= l.RodDiameter {
			t.Errorf("disc %d diameter %.2f does not clear the rod", id, d)
		}
		prev = d
	}
}

func TestLayoutDrawnRodHeight(t *testing.T) {
	l := core.DefaultLayout()
	if got := l.DrawnRodHeight(2); got != l.RodHeight {
		t.Errorf("DrawnRodHeight(2) = %.2f, want the minimum %.2f", got, l.RodHeight)
	}
	if got := l.DrawnRodHeight(8); got <= l.RestHeight(8) {
		t.Errorf("DrawnRodHeight(8) = %.2f, should exceed the stack %.2f", got, l.RestHeight(8))
	}
}
