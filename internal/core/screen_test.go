package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(7, 3)
	if s.Width() != 7 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 7x3", s.Width(), s.Height())
	}
	want := strings.Repeat(" ", 7)
	for y := range 3 {
		if row := s.Row(y); row != want {
			t.Errorf("row %d = %q, want blank", y, row)
		}
	}

	if z := NewScreen(-4, 2); z.Width() != 0 || z.String() != "\n" {
		t.Errorf("negative width screen = %dx%d %q", z.Width(), z.Height(), z.String())
	}
}

func TestScreenBounds(t *testing.T) {
	s := NewScreen(4, 4)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColor(p[0], p[1], 'X', ColorRed) // must not panic
		if c := s.GetCell(p[0], p[1]); c != blankCell {
			t.Errorf("GetCell(%v) = %+v, want blank", p, c)
		}
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds write reached the buffer")
	}
}

func TestScreenDrawing(t *testing.T) {
	tests := []struct {
		name string
		draw func(s *Screen)
		want []string
	}{
		{
			name: "text clipped at the edge",
			draw: func(s *Screen) { s.DrawText(3, 0, "Hanoi") },
			want: []string{"   Han", "      ", "      "},
		},
		{
			name: "centered text",
			draw: func(s *Screen) { s.DrawTextCentered(1, "ab") },
			want: []string{"      ", "  ab  ", "      "},
		},
		{
			name: "box",
			draw: func(s *Screen) { s.DrawBox(Rect{X: 1, Y: 0, W: 4, H: 3}) },
			want: []string{" ┌──┐ ", " │  │ ", " └──┘ "},
		},
		{
			name: "rect",
			draw: func(s *Screen) { s.DrawRect(Rect{X: 0, Y: 1, W: 3, H: 2}, '#') },
			want: []string{"      ", "###   ", "###   "},
		},
		{
			name: "lines",
			draw: func(s *Screen) {
				s.DrawHLine(0, 2, 6, '=', ColorGray)
				s.DrawVLine(5, 0, 2, '|', ColorGray)
				s.DrawHLine(0, 0, -3, '!', ColorGray)
			},
			want: []string{"     |", "     |", "======"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(6, 3)
			tt.draw(s)
			if got := s.String(); got != strings.Join(tt.want, "\n") {
				t.Errorf("screen =\n%s\nwant\n%s", got, strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(8, 2)
	s.DrawTextColor(0, 0, "1→3", ColorGreen)
	s.DrawHLine(2, 1, 3, '█', ColorBrightYellow)

	if s.Row(0)[:len("1→3")] != "1→3" {
		t.Errorf("row 0 = %q, want one cell per rune", s.Row(0))
	}
	if c := s.GetCell(2, 0); c != (Cell{Rune: '3', Color: ColorGreen}) {
		t.Errorf("GetCell(2, 0) = %+v", c)
	}
	if c := s.GetCell(4, 1); c.Color != ColorBrightYellow {
		t.Errorf("disc cell color = %v", c.Color)
	}

	s.Set(4, 1, 'x')
	if c := s.GetCell(4, 1); c.Color != ColorDefault {
		t.Error("Set should write the default color")
	}

	s.Clear()
	if c := s.GetCell(3, 1); c != blankCell {
		t.Errorf("after Clear cell = %+v", c)
	}
}

func TestScreenResizeKeepsTopLeft(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawText(0, 0, "Moves 12")
	s.DrawText(0, 5, "bottom")

	s.Resize(5, 3)
	if got := s.String(); got != "Moves\n     \n     " {
		t.Errorf("after shrink:\n%q", got)
	}

	s.Resize(9, 4)
	if s.Row(0) != "Moves    " || s.Row(3) != strings.Repeat(" ", 9) {
		t.Errorf("after grow: %q / %q", s.Row(0), s.Row(3))
	}
	if s.Row(-1) != strings.Repeat(" ", 9) {
		t.Error("Row outside the screen should be blank")
	}
}
