package hanoi

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	hcore "github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

const (
	hudHeight    = 3 // title, counters, blank
	footerHeight = 5 // ground, labels, cursor, status, help
	maxColsUnit  = 12.0
)

const helpText = "a q d s t f: move  ←/→ enter: pick & drop  x: solve  r: restart  p: pause  esc: menu"

// Resize adapts to a new terminal size without restarting the puzzle.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen can hold every disc and peg.
func (g *Game) checkScreenSize() {
	if g.puzzle == nil {
		return
	}
	minW := g.puzzle.PegCount()*7 + 2
	minH := hudHeight + footerHeight + g.puzzle.DiscCount() + 2
	g.tooSmall = g.runtime.ScreenW < minW || g.runtime.ScreenH < minH
}

// view maps world coordinates to screen cells.
type view struct {
	centerCol int
	baseRow   int // row of a disc resting at height 0
	scaleX    float64
	scaleY    float64
}

func (v view) col(x float64) int {
	return v.centerCol + int(math.Round(x*v.scaleX))
}

func (v view) row(y float64) int {
	return v.baseRow - int(math.Round(y*v.scaleY))
}

func (g *Game) view() view {
	layout := g.puzzle.Layout()
	pegs := g.puzzle.PegCount()
	discs := g.puzzle.DiscCount()

	worldW := float64(pegs-1)*layout.PegSpacing + layout.DiscDiameter(1, discs)
	availW := float64(g.runtime.ScreenW - 4)
	scaleX := math.Min(availW/worldW, maxColsUnit)

	// One row per disc thickness when it fits, compressed otherwise.
	worldH := layout.FlightAltitude + layout.DiscThickness
	availH := float64(g.runtime.ScreenH - hudHeight - footerHeight)
	scaleY := math.Min(1/layout.DiscThickness, (availH-1)/worldH)

	return view{
		centerCol: g.runtime.ScreenW / 2,
		baseRow:   g.runtime.ScreenH - footerHeight - 1,
		scaleX:    scaleX,
		scaleY:    scaleY,
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.setupErr != nil {
		g.renderMessage(dst, "Cannot build puzzle", g.setupErr.Error())
		return
	}
	if g.tooSmall {
		g.renderMessage(dst, "Window too small", "Please resize terminal")
		return
	}

	v := g.view()
	g.renderHUD(dst)
	g.renderBoard(dst, v)
	g.renderFooter(dst, v)

	switch {
	case g.paused:
		g.renderOverlay(dst, []string{"PAUSED", "", "P to resume"}, core.ColorBrightWhite)
	case g.solved:
		g.renderWin(dst)
	}
}

func (g *Game) renderMessage(dst *core.Screen, title, hint string) {
	y := g.runtime.ScreenH / 2
	dst.DrawTextCentered(y, title)
	dst.DrawTextCentered(y+1, hint)
}

// renderHUD draws the title and counters.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.Title())

	p := g.puzzle
	left := fmt.Sprintf("Moves: %d  Optimal: %d  Discs: %d",
		p.MoveCount(), hcore.OptimalMoves(p.DiscCount()), p.DiscCount())
	dst.DrawText(2, 1, left)

	var right string
	switch {
	case g.playback != nil:
		right = fmt.Sprintf("Solver: %d left", g.playback.Remaining())
	case !g.animator.Idle():
		right = g.animator.Phase().String()
	}
	if right != "" {
		dst.DrawTextColor(g.runtime.ScreenW-2-len([]rune(right)), 1, right, core.ColorCyan)
	}
}

// renderBoard draws the ground, rods and discs.
func (g *Game) renderBoard(dst *core.Screen, v view) {
	p := g.puzzle
	layout := p.Layout()

	left := v.col(p.Peg(1).Position.X - layout.DiscDiameter(1, p.DiscCount())/2 - layout.PegSpacing/4)
	right := v.col(p.Peg(p.PegCount()).Position.X + layout.DiscDiameter(1, p.DiscCount())/2 + layout.PegSpacing/4)
	dst.DrawHLine(left, v.baseRow+1, right-left+1, '▀', core.ColorGray)

	rodTop := v.row(layout.DrawnRodHeight(p.DiscCount()))
	for i := 1; i <= p.PegCount(); i++ {
		x := v.col(p.Peg(i).Position.X)
		dst.DrawVLine(x, rodTop, v.baseRow-rodTop+1, '│', core.ColorGray)
	}

	// In-flight disc last so it draws over rods.
	for _, d := range p.Discs() {
		if d != p.InFlight() {
			g.renderDisc(dst, v, d)
		}
	}
	if d := p.InFlight(); d != nil {
		g.renderDisc(dst, v, d)
	}
}

func (g *Game) renderDisc(dst *core.Screen, v view, d *hcore.Disc) {
	w := int(math.Round(d.Size * v.scaleX))
	if w < 3 {
		w = 3
	}
	if w%2 == 0 {
		w++
	}
	cx := v.col(d.Position.X)
	y := v.row(d.Position.Y)
	dst.DrawHLine(cx-w/2, y, w, '█', d.Color)
}

// renderFooter draws peg labels, the cursor, the status line and key help.
func (g *Game) renderFooter(dst *core.Screen, v view) {
	labelRow := v.baseRow + 2
	for i := 1; i <= g.puzzle.PegCount(); i++ {
		color := core.ColorWhite
		if i == g.picked {
			color = core.ColorBrightYellow
		}
		dst.SetColor(v.col(g.puzzle.Peg(i).Position.X), labelRow, rune('0'+i%10), color)
	}

	cursorColor := core.ColorBrightWhite
	if g.picked != 0 {
		cursorColor = core.ColorBrightYellow
	}
	dst.SetColor(v.col(g.cursorX), labelRow+1, '▲', cursorColor)

	if g.status != "" {
		color := core.ColorBrightGreen
		if g.statusErr {
			color = core.ColorBrightRed
		}
		x := (g.runtime.ScreenW - len([]rune(g.status))) / 2
		dst.DrawTextColor(max(0, x), labelRow+2, g.status, color)
	}

	help := helpText
	if len([]rune(help)) > g.runtime.ScreenW {
		help = "a q d s t f  ←/→ enter  x  r  p  esc"
	}
	dst.DrawTextCentered(g.runtime.ScreenH-1, help)
}

func (g *Game) renderWin(dst *core.Screen) {
	p := g.puzzle
	lines := []string{
		"Congratulations!",
		"",
		fmt.Sprintf("Solved in %d moves (optimal %d)", p.MoveCount(), hcore.OptimalMoves(p.DiscCount())),
	}
	if g.auto {
		lines = append(lines, "Solved by the computer")
	} else {
		lines = append(lines, fmt.Sprintf("Score: %d", g.score))
	}
	lines = append(lines, "", "R to play again")
	g.renderOverlay(dst, lines, core.ColorBrightGreen)
}

// renderOverlay draws a centered box with the given lines.
func (g *Game) renderOverlay(dst *core.Screen, lines []string, color core.Color) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	x := (g.runtime.ScreenW - w) / 2
	y := (g.runtime.ScreenH - h) / 2

	dst.DrawRect(core.NewRect(x, y, w, h), ' ')
	dst.DrawBox(core.NewRect(x, y, w, h))
	for i, l := range lines {
		lx := x + (w-len([]rune(l)))/2
		dst.DrawTextColor(lx, y+1+i, l, color)
	}
}
