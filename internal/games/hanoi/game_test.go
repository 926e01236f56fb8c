package hanoi

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-hanoi/internal/core"
	hcore "github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
)

var testRuntime = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

// useTestConfig points the loader at a file with the default board so a
// user config in $HOME cannot leak into the tests.
func useTestConfig(t *testing.T, discs int) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	if err := os.WriteFile(path, []byte("puzzle:\n  pegs: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDiscCount(discs)
	t.Cleanup(func() {
		SetConfigPath("")
		SetDiscCount(0)
	})
}

func newTestGame(t *testing.T, discs int) *Game {
	t.Helper()
	useTestConfig(t, discs)
	g := New()
	g.Reset(testRuntime)
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	frame := core.NewInputFrame()
	for _, a := range actions {
		frame.Set(a)
	}
	return g.Step(frame)
}

// settle steps with no input until the board is idle, returning the first
// solve record seen.
func settle(t *testing.T, g *Game) *core.SolveRecord {
	t.Helper()
	var record *core.SolveRecord
	for i := 0; i < 10000; i++ {
		if !g.puzzle.Moving() && g.playback == nil {
			return record
		}
		if res := press(g); res.Solved != nil {
			record = res.Solved
		}
	}
	t.Fatal("board never settled")
	return nil
}

func actionFor(t *testing.T, from, to int) core.Action {
	t.Helper()
	for _, a := range core.MoveActions {
		if f, d, _ := a.PegMove(); f == from && d == to {
			return a
		}
	}
	t.Fatalf("no action for %d→%d", from, to)
	return core.ActionNone
}

func TestRegistryVariants(t *testing.T) {
	for _, id := range []string{"hanoi", "hanoi_relaxed"} {
		if !registry.Exists(id) {
			t.Fatalf("%s not registered", id)
		}
		g, err := registry.Create(id)
		if err != nil {
			t.Fatal(err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
	}
}

func TestDirectMoveAction(t *testing.T) {
	g := newTestGame(t, 3)

	press(g, core.ActionMove13)
	if snap := g.Snapshot(); snap.Board.InFlight != 3 {
		t.Fatalf("in flight = %d, want disc 3", snap.Board.InFlight)
	}
	settle(t, g)

	want := [][]int{{1, 2}, {}, {3}}
	if got := g.Puzzle().State(); !reflect.DeepEqual(got, want) {
		t.Errorf("State() = %v, want %v", got, want)
	}
}

func TestRejectedMoveShowsStatus(t *testing.T) {
	g := newTestGame(t, 3)

	press(g, core.ActionMove21)
	if g.status != "There is no disc on the 2nd rod!" || !g.statusErr {
		t.Fatalf("status = %q (err=%v)", g.status, g.statusErr)
	}

	for i := 0; i < 130; i++ {
		press(g)
	}
	if g.status != "" {
		t.Errorf("status still shown after 2s: %q", g.status)
	}
}

func TestOneDiscAtATime(t *testing.T) {
	g := newTestGame(t, 3)

	press(g, core.ActionMove13)
	press(g, core.ActionMove12)
	if g.status != "You can move only one disc at a time!" {
		t.Errorf("status = %q", g.status)
	}
	if g.Puzzle().MoveCount() != 1 {
		t.Errorf("MoveCount() = %d, want 1", g.Puzzle().MoveCount())
	}
}

func TestSolvePlaybackWins(t *testing.T) {
	g := newTestGame(t, 3)

	press(g, core.ActionSolve)
	if g.Snapshot().State != StateSolving {
		t.Fatalf("state = %s, want solving", g.Snapshot().State)
	}
	record := settle(t, g)

	if record == nil {
		t.Fatal("playback finished without a solve record")
	}
	if !record.Auto || record.Moves != 7 || record.OptimalMoves != 7 || record.Discs != 3 {
		t.Errorf("record = %+v", record)
	}
	if record.Duration <= 0 {
		t.Errorf("duration = %v, want > 0", record.Duration)
	}
	st := g.State()
	if !st.GameOver || st.Score != 0 {
		t.Errorf("State() = %+v, want game over with no score", st)
	}
	if g.Puzzle().Peg(3).Len() != 3 {
		t.Errorf("peg 3 holds %d discs", g.Puzzle().Peg(3).Len())
	}
}

func TestManualOptimalSolveScores(t *testing.T) {
	g := newTestGame(t, 3)
	moves, err := hcore.SolveFresh(3, 3)
	if err != nil {
		t.Fatal(err)
	}

	var record *core.SolveRecord
	for _, mv := range moves {
		if res := press(g, actionFor(t, mv.From, mv.To)); res.Solved != nil {
			record = res.Solved
		}
		if r := settle(t, g); r != nil {
			record = r
		}
	}

	if record == nil || record.Auto {
		t.Fatalf("record = %+v, want a manual solve", record)
	}
	if want := baseScore + optimalBonus; g.State().Score != want {
		t.Errorf("score = %d, want %d", g.State().Score, want)
	}
}

func TestExtraMovesCostPoints(t *testing.T) {
	g := newTestGame(t, 1)

	press(g, core.ActionMove12)
	settle(t, g)
	press(g, core.ActionMove23)
	record := settle(t, g)

	if record == nil || record.Moves != 2 {
		t.Fatalf("record = %+v, want 2 moves", record)
	}
	if want := baseScore - movePenalty; g.State().Score != want {
		t.Errorf("score = %d, want %d", g.State().Score, want)
	}
}

func TestLeavingWinningPegRearms(t *testing.T) {
	g := newTestGame(t, 1)

	press(g, core.ActionMove13)
	if settle(t, g) == nil || !g.State().GameOver {
		t.Fatal("first solve not reported")
	}

	press(g, core.ActionMove31)
	if g.State().GameOver {
		t.Error("game over should clear when the disc leaves the last peg")
	}
	settle(t, g)

	press(g, core.ActionMove13)
	if settle(t, g) == nil {
		t.Error("second solve not reported")
	}
}

func TestRelaxedVariantWinsOnMiddlePeg(t *testing.T) {
	useTestConfig(t, 1)
	g := NewRelaxed()
	g.Reset(testRuntime)

	press(g, core.ActionMove12)
	if settle(t, g) == nil {
		t.Error("relaxed variant should win on peg 2")
	}
}

func TestCursorPickAndDrop(t *testing.T) {
	g := newTestGame(t, 3)

	press(g, core.ActionLeft)
	if g.cursor != 1 {
		t.Fatalf("cursor = %d, want clamp at 1", g.cursor)
	}

	press(g, core.ActionConfirm)
	if g.picked != 1 {
		t.Fatalf("picked = %d, want 1", g.picked)
	}
	press(g, core.ActionRight)
	press(g, core.ActionRight)
	press(g, core.ActionRight)
	if g.cursor != 3 {
		t.Fatalf("cursor = %d, want clamp at 3", g.cursor)
	}
	press(g, core.ActionConfirm)
	if g.picked != 0 || g.Puzzle().InFlight() == nil {
		t.Fatal("drop should start a flight and clear the pick")
	}
	settle(t, g)
	if g.Puzzle().Peg(3).Len() != 1 {
		t.Errorf("peg 3 holds %d discs, want 1", g.Puzzle().Peg(3).Len())
	}

	// Confirm on an empty peg does not pick.
	press(g, core.ActionLeft)
	press(g, core.ActionConfirm)
	if g.picked != 0 || !strings.Contains(g.status, "no disc on the 2nd rod") {
		t.Errorf("picked = %d, status = %q", g.picked, g.status)
	}
}

func TestCursorSpringReachesPeg(t *testing.T) {
	g := newTestGame(t, 3)
	press(g, core.ActionRight)
	for i := 0; i < 180; i++ {
		press(g)
	}
	target := g.Puzzle().Peg(2).Position.X
	if math.Abs(g.cursorX-target) > 0.05 {
		t.Errorf("cursor at %.3f, want near %.3f", g.cursorX, target)
	}
}

func TestPauseFreezesFlight(t *testing.T) {
	g := newTestGame(t, 3)
	press(g, core.ActionMove13)
	for i := 0; i < 10; i++ {
		press(g)
	}

	press(g, core.ActionPause)
	disc := g.Puzzle().InFlight()
	before, pos := g.Snapshot(), disc.Position
	for i := 0; i < 30; i++ {
		press(g, core.ActionMove12)
	}
	if after := g.Snapshot(); !reflect.DeepEqual(after, before) {
		t.Errorf("board changed while paused: %+v -> %+v", before.Board, after.Board)
	}
	if disc.Position != pos {
		t.Errorf("disc moved while paused: %v -> %v", pos, disc.Position)
	}
	if !g.State().Paused {
		t.Error("State().Paused = false")
	}

	press(g, core.ActionPause)
	settle(t, g)
	if g.Puzzle().Peg(3).Len() != 1 {
		t.Error("flight should finish after unpausing")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 3)
	press(g, core.ActionMove13)
	settle(t, g)

	press(g, core.ActionRestart)
	snap := g.Snapshot()
	if snap.Board.Moves != 0 || snap.State != StatePlaying || snap.Tick != 0 {
		t.Errorf("after restart: %+v", snap)
	}
	if g.Puzzle().Peg(1).Len() != 3 {
		t.Error("restart should restack peg 1")
	}
}

func TestManualMoveStopsSolver(t *testing.T) {
	g := newTestGame(t, 3)
	press(g, core.ActionSolve)
	press(g, core.ActionMove12)
	if g.playback != nil {
		t.Error("manual input should stop the solver")
	}
}

func TestSolveWhenSolved(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.ActionMove13)
	settle(t, g)

	press(g, core.ActionSolve)
	if g.playback != nil || g.status != "Already solved!" {
		t.Errorf("playback = %v, status = %q", g.playback, g.status)
	}
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t, 3)
	screen := core.NewScreen(testRuntime.ScreenW, testRuntime.ScreenH)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Towers of Hanoi", "Moves: 0", "Optimal: 7", "█", "▲"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	press(g, core.ActionSolve)
	settle(t, g)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Congratulations!") {
		t.Error("win overlay not rendered")
	}
}

func TestWindowTooSmall(t *testing.T) {
	useTestConfig(t, 3)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60})

	if g.Snapshot().State != StatePausedSmall {
		t.Fatalf("state = %s, want paused_small_window", g.Snapshot().State)
	}
	screen := core.NewScreen(20, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("too-small message not rendered")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("state after resize = %s, want playing", g.Snapshot().State)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := []core.Action{
		core.ActionMove13, core.ActionNone, core.ActionMove12, core.ActionRight,
		core.ActionConfirm, core.ActionSolve, core.ActionNone,
	}

	run := func() []Snapshot {
		g := newTestGame(t, 4)
		var snaps []Snapshot
		for i := 0; i < 2000; i++ {
			press(g, inputs[i%len(inputs)])
			if i%50 == 0 {
				snaps = append(snaps, g.Snapshot())
			}
		}
		return snaps
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("identical input produced different snapshots")
	}
}

func TestSetDiscsOverridesPackageSetting(t *testing.T) {
	useTestConfig(t, 3)
	g := New()
	g.SetDiscs(5)
	g.Reset(testRuntime)
	if got := g.Puzzle().DiscCount(); got != 5 {
		t.Errorf("DiscCount() = %d, want 5", got)
	}

	other := New()
	other.Reset(testRuntime)
	if got := other.Puzzle().DiscCount(); got != 3 {
		t.Errorf("other game DiscCount() = %d, want 3", got)
	}
}
