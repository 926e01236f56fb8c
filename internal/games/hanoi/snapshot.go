package hanoi

import hcore "github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolving     GameStateType = "solving"
	StateSolved      GameStateType = "solved"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	ID     string
	Board  hcore.Snapshot
	Cursor int
	Picked int
	Score  int
	Status string
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case g.solved:
		state = StateSolved
	case g.playback != nil:
		state = StateSolving
	}

	s := Snapshot{
		Tick:   g.tick,
		ID:     g.ID(),
		Cursor: g.cursor,
		Picked: g.picked,
		Score:  g.score,
		Status: g.status,
		State:  state,
	}
	if g.puzzle != nil {
		s.Board = hcore.TakeSnapshot(g.puzzle, g.animator)
	}
	return s
}
