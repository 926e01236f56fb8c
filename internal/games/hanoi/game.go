// Package hanoi adapts the puzzle core to the platform: it maps actions to
// moves, drives the flight animation and solver playback from the fixed
// tick, and renders a side view of the board.
package hanoi

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	hcore "github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
	"github.com/vovakirdan/tui-hanoi/internal/registry"
)

// Variant selects the winning rule.
type Variant int

const (
	VariantClassic Variant = iota // every disc on the last peg
	VariantRelaxed                // every disc on either of the last two pegs
)

const (
	statusDuration = 2 * time.Second
	optimalBonus   = 500
	baseScore      = 1000
	movePenalty    = 10
)

// Package-level settings applied on the next Reset, set from the CLI and menus.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	discOverride     int
	logger           *log.Logger
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetDiscCount overrides the disc count of the config and preset.
// 0 removes the override.
func SetDiscCount(n int) {
	discOverride = n
}

// DiscCount returns the current disc override, 0 when unset.
func DiscCount() int {
	return discOverride
}

// SetLogger sets the logger that receives rejected moves at debug level.
func SetLogger(l *log.Logger) {
	logger = l
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          "hanoi",
		Title:       "Towers of Hanoi",
		Description: "Move the whole stack to the last rod",
	}, func() registry.Game {
		return New()
	})
	registry.Register(registry.GameInfo{
		ID:          "hanoi_relaxed",
		Title:       "Towers of Hanoi (Relaxed)",
		Description: "Either of the last two rods wins",
	}, func() registry.Game {
		return NewRelaxed()
	})
}

// Game implements the Towers of Hanoi puzzle.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.HanoiConfig
	discs   int // per-game disc count, takes precedence over SetDiscCount

	puzzle   *hcore.Puzzle
	animator *hcore.Animator
	playback *hcore.Playback

	tick      uint64
	elapsed   time.Duration // simulated time, frozen while paused
	startedAt time.Duration // elapsed time of the first accepted move
	started   bool

	cursor    int // 1-based peg under the cursor
	picked    int // source peg chosen with Confirm, 0 when none
	cursorX   float64
	cursorVel float64
	spring    harmonica.Spring

	status      string
	statusErr   bool
	statusUntil time.Duration

	solved   bool // a win fired and the board is still solved
	auto     bool // the solver played at least one move since the last restart
	score    int
	paused   bool
	tooSmall bool
	setupErr error
}

// New creates a classic game that is won on the last peg.
func New() *Game {
	return &Game{variant: VariantClassic}
}

// NewRelaxed creates a game that is won on either of the last two pegs.
func NewRelaxed() *Game {
	return &Game{variant: VariantRelaxed}
}

// SetDiscs sets the disc count of this game only, used from the next Reset.
// Sessions of the SSH server share the package settings, so they use this.
func (g *Game) SetDiscs(n int) {
	g.discs = n
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantRelaxed {
		return "hanoi_relaxed"
	}
	return "hanoi"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantRelaxed {
		return "Towers of Hanoi (Relaxed)"
	}
	return "Towers of Hanoi"
}

// Reset loads the configuration and stacks every disc on the first peg.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	discs := discOverride
	if g.discs > 0 {
		discs = g.discs
	}
	g.cfg = loadConfig(discs)

	rate := runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	g.spring = harmonica.NewSpring(harmonica.FPS(rate), 8.0, 0.8)

	g.newPuzzle()
}

// loadConfig resolves file, preset and override into a valid config.
func loadConfig(discs int) config.HanoiConfig {
	cfg, err := config.LoadHanoi(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultHanoiConfig()
	}
	if difficultyPreset != "" {
		config.ApplyHanoiPreset(&cfg, difficultyPreset)
	}
	if discs > 0 {
		config.ApplyDiscCount(&cfg, discs)
	}
	if err := cfg.Validate(); err != nil {
		if logger != nil {
			logger.Warn("invalid config, using defaults", "err", err)
		}
		n := cfg.Puzzle.Discs
		cfg = config.DefaultHanoiConfig()
		config.ApplyDiscCount(&cfg, n)
	}
	return cfg
}

// newPuzzle restarts the board with the loaded config.
func (g *Game) newPuzzle() {
	g.tick = 0
	g.elapsed = 0
	g.startedAt = 0
	g.started = false
	g.playback = nil
	g.picked = 0
	g.cursor = 1
	g.cursorVel = 0
	g.status = ""
	g.statusErr = false
	g.solved = false
	g.auto = false
	g.score = 0
	g.paused = false
	g.setupErr = nil

	layout := g.cfg.Layout.Board()

	p, err := hcore.NewPuzzle(g.cfg.Puzzle.Discs, g.cfg.Puzzle.Pegs, layout, g.winOption())
	if err != nil {
		g.setupErr = err
		g.puzzle = nil
		g.animator = nil
		return
	}
	g.puzzle = p
	g.animator = hcore.NewAnimator(layout, p)
	g.cursorX = p.Peg(1).Position.X

	g.checkScreenSize()
}

func (g *Game) winOption() hcore.Option {
	pegs := g.cfg.Puzzle.Pegs
	if g.variant == VariantRelaxed {
		return hcore.WithWinPegs(pegs-1, pegs)
	}
	if len(g.cfg.Puzzle.WinPegs) > 0 {
		return hcore.WithWinPegs(g.cfg.Puzzle.WinPegs...)
	}
	return hcore.WithWinPegs(pegs)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.puzzle == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.newPuzzle()
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.elapsed += g.runtime.TickInterval()

	g.handleInput(in)
	g.stepPlayback()
	g.animator.Advance(g.elapsed)

	var record *core.SolveRecord
	if g.puzzle.CheckWin() {
		record = g.finish()
	} else if g.solved && !g.puzzle.Solved() {
		// A disc left the winning peg; the next solve can score again.
		g.solved = false
		g.score = 0
	}

	g.stepCursor()
	if g.status != "" && g.elapsed >= g.statusUntil {
		g.status = ""
	}

	return core.StepResult{State: g.State(), Solved: record}
}

// handleInput maps the frame's actions to moves, cursor motion and solving.
func (g *Game) handleInput(in core.InputFrame) {
	for _, a := range core.MoveActions {
		if !in.Has(a) {
			continue
		}
		from, to, _ := a.PegMove()
		g.stopPlayback()
		g.tryMove(from, to)
		return
	}

	pegs := g.puzzle.PegCount()
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Clamp(g.cursor-1, 1, pegs)
	case in.Has(core.ActionRight):
		g.cursor = core.Clamp(g.cursor+1, 1, pegs)
	case in.Has(core.ActionConfirm):
		g.confirm()
	case in.Has(core.ActionSolve):
		g.startSolve()
	}
}

// confirm picks the peg under the cursor, or drops the picked disc on it.
func (g *Game) confirm() {
	if g.picked == 0 {
		if g.puzzle.Peg(g.cursor).Len() == 0 {
			g.reject(&hcore.MoveError{Reason: hcore.SourceEmpty, From: g.cursor})
			return
		}
		g.picked = g.cursor
		return
	}

	from := g.picked
	g.picked = 0
	if from == g.cursor {
		return
	}
	g.stopPlayback()
	g.tryMove(from, g.cursor)
}

func (g *Game) tryMove(from, to int) {
	mv, err := g.puzzle.TryMove(from, to)
	if err != nil {
		g.reject(err)
		return
	}
	g.accepted(mv)
}

func (g *Game) accepted(mv hcore.MoveAccepted) {
	if !g.started {
		g.started = true
		g.startedAt = g.elapsed
	}
	g.animator.Start(mv, g.elapsed)
}

func (g *Game) reject(err error) {
	g.setStatus(err.Error(), true)

	if logger == nil {
		return
	}
	var me *hcore.MoveError
	if errors.As(err, &me) {
		logger.Debug("move rejected", "game", g.ID(), "from", me.From, "to", me.To, "reason", me.Reason)
		return
	}
	logger.Debug("move rejected", "game", g.ID(), "err", err)
}

// startSolve replays the solver's moves from the current stacks.
func (g *Game) startSolve() {
	if g.playback != nil {
		return
	}
	if g.puzzle.Solved() {
		g.setStatus("Already solved!", false)
		return
	}

	wins := g.puzzle.WinPegs()
	moves, err := g.puzzle.Solution(wins[len(wins)-1])
	if err != nil {
		g.reject(err)
		return
	}
	g.playback = hcore.NewPlayback(moves, time.Duration(g.cfg.Playback.PauseMS)*time.Millisecond)
	g.picked = 0
	g.setStatus(fmt.Sprintf("Solving: %d moves", len(moves)), false)
}

func (g *Game) stopPlayback() {
	if g.playback != nil {
		g.playback = nil
		g.setStatus("Solver stopped", false)
	}
}

func (g *Game) stepPlayback() {
	if g.playback == nil {
		return
	}

	before := g.puzzle.MoveCount()
	step, err := g.playback.Tick(g.elapsed, g.puzzle, g.animator)
	if err != nil {
		g.playback = nil
		g.reject(err)
		return
	}

	switch step {
	case hcore.PlaybackIssued:
		g.auto = true
		if !g.started {
			g.started = true
			g.startedAt = g.elapsed
		}
		if h := g.puzzle.History(); len(h) > before {
			g.cursor = h[len(h)-1].To
		}
	case hcore.PlaybackDone:
		g.playback = nil
	}
}

// finish records the win that just fired.
func (g *Game) finish() *core.SolveRecord {
	g.solved = true
	g.picked = 0

	discs := g.puzzle.DiscCount()
	moves := g.puzzle.MoveCount()
	optimal := hcore.OptimalMoves(discs)

	g.score = 0
	if !g.auto {
		g.score = max(0, baseScore-movePenalty*(moves-optimal))
		if moves == optimal {
			g.score += optimalBonus
		}
	}

	return &core.SolveRecord{
		Discs:        discs,
		Moves:        moves,
		OptimalMoves: optimal,
		Duration:     g.elapsed - g.startedAt,
		Auto:         g.auto,
	}
}

// stepCursor eases the drawn cursor toward the selected peg.
func (g *Game) stepCursor() {
	target := g.puzzle.Peg(g.cursor).Position.X
	g.cursorX, g.cursorVel = g.spring.Update(g.cursorX, g.cursorVel, target)
}

func (g *Game) setStatus(msg string, isErr bool) {
	g.status = msg
	g.statusErr = isErr
	g.statusUntil = g.elapsed + statusDuration
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.solved,
		Paused:   g.paused,
	}
}

// Puzzle exposes the underlying board, nil when the config could not build one.
func (g *Game) Puzzle() *hcore.Puzzle {
	return g.puzzle
}
