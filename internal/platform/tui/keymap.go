package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

// letterMoves are the one-key direct moves.
var letterMoves = map[string]core.Action{
	"a": core.ActionMove12,
	"q": core.ActionMove13,
	"d": core.ActionMove21,
	"s": core.ActionMove23,
	"t": core.ActionMove31,
	"f": core.ActionMove32,
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Digit pairs ("1" then "3") are an alternative to the letter moves, so the
// mapper remembers the first digit until the second one arrives.
type KeyMapper struct {
	pending rune
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// "q" is a move in game, so only ctrl+c quits here.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	if key == "ctrl+c" {
		km.pending = 0
		return core.ActionQuit, true
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '3' {
		return km.mapDigit(rune(key[0])), false
	}
	km.pending = 0

	if a, ok := letterMoves[key]; ok {
		return a, false
	}

	switch key {
	case "left", "h":
		return core.ActionLeft, false
	case "right", "l":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "x":
		return core.ActionSolve, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// mapDigit completes a digit pair or remembers the first digit.
func (km *KeyMapper) mapDigit(d rune) core.Action {
	if km.pending == 0 {
		km.pending = d
		return core.ActionNone
	}
	from, to := int(km.pending-'0'), int(d-'0')
	km.pending = 0
	for _, a := range core.MoveActions {
		if f, t, _ := a.PegMove(); f == from && t == to {
			return a
		}
	}
	// Same digit twice starts over from that digit.
	km.pending = d
	return core.ActionNone
}

// Pending returns the first digit of an unfinished pair, or 0.
func (km *KeyMapper) Pending() rune {
	return km.pending
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
