package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, H - move peg cursor left
	ActionRight          // Right arrow, L - move peg cursor right
	ActionConfirm        // Enter, Space - pick up / drop at cursor
	ActionMove12         // A, "12" - move top disc from rod 1 to rod 2
	ActionMove13         // Q, "13"
	ActionMove21         // D, "21"
	ActionMove23         // S, "23"
	ActionMove31         // T, "31"
	ActionMove32         // F, "32"
	ActionSolve          // X - replay the optimal solution
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart the puzzle
	ActionQuit           // Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionMove12:
		return "Move 1→2"
	case ActionMove13:
		return "Move 1→3"
	case ActionMove21:
		return "Move 2→1"
	case ActionMove23:
		return "Move 2→3"
	case ActionMove31:
		return "Move 3→1"
	case ActionMove32:
		return "Move 3→2"
	case ActionSolve:
		return "Solve"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PegMove returns the 1-based rod pair of a direct move action.
// ok is false for every other action.
func (a Action) PegMove() (from, to int, ok bool) {
	switch a {
	case ActionMove12:
		return 1, 2, true
	case ActionMove13:
		return 1, 3, true
	case ActionMove21:
		return 2, 1, true
	case ActionMove23:
		return 2, 3, true
	case ActionMove31:
		return 3, 1, true
	case ActionMove32:
		return 3, 2, true
	}
	return 0, 0, false
}

// MoveActions lists the direct move actions in key-binding order.
var MoveActions = []Action{
	ActionMove12, ActionMove13, ActionMove21,
	ActionMove23, ActionMove31, ActionMove32,
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
