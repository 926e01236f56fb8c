package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKeyLetterMoves(t *testing.T) {
	tests := []struct {
		key  string
		want core.Action
	}{
		{"a", core.ActionMove12},
		{"q", core.ActionMove13},
		{"d", core.ActionMove21},
		{"s", core.ActionMove23},
		{"t", core.ActionMove31},
		{"f", core.ActionMove32},
		{"x", core.ActionSolve},
		{"p", core.ActionPause},
		{"r", core.ActionRestart},
		{"h", core.ActionLeft},
		{"l", core.ActionRight},
		{"z", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			km := NewKeyMapper()
			got, quit := km.MapKey(runeKey(tt.key))
			if got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.key, got, tt.want)
			}
			if quit {
				t.Errorf("MapKey(%q) reported quit", tt.key)
			}
		})
	}
}

func TestMapKeySpecialKeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			got, quit := NewKeyMapper().MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%s) = %v, %v; want %v, %v", tt.msg, got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapKeyDigitPairs(t *testing.T) {
	tests := []struct {
		keys []string
		want core.Action
	}{
		{[]string{"1", "2"}, core.ActionMove12},
		{[]string{"1", "3"}, core.ActionMove13},
		{[]string{"2", "1"}, core.ActionMove21},
		{[]string{"2", "3"}, core.ActionMove23},
		{[]string{"3", "1"}, core.ActionMove31},
		{[]string{"3", "2"}, core.ActionMove32},
		// a repeated digit becomes the new first digit
		{[]string{"1", "1", "3"}, core.ActionMove13},
		// any other key drops the pending digit
		{[]string{"1", "z", "2", "3"}, core.ActionMove23},
	}

	for _, tt := range tests {
		km := NewKeyMapper()
		var got core.Action
		for i, k := range tt.keys {
			got, _ = km.MapKey(runeKey(k))
			if i < len(tt.keys)-1 && got != core.ActionNone {
				t.Errorf("%v: key %d gave %v before the pair was complete", tt.keys, i, got)
			}
		}
		if got != tt.want {
			t.Errorf("%v: got %v, want %v", tt.keys, got, tt.want)
		}
		if km.Pending() != 0 {
			t.Errorf("%v: pending digit %q left over", tt.keys, km.Pending())
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("a"), &frame) {
		t.Error("'a' should not quit")
	}
	if !frame.Has(core.ActionMove12) {
		t.Error("frame missing Move12")
	}
	if !km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyCtrlC}, &frame) {
		t.Error("ctrl+c should quit")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, MenuActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, MenuActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%s) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}
