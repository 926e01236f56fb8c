package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/config"
)

func sendKeys(m DiscMenuModel, keys ...tea.KeyMsg) DiscMenuModel {
	for _, k := range keys {
		next, _ := m.Update(k)
		m = next.(DiscMenuModel)
	}
	return m
}

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
)

func TestDiscMenuPreset(t *testing.T) {
	m := NewDiscMenuModel("Towers of Hanoi", 80, 24)
	if m.Selected() != nil {
		t.Fatal("selection before choosing")
	}

	m = sendKeys(m, keyDown, keyDown, keyEnter)
	sel := m.Selected()
	if sel == nil {
		t.Fatal("no selection")
	}
	if sel.Preset != config.DifficultyHard || sel.Discs != 6 {
		t.Errorf("selection = %+v, want hard with 6 discs", sel)
	}
}

func TestDiscMenuCustomCount(t *testing.T) {
	m := NewDiscMenuModel("Towers of Hanoi", 80, 24)
	for range config.Presets {
		m = sendKeys(m, keyDown)
	}
	m = sendKeys(m, keyEnter)
	if !m.inCustom {
		t.Fatal("Custom... did not open the count picker")
	}

	// Past the top end
	for range config.MaxDiscs + 5 {
		m = sendKeys(m, keyUp)
	}
	if m.custom != config.MaxDiscs {
		t.Errorf("custom = %d, want clamp at %d", m.custom, config.MaxDiscs)
	}
	for range config.MaxDiscs + 5 {
		m = sendKeys(m, keyLeft)
	}
	if m.custom != 1 {
		t.Errorf("custom = %d, want clamp at 1", m.custom)
	}

	m = sendKeys(m, keyEnter)
	sel := m.Selected()
	if sel == nil || sel.Discs != 1 || sel.Preset != "" {
		t.Errorf("selection = %+v, want custom 1 disc", sel)
	}
}

func TestDiscMenuBack(t *testing.T) {
	m := NewDiscMenuModel("Towers of Hanoi", 80, 24)
	for range config.Presets {
		m = sendKeys(m, keyDown)
	}

	// Esc in the count picker returns to the presets
	m = sendKeys(m, keyEnter, keyEsc)
	if m.inCustom || m.WantsBack() {
		t.Fatal("esc should leave the count picker only")
	}

	m = sendKeys(m, keyEsc)
	if !m.WantsBack() || m.Selected() != nil {
		t.Error("esc on the presets should go back without a selection")
	}
}
