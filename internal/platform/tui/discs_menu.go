package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/core"
	hcore "github.com/vovakirdan/tui-hanoi/internal/games/hanoi/core"
)

// DiscSelection holds the user's choice from the disc count menu.
type DiscSelection struct {
	Preset config.DifficultyPreset // empty for a custom count
	Discs  int
}

// DiscMenuModel lets users choose a difficulty preset or a custom disc count.
type DiscMenuModel struct {
	title     string
	cursor    int
	custom    int
	inCustom  bool
	width     int
	height    int
	keyMapper *KeyMapper
	selection DiscSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewDiscMenuModel creates a disc count menu for the given variant title.
func NewDiscMenuModel(title string, width, height int) DiscMenuModel {
	return DiscMenuModel{
		title:     title,
		custom:    config.DiscsForPreset(config.DifficultyNormal),
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m DiscMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DiscMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inCustom {
			return m.handleCustomKey(action)
		}
		return m.handlePresetKey(action)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m DiscMenuModel) handlePresetKey(action MenuAction) (tea.Model, tea.Cmd) {
	// Presets followed by "Custom..."
	last := len(config.Presets)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < last {
			m.cursor++
		}
	case MenuActionSelect:
		if m.cursor == last {
			m.inCustom = true
			return m, nil
		}
		preset := config.Presets[m.cursor]
		m.choosing = false
		m.selection = DiscSelection{Preset: preset, Discs: config.DiscsForPreset(preset)}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m DiscMenuModel) handleCustomKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp, MenuActionRight:
		m.custom = core.Clamp(m.custom+1, 1, config.MaxDiscs)
	case MenuActionDown, MenuActionLeft:
		m.custom = core.Clamp(m.custom-1, 1, config.MaxDiscs)
	case MenuActionSelect:
		m.choosing = false
		m.selection = DiscSelection{Discs: m.custom}
		return m, tea.Quit
	case MenuActionBack:
		m.inCustom = false
	}

	return m, nil
}

// View renders the preset list or the custom count picker.
func (m DiscMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle, m.title, m.width))
	b.WriteString("\n\n")

	if m.inCustom {
		b.WriteString(centerText("How many discs?", m.width))
		b.WriteString("\n\n")
		b.WriteString(centerStyled(menuPickStyle, fmt.Sprintf("<  %2d  >", m.custom), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("%d moves at best", hcore.OptimalMoves(m.custom)), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerStyled(menuHintStyle, "Left/Right: Change  |  Enter: Play  |  Esc: Back", m.width))
		return b.String()
	}

	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		n := config.DiscsForPreset(p)
		line := fmt.Sprintf("%-8s %d discs", strings.ToUpper(string(p[:1]))+string(p[1:]), n)
		b.WriteString(pickLine(i == m.cursor, line, m.width))
	}
	b.WriteString(pickLine(m.cursor == len(config.Presets), "Custom...", m.width))

	b.WriteString("\n")
	b.WriteString(centerStyled(menuHintStyle, "Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m DiscMenuModel) Selected() *DiscSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m DiscMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DiscMenuModel) WantsBack() bool {
	return m.back
}

// RunDiscSelector runs the disc count menu and returns the selection, or nil
// when the user went back or quit.
func RunDiscSelector(title string, cfg core.RuntimeConfig) (*DiscSelection, core.RuntimeConfig, error) {
	model := NewDiscMenuModel(title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(DiscMenuModel)
	if !ok {
		return nil, cfg, nil
	}
	cfg.ScreenW, cfg.ScreenH = m.width, m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
