package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-hanoi/internal/registry"
	"github.com/vovakirdan/tui-hanoi/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show variant list sidebar
	sidebarWidth       = 20  // Width of variant list sidebar
	maxScores          = 100 // Max rows to load
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1)
	boardBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(2, 4)
)

// ScoreboardView selects what the table lists.
type ScoreboardView int

const (
	ViewScores ScoreboardView = iota // points per win
	ViewSolves                       // fewest moves, then fastest
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Back     key.Binding
	Quit     key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	View     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextVariant, k.View, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextVariant, k.PrevVariant},
		{k.View, k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev variant"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next variant"),
		),
		NextVariant: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next variant"),
		),
		PrevVariant: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev variant"),
		),
		View: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "scores/solves"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the scoreboard screen.
type ScoreboardModel struct {
	games       []registry.GameInfo // List of available variants
	gameCursor  int                 // Currently selected variant index
	store       *storage.Store      // Score storage
	view        ScoreboardView
	scores      []storage.ScoreEntry
	solves      []storage.SolveEntry
	stats       *storage.GameStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool // True if user pressed back (not quit)
	showSidebar bool // Whether to show variant list sidebar
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	keys := DefaultScoreboardKeyMap()
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		games:       registry.List(),
		gameCursor:  0,
		store:       store,
		keys:        keys,
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	// Initialize table
	m.table = m.createTable()

	m.reload()

	return m
}

// createTable creates a new table with columns for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	var columns []table.Column
	switch m.view {
	case ViewSolves:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Discs", Width: 6},
			{Title: "Moves", Width: 10},
			{Title: "Time", Width: 9},
			{Title: "Date", Width: 12},
		}
		if tableWidth > 50 {
			columns[4].Width = min(tableWidth-37, 20)
		}
	default:
		columns = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 18},
		}
		// Adjust column widths if we have more space
		if tableWidth > 40 {
			columns[1].Width = 12
			columns[2].Width = min(tableWidth-22, 20)
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload loads rows and stats for the selected variant.
func (m *ScoreboardModel) reload() {
	m.scores, m.solves, m.stats = nil, nil, nil
	if m.store != nil && len(m.games) > 0 {
		gameID := m.games[m.gameCursor].ID
		// Errors leave the table empty
		if m.view == ViewSolves {
			m.solves, _ = m.store.BestSolves(gameID, 0, maxScores)
		} else {
			m.scores, _ = m.store.TopScores(gameID, maxScores)
		}
		m.stats, _ = m.store.GetGameStats(gameID)
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded rows.
func (m *ScoreboardModel) updateTableRows() {
	var rows []table.Row
	if m.view == ViewSolves {
		rows = make([]table.Row, len(m.solves))
		for i, s := range m.solves {
			moves := fmt.Sprintf("%d", s.Moves)
			if s.Moves == s.OptimalMoves {
				moves += " *"
			}
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Discs),
				moves,
				formatDuration(s.Duration),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	} else {
		rows = make([]table.Row, len(m.scores))
		for i, s := range m.scores {
			rows[i] = table.Row{
				fmt.Sprintf("#%d", i+1),
				fmt.Sprintf("%d", s.Score),
				s.CreatedAt.Format("Jan 02 15:04"),
			}
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// formatDuration renders a solve time as m:ss.t.
func formatDuration(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	mins := int(d / time.Minute)
	secs := d % time.Minute
	return fmt.Sprintf("%d:%04.1f", mins, secs.Seconds())
}

// cycle moves the variant cursor by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.games); n > 0 {
		m.gameCursor = ((m.gameCursor+delta)%n + n) % n
		m.reload()
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextVariant), key.Matches(msg, m.keys.Right):
			m.cycle(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevVariant), key.Matches(msg, m.keys.Left):
			m.cycle(-1)
			return m, nil

		case key.Matches(msg, m.keys.View):
			m.view = 1 - m.view
			m.table = m.createTable()
			m.reload()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if m.view == ViewSolves {
		title = "BEST SOLVES"
	}
	if len(m.games) > 0 {
		title = fmt.Sprintf("%s - %s", title, m.games[m.gameCursor].Title)
	}

	b.WriteString(boardTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(centerText(m.statsLine(), m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(menuHintStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderWideLayout puts the variant list in a sidebar left of the table.
func (m ScoreboardModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Variants\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, g := range m.games {
		name := g.Title
		if len(name) > sidebarWidth-6 {
			name = shortTitle(g)
		}
		if i == m.gameCursor {
			sidebar.WriteString(menuPickStyle.Render("> " + name))
		} else {
			sidebar.WriteString("  " + name)
		}
		sidebar.WriteString("\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		boardBoxStyle.Width(sidebarWidth).Render(sidebar.String()),
		"  ",
		boardBoxStyle.Render(m.renderTableContent()),
	)
}

// renderNarrowLayout shows variant tabs above the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = boardActiveTab.Render(shortTitle(g))
		} else {
			tabs[i] = boardTabStyle.Render(" " + shortTitle(g) + " ")
		}
	}

	tabLine := strings.Join(tabs, " ")
	if lipgloss.Width(tabLine) > m.width-4 && len(m.games) > 0 {
		tabLine = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(boardBoxStyle.Render(m.renderTableContent()), m.width))

	return b.String()
}

// shortTitle drops the shared "Towers of Hanoi" prefix for tabs.
func shortTitle(g registry.GameInfo) string {
	name := strings.TrimPrefix(g.Title, "Towers of Hanoi")
	name = strings.Trim(name, " ()")
	if name == "" {
		name = "Classic"
	}
	return name
}

// statsLine summarizes the selected variant.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil {
		return ""
	}
	line := fmt.Sprintf("Solved %d  |  Solver %d  |  Best %d  |  Avg %.0f",
		m.stats.Solves, m.stats.AutoSolves, m.stats.HighScore, m.stats.AvgScore)
	if !m.stats.LastPlayed.IsZero() {
		line += "  |  Last " + m.stats.LastPlayed.Format("Jan 02")
	}
	return line
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 && len(m.solves) == 0 {
		if m.view == ViewSolves {
			return boardEmptyStyle.Render("No solves recorded yet.\nFinish a puzzle by hand to get listed!")
		}
		return boardEmptyStyle.Render("No scores recorded yet.\nSolve a puzzle to set a high score!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
