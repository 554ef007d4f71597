package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/leap-arcade/internal/registry"
	"github.com/vovakirdan/leap-arcade/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the game list sidebar
	sidebarWidth       = 20  // Width of game list sidebar
	courseMinWidth     = 66  // Minimum table width that fits the course column
	maxRuns            = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up            key.Binding
	Down          key.Binding
	NextGame      key.Binding
	PrevGame      key.Binding
	CompletedOnly key.Binding
	Back          key.Binding
	Quit          key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.CompletedOnly, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.CompletedOnly, k.Back, k.Quit},
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
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		CompletedOnly: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "completed only"),
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

// ScoreboardModel shows the best runs of each game with a short summary.
type ScoreboardModel struct {
	games         []registry.GameInfo
	gameCursor    int
	store         *storage.Store
	runs          []storage.RunRecord // runs shown, after filtering
	stats         *storage.GameStats
	completedOnly bool
	table         table.Model
	help          help.Model
	keys          ScoreboardKeyMap
	width         int
	height        int
	quitting      bool
	goingBack     bool // True if user pressed back (not quit)
}

// NewScoreboardModel creates a new scoreboard model. store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.reload()
	return m
}

func (m ScoreboardModel) showSidebar() bool {
	return m.width >= minWidthForSidebar
}

// createTable builds the runs table for the current width. The course
// column is dropped when it does not fit.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 4 // Margins
	if m.showSidebar() {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Steps", Width: 6},
		{Title: "Done", Width: 5},
		{Title: "Time", Width: 7},
	}
	if tableWidth >= courseMinWidth {
		columns = append(columns, table.Column{Title: "Course", Width: 17})
	}
	columns = append(columns, table.Column{Title: "Date", Width: 13})

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Title, summary, borders, help
	)

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

// reload fetches runs and totals for the selected game.
func (m *ScoreboardModel) reload() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		gameID := m.games[m.gameCursor].ID
		if runs, err := m.store.TopRuns(gameID, maxRuns); err == nil {
			m.runs = filterRuns(runs, m.completedOnly)
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// filterRuns keeps completed runs when completedOnly is set, in order.
func filterRuns(runs []storage.RunRecord, completedOnly bool) []storage.RunRecord {
	if !completedOnly {
		return runs
	}
	var kept []storage.RunRecord
	for _, r := range runs {
		if r.Completed {
			kept = append(kept, r)
		}
	}
	return kept
}

// runRow formats one run for the table.
func runRow(rank int, r storage.RunRecord, withCourse bool) table.Row {
	done := ""
	if r.Completed {
		done = "yes"
	}
	row := table.Row{
		fmt.Sprintf("#%d", rank),
		fmt.Sprintf("%d", r.Score),
		done,
		fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
	}
	if withCourse {
		row = append(row, r.Course)
	}
	return append(row, r.CreatedAt.Format("Jan 02 15:04"))
}

func (m *ScoreboardModel) updateTableRows() {
	withCourse := len(m.table.Columns()) == 6

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = runRow(i+1, r, withCourse)
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// summary is the one-line totals for the selected game.
func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	s := m.stats
	line := fmt.Sprintf("%d runs  |  %d completed  |  best %d  |  avg %.1f  |  %d jumps",
		s.RunsCount, s.Completed, s.HighScore, s.AvgScore, s.TotalJumps)
	if !s.LastPlayed.IsZero() {
		line += "  |  last " + s.LastPlayed.Format("Jan 02")
	}
	return line
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

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.CompletedOnly):
			m.completedOnly = !m.completedOnly
			m.reload()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table = m.createTable()
		m.updateTableRows()
		return m, nil
	}

	// Scrolling and everything else goes to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	sbTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	sbActiveStyle = sbTitleStyle
	sbDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	sbBoxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BEST RUNS"
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}
	if m.completedOnly {
		title += " (completed)"
	}
	b.WriteString(sbTitleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(centerText(m.summary(), m.width)))
	b.WriteString("\n\n")

	if m.showSidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", m.renderTable()))
	} else {
		if len(m.games) > 1 {
			b.WriteString(centerText(fmt.Sprintf("< %s >", m.games[m.gameCursor].Title), m.width))
			b.WriteString("\n\n")
		}
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n")
	b.WriteString(sbDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderSidebar lists the games, marking the selected one.
func (m ScoreboardModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Games\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))

	for i, g := range m.games {
		name := []rune(g.Title)
		if maxLen := sidebarWidth - 6; len(name) > maxLen {
			name = append(name[:maxLen-1], '.')
		}
		sidebar.WriteString("\n")
		if i == m.gameCursor {
			sidebar.WriteString(sbActiveStyle.Render("> " + string(name)))
		} else {
			sidebar.WriteString("  " + string(name))
		}
	}

	return sbBoxStyle.Width(sidebarWidth).Render(sidebar.String())
}

// renderTable renders the runs table, or a hint when there are none.
func (m ScoreboardModel) renderTable() string {
	if len(m.runs) == 0 {
		msg := "No runs recorded yet.\nPlay a course to set a record!"
		if m.completedOnly {
			msg = "No completed runs yet.\nReach the end of a road to list one."
		}
		return sbBoxStyle.Render(sbDimStyle.Italic(true).Padding(2, 4).Render(msg))
	}
	return sbBoxStyle.Render(m.table.View())
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
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height),
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
