package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pixelbeasts/petcade/internal/registry"
	"github.com/pixelbeasts/petcade/internal/storage"
)

const maxLedgerRows = 100

// StatsKeyMap defines the key bindings for the play ledger screen.
type StatsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
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
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the play ledger screen: one
// game at a time, its aggregate line plus the recent session history.
type StatsModel struct {
	games      []registry.SessionInfo
	gameCursor int
	ledger     *storage.Ledger
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       StatsKeyMap
	width      int
	height     int
	quitting   bool
}

// NewStatsModel creates a new play ledger model.
func NewStatsModel(ledger *storage.Ledger, width, height int) StatsModel {
	t := table.New(
		table.WithColumns(statsColumns(width)),
		table.WithFocused(true),
		table.WithHeight(height-8),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("13")).Bold(true)
	t.SetStyles(styles)

	m := StatsModel{
		games:  registry.List(),
		ledger: ledger,
		table:  t,
		help:   help.New(),
		keys:   DefaultStatsKeyMap(),
		width:  width,
		height: height,
	}
	m.loadGame()
	return m
}

func statsColumns(width int) []table.Column {
	return []table.Column{
		{Title: "Earned", Width: 8},
		{Title: "XP", Width: 6},
		{Title: "Duration", Width: 10},
		{Title: "Played", Width: max(16, width-36)},
	}
}

// loadGame refreshes the table for the cursor's game.
func (m *StatsModel) loadGame() {
	if len(m.games) == 0 || m.ledger == nil {
		return
	}
	gameID := m.games[m.gameCursor].ID

	m.stats, _ = m.ledger.Stats(gameID)

	sessions, err := m.ledger.RecentSessions(gameID, maxLedgerRows)
	if err != nil {
		sessions = nil
	}

	rows := make([]table.Row, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, table.Row{
			"$" + strconv.Itoa(s.MoneyEarned),
			strconv.Itoa(s.Experience),
			fmt.Sprintf("%ds", s.DurationSecs),
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.loadGame()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + len(m.games) - 1) % len(m.games)
				m.loadGame()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(statsColumns(msg.Width))
		m.table.SetHeight(msg.Height - 8)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the ledger screen.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}
	if len(m.games) == 0 {
		return "\nNo games registered.\n"
	}

	game := m.games[m.gameCursor]

	header := titleStyle.Render(fmt.Sprintf(" Play Ledger - %s ", game.Title))

	summary := dimStyle.Render("no sessions recorded")
	if m.stats != nil && m.stats.SessionCount > 0 {
		summary = fmt.Sprintf("sessions: %d   total earned: $%d   best: $%d",
			m.stats.SessionCount, m.stats.TotalEarned, m.stats.BestEarned)
	}

	return "\n" + header + "\n\n" + summary + "\n\n" + m.table.View() + "\n" + m.help.View(m.keys)
}

// RunStats starts a standalone Bubble Tea program for the ledger screen.
func RunStats(ledger *storage.Ledger, width, height int) error {
	p := tea.NewProgram(
		NewStatsModel(ledger, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
