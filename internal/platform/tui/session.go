package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelbeasts/petcade/internal/bus"
	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

// SessionModel is the Bubble Tea model for one minigame window. It runs
// the session's fixed-tick loop, forwards input, shows the live balance
// and reports the session's final reward to the engine exactly once per
// resolved run. Closing the window mid-run aborts the session and the
// accrued reward is forfeited.
type SessionModel struct {
	session  registry.Session
	screen   *core.Screen
	bus      *bus.Bus
	windowID bus.WindowID
	events   <-chan bus.Event
	config   core.SessionConfig
	frame    core.InputFrame
	keys     *KeyMapper

	money       int
	activeTicks int
	quitting    bool
	backToMenu  bool
}

// NewSessionModel creates a model for the given session and subscribes
// its window to the bus.
func NewSessionModel(s registry.Session, b *bus.Bus, cfg core.SessionConfig) SessionModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultSessionConfig().TickRate
	}

	id, events := b.Subscribe()

	return SessionModel{
		session:  s,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH-1), // top row is the balance bar
		bus:      b,
		windowID: id,
		events:   events,
		config:   cfg,
		frame:    core.NewInputFrame(),
		keys:     NewKeyMapper(),
	}
}

// Init starts the tick loop, the bus event pump and asks for the balance.
func (m SessionModel) Init() tea.Cmd {
	m.session.Reset(m.config)
	m.bus.Publish(bus.MoneyRequestMsg{From: m.windowID})
	return tea.Batch(
		tickCmd(m.config.TickRate),
		waitForEvent(m.events),
	)
}

// Update handles messages and updates the model state.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		if m.session.Phase() != core.PhaseActive {
			m.session.Reset(m.config)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()

	case BusEventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m SessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keys.MapKeyToFrame(msg, &m.frame) {
		return m.close()
	}

	// B returns to the menu outside an active run.
	if msg.String() == "b" && m.session.Phase() != core.PhaseActive {
		m.backToMenu = true
		m.bus.Unsubscribe(m.windowID)
		return m, nil
	}

	return m, nil
}

// close aborts an in-flight run and detaches from the bus. An aborted
// session never reports a reward.
func (m SessionModel) close() (tea.Model, tea.Cmd) {
	if m.session.Phase() == core.PhaseActive {
		m.session.Abort()
	}
	m.bus.Unsubscribe(m.windowID)
	m.quitting = true
	return m, tea.Quit
}

// handleTick advances the session by one fixed tick and reports the
// reward payload when a run resolves.
func (m SessionModel) handleTick() (tea.Model, tea.Cmd) {
	result := m.session.Step(m.frame)
	m.frame.Clear()

	switch result.Phase {
	case core.PhaseActive:
		m.activeTicks++
	case core.PhaseIdle:
		m.activeTicks = 0
	}

	if result.Reward != nil {
		m.bus.Publish(bus.RewardMsg{
			From:         m.windowID,
			GameID:       m.session.ID(),
			Payload:      *result.Reward,
			DurationSecs: m.activeTicks / m.config.TickRate,
		})
		m.activeTicks = 0
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent folds one bus event into the window state. Both the
// solicited balance response and unsolicited balance broadcasts carry
// absolute amounts, so last-write-wins converges.
func (m SessionModel) handleEvent(ev bus.Event) (tea.Model, tea.Cmd) {
	switch e := ev.(type) {
	case bus.MoneyResponseEvent:
		m.money = e.Amount
	case bus.MoneyUpdateEvent:
		m.money = e.Amount
	}
	return m, waitForEvent(m.events)
}

// BackToMenu reports whether the user left the session for the menu.
func (m SessionModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the user closed the window entirely.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// View renders the balance bar and the session screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.session.Render(m.screen)
	return statusLine(m.money, m.screen.Width()) + "\n" + RenderScreen(m.screen)
}

// RunSession starts a standalone Bubble Tea program for one session
// window and blocks until it exits.
func RunSession(s registry.Session, b *bus.Bus, cfg core.SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(s, b, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
