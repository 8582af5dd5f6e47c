package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelbeasts/petcade/internal/bus"
	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/pet"
	"github.com/pixelbeasts/petcade/internal/registry"
)

// appView is which child model currently owns the screen.
type appView int

const (
	viewPet appView = iota
	viewMenu
	viewGame
)

// AppModel manages the full window flow: companion pet -> game picker ->
// minigame session -> back. It is the top-level model for both the local
// interactive command and each remote SSH session; all instances share
// the one engine and bus.
type AppModel struct {
	engine *pet.Engine
	bus    *bus.Bus
	config core.SessionConfig

	view     appView
	petView  PetModel
	menu     MenuModel
	game     *SessionModel
	quitting bool
}

// NewAppModel creates the flow model starting at the companion view.
func NewAppModel(engine *pet.Engine, b *bus.Bus, cfg core.SessionConfig) AppModel {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultSessionConfig().TickRate
	}
	return AppModel{
		engine:  engine,
		bus:     b,
		config:  cfg,
		view:    viewPet,
		petView: NewPetModel(b, engine.Snapshot()),
	}
}

// Init initializes the companion view.
func (m AppModel) Init() tea.Cmd {
	return m.petView.Init()
}

// Update routes messages to the active child and handles view switches.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.view {
	case viewMenu:
		return m.updateMenu(msg)
	case viewGame:
		return m.updateGame(msg)
	default:
		return m.updatePet(msg)
	}
}

func (m AppModel) updatePet(msg tea.Msg) (tea.Model, tea.Cmd) {
	child, cmd := m.petView.Update(msg)
	if pv, ok := child.(PetModel); ok {
		m.petView = pv
	}

	if m.petView.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.petView.OpenMenu() {
		m.view = viewMenu
		m.menu = NewMenuModel(m.bus, m.engine.PurchasedGames(), m.engine.Money())
		return m, m.menu.Init()
	}

	return m, cmd
}

func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	child, cmd := m.menu.Update(msg)
	if mm, ok := child.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.Back() {
		return m.toPet()
	}

	if selected := m.menu.Selected(); selected != nil {
		session, err := registry.Create(selected.GameID)
		if err != nil {
			// Menu rows come from the registry, so this cannot happen.
			return m.toPet()
		}

		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		game := NewSessionModel(session, m.bus, cfg)
		m.game = &game
		m.view = viewGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	child, cmd := m.game.Update(msg)
	if gm, ok := child.(SessionModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.view = viewMenu
		m.menu = NewMenuModel(m.bus, m.engine.PurchasedGames(), m.engine.Money())
		return m, m.menu.Init()
	}

	return m, cmd
}

// toPet returns to the companion view with a fresh subscription.
func (m AppModel) toPet() (tea.Model, tea.Cmd) {
	m.game = nil
	m.view = viewPet
	m.petView = NewPetModel(m.bus, m.engine.Snapshot())
	return m, m.petView.Init()
}

// View renders the active child.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case viewMenu:
		return m.menu.View()
	case viewGame:
		return m.game.View()
	default:
		return m.petView.View()
	}
}

// RunApp starts the full window flow as a standalone program.
func RunApp(engine *pet.Engine, b *bus.Bus, cfg core.SessionConfig) error {
	p := tea.NewProgram(
		NewAppModel(engine, b, cfg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
