package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelbeasts/petcade/internal/bus"
	"github.com/pixelbeasts/petcade/internal/registry"
	"github.com/pixelbeasts/petcade/internal/shop"
)

// MenuItem represents one game row in the picker: either playable or
// still locked behind its shop price.
type MenuItem struct {
	GameID   string
	Title    string
	Price    int
	Unlocked bool
}

// MenuModel is the Bubble Tea model for the game picker. Locked games
// are listed with their price; selecting one sends a purchase request
// and the unlock broadcast flips the row when the engine approves.
type MenuModel struct {
	bus      *bus.Bus
	windowID bus.WindowID
	events   <-chan bus.Event

	items    []MenuItem
	cursor   int
	width    int
	height   int
	money    int
	selected *MenuItem
	quitting bool
	back     bool
	keys     *KeyMapper
}

// NewMenuModel builds the picker from the registry and the unlock map.
func NewMenuModel(b *bus.Bus, purchased map[string]bool, money int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		item := MenuItem{GameID: g.ID, Title: g.Title, Unlocked: purchased[g.ID]}
		if s, ok := shop.Find(g.ID); ok {
			item.Price = s.Price
		}
		items = append(items, item)
	}

	id, events := b.Subscribe()

	return MenuModel{
		bus:      b,
		windowID: id,
		events:   events,
		items:    items,
		width:    60,
		height:   24,
		money:    money,
		keys:     NewKeyMapper(),
	}
}

// Init starts the bus event pump.
func (m MenuModel) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case BusEventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

// handleKey processes menu navigation and selection.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		m.bus.Unsubscribe(m.windowID)
		return m, tea.Quit

	case MenuActionBack:
		m.back = true
		m.bus.Unsubscribe(m.windowID)
		return m, nil

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) == 0 {
			break
		}
		item := m.items[m.cursor]
		if !item.Unlocked {
			// Ask the engine to sell it; the unlock event updates the row.
			m.bus.Publish(bus.BuyGameMsg{From: m.windowID, GameID: item.GameID})
			break
		}
		m.selected = &item
		m.bus.Unsubscribe(m.windowID)
		return m, tea.Quit
	}

	return m, nil
}

// handleEvent folds one bus event into the menu.
func (m MenuModel) handleEvent(ev bus.Event) (tea.Model, tea.Cmd) {
	switch e := ev.(type) {
	case bus.GameUnlockedEvent:
		for i := range m.items {
			if m.items[i].GameID == e.GameID {
				m.items[i].Unlocked = true
			}
		}
	case bus.MoneyUpdateEvent:
		m.money = e.Amount
	case bus.MoneyResponseEvent:
		m.money = e.Amount
	case bus.PurchasedEvent:
		for i := range m.items {
			if e.Games[m.items[i].GameID] {
				m.items[i].Unlocked = true
			}
		}
	}
	return m, waitForEvent(m.events)
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(" P E T C A D E "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(statusStyle.Render(fmt.Sprintf("Balance: $%d", m.money)), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := cursor + item.Title
		if !item.Unlocked {
			line = dimStyle.Render(fmt.Sprintf("%s%s  [locked: $%d]", cursor, item.Title, item.Price))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("Up/Down: Navigate | Enter: Play/Buy | Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen game, or nil if none was picked.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting reports whether the user left the menu.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Back reports whether the user stepped back to the companion view.
func (m MenuModel) Back() bool {
	return m.back
}
