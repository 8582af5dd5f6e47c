package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelbeasts/petcade/internal/bus"
	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/pet"
	"github.com/pixelbeasts/petcade/internal/save"
)

// companion window tick rate; only drives the cheer animation.
const petTickRate = 4

const feedCost = 5

// petFaces maps resolved pet types to their idle art.
var petFaces = map[string]string{
	"chick":  "('>",
	"duck":   "(o)>",
	"swan":   "(o)>~",
	"kitten": "=^.^=",
	"cat":    "=^o^=",
	"lion":   "=*o*=",
	"pup":    "U^w^U",
	"dog":    "U^o^U",
	"wolf":   "U*o*U",
}

const eggFace = "( O )"

// statOrder fixes the display order of the stat bars.
var statOrder = []string{
	save.StatHunger,
	save.StatHappiness,
	save.StatHealth,
	save.StatRest,
	save.StatExperience,
}

// PetModel is the Bubble Tea model for the companion pet window. It is a
// pure bus consumer: every state change arrives as a snapshot broadcast
// and every interaction leaves as a message. While the pet is still an
// egg the window shows the naming dialog.
type PetModel struct {
	bus      *bus.Bus
	windowID bus.WindowID
	events   <-chan bus.Event

	snap       bus.SnapshotEvent
	bars       progress.Model
	nameInput  textinput.Model
	width      int
	cheerTicks int
	quitting   bool
	openMenu   bool
}

// NewPetModel creates the companion model seeded with the current
// engine snapshot.
func NewPetModel(b *bus.Bus, snap bus.SnapshotEvent) PetModel {
	id, events := b.Subscribe()

	ti := textinput.New()
	ti.Placeholder = save.DefaultPetName
	ti.CharLimit = 20
	ti.Width = 24
	ti.Focus()

	return PetModel{
		bus:       b,
		windowID:  id,
		events:    events,
		snap:      snap,
		bars:      progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		nameInput: ti,
		width:     60,
	}
}

// Init starts the animation tick and the bus event pump.
func (m PetModel) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(petTickRate),
		waitForEvent(m.events),
		textinput.Blink,
	)
}

// Update handles messages and updates the model state.
func (m PetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bars.Width = min(40, msg.Width-20)
		return m, nil

	case TickMsg:
		if m.cheerTicks > 0 {
			m.cheerTicks--
		}
		return m, tickCmd(petTickRate)

	case BusEventMsg:
		return m.handleEvent(msg.Event)
	}

	return m, nil
}

// handleKey processes keyboard input. In egg mode every key belongs to
// the naming dialog except quit.
func (m PetModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.close()
	}

	if m.snap.HasEgg {
		if msg.String() == "enter" {
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" {
				name = save.DefaultPetName
			}
			m.bus.Publish(bus.NameSubmittedMsg{From: m.windowID, Name: name})
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m.close()
	case "g", "tab":
		m.openMenu = true
		m.bus.Unsubscribe(m.windowID)
		return m, nil
	case "f":
		// Feeding rides the same payload path as session rewards.
		if m.snap.Money >= feedCost && !m.snap.Dead {
			m.bus.Publish(bus.RewardMsg{
				From:    m.windowID,
				Payload: rewardDelta(-feedCost, 0, 20, 0),
			})
		}
	case "y":
		if !m.snap.Dead && !m.snap.Sleeping {
			m.bus.Publish(bus.RewardMsg{
				From:    m.windowID,
				Payload: rewardDelta(0, 10, 0, -5),
			})
		}
	case "c":
		m.bus.Publish(bus.PetHappyMsg{From: m.windowID})
	}

	return m, nil
}

func (m PetModel) close() (tea.Model, tea.Cmd) {
	m.bus.Unsubscribe(m.windowID)
	m.quitting = true
	return m, tea.Quit
}

// handleEvent folds one bus event into the window. Snapshots replace the
// local copy wholesale; there is no merging.
func (m PetModel) handleEvent(ev bus.Event) (tea.Model, tea.Cmd) {
	switch e := ev.(type) {
	case bus.SnapshotEvent:
		m.snap = e
	case bus.MoneyUpdateEvent:
		m.snap.Money = e.Amount
	case bus.CheerEvent:
		m.cheerTicks = petTickRate * 2
	}
	return m, waitForEvent(m.events)
}

// View renders the pet, its stat bars and the action hints.
func (m PetModel) View() string {
	if m.quitting {
		return ""
	}

	if m.snap.HasEgg {
		return m.viewEgg()
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.snap.Name), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.face(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(m.moodLine()), m.width))
	b.WriteString("\n\n")

	for _, name := range statOrder {
		s, ok := m.snap.Stats[name]
		if !ok || s.Max <= 0 {
			continue
		}
		bar := m.bars.ViewAs(float64(s.Value) / float64(s.Max))
		b.WriteString(fmt.Sprintf("  %-12s %s %3d/%d\n", name, bar, s.Value, s.Max))
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("  $%d", m.snap.Money)))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render("  f: feed ($5)  y: play  c: cheer  g: games  q: quit"))
	b.WriteString("\n")

	return b.String()
}

// viewEgg renders the egg plus the naming dialog.
func (m PetModel) viewEgg() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("A new egg!"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(eggFace, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Name your pet to hatch the egg:", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.nameInput.View(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("enter: hatch"), m.width))
	b.WriteString("\n")
	return b.String()
}

// face picks the art for the resolved pet type and current mood.
func (m PetModel) face() string {
	switch {
	case m.snap.Dead:
		return "(x_x)"
	case m.snap.Sleeping:
		return "(-_-) zZ"
	case m.cheerTicks > 0:
		return "\\(^o^)/"
	case m.snap.Sick:
		return "(>_<)"
	}

	resolved := pet.Resolve(pet.DefaultGraph, m.snap.PetType, m.snap.Stage)
	if face, ok := petFaces[resolved]; ok {
		return face
	}
	return petFaces[save.StarterPetType]
}

func (m PetModel) moodLine() string {
	resolved := pet.Resolve(pet.DefaultGraph, m.snap.PetType, m.snap.Stage)
	switch {
	case m.snap.Dead:
		return alertStyle.Render(fmt.Sprintf("%s has passed away", m.snap.Name))
	case m.snap.Sick:
		return alertStyle.Render(fmt.Sprintf("%s (stage %d) is sick", resolved, m.snap.Stage))
	case m.snap.Sleeping:
		return fmt.Sprintf("%s (stage %d) is sleeping", resolved, m.snap.Stage)
	}
	return fmt.Sprintf("%s (stage %d)", resolved, m.snap.Stage)
}

// OpenMenu reports whether the user asked for the game picker.
func (m PetModel) OpenMenu() bool {
	return m.openMenu
}

// IsQuitting reports whether the user closed the window.
func (m PetModel) IsQuitting() bool {
	return m.quitting
}

// rewardDelta builds a payload for the direct pet interactions.
func rewardDelta(money, happiness, hunger, rest int) core.RewardPayload {
	return core.RewardPayload{
		Money:     money,
		Happiness: happiness,
		Hunger:    hunger,
		Rest:      rest,
	}
}

// RunPet starts a standalone Bubble Tea program for the companion window.
func RunPet(b *bus.Bus, snap bus.SnapshotEvent) error {
	p := tea.NewProgram(
		NewPetModel(b, snap),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
