// Package tui provides the Bubble Tea integration for the pet platform.
// It handles the terminal UI loop, input mapping, the companion pet
// window and minigame session windows wired to the engine bus.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelbeasts/petcade/internal/bus"
)

// TickMsg is sent to trigger a session simulation tick.
type TickMsg time.Time

// DecayMsg is sent to trigger one interval of passive stat decay.
type DecayMsg time.Time

// BusEventMsg wraps one event received from the engine bus.
type BusEventMsg struct {
	Event bus.Event
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// decayCmd returns a command that fires one decay interval later.
func decayCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return DecayMsg(t)
	})
}

// waitForEvent blocks on the window's bus channel and delivers the next
// event as a BusEventMsg. Re-issue it after handling each event to keep
// the pump running. A closed channel resolves to nil and stops the pump.
func waitForEvent(ch <-chan bus.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return BusEventMsg{Event: ev}
	}
}
