// Package bus implements the one-directional reward/event protocol between
// minigame windows and the engine. Delivery is at-most-once: messages to a
// window that is not open (or whose buffer is full) are silently dropped,
// and no acknowledgement channel exists. A window that opens after a
// broadcast fired catches up through the request/response pairs.
package bus

import "github.com/pixelbeasts/petcade/internal/core"

// Message is anything a window sends to the engine's inbox.
type Message interface {
	engineMessage()
}

// RewardMsg reports a session's final reward payload. The engine applies
// it exactly once; money rides in the payload, never in a separate update.
type RewardMsg struct {
	From         WindowID
	GameID       string
	Payload      core.RewardPayload
	DurationSecs int
}

func (RewardMsg) engineMessage() {}

// PetHappyMsg triggers a short cosmetic cheer in the companion window.
// No state changes.
type PetHappyMsg struct {
	From WindowID
}

func (PetHappyMsg) engineMessage() {}

// MoneyRequestMsg asks for the current balance; the engine answers the
// sender with a MoneyResponseEvent.
type MoneyRequestMsg struct {
	From WindowID
}

func (MoneyRequestMsg) engineMessage() {}

// PetTypeRequestMsg asks for the current (base type, stage) pair; the
// engine answers the sender with a PetTypeEvent.
type PetTypeRequestMsg struct {
	From WindowID
}

func (PetTypeRequestMsg) engineMessage() {}

// PurchasedRequestMsg asks for the game unlock map; the engine answers
// the sender with a PurchasedEvent.
type PurchasedRequestMsg struct {
	From WindowID
}

func (PurchasedRequestMsg) engineMessage() {}

// BuyGameMsg asks the engine to purchase a game from the shop.
type BuyGameMsg struct {
	From   WindowID
	GameID string
}

func (BuyGameMsg) engineMessage() {}

// ResetGameMsg replaces the save with fresh defaults. The confirmation
// dialog is the sender's responsibility; by the time this message arrives
// the reset is decided.
type ResetGameMsg struct {
	From WindowID
}

func (ResetGameMsg) engineMessage() {}

// GainMoneyMsg credits the balance directly (debug/test surface).
type GainMoneyMsg struct {
	From   WindowID
	Amount int
}

func (GainMoneyMsg) engineMessage() {}

// NameSubmittedMsg carries the pet name from the naming dialog.
type NameSubmittedMsg struct {
	From WindowID
	Name string
}

func (NameSubmittedMsg) engineMessage() {}

// Event is anything the engine sends to windows.
type Event interface {
	windowEvent()
}

// MoneyResponseEvent answers a MoneyRequestMsg with the current balance.
type MoneyResponseEvent struct {
	Amount int
}

func (MoneyResponseEvent) windowEvent() {}

// MoneyUpdateEvent is an unsolicited broadcast of the current balance.
// Response and update may interleave arbitrarily; both carry absolute
// amounts so last-write-wins converges every window to the same value.
type MoneyUpdateEvent struct {
	Amount int
}

func (MoneyUpdateEvent) windowEvent() {}

// PetTypeEvent carries the base pet type and evolution stage. Windows
// resolve the display type themselves through the shared evolution graph.
type PetTypeEvent struct {
	Type  string
	Stage int
}

func (PetTypeEvent) windowEvent() {}

// SnapshotEvent is an authoritative-replace copy of the canonical state,
// broadcast after every mutation. Receivers must replace, never merge.
type SnapshotEvent struct {
	Name     string
	Money    int
	PetType  string
	Stage    int
	Stats    map[string]core.StatValue
	HasEgg   bool
	Sleeping bool
	Sick     bool
	Dead     bool
}

func (SnapshotEvent) windowEvent() {}

// GameUnlockedEvent announces a shop purchase to the game-list window.
type GameUnlockedEvent struct {
	GameID string
}

func (GameUnlockedEvent) windowEvent() {}

// PurchasedEvent answers a PurchasedRequestMsg with the unlock map.
type PurchasedEvent struct {
	Games map[string]bool
}

func (PurchasedEvent) windowEvent() {}

// CheerEvent makes the companion window play its cheer animation.
type CheerEvent struct{}

func (CheerEvent) windowEvent() {}
