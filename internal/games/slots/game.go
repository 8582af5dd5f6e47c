// Package slots implements the slot machine minigame: pick a bet, spin
// three reels, collect per the paytable. Bets and winnings accumulate in
// the session's local reward and reach the engine only on cash-out.
package slots

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/pixelbeasts/petcade/internal/config"
	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

// Symbols in reel order. Weighted towards the cheap end.
var symbols = []string{"cherry", "cherry", "lemon", "lemon", "cake", "bell", "star", "seven"}

const spinDuration = 20 // ticks of reel animation per spin

// Game implements the slot machine session.
type Game struct {
	phase  core.Phase
	rng    *rand.Rand
	tuning config.SlotsTuning

	betIndex  int
	reels     [3]string
	spinning  bool
	spinTicks int
	spins     int
	lastWin   int
	tick      uint64

	accrued core.RewardPayload
}

// Package-level tuning knob, set by the platform before session creation.
var tuning = config.DefaultTuning().Slots

// SetTuning overrides the paytable and bet sizes.
func SetTuning(t config.SlotsTuning) {
	if len(t.Bets) > 0 && len(t.Paytable) > 0 {
		tuning = t
	}
}

// New creates a new slot machine session.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("slots", func() registry.Session {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "slots" }

// Title returns the display name.
func (g *Game) Title() string { return "Lucky Slots" }

// Phase returns the current lifecycle phase.
func (g *Game) Phase() core.Phase { return g.phase }

// Abort forfeits the accrued reward.
func (g *Game) Abort() {
	g.phase = core.PhaseAborted
	g.accrued = core.RewardPayload{}
}

// Reset returns the session to the idle screen.
func (g *Game) Reset(cfg core.SessionConfig) {
	g.phase = core.PhaseIdle
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tuning = tuning
	g.betIndex = 0
	g.reels = [3]string{symbols[0], symbols[2], symbols[4]}
	g.spinning = false
	g.spins = 0
	g.lastWin = 0
	g.tick = 0
	g.accrued = core.RewardPayload{}
}

// Bet returns the currently selected bet size.
func (g *Game) Bet() int {
	return g.tuning.Bets[g.betIndex]
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.phase = core.PhaseActive
		}

	case core.PhaseActive:
		if g.spinning {
			g.stepSpin()
			break
		}
		switch {
		case in.Has(core.ActionLeft) && g.betIndex > 0:
			g.betIndex--
		case in.Has(core.ActionRight) && g.betIndex < len(g.tuning.Bets)-1:
			g.betIndex++
		case in.Has(core.ActionPrimary):
			g.startSpin()
		case in.Has(core.ActionStart):
			// Cash out: the accrued net result becomes the session reward.
			g.phase = core.PhaseResolved
			g.accrued.Experience += g.spins
			reward := g.accrued
			return core.StepResult{Phase: g.phase, Reward: &reward}
		}

	case core.PhaseResolved:
		if in.Has(core.ActionRestart) {
			g.Reset(core.SessionConfig{Seed: g.rng.Int63()})
		}
	}

	return core.StepResult{Phase: g.phase}
}

// startSpin deducts the bet and begins the reel animation.
func (g *Game) startSpin() {
	g.accrued.Money -= g.Bet()
	g.spinning = true
	g.spinTicks = spinDuration
	g.spins++
	g.lastWin = 0
}

// stepSpin animates the reels and settles the spin when they stop.
func (g *Game) stepSpin() {
	g.reels[0] = symbols[g.rng.Intn(len(symbols))]
	g.reels[1] = symbols[g.rng.Intn(len(symbols))]
	g.reels[2] = symbols[g.rng.Intn(len(symbols))]

	g.spinTicks--
	if g.spinTicks > 0 {
		return
	}
	g.spinning = false

	win := Winnings(g.Bet(), g.reels, g.tuning)
	g.lastWin = win
	g.accrued.Money += win
	if win > 0 {
		g.accrued.Happiness += 2
	}
}

// Winnings computes the payout for one spin: a triple match pays
// floor(bet * paytable[symbol]), a pair pays floor(bet * pair_rate), and
// no match pays nothing.
func Winnings(bet int, reels [3]string, t config.SlotsTuning) int {
	switch {
	case reels[0] == reels[1] && reels[1] == reels[2]:
		return int(math.Floor(float64(bet) * t.Paytable[reels[0]]))
	case reels[0] == reels[1] || reels[1] == reels[2] || reels[0] == reels[2]:
		return int(math.Floor(float64(bet) * t.PairRate))
	default:
		return 0
	}
}

// Render draws the machine.
func (g *Game) Render(dst *core.Screen) {
	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(dst.Height()/2-2, "LUCKY SLOTS")
		dst.DrawTextCentered(dst.Height()/2, "space: spin   left/right: bet   enter: cash out")
		dst.DrawTextCentered(dst.Height()/2+2, "press enter to start")
	case core.PhaseActive:
		midY := dst.Height() / 2
		box := core.NewRect(dst.Width()/2-17, midY-2, 34, 5)
		dst.DrawBox(box)
		dst.DrawTextCentered(midY, fmt.Sprintf("[ %-6s | %-6s | %-6s ]", g.reels[0], g.reels[1], g.reels[2]))
		dst.DrawTextCentered(midY+4, fmt.Sprintf("bet: $%d   net: $%+d", g.Bet(), g.accrued.Money))
		if g.lastWin > 0 {
			dst.DrawTextCentered(midY+5, fmt.Sprintf("WIN $%d!", g.lastWin))
		}
	case core.PhaseResolved:
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("cashed out: $%+d after %d spins", g.accrued.Money, g.spins))
		dst.DrawTextCentered(dst.Height()/2+2, "r: play again   q: quit")
	}
}
