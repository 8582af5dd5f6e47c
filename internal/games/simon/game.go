// Package simon implements the Simon-Says minigame: watch a growing
// sequence of arrows, repeat it back. One wrong move ends the session;
// payout scales with the longest round completed.
package simon

import (
	"fmt"
	"math/rand"

	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

const (
	startLength   = 3
	payPerRound   = 5
	showTicks     = 12 // ticks each sequence element stays lit
	betweenTicks  = 4  // dark gap between elements
)

var arrows = []rune{'^', 'v', '<', '>'}

// Game implements the Simon session.
type Game struct {
	phase core.Phase
	rng   *rand.Rand

	sequence []int
	playback int  // index currently shown during playback
	showing  bool // true while the sequence is playing back
	lit      bool // whether the current element is lit or in the gap
	ticks    int
	inputPos int
	round    int

	accrued core.RewardPayload
}

// New creates a new Simon session.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("simon", func() registry.Session {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "simon" }

// Title returns the display name.
func (g *Game) Title() string { return "Simon Says" }

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
	g.sequence = nil
	g.round = 0
	g.accrued = core.RewardPayload{}
}

// startRound extends the sequence and begins playback.
func (g *Game) startRound() {
	if len(g.sequence) == 0 {
		for i := 0; i < startLength; i++ {
			g.sequence = append(g.sequence, g.rng.Intn(len(arrows)))
		}
	} else {
		g.sequence = append(g.sequence, g.rng.Intn(len(arrows)))
	}
	g.playback = 0
	g.showing = true
	g.lit = true
	g.ticks = showTicks
	g.inputPos = 0
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.phase = core.PhaseActive
			g.startRound()
		}

	case core.PhaseActive:
		if g.showing {
			g.stepPlayback()
			break
		}
		if pressed, dir := readArrow(in); pressed {
			if dir != g.sequence[g.inputPos] {
				return g.resolve()
			}
			g.inputPos++
			if g.inputPos == len(g.sequence) {
				g.round++
				g.accrued.Experience += 2
				g.startRound()
			}
		}

	case core.PhaseResolved:
		if in.Has(core.ActionRestart) {
			g.Reset(core.SessionConfig{Seed: g.rng.Int63()})
		}
	}

	return core.StepResult{Phase: g.phase}
}

// stepPlayback advances the lit/gap animation of the sequence.
func (g *Game) stepPlayback() {
	g.ticks--
	if g.ticks > 0 {
		return
	}
	if g.lit {
		g.lit = false
		g.ticks = betweenTicks
		return
	}
	g.playback++
	if g.playback >= len(g.sequence) {
		g.showing = false
		return
	}
	g.lit = true
	g.ticks = showTicks
}

// readArrow maps directional actions to a sequence element.
func readArrow(in core.InputFrame) (bool, int) {
	switch {
	case in.Has(core.ActionUp):
		return true, 0
	case in.Has(core.ActionDown):
		return true, 1
	case in.Has(core.ActionLeft):
		return true, 2
	case in.Has(core.ActionRight):
		return true, 3
	}
	return false, 0
}

// resolve ends the session, paying per completed round.
func (g *Game) resolve() core.StepResult {
	g.accrued.Money += g.round * payPerRound
	if g.round > 0 {
		g.accrued.Happiness += 3
	}
	g.phase = core.PhaseResolved
	reward := g.accrued
	return core.StepResult{Phase: g.phase, Reward: &reward}
}

// Round returns the number of completed rounds.
func (g *Game) Round() int { return g.round }

// Render draws the game.
func (g *Game) Render(dst *core.Screen) {
	midY := dst.Height() / 2
	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(midY-1, "SIMON SAYS")
		dst.DrawTextCentered(midY+1, "watch the arrows, repeat with arrow keys - enter to start")
	case core.PhaseActive:
		if g.showing {
			shown := ' '
			if g.lit && g.playback < len(g.sequence) {
				shown = arrows[g.sequence[g.playback]]
			}
			dst.DrawTextCentered(midY-1, "watch...")
			dst.DrawTextCentered(midY+1, fmt.Sprintf("  %c  ", shown))
		} else {
			dst.DrawTextCentered(midY-1, "your turn")
			dst.DrawTextCentered(midY+1, fmt.Sprintf("%d/%d", g.inputPos, len(g.sequence)))
		}
		dst.DrawTextCentered(midY+3, fmt.Sprintf("round: %d", g.round+1))
	case core.PhaseResolved:
		dst.DrawTextCentered(midY-1, fmt.Sprintf("%d rounds ($%d)", g.round, g.round*payPerRound))
		dst.DrawTextCentered(midY+1, "r: play again   q: quit")
	}
}
