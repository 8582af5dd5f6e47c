// Package reaction implements the stopwatch minigame: a timer runs
// towards a 10.00-second target but hides after the first three seconds;
// stop as close to the target as you can. Payout tiers are keyed by the
// absolute deviation and halved when the stop overshoots the target.
package reaction

import (
	"fmt"
	"math"

	"github.com/pixelbeasts/petcade/internal/config"
	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

// visibleSeconds is how long the running timer stays on screen.
const visibleSeconds = 3.0

// giveUpSeconds ends the round if the player never stops the clock.
const giveUpSeconds = 20.0

// tier maps a maximum deviation from the target to a payout.
type tier struct {
	maxDiff float64
	payout  int
}

// payoutTiers, tightest first.
var payoutTiers = []tier{
	{0.02, 100},
	{0.05, 75},
	{0.10, 50},
	{0.20, 30},
	{0.50, 15},
	{1.00, 5},
}

// Game implements the stopwatch session.
type Game struct {
	phase    core.Phase
	target   float64
	tickRate int
	ticks    int
	stopped  float64
	payout   int

	accrued core.RewardPayload
}

var target = config.DefaultTuning().Reaction.TargetSeconds

// SetTuning overrides the target time.
func SetTuning(t config.ReactionTuning) {
	if t.TargetSeconds > 0 {
		target = t.TargetSeconds
	}
}

// New creates a new stopwatch session.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("reaction", func() registry.Session {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "reaction" }

// Title returns the display name.
func (g *Game) Title() string { return "Stopwatch Hero" }

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
	g.target = target
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 30
	}
	g.ticks = 0
	g.stopped = 0
	g.payout = 0
	g.accrued = core.RewardPayload{}
}

// Elapsed returns the running clock in seconds.
func (g *Game) Elapsed() float64 {
	return float64(g.ticks) / float64(g.tickRate)
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.phase = core.PhaseActive
			g.ticks = 0
		}

	case core.PhaseActive:
		g.ticks++
		if in.Has(core.ActionPrimary) || g.Elapsed() >= giveUpSeconds {
			g.stopped = g.Elapsed()
			g.payout = TierReward(g.stopped, g.target)
			g.accrued.Money += g.payout
			g.accrued.Experience += 5
			if g.payout > 0 {
				g.accrued.Happiness += 3
			}
			g.phase = core.PhaseResolved
			reward := g.accrued
			return core.StepResult{Phase: g.phase, Reward: &reward}
		}

	case core.PhaseResolved:
		if in.Has(core.ActionRestart) {
			g.Reset(core.SessionConfig{TickRate: g.tickRate})
		}
	}

	return core.StepResult{Phase: g.phase}
}

// TierReward returns the payout for stopping at elapsed seconds against
// the target: the tier is keyed by absolute deviation, and overshooting
// the target halves the tier payout (integer floor).
func TierReward(elapsed, target float64) int {
	diff := math.Abs(elapsed - target)
	payout := 0
	for _, t := range payoutTiers {
		if diff <= t.maxDiff {
			payout = t.payout
			break
		}
	}
	if elapsed > target {
		payout /= 2
	}
	return payout
}

// Render draws the stopwatch.
func (g *Game) Render(dst *core.Screen) {
	midY := dst.Height() / 2
	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(midY-2, "STOPWATCH HERO")
		dst.DrawTextCentered(midY, fmt.Sprintf("stop the clock at exactly %.2fs", g.target))
		dst.DrawTextCentered(midY+1, fmt.Sprintf("it goes dark after %.0fs - keep counting!", visibleSeconds))
		dst.DrawTextCentered(midY+3, "press enter to start, space to stop")
	case core.PhaseActive:
		if g.Elapsed() <= visibleSeconds {
			dst.DrawTextCentered(midY, fmt.Sprintf("%6.2f", g.Elapsed()))
		} else {
			dst.DrawTextCentered(midY, "??.??")
		}
	case core.PhaseResolved:
		dst.DrawTextCentered(midY-1, fmt.Sprintf("stopped at %.2fs (target %.2fs)", g.stopped, g.target))
		dst.DrawTextCentered(midY+1, fmt.Sprintf("payout: $%d", g.payout))
		dst.DrawTextCentered(midY+3, "r: play again   q: quit")
	}
}
