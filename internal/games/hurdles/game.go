// Package hurdles implements the side-scrolling runner minigame: jump
// the incoming hurdles, earn by distance. One collision ends the run.
package hurdles

import (
	"fmt"
	"math/rand"

	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

const (
	runnerX       = 8
	jumpTicks     = 14 // airborne duration
	moveEvery     = 2  // world scroll rate in ticks per cell
	minSpacing    = 18
	maxSpacing    = 34
	payPerHundred = 5 // dollars per 100 distance
)

// Game implements the hurdle runner session.
type Game struct {
	phase core.Phase
	rng   *rand.Rand

	fieldW   int
	groundY  int
	airborne int // ticks left in the air, 0 = on the ground
	hurdles  []int
	nextGap  int
	ticker   int
	distance int

	accrued core.RewardPayload
}

// New creates a new hurdle runner session.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("hurdles", func() registry.Session {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "hurdles" }

// Title returns the display name.
func (g *Game) Title() string { return "Hurdle Dash" }

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
	g.fieldW = core.Max(40, core.Min(cfg.ScreenW, 100))
	g.groundY = core.Max(8, cfg.ScreenH-4)
	g.airborne = 0
	g.hurdles = nil
	g.nextGap = g.fieldW
	g.ticker = 0
	g.distance = 0
	g.accrued = core.RewardPayload{}
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.phase = core.PhaseActive
		}

	case core.PhaseActive:
		if g.airborne == 0 && (in.Has(core.ActionPrimary) || in.Has(core.ActionUp)) {
			g.airborne = jumpTicks
		}
		if g.airborne > 0 {
			g.airborne--
		}

		g.ticker++
		if g.ticker < moveEvery {
			break
		}
		g.ticker = 0
		g.scroll()

		if g.collided() {
			g.accrued.Money += Payout(g.distance)
			g.accrued.Experience += g.distance / 50
			g.accrued.Rest -= 5 // running is tiring
			g.phase = core.PhaseResolved
			reward := g.accrued
			return core.StepResult{Phase: g.phase, Reward: &reward}
		}

	case core.PhaseResolved:
		if in.Has(core.ActionRestart) {
			g.Reset(core.SessionConfig{Seed: g.rng.Int63(), ScreenW: g.fieldW, ScreenH: g.groundY + 4})
		}
	}

	return core.StepResult{Phase: g.phase}
}

// scroll moves the world one cell left and spawns hurdles.
func (g *Game) scroll() {
	g.distance++

	kept := g.hurdles[:0]
	for _, x := range g.hurdles {
		if x-1 >= 0 {
			kept = append(kept, x-1)
		}
	}
	g.hurdles = kept

	g.nextGap--
	if g.nextGap <= 0 {
		g.hurdles = append(g.hurdles, g.fieldW-1)
		g.nextGap = minSpacing + g.rng.Intn(maxSpacing-minSpacing)
	}
}

// runnerBox returns the cell the runner occupies: on the ground, or two
// rows up while airborne.
func (g *Game) runnerBox() core.Rect {
	y := g.groundY
	if g.airborne > 0 {
		y = g.groundY - 2
	}
	return core.NewRect(runnerX, y, 1, 1)
}

// collided reports whether the runner's body overlaps a hurdle cell. An
// airborne runner sits above the hurdle row and passes clean.
func (g *Game) collided() bool {
	body := g.runnerBox()
	for _, x := range g.hurdles {
		if body.Contains(x, g.groundY) {
			return true
		}
	}
	return false
}

// Payout converts run distance to dollars.
func Payout(distance int) int {
	return distance / 100 * payPerHundred
}

// Distance returns the current run distance.
func (g *Game) Distance() int { return g.distance }

// Render draws the track.
func (g *Game) Render(dst *core.Screen) {
	midY := dst.Height() / 2
	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(midY-1, "HURDLE DASH")
		dst.DrawTextCentered(midY+1, "space to jump - enter to start")
		return
	case core.PhaseResolved:
		dst.DrawTextCentered(midY-1, fmt.Sprintf("tripped at %dm ($%d)", g.distance, Payout(g.distance)))
		dst.DrawTextCentered(midY+1, "r: play again   q: quit")
		return
	}

	dst.DrawHLine(0, g.groundY+1, dst.Width(), '=')
	body := g.runnerBox()
	dst.Set(body.X, body.Y, '&')
	for _, x := range g.hurdles {
		dst.Set(x, g.groundY, '|')
	}
	dst.DrawText(1, 1, fmt.Sprintf("distance: %dm", g.distance))
}
