// Package catch implements the snack-catch minigame: snacks and junk
// fall from the sky; catch snacks in the basket, let junk hit the floor.
// Three dropped snacks (or one caught piece of junk) end the session.
package catch

import (
	"fmt"
	"math/rand"

	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

const (
	missLimit   = 3
	fallEvery   = 3 // ticks per cell of fall
	spawnEvery  = 20
	junkChance  = 4 // 1 in junkChance drops is junk
	payPerCatch = 2
)

// drop is one falling item.
type drop struct {
	x, y int
	junk bool
}

// Game implements the snack catch session.
type Game struct {
	phase core.Phase
	rng   *rand.Rand

	fieldW   int
	fieldH   int
	basketX  int
	drops    []drop
	fallTick int
	spawnIn  int
	caught   int
	missed   int
	junked   bool

	accrued core.RewardPayload
}

// New creates a new snack catch session.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("catch", func() registry.Session {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "catch" }

// Title returns the display name.
func (g *Game) Title() string { return "Snack Catch" }

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
	g.fieldW = core.Max(30, core.Min(cfg.ScreenW, 80))
	g.fieldH = core.Max(10, core.Min(cfg.ScreenH-2, 22))
	g.basketX = g.fieldW / 2
	g.drops = nil
	g.fallTick = 0
	g.spawnIn = spawnEvery
	g.caught = 0
	g.missed = 0
	g.junked = false
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
		if in.Has(core.ActionLeft) {
			g.basketX = core.Max(1, g.basketX-2)
		}
		if in.Has(core.ActionRight) {
			g.basketX = core.Min(g.fieldW-2, g.basketX+2)
		}

		g.spawnIn--
		if g.spawnIn <= 0 {
			g.drops = append(g.drops, drop{
				x:    g.rng.Intn(g.fieldW-2) + 1,
				y:    0,
				junk: g.rng.Intn(junkChance) == 0,
			})
			g.spawnIn = spawnEvery
		}

		g.fallTick++
		if g.fallTick >= fallEvery {
			g.fallTick = 0
			g.fall()
		}

		if g.missed >= missLimit || g.junked {
			g.accrued.Money += g.caught * payPerCatch
			g.accrued.Hunger += g.caught / 2
			g.accrued.Happiness += g.caught / 3
			g.phase = core.PhaseResolved
			reward := g.accrued
			return core.StepResult{Phase: g.phase, Reward: &reward}
		}

	case core.PhaseResolved:
		if in.Has(core.ActionRestart) {
			g.Reset(core.SessionConfig{Seed: g.rng.Int63(), ScreenW: g.fieldW, ScreenH: g.fieldH + 2})
		}
	}

	return core.StepResult{Phase: g.phase}
}

// basket returns the catch zone: three cells wide on the basket row.
func (g *Game) basket() core.Rect {
	return core.NewRect(g.basketX-1, g.fieldH-1, 3, 1)
}

// fall advances every drop one cell and settles the ones that reach the
// basket row.
func (g *Game) fall() {
	basket := g.basket()
	kept := g.drops[:0]
	for _, d := range g.drops {
		d.y++
		if d.y < g.fieldH-1 {
			kept = append(kept, d)
			continue
		}
		inBasket := basket.Contains(d.x, d.y)
		switch {
		case inBasket && d.junk:
			g.junked = true
		case inBasket:
			g.caught++
		case !d.junk:
			g.missed++
		}
	}
	g.drops = kept
}

// Caught returns the number of snacks caught this run.
func (g *Game) Caught() int { return g.caught }

// Render draws the field.
func (g *Game) Render(dst *core.Screen) {
	midY := dst.Height() / 2
	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(midY-1, "SNACK CATCH")
		dst.DrawTextCentered(midY+1, "left/right to move - catch * avoid x - enter to start")
		return
	case core.PhaseResolved:
		dst.DrawTextCentered(midY-1, fmt.Sprintf("%d snacks caught ($%d)", g.caught, g.caught*payPerCatch))
		dst.DrawTextCentered(midY+1, "r: play again   q: quit")
		return
	}

	for _, d := range g.drops {
		r := '*'
		if d.junk {
			r = 'x'
		}
		dst.Set(d.x, d.y, r)
	}
	basket := g.basket()
	dst.DrawText(basket.X, basket.Y, `\_/`)
	dst.DrawText(1, g.fieldH, fmt.Sprintf("caught: %d  dropped: %d/%d", g.caught, g.missed, missLimit))
}
