// Package memory implements the memory-matching minigame: a 4x4 grid of
// face-down pairs. Matches pay out, misses eat into the payout, and the
// session resolves when the board is cleared.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

const (
	gridW = 4
	gridH = 4

	payPerPair   = 8
	missPenalty  = 1
	hideDelay    = 20 // ticks a failed pair stays visible
	cardFaceDown = '#'
)

var faces = []rune{'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H'}

// Game implements the memory session.
type Game struct {
	phase core.Phase
	rng   *rand.Rand

	cards    [gridH][gridW]rune
	revealed [gridH][gridW]bool
	matched  [gridH][gridW]bool

	cursorX, cursorY int
	firstX, firstY   int
	hasFirst         bool
	hideTicks        int

	pairs    int
	attempts int
	misses   int

	accrued core.RewardPayload
}

// New creates a new memory session.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("memory", func() registry.Session {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "memory" }

// Title returns the display name.
func (g *Game) Title() string { return "Memory Match" }

// Phase returns the current lifecycle phase.
func (g *Game) Phase() core.Phase { return g.phase }

// Abort forfeits the accrued reward.
func (g *Game) Abort() {
	g.phase = core.PhaseAborted
	g.accrued = core.RewardPayload{}
}

// Reset shuffles a fresh board and returns to the idle screen.
func (g *Game) Reset(cfg core.SessionConfig) {
	g.phase = core.PhaseIdle
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.cursorX, g.cursorY = 0, 0
	g.hasFirst = false
	g.hideTicks = 0
	g.pairs = 0
	g.attempts = 0
	g.misses = 0
	g.accrued = core.RewardPayload{}

	deck := make([]rune, 0, gridW*gridH)
	for _, f := range faces {
		deck = append(deck, f, f)
	}
	g.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			g.cards[y][x] = deck[y*gridW+x]
			g.revealed[y][x] = false
			g.matched[y][x] = false
		}
	}
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.phase = core.PhaseActive
		}

	case core.PhaseActive:
		if g.hideTicks > 0 {
			g.hideTicks--
			if g.hideTicks == 0 {
				g.hideUnmatched()
			}
			break
		}

		g.moveCursor(in)
		if in.Has(core.ActionPrimary) {
			if done := g.flip(); done {
				g.accrued.Money = core.Max(0, g.pairs*payPerPair-g.misses*missPenalty)
				g.accrued.Experience += g.pairs
				g.accrued.Happiness += 4
				g.phase = core.PhaseResolved
				reward := g.accrued
				return core.StepResult{Phase: g.phase, Reward: &reward}
			}
		}

	case core.PhaseResolved:
		if in.Has(core.ActionRestart) {
			g.Reset(core.SessionConfig{Seed: g.rng.Int63()})
		}
	}

	return core.StepResult{Phase: g.phase}
}

func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorY = core.Max(0, g.cursorY-1)
	case in.Has(core.ActionDown):
		g.cursorY = core.Min(gridH-1, g.cursorY+1)
	case in.Has(core.ActionLeft):
		g.cursorX = core.Max(0, g.cursorX-1)
	case in.Has(core.ActionRight):
		g.cursorX = core.Min(gridW-1, g.cursorX+1)
	}
}

// flip reveals the card under the cursor. Returns true when the board is
// cleared.
func (g *Game) flip() bool {
	x, y := g.cursorX, g.cursorY
	if g.matched[y][x] || g.revealed[y][x] {
		return false
	}
	g.revealed[y][x] = true

	if !g.hasFirst {
		g.firstX, g.firstY = x, y
		g.hasFirst = true
		return false
	}

	g.attempts++
	g.hasFirst = false
	if g.cards[y][x] == g.cards[g.firstY][g.firstX] {
		g.matched[y][x] = true
		g.matched[g.firstY][g.firstX] = true
		g.pairs++
		return g.pairs == len(faces)
	}

	g.misses++
	g.hideTicks = hideDelay
	return false
}

// hideUnmatched turns failed flips face-down again.
func (g *Game) hideUnmatched() {
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			if !g.matched[y][x] {
				g.revealed[y][x] = false
			}
		}
	}
}

// Render draws the board.
func (g *Game) Render(dst *core.Screen) {
	midY := dst.Height() / 2
	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(midY-1, "MEMORY MATCH")
		dst.DrawTextCentered(midY+1, "arrows to move, space to flip - enter to start")
		return
	case core.PhaseResolved:
		dst.DrawTextCentered(midY-1, fmt.Sprintf("cleared in %d attempts ($%d)", g.attempts, g.accrued.Money))
		dst.DrawTextCentered(midY+1, "r: play again   q: quit")
		return
	}

	offX := (dst.Width() - gridW*4) / 2
	offY := 2
	for y := 0; y < gridH; y++ {
		for x := 0; x < gridW; x++ {
			face := cardFaceDown
			if g.revealed[y][x] || g.matched[y][x] {
				face = g.cards[y][x]
			}
			cell := fmt.Sprintf("[%c]", face)
			if x == g.cursorX && y == g.cursorY {
				cell = fmt.Sprintf(">%c<", face)
			}
			dst.DrawText(offX+x*4, offY+y*2, cell)
		}
	}
	dst.DrawText(offX, offY+gridH*2+1, fmt.Sprintf("pairs: %d/%d  misses: %d", g.pairs, len(faces), g.misses))
}
