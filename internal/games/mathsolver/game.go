// Package mathsolver implements the math sprint minigame: arithmetic
// problems on a 15-second-per-problem clock that resets on every correct
// answer. Every third consecutive correct answer banks a flat $12; three
// mistakes or a timeout ends the session.
package mathsolver

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

const (
	problemSeconds = 15
	mistakeLimit   = 3
	streakLength   = 3
	streakPayout   = 12
)

// Problem is one arithmetic question.
type Problem struct {
	A, B   int
	Op     rune
	Answer int
}

// Game implements the math sprint session.
type Game struct {
	phase    core.Phase
	rng      *rand.Rand
	tickRate int

	problem   Problem
	entry     string
	ticksLeft int
	correct   int
	mistakes  int
	streak    int
	endReason string

	accrued core.RewardPayload
}

// New creates a new math sprint session.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("mathsolver", func() registry.Session {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "mathsolver" }

// Title returns the display name.
func (g *Game) Title() string { return "Math Sprint" }

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
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 30
	}
	g.entry = ""
	g.correct = 0
	g.mistakes = 0
	g.streak = 0
	g.endReason = ""
	g.accrued = core.RewardPayload{}
}

// nextProblem rolls a fresh question and restarts the problem clock.
func (g *Game) nextProblem() {
	g.problem = NewProblem(g.rng)
	g.entry = ""
	g.ticksLeft = problemSeconds * g.tickRate
}

// NewProblem rolls one arithmetic question from the rng.
func NewProblem(rng *rand.Rand) Problem {
	switch rng.Intn(3) {
	case 0:
		a, b := rng.Intn(50)+1, rng.Intn(50)+1
		return Problem{A: a, B: b, Op: '+', Answer: a + b}
	case 1:
		a, b := rng.Intn(50)+1, rng.Intn(50)+1
		if b > a {
			a, b = b, a
		}
		return Problem{A: a, B: b, Op: '-', Answer: a - b}
	default:
		a, b := rng.Intn(12)+1, rng.Intn(12)+1
		return Problem{A: a, B: b, Op: '*', Answer: a * b}
	}
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.phase = core.PhaseActive
			g.nextProblem()
		}

	case core.PhaseActive:
		g.ticksLeft--
		if g.ticksLeft <= 0 {
			return g.resolve("time ran out")
		}

		for _, r := range in.Runes {
			if (r >= '0' && r <= '9') || (r == '-' && g.entry == "") {
				g.entry += string(r)
			}
		}
		if in.Has(core.ActionLeft) && g.entry != "" { // backspace maps to left
			g.entry = g.entry[:len(g.entry)-1]
		}
		if in.Has(core.ActionPrimary) || in.Has(core.ActionStart) {
			g.submit()
			if g.mistakes >= mistakeLimit {
				return g.resolve("three mistakes")
			}
		}

	case core.PhaseResolved:
		if in.Has(core.ActionRestart) {
			g.Reset(core.SessionConfig{Seed: g.rng.Int63(), TickRate: g.tickRate})
		}
	}

	return core.StepResult{Phase: g.phase}
}

// submit grades the current entry. A correct answer extends the streak
// and resets the clock; every completed streak banks the flat payout
// once, not per answer.
func (g *Game) submit() {
	answer, err := strconv.Atoi(g.entry)
	if err != nil || answer != g.problem.Answer {
		g.mistakes++
		g.streak = 0
		g.entry = ""
		return
	}

	g.correct++
	g.streak++
	g.accrued.Experience += 2
	if g.streak == streakLength {
		g.accrued.Money += streakPayout
		g.accrued.Happiness += 2
		g.streak = 0
	}
	g.nextProblem()
}

// resolve ends the session with the accrued reward.
func (g *Game) resolve(reason string) core.StepResult {
	g.endReason = reason
	g.phase = core.PhaseResolved
	reward := g.accrued
	return core.StepResult{Phase: g.phase, Reward: &reward}
}

// Render draws the current problem.
func (g *Game) Render(dst *core.Screen) {
	midY := dst.Height() / 2
	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(midY-2, "MATH SPRINT")
		dst.DrawTextCentered(midY, fmt.Sprintf("$%d for every %d answers in a row", streakPayout, streakLength))
		dst.DrawTextCentered(midY+1, fmt.Sprintf("%ds per problem, %d mistakes allowed", problemSeconds, mistakeLimit))
		dst.DrawTextCentered(midY+3, "press enter to start")
	case core.PhaseActive:
		secs := g.ticksLeft / g.tickRate
		dst.DrawTextCentered(midY-2, fmt.Sprintf("%d %c %d = %s_", g.problem.A, g.problem.Op, g.problem.B, g.entry))
		dst.DrawTextCentered(midY, fmt.Sprintf("time: %2ds   solved: %d   mistakes: %d/%d", secs, g.correct, g.mistakes, mistakeLimit))
		dst.DrawTextCentered(midY+2, fmt.Sprintf("banked: $%d", g.accrued.Money))
	case core.PhaseResolved:
		dst.DrawTextCentered(midY-1, fmt.Sprintf("over: %s", g.endReason))
		dst.DrawTextCentered(midY+1, fmt.Sprintf("%d solved, $%d earned", g.correct, g.accrued.Money))
		dst.DrawTextCentered(midY+3, "r: play again   q: quit")
	}
}
