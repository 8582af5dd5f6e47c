// Package snake implements the snake minigame. Classic rules on a walled
// field; every food eaten feeds the pet a little and earns money when the
// run ends.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y int
}

const moveEveryTicks = 4

// Game implements the snake session.
type Game struct {
	phase core.Phase
	rng   *rand.Rand

	snake      []Point // head at index 0
	direction  Direction
	nextDir    Direction
	food       Point
	fieldW     int
	fieldH     int
	moveTicker int
	eaten      int

	accrued core.RewardPayload
}

// New creates a new snake session.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Session {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Garden Snake" }

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
	g.fieldW = core.Max(20, core.Min(cfg.ScreenW-2, 60))
	g.fieldH = core.Max(10, core.Min(cfg.ScreenH-4, 20))
	g.eaten = 0
	g.accrued = core.RewardPayload{}

	midY := g.fieldH / 2
	g.snake = []Point{{X: 6, Y: midY}, {X: 5, Y: midY}, {X: 4, Y: midY}}
	g.direction = DirRight
	g.nextDir = DirRight
	g.moveTicker = 0
	g.placeFood()
}

// placeFood drops food on a free cell.
func (g *Game) placeFood() {
	for {
		p := Point{X: g.rng.Intn(g.fieldW-2) + 1, Y: g.rng.Intn(g.fieldH-2) + 1}
		if !g.occupied(p) {
			g.food = p
			return
		}
	}
}

func (g *Game) occupied(p Point) bool {
	for _, s := range g.snake {
		if s == p {
			return true
		}
	}
	return false
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.phase {
	case core.PhaseIdle:
		if in.Has(core.ActionStart) {
			g.phase = core.PhaseActive
		}

	case core.PhaseActive:
		g.bufferDirection(in)
		g.moveTicker++
		if g.moveTicker < moveEveryTicks {
			break
		}
		g.moveTicker = 0
		if !g.move() {
			g.accrued.Money += g.eaten * 2
			g.accrued.Experience += g.eaten
			g.accrued.Hunger += g.eaten // the pet shares the meal
			g.phase = core.PhaseResolved
			reward := g.accrued
			return core.StepResult{Phase: g.phase, Reward: &reward}
		}

	case core.PhaseResolved:
		if in.Has(core.ActionRestart) {
			g.Reset(core.SessionConfig{Seed: g.rng.Int63(), ScreenW: g.fieldW + 2, ScreenH: g.fieldH + 4})
		}
	}

	return core.StepResult{Phase: g.phase}
}

// bufferDirection records the next direction, ignoring immediate
// reversals.
func (g *Game) bufferDirection(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp) && g.direction != DirDown:
		g.nextDir = DirUp
	case in.Has(core.ActionDown) && g.direction != DirUp:
		g.nextDir = DirDown
	case in.Has(core.ActionLeft) && g.direction != DirRight:
		g.nextDir = DirLeft
	case in.Has(core.ActionRight) && g.direction != DirLeft:
		g.nextDir = DirRight
	}
}

// move advances the snake one cell. Returns false on a wall or self
// collision.
func (g *Game) move() bool {
	g.direction = g.nextDir

	head := g.snake[0]
	switch g.direction {
	case DirRight:
		head.X++
	case DirLeft:
		head.X--
	case DirDown:
		head.Y++
	case DirUp:
		head.Y--
	}

	// Border walls
	if head.X <= 0 || head.X >= g.fieldW-1 || head.Y <= 0 || head.Y >= g.fieldH-1 {
		return false
	}
	if g.occupied(head) {
		return false
	}

	g.snake = append([]Point{head}, g.snake...)
	if head == g.food {
		g.eaten++
		g.placeFood()
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}
	return true
}

// Eaten returns the food count for this run.
func (g *Game) Eaten() int { return g.eaten }

// Render draws the field.
func (g *Game) Render(dst *core.Screen) {
	switch g.phase {
	case core.PhaseIdle:
		dst.DrawTextCentered(dst.Height()/2-1, "GARDEN SNAKE")
		dst.DrawTextCentered(dst.Height()/2+1, "arrows to steer - press enter to start")
		return
	case core.PhaseResolved:
		dst.DrawTextCentered(dst.Height()/2-1, fmt.Sprintf("crashed after %d snacks ($%d)", g.eaten, g.eaten*2))
		dst.DrawTextCentered(dst.Height()/2+1, "r: play again   q: quit")
		return
	}

	offX := (dst.Width() - g.fieldW) / 2
	dst.DrawBox(core.NewRect(offX, 1, g.fieldW, g.fieldH))
	dst.Set(offX+g.food.X, 1+g.food.Y, '@')
	for i, p := range g.snake {
		r := 'o'
		if i == 0 {
			r = 'O'
		}
		dst.Set(offX+p.X, 1+p.Y, r)
	}
	dst.DrawText(offX, g.fieldH+2, fmt.Sprintf("snacks: %d", g.eaten))
}
