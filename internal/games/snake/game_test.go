package snake

import (
	"testing"

	"github.com/pixelbeasts/petcade/internal/core"
)

func startActive(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.SessionConfig{ScreenW: 40, ScreenH: 20, TickRate: 30, Seed: 1})

	frame := core.NewInputFrame()
	frame.Set(core.ActionStart)
	if res := g.Step(frame); res.Phase != core.PhaseActive {
		t.Fatalf("phase = %v, want Active", res.Phase)
	}
	return g
}

// stepMoves advances the session through n snake movements.
func stepMoves(g *Game, frame core.InputFrame, n int) *core.RewardPayload {
	var reward *core.RewardPayload
	for range n * moveEveryTicks {
		if res := g.Step(frame); res.Reward != nil {
			reward = res.Reward
		}
	}
	return reward
}

func TestSnakeMovesRight(t *testing.T) {
	g := startActive(t)
	startX := g.snake[0].X

	stepMoves(g, core.NewInputFrame(), 1)
	if g.snake[0].X != startX+1 {
		t.Errorf("head X = %d, want %d", g.snake[0].X, startX+1)
	}
	if len(g.snake) != 3 {
		t.Errorf("snake length = %d, want unchanged 3", len(g.snake))
	}
}

func TestReversalIsIgnored(t *testing.T) {
	g := startActive(t)

	frame := core.NewInputFrame()
	frame.Set(core.ActionLeft) // directly backwards
	stepMoves(g, frame, 1)

	if g.direction != DirRight {
		t.Errorf("direction = %v, want still DirRight", g.direction)
	}
}

func TestTurningWorks(t *testing.T) {
	g := startActive(t)
	startY := g.snake[0].Y

	frame := core.NewInputFrame()
	frame.Set(core.ActionDown)
	stepMoves(g, frame, 1)

	if g.snake[0].Y != startY+1 {
		t.Errorf("head Y = %d, want %d after turning down", g.snake[0].Y, startY+1)
	}
}

func TestEatingGrowsSnake(t *testing.T) {
	g := startActive(t)

	// Put the food directly in the snake's path.
	g.food = Point{X: g.snake[0].X + 1, Y: g.snake[0].Y}

	stepMoves(g, core.NewInputFrame(), 1)
	if g.Eaten() != 1 {
		t.Fatalf("eaten = %d, want 1", g.Eaten())
	}
	if len(g.snake) != 4 {
		t.Errorf("snake length = %d, want 4 after eating", len(g.snake))
	}
	if g.occupied(g.food) {
		t.Error("food respawned on the snake")
	}
}

func TestWallCrashResolvesWithReward(t *testing.T) {
	g := startActive(t)
	g.food = Point{X: g.snake[0].X + 1, Y: g.snake[0].Y}

	// Eat one, then run into the right wall.
	reward := stepMoves(g, core.NewInputFrame(), g.fieldW)
	if g.Phase() != core.PhaseResolved {
		t.Fatalf("phase = %v, want Resolved after hitting the wall", g.Phase())
	}
	if reward == nil {
		t.Fatal("crash must carry the reward")
	}
	if reward.Money != 2 {
		t.Errorf("reward money = %d, want 2 ($2 per snack)", reward.Money)
	}
	if reward.Hunger != 1 {
		t.Errorf("reward hunger = %d, want 1 (the pet shares the meal)", reward.Hunger)
	}
	if reward.Experience != 1 {
		t.Errorf("reward experience = %d, want 1", reward.Experience)
	}
}

func TestAbortForfeits(t *testing.T) {
	g := startActive(t)
	g.food = Point{X: g.snake[0].X + 1, Y: g.snake[0].Y}
	stepMoves(g, core.NewInputFrame(), 1)

	g.Abort()
	if g.Phase() != core.PhaseAborted {
		t.Errorf("phase = %v, want Aborted", g.Phase())
	}
	if !g.accrued.IsZero() {
		t.Errorf("accrued = %+v, want forfeited", g.accrued)
	}
}

func TestRestartAfterCrash(t *testing.T) {
	g := startActive(t)
	stepMoves(g, core.NewInputFrame(), g.fieldW) // crash into the wall

	frame := core.NewInputFrame()
	frame.Set(core.ActionRestart)
	g.Step(frame)
	if g.Phase() != core.PhaseIdle {
		t.Errorf("phase = %v, want Idle after restart", g.Phase())
	}
	if g.Eaten() != 0 {
		t.Errorf("eaten = %d, want reset to 0", g.Eaten())
	}
}
