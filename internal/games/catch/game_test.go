package catch

import (
	"testing"

	"github.com/pixelbeasts/petcade/internal/core"
)

func startActive(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.SessionConfig{ScreenW: 40, ScreenH: 20, TickRate: 30, Seed: 3})

	frame := core.NewInputFrame()
	frame.Set(core.ActionStart)
	if res := g.Step(frame); res.Phase != core.PhaseActive {
		t.Fatalf("phase = %v, want Active", res.Phase)
	}
	return g
}

// settle runs the pending drop all the way to the basket row with no
// further spawns or movement.
func settle(g *Game) core.StepResult {
	g.spawnIn = 100000
	frame := core.NewInputFrame()
	var res core.StepResult
	for len(g.drops) > 0 && g.phase == core.PhaseActive {
		res = g.Step(frame)
	}
	return res
}

func TestBasketMovesAndStaysInBounds(t *testing.T) {
	g := startActive(t)
	g.spawnIn = 100000

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)
	for range 50 {
		g.Step(left)
	}
	if g.basketX != 1 {
		t.Errorf("basketX = %d, want pinned at 1", g.basketX)
	}

	right := core.NewInputFrame()
	right.Set(core.ActionRight)
	for range 50 {
		g.Step(right)
	}
	if g.basketX != g.fieldW-2 {
		t.Errorf("basketX = %d, want pinned at %d", g.basketX, g.fieldW-2)
	}
}

func TestSnackUnderBasketIsCaught(t *testing.T) {
	g := startActive(t)

	g.drops = []drop{{x: g.basketX, y: 0}}
	settle(g)

	if g.Caught() != 1 {
		t.Errorf("caught = %d, want 1", g.Caught())
	}
	if g.missed != 0 {
		t.Errorf("missed = %d, want 0", g.missed)
	}
}

func TestSnackAtBasketEdgeIsCaught(t *testing.T) {
	g := startActive(t)

	g.drops = []drop{{x: g.basketX + 1, y: 0}}
	settle(g)

	if g.Caught() != 1 {
		t.Errorf("caught = %d, a snack one cell off still lands in the basket", g.Caught())
	}
}

func TestSnackAwayFromBasketIsDropped(t *testing.T) {
	g := startActive(t)

	g.drops = []drop{{x: g.basketX + 5, y: 0}}
	settle(g)

	if g.missed != 1 {
		t.Errorf("missed = %d, want 1", g.missed)
	}
	if g.Caught() != 0 {
		t.Errorf("caught = %d, want 0", g.Caught())
	}
}

func TestJunkOnFloorIsHarmless(t *testing.T) {
	g := startActive(t)

	g.drops = []drop{{x: g.basketX + 5, y: 0, junk: true}}
	res := settle(g)

	if res.Phase != core.PhaseActive {
		t.Fatalf("phase = %v, junk hitting the floor should not end the run", res.Phase)
	}
	if g.missed != 0 {
		t.Errorf("missed = %d, junk on the floor is not a dropped snack", g.missed)
	}
}

func TestCaughtJunkResolvesWithPayout(t *testing.T) {
	g := startActive(t)

	// Catch six snacks, then a piece of junk.
	for range 6 {
		g.drops = []drop{{x: g.basketX, y: 0}}
		settle(g)
	}
	g.drops = []drop{{x: g.basketX, y: 0, junk: true}}
	res := settle(g)

	if res.Phase != core.PhaseResolved {
		t.Fatalf("phase = %v, want Resolved after catching junk", res.Phase)
	}
	if res.Reward == nil {
		t.Fatal("the resolving tick must carry the reward")
	}
	if res.Reward.Money != 6*payPerCatch {
		t.Errorf("reward money = %d, want %d", res.Reward.Money, 6*payPerCatch)
	}
	if res.Reward.Hunger != 3 {
		t.Errorf("reward hunger = %d, want 3", res.Reward.Hunger)
	}
	if res.Reward.Happiness != 2 {
		t.Errorf("reward happiness = %d, want 2", res.Reward.Happiness)
	}

	frame := core.NewInputFrame()
	if res := g.Step(frame); res.Reward != nil {
		t.Error("reward must only ride the resolving tick")
	}
}

func TestThreeDropsResolve(t *testing.T) {
	g := startActive(t)

	var res core.StepResult
	for range missLimit {
		g.drops = []drop{{x: g.basketX + 5, y: 0}}
		res = settle(g)
	}

	if res.Phase != core.PhaseResolved {
		t.Fatalf("phase = %v, want Resolved after %d drops", res.Phase, missLimit)
	}
	if res.Reward == nil {
		t.Fatal("the resolving tick must carry the reward")
	}
	if res.Reward.Money != 0 {
		t.Errorf("reward money = %d, want 0 for a catchless run", res.Reward.Money)
	}
}

func TestSpawnedDropsStayInField(t *testing.T) {
	g := startActive(t)

	frame := core.NewInputFrame()
	for range 200 {
		g.Step(frame)
		for _, d := range g.drops {
			if d.x < 1 || d.x > g.fieldW-2 {
				t.Fatalf("drop at x=%d, want in [1, %d]", d.x, g.fieldW-2)
			}
		}
		if g.Phase() != core.PhaseActive {
			break
		}
	}
}

func TestAbortForfeitsAccrued(t *testing.T) {
	g := startActive(t)

	g.drops = []drop{{x: g.basketX, y: 0}}
	settle(g)
	g.Abort()

	if g.Phase() != core.PhaseAborted {
		t.Fatalf("phase = %v, want Aborted", g.Phase())
	}
	if g.accrued != (core.RewardPayload{}) {
		t.Errorf("accrued = %+v, want forfeited", g.accrued)
	}
}

func TestRestartResets(t *testing.T) {
	g := startActive(t)

	for range missLimit {
		g.drops = []drop{{x: g.basketX + 5, y: 0}}
		settle(g)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.Phase() != core.PhaseIdle {
		t.Fatalf("phase = %v, want Idle after restart", g.Phase())
	}
	if g.Caught() != 0 || g.missed != 0 || g.junked {
		t.Error("restart should clear the run")
	}
}
