package hurdles

import (
	"testing"

	"github.com/pixelbeasts/petcade/internal/core"
)

func startActive(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.SessionConfig{ScreenW: 60, ScreenH: 24, TickRate: 30, Seed: 5})

	frame := core.NewInputFrame()
	frame.Set(core.ActionStart)
	if res := g.Step(frame); res.Phase != core.PhaseActive {
		t.Fatalf("phase = %v, want Active", res.Phase)
	}
	return g
}

func TestPayout(t *testing.T) {
	cases := []struct {
		distance int
		want     int
	}{
		{0, 0},
		{99, 0},
		{100, 5},
		{250, 10},
		{1000, 50},
	}
	for _, tc := range cases {
		if got := Payout(tc.distance); got != tc.want {
			t.Errorf("Payout(%d) = %d, want %d", tc.distance, got, tc.want)
		}
	}
}

func TestWorldScrollsEveryOtherTick(t *testing.T) {
	g := startActive(t)

	frame := core.NewInputFrame()
	for range 10 {
		g.Step(frame)
	}
	if g.Distance() != 5 {
		t.Errorf("distance = %d after 10 ticks, want 5", g.Distance())
	}
}

func TestJumpHoldsRunnerAirborne(t *testing.T) {
	g := startActive(t)

	frame := core.NewInputFrame()
	frame.Set(core.ActionPrimary)
	g.Step(frame)

	if g.airborne != jumpTicks-1 {
		t.Fatalf("airborne = %d after the jump tick, want %d", g.airborne, jumpTicks-1)
	}

	// Jump input is ignored while already in the air.
	g.Step(frame)
	if g.airborne != jumpTicks-2 {
		t.Errorf("airborne = %d, re-jumping mid-air should not reset the arc", g.airborne)
	}

	empty := core.NewInputFrame()
	for g.airborne > 0 {
		g.Step(empty)
	}
	g.Step(frame)
	if g.airborne != jumpTicks-1 {
		t.Error("runner should be able to jump again after landing")
	}
}

func TestCollisionResolvesRun(t *testing.T) {
	g := startActive(t)

	// Plant a hurdle one scroll away from the runner and run into it.
	g.hurdles = []int{runnerX + 1}
	g.nextGap = 1000
	g.distance = 230

	frame := core.NewInputFrame()
	var res core.StepResult
	for range moveEvery {
		res = g.Step(frame)
	}

	if res.Phase != core.PhaseResolved {
		t.Fatalf("phase = %v, want Resolved on collision", res.Phase)
	}
	if res.Reward == nil {
		t.Fatal("the collision tick must carry the reward")
	}
	// 231m: distance pays $10, experience 4, running costs rest.
	if res.Reward.Money != 10 {
		t.Errorf("reward money = %d, want 10", res.Reward.Money)
	}
	if res.Reward.Experience != 4 {
		t.Errorf("reward experience = %d, want 4", res.Reward.Experience)
	}
	if res.Reward.Rest != -5 {
		t.Errorf("reward rest = %d, want -5", res.Reward.Rest)
	}

	if res := g.Step(frame); res.Reward != nil {
		t.Error("reward must only ride the resolving tick")
	}
}

func TestJumpClearsHurdle(t *testing.T) {
	g := startActive(t)

	g.hurdles = []int{runnerX + 2}
	g.nextGap = 1000

	jump := core.NewInputFrame()
	jump.Set(core.ActionPrimary)
	g.Step(jump)

	empty := core.NewInputFrame()
	for range 3 * moveEvery {
		if res := g.Step(empty); res.Phase != core.PhaseActive {
			t.Fatalf("phase = %v, an airborne runner should clear the hurdle", res.Phase)
		}
	}
	if len(g.hurdles) == 0 || g.hurdles[0] >= runnerX {
		t.Errorf("hurdles = %v, want the hurdle scrolled past the runner", g.hurdles)
	}
}

func TestHurdleSpacingWithinBounds(t *testing.T) {
	g := startActive(t)

	frame := core.NewInputFrame()
	jump := core.NewInputFrame()
	jump.Set(core.ActionPrimary)

	prev := -1
	seen := 0
	for i := 0; i < 4000 && seen < 10; i++ {
		in := frame
		// Bunny-hop forever so the run never ends.
		if g.airborne == 0 {
			in = jump
		}
		g.Step(in)
		if len(g.hurdles) > 0 && g.hurdles[len(g.hurdles)-1] == g.fieldW-1 && g.Distance() != prev {
			if prev >= 0 {
				gap := g.Distance() - prev
				if gap < minSpacing || gap >= maxSpacing {
					t.Fatalf("hurdle gap = %d, want in [%d, %d)", gap, minSpacing, maxSpacing)
				}
			}
			prev = g.Distance()
			seen++
		}
	}
	if seen < 2 {
		t.Fatal("never saw enough hurdles spawn")
	}
}

func TestAbortForfeitsAccrued(t *testing.T) {
	g := startActive(t)

	frame := core.NewInputFrame()
	for range 20 {
		g.Step(frame)
	}
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

	g.hurdles = []int{runnerX + 1}
	g.nextGap = 1000
	frame := core.NewInputFrame()
	for g.Phase() == core.PhaseActive {
		g.Step(frame)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.Phase() != core.PhaseIdle {
		t.Fatalf("phase = %v, want Idle after restart", g.Phase())
	}
	if g.Distance() != 0 || len(g.hurdles) != 0 {
		t.Error("restart should clear distance and hurdles")
	}
}
