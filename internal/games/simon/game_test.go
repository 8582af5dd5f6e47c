package simon

import (
	"testing"

	"github.com/pixelbeasts/petcade/internal/core"
)

var arrowActions = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

func startActive(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.SessionConfig{ScreenW: 60, ScreenH: 24, TickRate: 30, Seed: 7})

	frame := core.NewInputFrame()
	frame.Set(core.ActionStart)
	if res := g.Step(frame); res.Phase != core.PhaseActive {
		t.Fatalf("phase = %v, want Active", res.Phase)
	}
	return g
}

// drainPlayback steps with no input until the sequence animation ends.
func drainPlayback(t *testing.T, g *Game) {
	t.Helper()
	frame := core.NewInputFrame()
	for i := 0; g.showing; i++ {
		if i > 1000 {
			t.Fatal("playback never finished")
		}
		g.Step(frame)
	}
}

// press feeds one arrow press for sequence element dir.
func press(g *Game, dir int) core.StepResult {
	frame := core.NewInputFrame()
	frame.Set(arrowActions[dir])
	return g.Step(frame)
}

func TestFirstRoundHasThreeElements(t *testing.T) {
	g := startActive(t)
	if len(g.sequence) != startLength {
		t.Fatalf("sequence length = %d, want %d", len(g.sequence), startLength)
	}
	if !g.showing {
		t.Error("session should start in playback")
	}
}

func TestPlaybackTiming(t *testing.T) {
	g := startActive(t)

	// Each element is lit for showTicks then dark for betweenTicks.
	total := startLength * (showTicks + betweenTicks)
	frame := core.NewInputFrame()
	for i := 0; i < total-1; i++ {
		g.Step(frame)
		if !g.showing {
			t.Fatalf("playback ended early at tick %d", i+1)
		}
	}
	g.Step(frame)
	if g.showing {
		t.Error("playback should be over")
	}
}

func TestInputIgnoredDuringPlayback(t *testing.T) {
	g := startActive(t)

	// A wrong arrow during playback must not end the session.
	wrong := (g.sequence[0] + 1) % len(arrows)
	if res := press(g, wrong); res.Phase != core.PhaseActive {
		t.Fatalf("phase = %v, input during playback should be ignored", res.Phase)
	}
	if g.inputPos != 0 {
		t.Errorf("inputPos = %d, want 0", g.inputPos)
	}
}

func TestCompletingSequenceStartsNextRound(t *testing.T) {
	g := startActive(t)
	drainPlayback(t, g)

	seq := append([]int(nil), g.sequence...)
	for _, dir := range seq {
		press(g, dir)
	}

	if g.Round() != 1 {
		t.Fatalf("round = %d, want 1", g.Round())
	}
	if len(g.sequence) != startLength+1 {
		t.Errorf("sequence length = %d, want %d after one round", len(g.sequence), startLength+1)
	}
	if !g.showing {
		t.Error("next round should replay the sequence")
	}
	if g.accrued.Experience != 2 {
		t.Errorf("accrued experience = %d, want 2", g.accrued.Experience)
	}
}

func TestWrongArrowResolvesWithRoundPayout(t *testing.T) {
	g := startActive(t)

	// Complete two rounds, then fail on purpose.
	for range 2 {
		drainPlayback(t, g)
		seq := append([]int(nil), g.sequence...)
		for _, dir := range seq {
			press(g, dir)
		}
	}
	drainPlayback(t, g)

	wrong := (g.sequence[0] + 1) % len(arrows)
	res := press(g, wrong)

	if res.Phase != core.PhaseResolved {
		t.Fatalf("phase = %v, want Resolved", res.Phase)
	}
	if res.Reward == nil {
		t.Fatal("the failing press must carry the reward")
	}
	if res.Reward.Money != 2*payPerRound {
		t.Errorf("reward money = %d, want %d", res.Reward.Money, 2*payPerRound)
	}
	if res.Reward.Experience != 4 {
		t.Errorf("reward experience = %d, want 4", res.Reward.Experience)
	}
	if res.Reward.Happiness != 3 {
		t.Errorf("reward happiness = %d, want 3", res.Reward.Happiness)
	}

	// Resolved sessions emit no further reward.
	frame := core.NewInputFrame()
	if res := g.Step(frame); res.Reward != nil {
		t.Error("reward must only ride the resolving tick")
	}
}

func TestFailingFirstRoundPaysNothing(t *testing.T) {
	g := startActive(t)
	drainPlayback(t, g)

	wrong := (g.sequence[0] + 1) % len(arrows)
	res := press(g, wrong)

	if res.Reward == nil {
		t.Fatal("the failing press must carry the reward")
	}
	if res.Reward.Money != 0 || res.Reward.Happiness != 0 {
		t.Errorf("reward = %+v, want nothing for zero completed rounds", *res.Reward)
	}
}

func TestAbortForfeitsAccrued(t *testing.T) {
	g := startActive(t)
	drainPlayback(t, g)

	seq := append([]int(nil), g.sequence...)
	for _, dir := range seq {
		press(g, dir)
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
	drainPlayback(t, g)

	wrong := (g.sequence[0] + 1) % len(arrows)
	press(g, wrong)

	frame := core.NewInputFrame()
	frame.Set(core.ActionRestart)
	g.Step(frame)

	if g.Phase() != core.PhaseIdle {
		t.Fatalf("phase = %v, want Idle after restart", g.Phase())
	}
	if g.sequence != nil || g.Round() != 0 {
		t.Error("restart should clear the sequence and rounds")
	}
}
