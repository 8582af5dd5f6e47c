package mathsolver

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/pixelbeasts/petcade/internal/core"
)

func startActive(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.SessionConfig{TickRate: 30, Seed: 42})

	frame := core.NewInputFrame()
	frame.Set(core.ActionStart)
	if res := g.Step(frame); res.Phase != core.PhaseActive {
		t.Fatalf("phase = %v, want Active", res.Phase)
	}
	return g
}

// answer types the correct answer and submits it in one tick.
func answer(g *Game, correct bool) {
	frame := core.NewInputFrame()
	value := g.problem.Answer
	if !correct {
		value = g.problem.Answer + 1
	}
	for _, r := range strconv.Itoa(value) {
		frame.Type(r)
	}
	frame.Set(core.ActionPrimary)
	g.Step(frame)
}

func TestNewProblemAnswersAreConsistent(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for range 200 {
		p := NewProblem(rng)
		var want int
		switch p.Op {
		case '+':
			want = p.A + p.B
		case '-':
			want = p.A - p.B
		case '*':
			want = p.A * p.B
		default:
			t.Fatalf("unknown op %q", p.Op)
		}
		if p.Answer != want {
			t.Fatalf("%d %c %d: answer %d, want %d", p.A, p.Op, p.B, p.Answer, want)
		}
		if p.Op == '-' && p.Answer < 0 {
			t.Fatalf("subtraction went negative: %d %c %d", p.A, p.Op, p.B)
		}
	}
}

func TestStreakBanksOncePerThreeCorrect(t *testing.T) {
	g := startActive(t)

	answer(g, true)
	answer(g, true)
	if g.accrued.Money != 0 {
		t.Fatalf("money = %d after 2 correct, want 0 (paid only on completed streaks)", g.accrued.Money)
	}

	answer(g, true)
	if g.accrued.Money != 12 {
		t.Fatalf("money = %d after 3 correct, want 12", g.accrued.Money)
	}

	// The fourth correct answer starts a new streak, no extra payout.
	answer(g, true)
	if g.accrued.Money != 12 {
		t.Errorf("money = %d after 4 correct, want still 12", g.accrued.Money)
	}

	answer(g, true)
	answer(g, true)
	if g.accrued.Money != 24 {
		t.Errorf("money = %d after 6 correct, want 24", g.accrued.Money)
	}
	if g.accrued.Experience != 12 {
		t.Errorf("experience = %d, want 2 per correct answer", g.accrued.Experience)
	}
}

func TestMistakeResetsStreak(t *testing.T) {
	g := startActive(t)

	answer(g, true)
	answer(g, true)
	answer(g, false)
	answer(g, true)
	answer(g, true)
	if g.accrued.Money != 0 {
		t.Errorf("money = %d, want 0 (streak broken at 2)", g.accrued.Money)
	}

	answer(g, true)
	if g.accrued.Money != 12 {
		t.Errorf("money = %d, want 12 after rebuilding the streak", g.accrued.Money)
	}
}

func TestThreeMistakesResolve(t *testing.T) {
	g := startActive(t)

	answer(g, true)
	answer(g, false)
	answer(g, false)

	// Third mistake ends the session on the submitting tick.
	frame := core.NewInputFrame()
	frame.Type('9')
	frame.Type('9')
	frame.Type('9')
	frame.Type('9')
	frame.Set(core.ActionPrimary)
	res := g.Step(frame)

	if res.Phase != core.PhaseResolved {
		t.Fatalf("phase = %v, want Resolved after three mistakes", res.Phase)
	}
	if res.Reward == nil {
		t.Fatal("resolving tick must carry the reward")
	}
	if res.Reward.Experience != 2 {
		t.Errorf("reward experience = %d, want 2 for the one correct answer", res.Reward.Experience)
	}
}

func TestTimeoutResolves(t *testing.T) {
	g := startActive(t)

	frame := core.NewInputFrame()
	var reward *core.RewardPayload
	for g.Phase() == core.PhaseActive {
		if res := g.Step(frame); res.Reward != nil {
			reward = res.Reward
		}
	}

	if reward == nil {
		t.Fatal("timeout must resolve with a reward payload")
	}
	if g.endReason != "time ran out" {
		t.Errorf("endReason = %q, want timeout", g.endReason)
	}
}

func TestBackspaceEditsEntry(t *testing.T) {
	g := startActive(t)

	frame := core.NewInputFrame()
	frame.Type('1')
	frame.Type('2')
	g.Step(frame)
	if g.entry != "12" {
		t.Fatalf("entry = %q, want 12", g.entry)
	}

	frame.Clear()
	frame.Set(core.ActionLeft)
	g.Step(frame)
	if g.entry != "1" {
		t.Errorf("entry = %q, want 1 after backspace", g.entry)
	}
}

func TestCorrectAnswerResetsClock(t *testing.T) {
	g := startActive(t)

	// Burn some time, then answer correctly.
	frame := core.NewInputFrame()
	for range 100 {
		g.Step(frame)
	}
	before := g.ticksLeft

	answer(g, true)
	if g.ticksLeft <= before {
		t.Errorf("ticksLeft = %d, want reset above %d after a correct answer", g.ticksLeft, before)
	}
}
