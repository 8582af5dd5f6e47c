package pet

import (
	"path/filepath"
	"testing"

	"github.com/pixelbeasts/petcade/internal/bus"
	"github.com/pixelbeasts/petcade/internal/config"
	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/save"
)

// newTestEngine builds an engine over a temp save file. The document
// starts hatched so decay ticks apply; mutate adjusts it before the
// engine loads.
func newTestEngine(t *testing.T, mutate func(*save.Document)) *Engine {
	t.Helper()

	store := save.NewStore(filepath.Join(t.TempDir(), "save.json"))
	doc := save.DefaultDocument()
	doc.HasEgg = false
	doc.IsEggHatched = true
	if mutate != nil {
		mutate(&doc)
	}
	if !store.Save(doc) {
		t.Fatal("could not seed save file")
	}

	return NewEngine(store, bus.New(), config.DefaultTuning().Pet)
}

func stat(e *Engine, name string) core.StatValue {
	return e.Document().StoredStats[name]
}

func TestApplyRewardClampsStats(t *testing.T) {
	e := newTestEngine(t, nil)

	e.ApplyReward("slots", core.RewardPayload{Happiness: 500}, 1)
	if got := stat(e, save.StatHappiness); got.Value != got.Max {
		t.Errorf("happiness = %d, want clamped to max %d", got.Value, got.Max)
	}

	e.ApplyReward("slots", core.RewardPayload{Happiness: -500}, 1)
	if got := stat(e, save.StatHappiness).Value; got != 0 {
		t.Errorf("happiness = %d, want clamped to 0", got)
	}
}

func TestApplyRewardMoneyNeverNegative(t *testing.T) {
	e := newTestEngine(t, nil)

	e.ApplyReward("slots", core.RewardPayload{Money: -1000}, 1)
	if got := e.Money(); got != 0 {
		t.Errorf("Money = %d, want floor at 0", got)
	}

	e.ApplyReward("slots", core.RewardPayload{Money: 25}, 1)
	if got := e.Money(); got != 25 {
		t.Errorf("Money = %d, want 25", got)
	}
}

func TestApplyRewardEvolvesAtThreshold(t *testing.T) {
	e := newTestEngine(t, nil)

	e.ApplyReward("snake", core.RewardPayload{Experience: 100}, 1)

	typ, stage := e.PetType()
	if stage != 2 {
		t.Fatalf("stage = %d, want 2 after reaching the experience threshold", stage)
	}
	if Resolve(DefaultGraph, typ, stage) != "duck" {
		t.Errorf("resolved type = %q, want duck", Resolve(DefaultGraph, typ, stage))
	}
	if got := stat(e, save.StatExperience).Value; got != 0 {
		t.Errorf("experience = %d, want consumed to 0", got)
	}
}

func TestApplyRewardEvolvesMultipleStages(t *testing.T) {
	e := newTestEngine(t, nil)

	// Experience caps at 100, so feed it in two installments.
	e.ApplyReward("snake", core.RewardPayload{Experience: 100}, 1)
	e.ApplyReward("snake", core.RewardPayload{Experience: 100}, 1)

	_, stage := e.PetType()
	if stage != 3 {
		t.Errorf("stage = %d, want 3", stage)
	}
}

func TestTerminalTypeStopsEvolving(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.CurrentEvolutionStage = 3 // swan
	})

	e.ApplyReward("snake", core.RewardPayload{Experience: 100}, 1)

	_, stage := e.PetType()
	if stage != 3 {
		t.Errorf("stage = %d, want 3 (terminal types do not evolve)", stage)
	}
}

func TestEvolveDirectNoOpAtTerminal(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.CurrentEvolutionStage = 3
	})

	e.Evolve()
	_, stage := e.PetType()
	if stage != 3 {
		t.Errorf("stage = %d, want 3", stage)
	}
}

func TestLifecycleSickAndDead(t *testing.T) {
	e := newTestEngine(t, nil)

	// Drop health under the sick threshold.
	e.ApplyReward("", core.RewardPayload{}, 0)
	e.mu.Lock()
	e.doc.StoredStats[save.StatHealth] = core.StatValue{Value: 20, Max: 100}
	e.deriveLifecycleLocked()
	e.mu.Unlock()

	if doc := e.Document(); !doc.IsPetSick {
		t.Error("health 20 should mark the pet sick")
	}

	e.mu.Lock()
	e.doc.StoredStats[save.StatHealth] = core.StatValue{Value: 0, Max: 100}
	e.deriveLifecycleLocked()
	e.mu.Unlock()

	if doc := e.Document(); !doc.IsPetDead {
		t.Error("health 0 should mark the pet dead")
	}

	// Death is sticky: restoring health does not revive.
	e.ApplyReward("", core.RewardPayload{Happiness: 10}, 0)
	if doc := e.Document(); !doc.IsPetDead {
		t.Error("death should be sticky until reset")
	}
}

func TestLifecycleSleepHysteresis(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.StoredStats[save.StatRest] = core.StatValue{Value: 8, Max: 100}
	})

	e.ApplyReward("", core.RewardPayload{}, 0)
	if doc := e.Document(); !doc.IsPetSleeping {
		t.Fatal("rest 8 should put the pet to sleep")
	}

	// Rest between the two thresholds keeps it asleep.
	e.ApplyReward("", core.RewardPayload{Rest: 40}, 0)
	if doc := e.Document(); !doc.IsPetSleeping {
		t.Error("rest 48 should keep the pet asleep")
	}

	// Crossing the wake threshold wakes it.
	e.ApplyReward("", core.RewardPayload{Rest: 50}, 0)
	if doc := e.Document(); doc.IsPetSleeping {
		t.Error("rest 98 should wake the pet")
	}
}

func TestTickDecay(t *testing.T) {
	e := newTestEngine(t, nil)
	before := e.Document()

	e.Tick()
	after := e.Document()

	if after.StoredStats[save.StatHunger].Value >= before.StoredStats[save.StatHunger].Value {
		t.Error("hunger should decay on tick")
	}
	if after.StoredStats[save.StatHappiness].Value >= before.StoredStats[save.StatHappiness].Value {
		t.Error("happiness should decay on tick")
	}
	if after.StoredStats[save.StatRest].Value >= before.StoredStats[save.StatRest].Value {
		t.Error("rest should decay while awake")
	}
}

func TestTickRecoversRestWhileAsleep(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.IsPetSleeping = true
		d.StoredStats[save.StatRest] = core.StatValue{Value: 5, Max: 100}
	})

	e.Tick()
	if got := stat(e, save.StatRest).Value; got != 10 {
		t.Errorf("rest = %d, want 10 after one sleeping tick", got)
	}
}

func TestTickStarvationCostsHealth(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.StoredStats[save.StatHunger] = core.StatValue{Value: 0, Max: 100}
	})

	e.Tick()
	if got := stat(e, save.StatHealth).Value; got != 99 {
		t.Errorf("health = %d, want 99 after a starving tick", got)
	}
}

func TestTickSkipsEggAndDead(t *testing.T) {
	egg := newTestEngine(t, func(d *save.Document) {
		d.HasEgg = true
	})
	egg.Tick()
	if got := stat(egg, save.StatHunger).Value; got != 100 {
		t.Errorf("hunger = %d, egg should not decay", got)
	}

	dead := newTestEngine(t, func(d *save.Document) {
		d.IsPetDead = true
	})
	dead.Tick()
	if got := stat(dead, save.StatHunger).Value; got != 100 {
		t.Errorf("hunger = %d, dead pet should not decay", got)
	}
}

func TestBuyGame(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.Money = 60
	})

	if !e.BuyGame("snake") {
		t.Fatal("buying snake with $60 should succeed")
	}
	if got := e.Money(); got != 10 {
		t.Errorf("Money = %d, want 10 after the purchase", got)
	}
	if !e.PurchasedGames()["snake"] {
		t.Error("snake should be unlocked")
	}

	if e.BuyGame("snake") {
		t.Error("buying an owned game should fail")
	}
	if e.BuyGame("memory") {
		t.Error("buying with $10 should fail")
	}
	if e.BuyGame("nosuchgame") {
		t.Error("buying an unknown game should fail")
	}
}

func TestSetNameHatchesEgg(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.HasEgg = true
		d.IsEggHatched = false
	})

	if e.SetName(`bad/name`) {
		t.Error("invalid name should be rejected")
	}
	if doc := e.Document(); !doc.HasEgg {
		t.Error("rejected name must not hatch the egg")
	}

	if !e.SetName("Waddles") {
		t.Fatal("valid name should be accepted")
	}
	doc := e.Document()
	if doc.PetName != "Waddles" {
		t.Errorf("PetName = %q, want Waddles", doc.PetName)
	}
	if doc.HasEgg || !doc.IsEggHatched {
		t.Error("naming the pet should hatch the egg")
	}
}

func TestGainMoneyFloorsAtZero(t *testing.T) {
	e := newTestEngine(t, nil)

	e.GainMoney(-500)
	if got := e.Money(); got != 0 {
		t.Errorf("Money = %d, want 0", got)
	}

	e.GainMoney(42)
	if got := e.Money(); got != 42 {
		t.Errorf("Money = %d, want 42", got)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.PetName = "Waddles"
		d.Money = 999
		d.CurrentEvolutionStage = 3
		d.PurchasedGames["snake"] = true
	})

	e.Reset()
	doc := e.Document()
	def := save.DefaultDocument()

	if doc.PetName != def.PetName {
		t.Errorf("PetName = %q, want %q", doc.PetName, def.PetName)
	}
	if doc.Money != def.Money {
		t.Errorf("Money = %d, want %d", doc.Money, def.Money)
	}
	if doc.CurrentEvolutionStage != 1 {
		t.Errorf("stage = %d, want 1", doc.CurrentEvolutionStage)
	}
	if !doc.HasEgg {
		t.Error("reset should hand out a fresh egg")
	}
	if doc.PurchasedGames["snake"] {
		t.Error("reset should relock purchased games")
	}
	if !doc.PurchasedGames["slots"] {
		t.Error("slots stays free after reset")
	}
}

func TestSnapshotMatchesDocument(t *testing.T) {
	e := newTestEngine(t, func(d *save.Document) {
		d.PetName = "Waddles"
		d.Money = 77
		d.CurrentEvolutionStage = 2
	})

	snap := e.Snapshot()
	if snap.Name != "Waddles" || snap.Money != 77 || snap.Stage != 2 {
		t.Errorf("snapshot mismatch: %+v", snap)
	}
	if len(snap.Stats) != len(save.StatNames) {
		t.Errorf("snapshot has %d stats, want %d", len(snap.Stats), len(save.StatNames))
	}

	// The snapshot is a copy, not a view.
	snap.Stats[save.StatHealth] = core.StatValue{Value: 1, Max: 100}
	if stat(e, save.StatHealth).Value == 1 {
		t.Error("snapshot stats should be a copy")
	}
}
