package pet

import (
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pixelbeasts/petcade/internal/bus"
	"github.com/pixelbeasts/petcade/internal/config"
	"github.com/pixelbeasts/petcade/internal/core"
	"github.com/pixelbeasts/petcade/internal/save"
	"github.com/pixelbeasts/petcade/internal/shop"
	"github.com/pixelbeasts/petcade/internal/storage"
)

// Engine owns the in-memory save document. All mutation goes through it:
// reward applications arriving on the bus inbox, shop purchases, passive
// decay ticks and resets. Every mutation persists the document and
// broadcasts a fresh snapshot to all open windows.
type Engine struct {
	mu     sync.Mutex
	doc    save.Document
	store  *save.Store
	bus    *bus.Bus
	graph  Graph
	tuning config.PetTuning
	ledger *storage.Ledger // optional, best-effort audit trail
	logger *log.Logger
}

// NewEngine loads the save document and wires the engine to the bus.
// A load that fell back to defaults is logged, never surfaced as an error.
func NewEngine(store *save.Store, b *bus.Bus, tuning config.PetTuning) *Engine {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "petcade-engine",
	})

	doc, result := store.Load()
	if result.UsedDefaults() {
		logger.Warn("starting from default save", "reason", result.Reason)
	}

	return &Engine{
		doc:    doc,
		store:  store,
		bus:    b,
		graph:  DefaultGraph,
		tuning: tuning,
		logger: logger,
	}
}

// SetLedger attaches the optional play ledger.
func (e *Engine) SetLedger(l *storage.Ledger) {
	e.mu.Lock()
	e.ledger = l
	e.mu.Unlock()
}

// Start begins serving the bus inbox. All message handling runs on the
// bus's single dispatch goroutine, so reward applications never
// interleave.
func (e *Engine) Start() {
	e.bus.Start(e.handle)
}

// handle dispatches one inbox message.
func (e *Engine) handle(msg bus.Message) {
	switch m := msg.(type) {
	case bus.RewardMsg:
		e.ApplyReward(m.GameID, m.Payload, m.DurationSecs)
	case bus.PetHappyMsg:
		e.bus.Broadcast(bus.CheerEvent{})
	case bus.MoneyRequestMsg:
		e.bus.SendTo(m.From, bus.MoneyResponseEvent{Amount: e.Money()})
	case bus.PetTypeRequestMsg:
		typ, stage := e.PetType()
		e.bus.SendTo(m.From, bus.PetTypeEvent{Type: typ, Stage: stage})
	case bus.PurchasedRequestMsg:
		e.bus.SendTo(m.From, bus.PurchasedEvent{Games: e.PurchasedGames()})
	case bus.BuyGameMsg:
		e.BuyGame(m.GameID)
	case bus.ResetGameMsg:
		e.Reset()
	case bus.GainMoneyMsg:
		e.GainMoney(m.Amount)
	case bus.NameSubmittedMsg:
		e.SetName(m.Name)
	}
}

// ApplyReward applies one session's reward payload to the canonical
// state: each stat delta is clamped into [0, max], money never drops
// below zero. Triggers persistence and a snapshot broadcast.
func (e *Engine) ApplyReward(gameID string, p core.RewardPayload, durationSecs int) {
	e.mu.Lock()

	e.doc.Money = core.Max(0, e.doc.Money+p.Money)
	e.applyStatDelta(save.StatHappiness, p.Happiness)
	e.applyStatDelta(save.StatExperience, p.Experience)
	e.applyStatDelta(save.StatHunger, p.Hunger)
	e.applyStatDelta(save.StatRest, p.Rest)

	e.maybeEvolveLocked()
	e.deriveLifecycleLocked()
	e.persistLocked()

	ledger := e.ledger
	e.mu.Unlock()

	if ledger != nil && gameID != "" {
		if _, err := ledger.RecordSession(gameID, p, durationSecs); err != nil {
			e.logger.Warn("could not record session", "game", gameID, "error", err)
		}
	}

	e.broadcastState()
}

// applyStatDelta adds delta to the named stat and clamps. Caller holds
// the lock.
func (e *Engine) applyStatDelta(name string, delta int) {
	if delta == 0 {
		return
	}
	s := e.doc.StoredStats[name]
	s.Value += delta
	e.doc.StoredStats[name] = s.Clamped()
}

// maybeEvolveLocked consumes experience into evolution stages while the
// configured threshold is met and the current type still has a successor.
func (e *Engine) maybeEvolveLocked() {
	threshold := e.tuning.Evolution.ExperienceToEvolve
	if threshold <= 0 {
		return
	}
	for {
		exp := e.doc.StoredStats[save.StatExperience]
		if exp.Value < threshold {
			return
		}
		if !HasSuccessor(e.graph, e.doc.CurrentPetType, e.doc.CurrentEvolutionStage) {
			return
		}
		e.doc.CurrentEvolutionStage++
		exp.Value -= threshold
		e.doc.StoredStats[save.StatExperience] = exp.Clamped()
		e.logger.Info("pet evolved",
			"type", Resolve(e.graph, e.doc.CurrentPetType, e.doc.CurrentEvolutionStage),
			"stage", e.doc.CurrentEvolutionStage)
	}
}

// Evolve advances the evolution stage by one if the currently resolved
// type has a successor; otherwise it is a no-op.
func (e *Engine) Evolve() {
	e.mu.Lock()
	if HasSuccessor(e.graph, e.doc.CurrentPetType, e.doc.CurrentEvolutionStage) {
		e.doc.CurrentEvolutionStage++
		e.persistLocked()
	}
	e.mu.Unlock()
	e.broadcastState()
}

// deriveLifecycleLocked recomputes the sleeping/sick/dead flags from the
// current stats. Death is sticky until a reset.
func (e *Engine) deriveLifecycleLocked() {
	lc := e.tuning.Lifecycle
	health := e.doc.StoredStats[save.StatHealth].Value
	rest := e.doc.StoredStats[save.StatRest].Value

	if health <= 0 {
		e.doc.IsPetDead = true
	}
	if e.doc.IsPetDead {
		e.doc.IsPetSleeping = false
		e.doc.IsPetSick = false
		return
	}

	e.doc.IsPetSick = health <= lc.SickBelowHealth

	if rest <= lc.SleepBelowRest {
		e.doc.IsPetSleeping = true
	} else if rest >= lc.WakeAboveRest {
		e.doc.IsPetSleeping = false
	}
}

// Tick applies one interval of passive stat decay: hunger and happiness
// drain while awake, rest drains awake and recovers asleep. An empty
// hunger or rest gauge costs health.
func (e *Engine) Tick() {
	e.mu.Lock()
	if e.doc.IsPetDead || e.doc.HasEgg {
		e.mu.Unlock()
		return
	}

	d := e.tuning.Decay
	e.applyStatDelta(save.StatHunger, -d.Hunger)
	e.applyStatDelta(save.StatHappiness, -d.Happiness)
	if e.doc.IsPetSleeping {
		e.applyStatDelta(save.StatRest, d.SleepRecover)
	} else {
		e.applyStatDelta(save.StatRest, -d.Rest)
	}

	if e.doc.StoredStats[save.StatHunger].Value == 0 || e.doc.StoredStats[save.StatRest].Value == 0 {
		e.applyStatDelta(save.StatHealth, -1)
	}

	e.deriveLifecycleLocked()
	e.persistLocked()
	e.mu.Unlock()

	e.broadcastState()
}

// StartDecay runs Tick on the given interval until the returned stop
// function is called.
func (e *Engine) StartDecay(interval time.Duration) (stop func()) {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				e.Tick()
			case <-done:
				return
			}
		}
	}()
	return func() {
		ticker.Stop()
		close(done)
	}
}

// BuyGame purchases a catalog game: deducts the price if affordable,
// flips the unlock flag and announces the unlock. Returns false if the
// game is unknown, already owned, or the balance is short.
func (e *Engine) BuyGame(gameID string) bool {
	item, ok := shop.Find(gameID)
	if !ok {
		return false
	}

	e.mu.Lock()
	if e.doc.PurchasedGames[gameID] || e.doc.Money < item.Price {
		e.mu.Unlock()
		return false
	}
	e.doc.Money -= item.Price
	e.doc.PurchasedGames[gameID] = true
	e.persistLocked()
	ledger := e.ledger
	e.mu.Unlock()

	if ledger != nil {
		if _, err := ledger.RecordPurchase(gameID, item.Price); err != nil {
			e.logger.Warn("could not record purchase", "game", gameID, "error", err)
		}
	}

	e.bus.Broadcast(bus.GameUnlockedEvent{GameID: gameID})
	e.broadcastState()
	return true
}

// GainMoney credits the balance directly (debug/test surface). Negative
// amounts still floor at zero.
func (e *Engine) GainMoney(amount int) {
	e.mu.Lock()
	e.doc.Money = core.Max(0, e.doc.Money+amount)
	e.persistLocked()
	e.mu.Unlock()
	e.broadcastState()
}

// SetName validates and stores the pet name. Naming the pet hatches the
// egg. Invalid names are ignored.
func (e *Engine) SetName(name string) bool {
	if !save.ValidPetName(name) {
		e.logger.Warn("rejected pet name", "name", name)
		return false
	}
	e.mu.Lock()
	e.doc.PetName = name
	if e.doc.HasEgg {
		e.doc.HasEgg = false
		e.doc.IsEggHatched = true
	}
	e.persistLocked()
	e.mu.Unlock()
	e.broadcastState()
	return true
}

// Reset deletes the save and starts over from the default document.
func (e *Engine) Reset() {
	e.mu.Lock()
	if !e.store.Delete() {
		e.logger.Warn("could not delete save file", "path", e.store.Path())
	}
	e.doc = save.DefaultDocument()
	e.persistLocked()
	e.mu.Unlock()
	e.broadcastState()
}

// Money returns the current balance.
func (e *Engine) Money() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Money
}

// PetType returns the base pet type and evolution stage. Consumers
// resolve the display type themselves via Resolve.
func (e *Engine) PetType() (string, int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.CurrentPetType, e.doc.CurrentEvolutionStage
}

// PurchasedGames returns a copy of the game unlock map.
func (e *Engine) PurchasedGames() map[string]bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]bool, len(e.doc.PurchasedGames))
	for k, v := range e.doc.PurchasedGames {
		out[k] = v
	}
	return out
}

// Document returns a deep copy of the canonical document.
func (e *Engine) Document() save.Document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Clone()
}

// Snapshot builds the read-only state copy pushed to windows.
func (e *Engine) Snapshot() bus.SnapshotEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

func (e *Engine) snapshotLocked() bus.SnapshotEvent {
	stats := make(map[string]core.StatValue, len(e.doc.StoredStats))
	for k, v := range e.doc.StoredStats {
		stats[k] = v
	}
	return bus.SnapshotEvent{
		Name:     e.doc.PetName,
		Money:    e.doc.Money,
		PetType:  e.doc.CurrentPetType,
		Stage:    e.doc.CurrentEvolutionStage,
		Stats:    stats,
		HasEgg:   e.doc.HasEgg,
		Sleeping: e.doc.IsPetSleeping,
		Sick:     e.doc.IsPetSick,
		Dead:     e.doc.IsPetDead,
	}
}

// persistLocked writes the document to disk. Failure is logged, never
// fatal. Caller holds the lock.
func (e *Engine) persistLocked() {
	if !e.store.Save(e.doc) {
		e.logger.Warn("could not write save file", "path", e.store.Path())
	}
}

// broadcastState pushes the authoritative snapshot and balance to every
// open window, including whichever window caused the mutation.
func (e *Engine) broadcastState() {
	e.mu.Lock()
	snap := e.snapshotLocked()
	e.mu.Unlock()
	e.bus.Broadcast(snap)
	e.bus.Broadcast(bus.MoneyUpdateEvent{Amount: snap.Money})
}
