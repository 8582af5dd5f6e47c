// Package config provides YAML-based tuning for the pet engine and the
// minigames: lifecycle thresholds, stat decay, evolution policy and the
// slot machine paytable.
package config

// Tuning is the root configuration document.
type Tuning struct {
	Pet      PetTuning      `yaml:"pet"`
	Slots    SlotsTuning    `yaml:"slots"`
	Reaction ReactionTuning `yaml:"reaction"`
}

// PetTuning governs the stat/evolution engine.
type PetTuning struct {
	Lifecycle LifecycleTuning `yaml:"lifecycle"`
	Evolution EvolutionTuning `yaml:"evolution"`
	Decay     DecayTuning     `yaml:"decay"`
}

// LifecycleTuning defines the stat thresholds that derive the pet's
// lifecycle flags.
type LifecycleTuning struct {
	SickBelowHealth int `yaml:"sick_below_health"` // health at or below -> sick
	SleepBelowRest  int `yaml:"sleep_below_rest"`  // rest at or below -> falls asleep
	WakeAboveRest   int `yaml:"wake_above_rest"`   // rest at or above -> wakes up
}

// EvolutionTuning defines when the pet advances an evolution stage.
type EvolutionTuning struct {
	ExperienceToEvolve int `yaml:"experience_to_evolve"` // experience consumed per stage
}

// DecayTuning defines passive stat drain per decay tick while the pet
// is awake. Sleeping recovers rest instead of draining it.
type DecayTuning struct {
	Hunger       int `yaml:"hunger"`
	Rest         int `yaml:"rest"`
	Happiness    int `yaml:"happiness"`
	SleepRecover int `yaml:"sleep_recover"` // rest regained per tick while sleeping
}

// SlotsTuning defines the slot machine bets and paytable.
type SlotsTuning struct {
	Bets     []int              `yaml:"bets"`     // selectable bet sizes
	Paytable map[string]float64 `yaml:"paytable"` // symbol -> triple-match multiplier
	PairRate float64            `yaml:"pair_rate"` // multiplier for a two-symbol match
}

// ReactionTuning defines the reaction game's target.
type ReactionTuning struct {
	TargetSeconds float64 `yaml:"target_seconds"`
}
