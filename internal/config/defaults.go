package config

import (
	_ "embed"
)

//go:embed defaults/petcade.yaml
var defaultTuningYAML []byte

// DefaultTuning returns the hardcoded fallback tuning, used if even the
// embedded YAML fails to parse.
func DefaultTuning() Tuning {
	return Tuning{
		Pet: PetTuning{
			Lifecycle: LifecycleTuning{
				SickBelowHealth: 25,
				SleepBelowRest:  10,
				WakeAboveRest:   80,
			},
			Evolution: EvolutionTuning{
				ExperienceToEvolve: 100,
			},
			Decay: DecayTuning{
				Hunger:       2,
				Rest:         1,
				Happiness:    1,
				SleepRecover: 5,
			},
		},
		Slots: SlotsTuning{
			Bets:     []int{5, 10, 25, 50},
			PairRate: 0.5,
			Paytable: map[string]float64{
				"cherry": 1.5,
				"lemon":  2.0,
				"cake":   2.5,
				"bell":   3.0,
				"star":   5.0,
				"seven":  10.0,
			},
		},
		Reaction: ReactionTuning{
			TargetSeconds: 10.0,
		},
	}
}
