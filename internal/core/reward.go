package core

import "encoding/json"

// RewardPayload is a batch of deltas a minigame session reports once per
// play-through: a money delta plus optional stat deltas. Every field is a
// delta; a zero value means "no change".
type RewardPayload struct {
	Money      int `json:"money,omitempty"`
	Happiness  int `json:"happiness,omitempty"`
	Experience int `json:"experience,omitempty"`
	Hunger     int `json:"hunger,omitempty"`
	Rest       int `json:"rest,omitempty"`
}

// IsZero reports whether the payload carries no deltas at all.
func (r RewardPayload) IsZero() bool {
	return r == RewardPayload{}
}

// Add merges another payload into this one field by field.
func (r *RewardPayload) Add(other RewardPayload) {
	r.Money += other.Money
	r.Happiness += other.Happiness
	r.Experience += other.Experience
	r.Hunger += other.Hunger
	r.Rest += other.Rest
}

// DecodeReward parses a reward payload from JSON. Fields that are missing
// or not numeric decode as zero deltas; the payload as a whole is never
// rejected. Only input that is not a JSON object at all yields an error.
func DecodeReward(data []byte) (RewardPayload, error) {
	var loose map[string]any
	var p RewardPayload
	if err := json.Unmarshal(data, &loose); err != nil {
		return p, err
	}

	p.Money = intField(loose, "money")
	p.Happiness = intField(loose, "happiness")
	p.Experience = intField(loose, "experience")
	p.Hunger = intField(loose, "hunger")
	p.Rest = intField(loose, "rest")
	return p, nil
}

// intField reads a numeric field from a loosely-typed JSON object.
// Non-numeric values count as zero.
func intField(obj map[string]any, key string) int {
	if n, ok := obj[key].(float64); ok {
		return int(n)
	}
	return 0
}

// StatValue is a bounded stat: Value is always kept within [0, Max].
type StatValue struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// Clamped returns a copy with Value clamped into [0, Max].
func (s StatValue) Clamped() StatValue {
	s.Value = Clamp(s.Value, 0, s.Max)
	return s
}
