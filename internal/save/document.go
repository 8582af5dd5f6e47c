// Package save provides durable JSON persistence for the pet's canonical
// state: identity, stats, currency and unlocked content. The on-disk format
// is human-diffable (2-space indent) and versioned for forward migration.
package save

import (
	"encoding/json"
	"strings"
	"time"
	"unicode"

	"github.com/pixelbeasts/petcade/internal/core"
)

// Version is the current save schema tag.
const Version = "1.2.0"

// DefaultPetName is used until the player names the pet.
const DefaultPetName = "Pixel"

// StarterPetType is the base node of the evolution graph and the fallback
// for unknown pet-type identifiers.
const StarterPetType = "chick"

// Stat names present in every document.
const (
	StatHealth     = "health"
	StatRest       = "rest"
	StatHunger     = "hunger"
	StatHappiness  = "happiness"
	StatExperience = "experience"
)

// StatNames lists the five pet stats in display order.
var StatNames = []string{StatHealth, StatRest, StatHunger, StatHappiness, StatExperience}

// KnownGames is the fixed set of minigame ids a document tracks unlocks
// for. Loading backfills missing ids with false and drops unknown ids;
// this is the backward/forward-compatibility contract of the save format.
var KnownGames = []string{
	"slots", "snake", "memory", "reaction", "mathsolver", "simon", "hurdles", "catch",
}

// Document is the durable save state. It is exclusively owned and mutated
// by the engine; every other consumer holds read-only snapshots.
type Document struct {
	Version               string                    `json:"version"`
	PetName               string                    `json:"petName"`
	CurrentPetType        string                    `json:"currentPetType"`
	CurrentEvolutionStage int                       `json:"currentEvolutionStage"`
	IsEggHatched          bool                      `json:"isEggHatched"`
	HasEgg                bool                      `json:"hasEgg"`
	IsPetSleeping         bool                      `json:"isPetSleeping"`
	IsPetExercising       bool                      `json:"isPetExercising"`
	IsPetSick             bool                      `json:"isPetSick"`
	IsPetDead             bool                      `json:"isPetDead"`
	StoredStats           map[string]core.StatValue `json:"storedStats"`
	WasteCount            int                       `json:"wasteCount"`
	Money                 int                       `json:"money"`
	PurchasedGames        map[string]bool           `json:"purchasedGames"`
	ActiveToys            json.RawMessage           `json:"activeToys,omitempty"`
	TimerStates           json.RawMessage           `json:"timerStates,omitempty"`
	LastSaveTime          time.Time                 `json:"lastSaveTime"`
}

// DefaultDocument returns the document a fresh game starts from: an
// unhatched egg, full stats, starting money and only the free game
// unlocked.
func DefaultDocument() Document {
	return Document{
		Version:               Version,
		PetName:               DefaultPetName,
		CurrentPetType:        StarterPetType,
		CurrentEvolutionStage: 1,
		HasEgg:                true,
		StoredStats: map[string]core.StatValue{
			StatHealth:     {Value: 100, Max: 100},
			StatRest:       {Value: 100, Max: 100},
			StatHunger:     {Value: 100, Max: 100},
			StatHappiness:  {Value: 100, Max: 100},
			StatExperience: {Value: 0, Max: 100},
		},
		Money: 100,
		PurchasedGames: map[string]bool{
			"slots":      true, // the starter game is free
			"snake":      false,
			"memory":     false,
			"reaction":   false,
			"mathsolver": false,
			"simon":      false,
			"hurdles":    false,
			"catch":      false,
		},
	}
}

// Normalize repairs a loaded document in place: fields absent from an old
// save are backfilled from defaults, recursively for the storedStats and
// purchasedGames sub-maps; unknown game ids are dropped and every stat is
// clamped back into its bounds.
func Normalize(doc *Document) {
	def := DefaultDocument()

	if doc.Version == "" {
		doc.Version = def.Version
	}
	if strings.TrimSpace(doc.PetName) == "" {
		doc.PetName = def.PetName
	}
	if doc.CurrentPetType == "" {
		doc.CurrentPetType = def.CurrentPetType
	}
	if doc.CurrentEvolutionStage < 1 {
		doc.CurrentEvolutionStage = 1
	}
	if doc.WasteCount < 0 {
		doc.WasteCount = 0
	}
	if doc.Money < 0 {
		doc.Money = 0
	}

	if doc.StoredStats == nil {
		doc.StoredStats = map[string]core.StatValue{}
	}
	for name, defStat := range def.StoredStats {
		s, ok := doc.StoredStats[name]
		if !ok {
			doc.StoredStats[name] = defStat
			continue
		}
		if s.Max <= 0 {
			s.Max = defStat.Max
		}
		doc.StoredStats[name] = s.Clamped()
	}

	games := make(map[string]bool, len(KnownGames))
	for _, id := range KnownGames {
		if v, ok := doc.PurchasedGames[id]; ok {
			games[id] = v
		} else {
			games[id] = def.PurchasedGames[id]
		}
	}
	doc.PurchasedGames = games
}

// Clone returns a deep copy safe to hand out as a read-only snapshot.
func (d Document) Clone() Document {
	out := d
	out.StoredStats = make(map[string]core.StatValue, len(d.StoredStats))
	for k, v := range d.StoredStats {
		out.StoredStats[k] = v
	}
	out.PurchasedGames = make(map[string]bool, len(d.PurchasedGames))
	for k, v := range d.PurchasedGames {
		out.PurchasedGames[k] = v
	}
	if d.ActiveToys != nil {
		out.ActiveToys = append(json.RawMessage(nil), d.ActiveToys...)
	}
	if d.TimerStates != nil {
		out.TimerStates = append(json.RawMessage(nil), d.TimerStates...)
	}
	return out
}

// forbiddenNameRunes are characters a pet name may not contain.
const forbiddenNameRunes = `<>:"/\|?*`

// ValidPetName reports whether name is 1-20 printable characters with none
// of the filesystem-hostile characters.
func ValidPetName(name string) bool {
	runes := []rune(name)
	if len(runes) < 1 || len(runes) > 20 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsPrint(r) {
			return false
		}
		if strings.ContainsRune(forbiddenNameRunes, r) {
			return false
		}
	}
	return true
}
