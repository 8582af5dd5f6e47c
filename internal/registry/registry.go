// Package registry provides a global registry for minigame session
// factories. Games register themselves in init() functions, allowing the
// platform to discover and instantiate sessions without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/pixelbeasts/petcade/internal/core"
)

// Session is the core interface every minigame implements. Sessions
// contain pure logic with no external dependencies (especially no Bubble
// Tea). The platform handles input mapping, timing, rendering and the
// reward round-trip.
//
// Lifecycle: Reset puts the session in PhaseIdle showing its rules.
// ActionStart moves it to PhaseActive; reaching a terminal condition
// moves it to PhaseResolved, and the StepResult of that tick carries the
// session's one final reward payload. ActionRestart from PhaseResolved
// returns to PhaseIdle. Abort discards any accrued reward.
type Session interface {
	// ID returns a unique identifier for this game (e.g., "slots").
	// Used for CLI commands, unlock flags and the play ledger.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the session to PhaseIdle.
	Reset(cfg core.SessionConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// Phase returns the current lifecycle phase.
	Phase() core.Phase

	// Abort marks the session abandoned; accrued reward is forfeited.
	Abort()
}

// SessionInfo contains metadata about a registered game.
type SessionInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new session instance.
type Factory func() Session

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a session factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []SessionInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SessionInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SessionInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new session by its game ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Session, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
