package core

// SessionConfig contains configuration passed to minigame sessions at start.
// Sessions use this to adapt to screen size and for deterministic simulation.
type SessionConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle state of a minigame session.
type Phase int

const (
	// PhaseIdle means the session is waiting for a start trigger;
	// the display shows rules/instructions.
	PhaseIdle Phase = iota
	// PhaseActive means the gameplay loop is running and the session is
	// accumulating a local reward without touching global state.
	PhaseActive
	// PhaseResolved means a terminal condition was reached and the session
	// has computed its one final reward payload.
	PhaseResolved
	// PhaseAborted means the window closed mid-session; accrued reward
	// is forfeited.
	PhaseAborted
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseActive:
		return "Active"
	case PhaseResolved:
		return "Resolved"
	case PhaseAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Session.Step() after each simulation tick.
type StepResult struct {
	Phase Phase
	// Reward is non-nil exactly once: on the tick that transitions the
	// session to PhaseResolved. It is the session's final payload.
	Reward *RewardPayload
}
