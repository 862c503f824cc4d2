package core

// GameState is the session's top-level state.
type GameState int

const (
	StateRunning GameState = iota
	StateTransitioning
	StateError
	StateFailed
	StateVictory
)

func (s GameState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateTransitioning:
		return "transitioning"
	case StateError:
		return "error"
	case StateFailed:
		return "failed"
	case StateVictory:
		return "victory"
	}
	return "unknown"
}
