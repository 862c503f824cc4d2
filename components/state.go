package components

import "github.com/yohamta/donburi"

// EnemyState is a node of the enemy state machine.
type EnemyState int

const (
	EnemyIdle EnemyState = iota
	EnemyPatrol
	EnemyChase
	EnemyDead
)

func (s EnemyState) String() string {
	switch s {
	case EnemyIdle:
		return "idle"
	case EnemyPatrol:
		return "patrol"
	case EnemyChase:
		return "chase"
	case EnemyDead:
		return "dead"
	}
	return "unknown"
}

type StateData struct {
	CurrentState  EnemyState
	PreviousState EnemyState
	StateTimer    float64 // seconds spent in CurrentState
}

// Set moves to s and resets the timer. Dead is terminal.
func (s *StateData) Set(next EnemyState) {
	if s.CurrentState == EnemyDead || s.CurrentState == next {
		return
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
