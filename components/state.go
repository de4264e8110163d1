package components

import (
	"github.com/automoto/locomotion/config"
	"github.com/yohamta/donburi"
)

// StateData holds a character's movement state. It is only changed through
// SetMovementState, which the state machine calls once per tick.
type StateData struct {
	current  config.MovementState
	previous config.MovementState
	timer    float64
}

// NewStateData returns state data starting in Idling, as at spawn.
func NewStateData() StateData {
	return StateData{current: config.Idling, previous: config.Idling}
}

func (s *StateData) Current() config.MovementState { return s.current }

// Previous is the state as of the previous tick.
func (s *StateData) Previous() config.MovementState { return s.previous }

// TimeInState is the number of seconds spent in the current state.
func (s *StateData) TimeInState() float64 { return s.timer }

func (s *StateData) IsGroundedCategory() bool { return s.current.IsGroundedCategory() }

// SetMovementState records next as the state for this tick and advances the
// state timer by dt.
func (s *StateData) SetMovementState(next config.MovementState, dt float64) {
	s.previous = s.current
	if next != s.current {
		s.timer = 0
	} else {
		s.timer += dt
	}
	s.current = next
}

var State = donburi.NewComponentType[StateData]()
