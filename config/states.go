package config

import "fmt"

// MovementState is the discrete locomotion state of a character.
// Exactly one is active per character per tick.
type MovementState int

const (
	Idling MovementState = iota
	Walking
	Running
	Sprinting
	Jumping
	Falling
)

var movementStateNames = [...]string{
	Idling:    "idling",
	Walking:   "walking",
	Running:   "running",
	Sprinting: "sprinting",
	Jumping:   "jumping",
	Falling:   "falling",
}

func (s MovementState) String() string {
	if s < Idling || s > Falling {
		return fmt.Sprintf("MovementState(%d)", int(s))
	}
	return movementStateNames[s]
}

// IsGroundedCategory reports whether s is one of the on-ground states.
func (s MovementState) IsGroundedCategory() bool {
	switch s {
	case Idling, Walking, Running, Sprinting:
		return true
	}
	return false
}

// ParseMovementState maps a state name (as produced by String) back to its value.
func ParseMovementState(name string) (MovementState, error) {
	for i, n := range movementStateNames {
		if n == name {
			return MovementState(i), nil
		}
	}
	return Idling, fmt.Errorf("unknown movement state %q", name)
}

func (s MovementState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *MovementState) UnmarshalText(text []byte) error {
	parsed, err := ParseMovementState(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
