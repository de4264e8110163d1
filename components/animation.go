package components

import (
	"github.com/automoto/locomotion/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// AnimationData is the per-tick parameter set published for an animation
// layer. Consumers only read it.
type AnimationData struct {
	State         config.MovementState
	PreviousState config.MovementState
	TimeInState   float64

	Blend          mgl64.Vec2 // X horizontal, Y vertical
	BlendMagnitude float64

	IsGrounded         bool
	IsJumping          bool
	IsFalling          bool
	IsIdling           bool
	IsRotatingToTarget bool
	RotationMismatch   float64

	Tuning config.AnimationConfig
}

var Animation = donburi.NewComponentType[AnimationData]()
