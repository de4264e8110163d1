package systems

import (
	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdateAnimation publishes the animation parameter set. Must run last.
func UpdateAnimation(w donburi.World, dt float64) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		publishAnimation(
			components.Animation.Get(e),
			components.State.Get(e),
			components.Rotation.Get(e),
			components.Input.Get(e).Snapshot,
			dt,
		)
	})
}

// Blend vectors shorter than this are published as exactly zero.
const blendRest = 1e-4

// BlendScale is the multiplier applied to movement input for a state.
func BlendScale(a cfg.AnimationConfig, state cfg.MovementState) float64 {
	switch state {
	case cfg.Sprinting:
		return a.SprintBlendScale
	case cfg.Running:
		return a.RunBlendScale
	default:
		return a.DefaultBlendScale
	}
}

func publishAnimation(anim *components.AnimationData, state *components.StateData, rotation *components.RotationData, input components.InputSnapshot, dt float64) {
	current := state.Current()

	target := input.Movement.Mul(BlendScale(anim.Tuning, current))
	anim.Blend = gamemath.Lerp2(anim.Blend, target, gamemath.Clamp01(anim.Tuning.BlendSpeed*dt))
	if anim.Blend.Len() < blendRest {
		anim.Blend = mgl64.Vec2{}
	}
	anim.BlendMagnitude = anim.Blend.Len()

	anim.State = current
	anim.PreviousState = state.Previous()
	anim.TimeInState = state.TimeInState()

	// The state view, so grounded never overlaps jumping or falling.
	anim.IsGrounded = current.IsGroundedCategory()
	anim.IsJumping = current == cfg.Jumping
	anim.IsFalling = current == cfg.Falling
	anim.IsIdling = current == cfg.Idling
	anim.IsRotatingToTarget = rotation.IsRotatingToTarget
	anim.RotationMismatch = rotation.RotationMismatch
}
