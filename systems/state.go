package systems

import (
	"math"

	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/tags"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// StateInputs is everything the locomotion state machine decides from.
type StateInputs struct {
	Input            components.InputSnapshot
	LateralSpeed     float64
	VerticalVelocity float64
	Grounded         bool
	JumpedLastFrame  bool
	MovingThreshold  float64
}

// NextMovementState derives the next movement state. Lateral state is chosen
// first; being airborne, or having launched a jump on the previous tick,
// overrides it by the sign of the vertical velocity.
func NextMovementState(in StateInputs) cfg.MovementState {
	move := in.Input.Movement

	isMovingLaterally := in.LateralSpeed > in.MovingThreshold
	// Strafing or backpedaling only ever walks.
	canRun := move.Y() >= math.Abs(move.X())
	isWalking := (isMovingLaterally && !canRun) || in.Input.WalkToggled
	isSprinting := in.Input.SprintToggled && isMovingLaterally

	var next cfg.MovementState
	switch {
	case isWalking:
		next = cfg.Walking
	case isSprinting:
		next = cfg.Sprinting
	case isMovingLaterally || in.Input.HasMovement():
		next = cfg.Running
	default:
		next = cfg.Idling
	}

	if !in.Grounded || in.JumpedLastFrame {
		if in.VerticalVelocity >= 0 {
			return cfg.Jumping
		}
		return cfg.Falling
	}
	return next
}

// UpdateStates runs the ground sensor and state machine for every character.
// Must run BEFORE UpdatePhysics: it reads the previous tick's body velocity.
func UpdateStates(w donburi.World, dt float64) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		updateCharacterState(
			components.State.Get(e),
			components.Physics.Get(e),
			components.Body.Get(e),
			components.Input.Get(e),
			dt,
		)
	})
}

func updateCharacterState(state *components.StateData, physics *components.PhysicsData, body *components.BodyData, input *components.InputData, dt float64) {
	b := body.Body
	physics.Grounded = IsGrounded(state.Current(), b, body.Ground, GroundCheckPoint(b), b.Radius(), body.GroundLayers)

	next := NextMovementState(StateInputs{
		Input:            input.Snapshot,
		LateralSpeed:     gamemath.Lateral(b.Velocity()).Len(),
		VerticalVelocity: b.Velocity().Y(),
		Grounded:         physics.Grounded,
		JumpedLastFrame:  physics.JumpedLastFrame,
		MovingThreshold:  physics.Movement.MovingThreshold,
	})

	if next.IsGroundedCategory() {
		b.SetStepOffset(physics.Movement.StepOffset)
	} else {
		// No snapping onto ledges while airborne.
		physics.JumpedLastFrame = false
		b.SetStepOffset(0)
	}

	if next != state.Current() {
		log.Debug().
			Stringer("from", state.Current()).
			Stringer("to", next).
			Float64("after", state.TimeInState()).
			Msg("movement state")
	}
	state.SetMovementState(next, dt)
}
