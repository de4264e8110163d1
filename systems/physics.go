package systems

import (
	"math"

	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// UpdatePhysics integrates velocity for every character and makes the one
// Move call on its body. Must run AFTER UpdateStates.
func UpdatePhysics(w donburi.World, dt float64) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		state := components.State.Get(e)
		physics := components.Physics.Get(e)
		body := components.Body.Get(e).Body
		input := components.Input.Get(e)
		rotation := components.Rotation.Get(e)

		jump := input.ConsumeJump()
		integrateVertical(physics, state, jump, dt)

		forward, right := cameraAxes(physics, rotation)
		lateral := integrateLateral(
			physics.Movement,
			state.Current(),
			gamemath.Lateral(body.Velocity()),
			input.Snapshot.Movement,
			forward,
			right,
			dt,
		)

		velocity := mgl64.Vec3{lateral.X(), physics.VerticalVelocity, lateral.Z()}
		body.Move(velocity.Mul(dt), dt)
	})
}

// integrateVertical applies gravity, the landing anti-bump, the jump impulse
// and the walk-off compensation. At most one impulse lands per tick.
func integrateVertical(physics *components.PhysicsData, state *components.StateData, jump bool, dt float64) {
	mv := physics.Movement
	grounded := state.IsGroundedCategory()

	physics.VerticalVelocity -= mv.Gravity * dt

	if grounded && physics.VerticalVelocity < 0 {
		physics.VerticalVelocity = -mv.AntiBump
	}

	if grounded && jump {
		physics.VerticalVelocity = math.Sqrt(mv.JumpSpeed * 3 * mv.Gravity)
		physics.JumpedLastFrame = true
		return
	}

	// Walked off a ledge: give back the anti-bump so the fall starts from rest.
	if state.Previous().IsGroundedCategory() && !grounded && physics.VerticalVelocity < 0 {
		physics.VerticalVelocity += mv.AntiBump
	}
}

// lateralLimits returns the acceleration and speed cap for a state.
// Airborne control is uniform regardless of how the jump started.
func lateralLimits(mv cfg.MovementConfig, state cfg.MovementState) (accel, limit float64) {
	if !state.IsGroundedCategory() {
		return mv.InAirAcceleration, mv.SprintSpeed
	}
	switch state {
	case cfg.Walking:
		return mv.WalkAcceleration, mv.WalkSpeed
	case cfg.Sprinting:
		return mv.SprintAcceleration, mv.SprintSpeed
	default:
		return mv.RunAcceleration, mv.RunSpeed
	}
}

// integrateLateral returns the new ground-plane velocity. The order is
// impulse, drag, clamp.
func integrateLateral(mv cfg.MovementConfig, state cfg.MovementState, current mgl64.Vec3, move mgl64.Vec2, forward, right mgl64.Vec3, dt float64) mgl64.Vec3 {
	accel, limit := lateralLimits(mv, state)

	direction := right.Mul(move.X()).Add(forward.Mul(move.Y()))
	v := current.Add(direction.Mul(accel * dt))
	v = gamemath.ApplyDrag(v, mv.Drag*dt)
	return gamemath.ClampMagnitude(v, limit)
}

// cameraAxes projects the camera basis onto the ground plane. A degenerate
// projection reuses the last good axis.
func cameraAxes(physics *components.PhysicsData, rotation *components.RotationData) (forward, right mgl64.Vec3) {
	forward, ok := gamemath.SafeNormalize(rotation.CameraForward(), physics.ForwardXZ)
	if ok {
		physics.ForwardXZ = forward
	}
	right, ok = gamemath.SafeNormalize(rotation.CameraRight(), physics.RightXZ)
	if ok {
		physics.RightXZ = right
	}
	return forward, right
}
