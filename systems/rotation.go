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

// UpdateRotation turns the camera by the look input and reconciles the body
// facing against it. Runs after UpdatePhysics, so movement this tick used the
// previous tick's camera.
func UpdateRotation(w donburi.World, dt float64) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		rotation := components.Rotation.Get(e)
		input := components.Input.Get(e)
		state := components.State.Get(e)
		stepRotation(rotation, input.Snapshot.Look, state.Current(), dt)
	})
}

func stepRotation(r *components.RotationData, look mgl64.Vec2, state cfg.MovementState, dt float64) {
	r.CameraYaw = gamemath.WrapDegrees(r.CameraYaw + r.Look.LookSensitivityH*look.X())
	r.CameraPitch = gamemath.Clamp(
		r.CameraPitch-r.Look.LookSensitivityV*look.Y(),
		-r.Look.LookLimitV,
		r.Look.LookLimitV,
	)

	// The body's own tilt is folded in every tick; for an upright body it is zero.
	r.BodyTargetYaw = gamemath.WrapDegrees(r.BodyTargetYaw + gamemath.QuatPitch(r.Body) + r.Look.LookSensitivityH*look.X())

	r.IsRotatingToTarget = r.RotatingToTargetTimer > 0

	if state != cfg.Idling {
		rotateBodyToTarget(r, dt)
	} else if math.Abs(r.RotationMismatch) > r.Tuning.IdleTolerance || r.IsRotatingToTarget {
		updateIdleRotation(r, dt)
	}

	r.RotationMismatch = rotationMismatch(r)
}

// updateIdleRotation commits to a turn once the mismatch passes the
// tolerance, and keeps turning while the timer runs and the mismatch still
// points the latched way.
func updateIdleRotation(r *components.RotationData, dt float64) {
	tolerance := r.Tuning.IdleTolerance
	if math.Abs(r.RotationMismatch) > tolerance {
		r.RotatingToTargetTimer = r.Tuning.RotateToTargetTime
		r.RotatingClockwise = r.RotationMismatch > tolerance
	}
	r.RotatingToTargetTimer -= dt

	if (r.RotatingClockwise && r.RotationMismatch > 0) || (!r.RotatingClockwise && r.RotationMismatch < 0) {
		rotateBodyToTarget(r, dt)
	}
}

func rotateBodyToTarget(r *components.RotationData, dt float64) {
	target := gamemath.YawQuat(r.BodyTargetYaw)
	r.Body = gamemath.SlerpShortest(r.Body, target, gamemath.Clamp01(r.Tuning.RotationSpeed*dt))
}

// rotationMismatch is the signed ground-plane angle from body forward to
// camera forward.
func rotationMismatch(r *components.RotationData) float64 {
	body := gamemath.Lateral(r.BodyForward())
	camera := gamemath.Lateral(r.CameraForward())
	return gamemath.SignedAngle(body, camera, gamemath.Up)
}
