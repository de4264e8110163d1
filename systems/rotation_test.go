package systems

import (
	"testing"

	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func newRotation() *components.RotationData {
	d := cfg.Defaults()
	r := components.NewRotationData(0, d.Camera, d.Rotation)
	return &r
}

// look returns the look input that turns the camera by yaw degrees.
func look(yaw float64) mgl64.Vec2 {
	return mgl64.Vec2{yaw / cfg.Defaults().Camera.LookSensitivityH, 0}
}

func TestStepRotationPitchClamp(t *testing.T) {
	r := newRotation()
	limit := cfg.Defaults().Camera.LookLimitV

	stepRotation(r, mgl64.Vec2{0, -10000}, cfg.Idling, tick)
	assert.Equal(t, limit, r.CameraPitch)

	stepRotation(r, mgl64.Vec2{0, 20000}, cfg.Idling, tick)
	assert.Equal(t, -limit, r.CameraPitch)

	stepRotation(r, mgl64.Vec2{0, -100}, cfg.Idling, tick)
	assert.InDelta(t, -limit+10, r.CameraPitch, 1e-9)
}

func TestStepRotationPitchRoundTrip(t *testing.T) {
	r := newRotation()
	r.CameraPitch = 12.5
	limit := cfg.Defaults().Camera.LookLimitV

	inputs := []float64{30, -45, 120, -60, -45}
	for _, y := range inputs {
		stepRotation(r, mgl64.Vec2{0, y}, cfg.Idling, tick)
		assert.LessOrEqual(t, r.CameraPitch, limit)
		assert.GreaterOrEqual(t, r.CameraPitch, -limit)
	}
	assert.InDelta(t, 12.5, r.CameraPitch, 1e-9)
}

func TestStepRotationMovingFollowsCamera(t *testing.T) {
	r := newRotation()

	stepRotation(r, look(10), cfg.Running, tick)
	assert.InDelta(t, 10, r.CameraYaw, 1e-9)
	assert.InDelta(t, 10, r.BodyTargetYaw, 1e-9)
	assert.InDelta(t, 10.0/6, r.BodyYaw(), 1e-6)

	for i := 0; i < 120; i++ {
		stepRotation(r, mgl64.Vec2{}, cfg.Running, tick)
	}
	assert.InDelta(t, 10, r.BodyYaw(), 1e-3)
	assert.InDelta(t, 0, r.RotationMismatch, 1e-3)
}

func TestStepRotationWrapsYaw(t *testing.T) {
	r := newRotation()

	// Twelve quarter turns end where they started.
	for i := 0; i < 12; i++ {
		stepRotation(r, look(90), cfg.Running, tick)
		assert.Greater(t, r.CameraYaw, -180.0)
		assert.LessOrEqual(t, r.CameraYaw, 180.0)
		assert.Greater(t, r.BodyTargetYaw, -180.0)
		assert.LessOrEqual(t, r.BodyTargetYaw, 180.0)
	}
	assert.InDelta(t, 0, r.CameraYaw, 1e-9)
	assert.InDelta(t, 0, r.BodyTargetYaw, 1e-9)
}

func TestStepRotationIdleHysteresis(t *testing.T) {
	r := newRotation()

	// Inside the tolerance the body holds still.
	stepRotation(r, look(85), cfg.Idling, tick)
	assert.InDelta(t, 0, r.BodyYaw(), 1e-9)
	assert.InDelta(t, 85, r.RotationMismatch, 1e-6)
	assert.False(t, r.IsRotatingToTarget)

	// Crossing it is only acted on next tick.
	stepRotation(r, look(10), cfg.Idling, tick)
	assert.InDelta(t, 0, r.BodyYaw(), 1e-9)
	assert.InDelta(t, 95, r.RotationMismatch, 1e-6)

	stepRotation(r, mgl64.Vec2{}, cfg.Idling, tick)
	assert.True(t, r.RotatingClockwise)
	assert.InDelta(t, 95.0/6, r.BodyYaw(), 1e-6)
	assert.Less(t, r.RotationMismatch, 90.0)

	// Back under the tolerance, the committed turn keeps going.
	stepRotation(r, mgl64.Vec2{}, cfg.Idling, tick)
	assert.True(t, r.IsRotatingToTarget)
	assert.InDelta(t, 95*25.0/36, r.RotationMismatch, 1e-6)

	for i := 0; i < 40; i++ {
		stepRotation(r, mgl64.Vec2{}, cfg.Idling, tick)
	}
	assert.False(t, r.IsRotatingToTarget)
	assert.Greater(t, r.RotationMismatch, 0.0)
	assert.Less(t, r.RotationMismatch, 10.0)

	// Once the timer has run out the residual mismatch is left alone.
	settled := r.BodyYaw()
	stepRotation(r, mgl64.Vec2{}, cfg.Idling, tick)
	assert.Equal(t, settled, r.BodyYaw())
}

func TestStepRotationIdleCounterClockwise(t *testing.T) {
	r := newRotation()

	stepRotation(r, look(-120), cfg.Idling, tick)
	assert.InDelta(t, -120, r.RotationMismatch, 1e-6)

	stepRotation(r, mgl64.Vec2{}, cfg.Idling, tick)
	assert.False(t, r.RotatingClockwise)
	assert.InDelta(t, -20, r.BodyYaw(), 1e-6)
}

func TestStepRotationStopsWhenMismatchFlips(t *testing.T) {
	r := newRotation()
	r.CameraYaw = -30
	r.BodyTargetYaw = -30
	r.RotationMismatch = -30
	r.RotatingToTargetTimer = 0.2
	r.RotatingClockwise = true

	stepRotation(r, mgl64.Vec2{}, cfg.Idling, tick)
	assert.True(t, r.IsRotatingToTarget)
	assert.InDelta(t, 0, r.BodyYaw(), 1e-9)
	assert.InDelta(t, 0.2-tick, r.RotatingToTargetTimer, 1e-12)
	assert.InDelta(t, -30, r.RotationMismatch, 1e-6)
}

func TestRotationMismatchDirectlyBehind(t *testing.T) {
	r := newRotation()
	stepRotation(r, look(180), cfg.Idling, tick)
	assert.InDelta(t, 180, r.RotationMismatch, 1e-6)
}
