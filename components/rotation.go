package components

import (
	"github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// RotationData reconciles free camera look against body facing.
type RotationData struct {
	Body mgl64.Quat

	CameraYaw   float64
	CameraPitch float64 // Positive looks down

	BodyTargetYaw float64

	RotationMismatch      float64 // Degrees in (-180, 180], positive when the camera is to the body's right
	IsRotatingToTarget    bool
	RotatingToTargetTimer float64
	RotatingClockwise     bool

	Look   config.CameraConfig
	Tuning config.RotationConfig
}

// NewRotationData faces both body and camera along yaw.
func NewRotationData(yaw float64, look config.CameraConfig, tuning config.RotationConfig) RotationData {
	return RotationData{
		Body:          gamemath.YawQuat(yaw),
		CameraYaw:     yaw,
		BodyTargetYaw: yaw,
		Look:          look,
		Tuning:        tuning,
	}
}

func (r *RotationData) BodyYaw() float64 { return gamemath.QuatYaw(r.Body) }

func (r *RotationData) BodyForward() mgl64.Vec3 { return gamemath.QuatForward(r.Body) }

func (r *RotationData) CameraForward() mgl64.Vec3 {
	return gamemath.LookForward(r.CameraYaw, r.CameraPitch)
}

// CameraRight never tilts with pitch since the camera has no roll.
func (r *RotationData) CameraRight() mgl64.Vec3 {
	return gamemath.YawRight(r.CameraYaw)
}

var Rotation = donburi.NewComponentType[RotationData]()
