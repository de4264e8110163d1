package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// KinematicBody is the collision primitive a character moves with.
type KinematicBody interface {
	Position() mgl64.Vec3
	// Velocity is the displacement actually achieved by the last Move, per second.
	Velocity() mgl64.Vec3
	Radius() float64
	// IsGrounded is the coarse grounded flag from the last Move.
	IsGrounded() bool
	StepOffset() float64
	SetStepOffset(v float64)
	Move(delta mgl64.Vec3, dt float64)
}

// GroundQuery answers sphere overlap tests against tagged collision layers.
// Trigger volumes never count as overlapping.
type GroundQuery interface {
	CheckSphere(center mgl64.Vec3, radius float64, layers ...string) bool
}

type BodyData struct {
	Body         KinematicBody
	Ground       GroundQuery
	GroundLayers []string
}

var Body = donburi.NewComponentType[BodyData]()
