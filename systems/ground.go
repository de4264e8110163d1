package systems

import (
	"github.com/automoto/locomotion/components"
	"github.com/automoto/locomotion/config"
	"github.com/go-gl/mathgl/mgl64"
)

// GroundCheckPoint is the center of the sphere used by the grounded-state test:
// one radius below the feet, so the sphere's top sits at the feet.
func GroundCheckPoint(body components.KinematicBody) mgl64.Vec3 {
	return body.Position().Sub(mgl64.Vec3{0, body.Radius(), 0})
}

// IsGrounded picks the ground test by current state. A grounded character
// uses a sphere overlap, which tolerates standing on the lip of a step.
// An airborne one uses the body's own coarse flag.
func IsGrounded(state config.MovementState, body components.KinematicBody, query components.GroundQuery, point mgl64.Vec3, radius float64, layers []string) bool {
	if state.IsGroundedCategory() {
		return query.CheckSphere(point, radius, layers...)
	}
	return body.IsGrounded()
}
