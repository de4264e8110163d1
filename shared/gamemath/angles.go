package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Yaw is measured in degrees around +Y, with 0 facing +Z and 90 facing +X.

// YawForward returns the unit forward vector for a yaw.
func YawForward(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}

// YawRight returns the unit right vector for a yaw.
func YawRight(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Cos(r), 0, -math.Sin(r)}
}

// LookForward returns the view direction for a yaw and pitch. Positive pitch
// looks down.
func LookForward(yaw, pitch float64) mgl64.Vec3 {
	y := mgl64.DegToRad(yaw)
	p := mgl64.DegToRad(pitch)
	return mgl64.Vec3{
		math.Cos(p) * math.Sin(y),
		-math.Sin(p),
		math.Cos(p) * math.Cos(y),
	}
}

// YawQuat builds a rotation of yaw degrees about the up axis.
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(mgl64.DegToRad(yaw), Up)
}

// QuatForward returns q applied to +Z.
func QuatForward(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(mgl64.Vec3{0, 0, 1})
}

// QuatYaw extracts the heading of q in degrees.
func QuatYaw(q mgl64.Quat) float64 {
	f := QuatForward(q)
	return mgl64.RadToDeg(math.Atan2(f.X(), f.Z()))
}

// QuatPitch extracts the nose-down tilt of q in degrees.
func QuatPitch(q mgl64.Quat) float64 {
	f := QuatForward(q)
	return mgl64.RadToDeg(-math.Asin(Clamp(f.Y(), -1, 1)))
}

// SlerpShortest interpolates from a to b along the shorter arc.
func SlerpShortest(a, b mgl64.Quat, t float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return mgl64.QuatSlerp(a, b, t).Normalize()
}

// SignedAngle returns the angle in degrees from "from" to "to" around axis,
// in (-180, 180]. Degenerate inputs yield 0.
func SignedAngle(from, to, axis mgl64.Vec3) float64 {
	lf, lt := from.Len(), to.Len()
	if lf < 1e-9 || lt < 1e-9 {
		return 0
	}
	cos := Clamp(from.Dot(to)/(lf*lt), -1, 1)
	angle := mgl64.RadToDeg(math.Acos(cos))
	if from.Cross(to).Dot(axis) < 0 {
		return -angle
	}
	return angle
}

// WrapDegrees maps a to (-180, 180].
func WrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}
