package gamemath

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestApplyDrag(t *testing.T) {
	assertVec3(t, mgl64.Vec3{2.4, 0, 3.2}, ApplyDrag(mgl64.Vec3{3, 0, 4}, 1))

	// Anything at or under the drag amount stops dead.
	assert.Equal(t, mgl64.Vec3{}, ApplyDrag(mgl64.Vec3{0.3, 0, 0.4}, 1))
	assert.Equal(t, mgl64.Vec3{}, ApplyDrag(mgl64.Vec3{0.6, 0, 0.8}, 1))
	assert.Equal(t, mgl64.Vec3{}, ApplyDrag(mgl64.Vec3{}, 0))
}

func TestClampMagnitude(t *testing.T) {
	assertVec3(t, mgl64.Vec3{1.5, 0, 2}, ClampMagnitude(mgl64.Vec3{3, 0, 4}, 2.5))
	assert.Equal(t, mgl64.Vec3{1, 0, 1}, ClampMagnitude(mgl64.Vec3{1, 0, 1}, 5))
	assert.Equal(t, mgl64.Vec3{}, ClampMagnitude(mgl64.Vec3{}, 0))
}

func TestSafeNormalize(t *testing.T) {
	fallback := mgl64.Vec3{0, 0, 1}

	n, ok := SafeNormalize(mgl64.Vec3{3, 7, 4}, fallback)
	assert.True(t, ok)
	assertVec3(t, mgl64.Vec3{0.6, 0, 0.8}, n)

	n, ok = SafeNormalize(mgl64.Vec3{0, -5, 0}, fallback)
	assert.False(t, ok)
	assert.Equal(t, fallback, n)
}

func TestLerp2(t *testing.T) {
	a := mgl64.Vec2{0, 0}
	b := mgl64.Vec2{2, -4}
	assert.Equal(t, a, Lerp2(a, b, 0))
	assert.Equal(t, b, Lerp2(a, b, 1))
	assert.Equal(t, mgl64.Vec2{1, -2}, Lerp2(a, b, 0.5))
}

func TestGetRampSurfaceY(t *testing.T) {
	cases := []struct {
		name string
		rise Rise
		x, z float64
		want float64
	}{
		{"plus x middle", RisePlusX, 12, 0, 0.75},
		{"plus x past the top", RisePlusX, 20, 0, 1.5},
		{"minus x at min edge", RiseMinusX, 10, 0, 1.5},
		{"plus z start", RisePlusZ, 11, 5, 0},
		{"minus z far edge", RiseMinusZ, 11, 7, 0},
		{"flat", RiseNone, 11, 6, 1.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := GetRampSurfaceY(10, 5, 4, 2, 0, 1.5, c.rise, c.x, c.z)
			assert.InDelta(t, c.want, got, 1e-9)
		})
	}

	assert.True(t, RisePlusZ.Valid())
	assert.False(t, Rise("up").Valid())
}
