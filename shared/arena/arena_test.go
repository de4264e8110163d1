package arena

import (
	"testing"

	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	radius = 0.5
	height = 1.8
	step   = 0.3
)

// testArena is a 20x20 floor with:
//
//	a wall across x 4..5
//	a 0.25 step at x 10..12, z 4..6
//	a 1.5 ledge at x 14..16, z 4..6
//	a ramp rising along +x from 0 to 1 at x 10..14, z 10..12
//	an overhang 2.5..3 at x 16..18, z 10..12
//	a thin wall at x 10..10.5, z 14..16
//	a checkpoint trigger at x 0..3, z 15..18
func testArena(t *testing.T) *Arena {
	t.Helper()
	a := New(20, 20, 2)
	a.AddGround(leveldata.GroundPiece{Box: leveldata.Box{Name: "floor", W: 20, D: 20}, Top: 0, Bottom: -1})
	a.AddWall(leveldata.Wall{Box: leveldata.Box{Name: "wall", X: 4, W: 1, D: 20}, Top: 3, Bottom: -1})
	a.AddGround(leveldata.GroundPiece{Box: leveldata.Box{Name: "step", X: 10, Z: 4, W: 2, D: 2}, Top: 0.25, Bottom: -1})
	a.AddGround(leveldata.GroundPiece{Box: leveldata.Box{Name: "ledge", X: 14, Z: 4, W: 2, D: 2}, Top: 1.5, Bottom: -1})
	a.AddGround(leveldata.GroundPiece{
		Box:    leveldata.Box{Name: "ramp", X: 10, Z: 10, W: 4, D: 2},
		Top:    1,
		Low:    0,
		Bottom: -1,
		Rise:   gamemath.RisePlusX,
	})
	a.AddGround(leveldata.GroundPiece{Box: leveldata.Box{Name: "overhang", X: 16, Z: 10, W: 2, D: 2}, Top: 3, Bottom: 2.5})
	a.AddWall(leveldata.Wall{Box: leveldata.Box{Name: "thin", X: 10, Z: 14, W: 0.5, D: 2}, Top: 3, Bottom: -1})
	a.AddTrigger(leveldata.Trigger{Box: leveldata.Box{Name: "checkpoint", Z: 15, W: 3, D: 3}, Top: 2, Bottom: 0, Layer: "checkpoint"})
	return a
}

func newBody(t *testing.T, a *Arena, pos mgl64.Vec3) *Body {
	t.Helper()
	b, err := a.NewBody(pos, radius, height, step)
	require.NoError(t, err)
	return b
}

func TestNewBodyValidatesDimensions(t *testing.T) {
	a := New(10, 10, 2)

	_, err := a.NewBody(mgl64.Vec3{}, 0, height, step)
	assert.ErrorIs(t, err, ErrInvalidBody)

	_, err = a.NewBody(mgl64.Vec3{}, 0.5, 0.9, step)
	assert.ErrorIs(t, err, ErrInvalidBody)

	b, err := a.NewBody(mgl64.Vec3{1, 2, 3}, 0.5, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, b.Position())
	assert.Equal(t, 0.0, b.StepOffset())
	assert.Len(t, a.Bodies(), 1)

	a.RemoveBody(b)
	assert.Empty(t, a.Bodies())
}

func TestMoveStandsOnFloor(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{2, 0, 10})

	b.Move(mgl64.Vec3{1, -0.1, 0}, 0.5)

	assert.InDelta(t, 3, b.Position().X(), 1e-9)
	assert.Equal(t, 0.0, b.Position().Y())
	assert.True(t, b.IsGrounded())
	assert.Equal(t, "floor", b.Support().Name)
	assert.InDelta(t, 2, b.Velocity().X(), 1e-9)
	assert.Equal(t, 0.0, b.Velocity().Y())
	assert.InDelta(t, 2, b.LateralSpeed(), 1e-9)
}

func TestWallBlocksLateralMovement(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{2, 0, 10})

	b.Move(mgl64.Vec3{5, 0, 0}, 1)
	assert.InDelta(t, 3.5, b.Position().X(), 1e-9)
	assert.InDelta(t, 1.5, b.Velocity().X(), 1e-9)

	// Sliding along the wall still moves on the free axis.
	b.Move(mgl64.Vec3{1, 0, 2}, 1)
	assert.InDelta(t, 3.5, b.Position().X(), 1e-9)
	assert.InDelta(t, 12, b.Position().Z(), 1e-9)
}

func TestThinWallAcrossCellBoundary(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{9.4, 0, 15})

	b.Move(mgl64.Vec3{1, 0, 0}, 1)
	assert.InDelta(t, 9.5, b.Position().X(), 1e-9)
}

func TestStepUp(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{8, 0, 5})

	b.Move(mgl64.Vec3{2.5, -0.1, 0}, 1)

	assert.InDelta(t, 10.5, b.Position().X(), 1e-9)
	assert.Equal(t, 0.25, b.Position().Y())
	assert.True(t, b.IsGrounded())
	assert.Equal(t, "step", b.Support().Name)
}

func TestStepBlockedWithoutStepOffset(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{8, 0, 5})
	b.SetStepOffset(0)

	b.Move(mgl64.Vec3{2.5, 0, 0}, 1)
	assert.InDelta(t, 9.5, b.Position().X(), 1e-9)
}

func TestLedgeBlocks(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{12.8, 0, 5})

	b.Move(mgl64.Vec3{2, 0, 0}, 1)
	assert.InDelta(t, 13.5, b.Position().X(), 1e-9)
	assert.Equal(t, 0.0, b.Position().Y())
}

func TestLandOnLedge(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{15, 3, 5})
	b.SetStepOffset(0)

	b.Move(mgl64.Vec3{0, -1, 0}, 1)
	assert.InDelta(t, 2, b.Position().Y(), 1e-9)
	assert.False(t, b.IsGrounded())

	b.Move(mgl64.Vec3{0, -1, 0}, 1)
	assert.Equal(t, 1.5, b.Position().Y())
	assert.True(t, b.IsGrounded())
	assert.Equal(t, "ledge", b.Support().Name)
	assert.InDelta(t, -0.5, b.Velocity().Y(), 1e-9)
}

func TestWalkUpRamp(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{9, 0, 11})

	b.Move(mgl64.Vec3{1.5, -0.1, 0}, 1)
	assert.InDelta(t, 10.5, b.Position().X(), 1e-9)
	assert.InDelta(t, 0.125, b.Position().Y(), 1e-9)
	assert.True(t, b.IsGrounded())

	for i := 0; i < 6; i++ {
		b.Move(mgl64.Vec3{0.5, -0.1, 0}, 1)
	}
	assert.InDelta(t, 13.5, b.Position().X(), 1e-9)
	assert.InDelta(t, 0.875, b.Position().Y(), 1e-9)
}

func TestCeilingStopsRise(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{17, 0, 11})

	b.Move(mgl64.Vec3{0, 1, 0}, 1)
	assert.InDelta(t, 0.7, b.Position().Y(), 1e-9)
	assert.False(t, b.IsGrounded())
}

func TestCheckSphere(t *testing.T) {
	a := testArena(t)

	assert.True(t, a.CheckSphere(mgl64.Vec3{2, -0.5, 10}, 0.5, "ground"))
	assert.True(t, a.CheckSphere(mgl64.Vec3{2, 0.5, 10}, 0.5, "ground"), "touching counts")
	assert.False(t, a.CheckSphere(mgl64.Vec3{2, 0.6, 10}, 0.5, "ground"))
	assert.False(t, a.CheckSphere(mgl64.Vec3{2, -0.5, 10}, 0.5))
	assert.False(t, a.CheckSphere(mgl64.Vec3{2, -0.5, 10}, 0.5, "water"))

	// Out of reach of the floor but touching the step's top edge.
	assert.True(t, a.CheckSphere(mgl64.Vec3{9.8, 0.6, 5}, 0.5, "ground"))
	assert.False(t, a.CheckSphere(mgl64.Vec3{9.4, 0.6, 5}, 0.5, "ground"))
}

func TestCheckSphereIgnoresTriggers(t *testing.T) {
	a := testArena(t)
	assert.False(t, a.CheckSphere(mgl64.Vec3{1.5, 1, 16.5}, 0.5, "checkpoint"))
}

func TestBodyReportsTriggers(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{1.5, 0, 12})

	b.Move(mgl64.Vec3{}, 1)
	assert.Empty(t, b.Triggers())

	b.Move(mgl64.Vec3{0, 0, 4}, 1)
	require.Len(t, b.Triggers(), 1)
	assert.Equal(t, "checkpoint", b.Triggers()[0].Name)
	assert.InDelta(t, 16, b.Position().Z(), 1e-9)
}

func TestTeleport(t *testing.T) {
	a := testArena(t)
	b := newBody(t, a, mgl64.Vec3{2, 0, 10})
	b.Move(mgl64.Vec3{1, 0, 0}, 1)
	require.True(t, b.IsGrounded())

	b.Teleport(mgl64.Vec3{1, 2, 3})
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, b.Position())
	assert.Equal(t, mgl64.Vec3{}, b.Velocity())
	assert.False(t, b.IsGrounded())
	assert.Nil(t, b.Support())
}

func TestPlatformCarriesRider(t *testing.T) {
	a := New(20, 20, 2)
	lift := a.AddPlatform(leveldata.Platform{
		GroundPiece: leveldata.GroundPiece{
			Box:    leveldata.Box{Name: "lift", X: 2, Z: 2, W: 2, D: 2},
			Top:    0.5,
			Bottom: 0.2,
		},
		TravelX:  4,
		Duration: 1,
	})
	rider := newBody(t, a, mgl64.Vec3{3, 0.5, 3})
	bystander := newBody(t, a, mgl64.Vec3{10, 0, 10})

	rider.Move(mgl64.Vec3{0, -0.1, 0}, 1)
	require.Same(t, lift, rider.Support())

	a.Update(0.5)
	assert.InDelta(t, 4, lift.MinX(), 1e-4)
	assert.InDelta(t, 5, rider.Position().X(), 1e-4)
	assert.Equal(t, mgl64.Vec3{10, 0, 10}, bystander.Position())

	a.Update(0)
	assert.InDelta(t, 4, lift.MinX(), 1e-4)
}

func TestFromLevel(t *testing.T) {
	_, err := FromLevel(nil, 2)
	assert.Error(t, err)

	_, err = FromLevel(&leveldata.ArenaData{Name: "flat"}, 2)
	assert.Error(t, err)

	a, err := FromLevel(&leveldata.ArenaData{
		Name:   "box",
		Width:  10,
		Depth:  10,
		Ground: []leveldata.GroundPiece{{Box: leveldata.Box{W: 10, D: 10}, Bottom: -1}},
		Walls:  []leveldata.Wall{{Box: leveldata.Box{X: 9, W: 1, D: 10}, Top: 2}},
	}, 2)
	require.NoError(t, err)
	assert.Equal(t, "box", a.Name)
	require.Len(t, a.Pieces(), 2)
	assert.Equal(t, KindGround, a.Pieces()[0].Kind)
	assert.Equal(t, "wall", a.Pieces()[1].Kind.String())
	assert.Equal(t, -20.0, a.KillHeight)
}
