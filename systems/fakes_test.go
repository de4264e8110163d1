package systems

import (
	"testing"

	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

const tick = 1.0 / 60

// fakeBody moves freely and stands on a flat floor at height zero.
type fakeBody struct {
	pos      mgl64.Vec3
	vel      mgl64.Vec3
	radius   float64
	grounded bool
	step     float64
	moves    []mgl64.Vec3
}

func (b *fakeBody) Position() mgl64.Vec3    { return b.pos }
func (b *fakeBody) Velocity() mgl64.Vec3    { return b.vel }
func (b *fakeBody) Radius() float64         { return b.radius }
func (b *fakeBody) IsGrounded() bool        { return b.grounded }
func (b *fakeBody) StepOffset() float64     { return b.step }
func (b *fakeBody) SetStepOffset(v float64) { b.step = v }

func (b *fakeBody) Move(delta mgl64.Vec3, dt float64) {
	b.moves = append(b.moves, delta)
	start := b.pos
	b.pos = b.pos.Add(delta)
	b.grounded = b.pos.Y() <= 0
	if b.grounded {
		b.pos[1] = 0
	}
	b.vel = b.pos.Sub(start).Mul(1 / dt)
}

func (b *fakeBody) Teleport(pos mgl64.Vec3) {
	b.pos = pos
	b.vel = mgl64.Vec3{}
	b.grounded = false
}

type sphereCall struct {
	center mgl64.Vec3
	radius float64
	layers []string
}

type fakeGround struct {
	hit   bool
	calls []sphereCall
}

func (g *fakeGround) CheckSphere(center mgl64.Vec3, radius float64, layers ...string) bool {
	g.calls = append(g.calls, sphereCall{center: center, radius: radius, layers: layers})
	return g.hit
}

// fakeInput plays frames in order, then reports nothing.
type fakeInput struct {
	frames []components.RawInput
	polled int
}

func (in *fakeInput) Poll() components.RawInput {
	defer func() { in.polled++ }()
	if in.polled < len(in.frames) {
		return in.frames[in.polled]
	}
	return components.RawInput{}
}

func repeat(raw components.RawInput, n int) []components.RawInput {
	frames := make([]components.RawInput, n)
	for i := range frames {
		frames[i] = raw
	}
	return frames
}

func forward() components.RawInput {
	return components.RawInput{Movement: mgl64.Vec2{0, 1}}
}

type testCharacter struct {
	world  donburi.World
	entry  *donburi.Entry
	body   *fakeBody
	ground *fakeGround
	input  *fakeInput
}

func newTestCharacter(t *testing.T, frames ...components.RawInput) *testCharacter {
	t.Helper()
	tc := &testCharacter{
		world:  donburi.NewWorld(),
		body:   &fakeBody{radius: 0.5, grounded: true},
		ground: &fakeGround{hit: true},
		input:  &fakeInput{frames: frames},
	}
	factory.CreateClock(tc.world)
	e, err := factory.CreateCharacter(tc.world, factory.CharacterOptions{
		Name:     "test",
		Body:     tc.body,
		Ground:   tc.ground,
		Input:    tc.input,
		Tunables: cfg.Defaults(),
	})
	require.NoError(t, err)
	tc.entry = e
	return tc
}

func (tc *testCharacter) step(t *testing.T, p *Pipeline, ticks int) {
	t.Helper()
	for i := 0; i < ticks; i++ {
		require.NoError(t, p.Step(tc.world, tick))
	}
}

func (tc *testCharacter) state() *components.StateData {
	return components.State.Get(tc.entry)
}

func (tc *testCharacter) physics() *components.PhysicsData {
	return components.Physics.Get(tc.entry)
}

func (tc *testCharacter) animation() *components.AnimationData {
	return components.Animation.Get(tc.entry)
}
