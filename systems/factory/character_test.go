package factory

import (
	"testing"

	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/arena"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type idleInput struct{}

func (idleInput) Poll() components.RawInput { return components.RawInput{} }

func testBody(t *testing.T) (*arena.Arena, *arena.Body) {
	t.Helper()
	a := arena.New(10, 10, 2)
	b, err := a.NewBody(mgl64.Vec3{5, 0, 5}, 0.5, 1.8, 0)
	require.NoError(t, err)
	return a, b
}

func TestCreateCharacterRequiresCollaborators(t *testing.T) {
	a, b := testBody(t)
	w := donburi.NewWorld()

	_, err := CreateCharacter(w, CharacterOptions{Ground: a, Input: idleInput{}})
	assert.ErrorIs(t, err, ErrNoBody)

	_, err = CreateCharacter(w, CharacterOptions{Body: b, Input: idleInput{}})
	assert.ErrorIs(t, err, ErrNoGroundQuery)

	_, err = CreateCharacter(w, CharacterOptions{Body: b, Ground: a})
	assert.ErrorIs(t, err, ErrNoInputSource)

	assert.Equal(t, 0, w.Len())
}

func TestCreateCharacter(t *testing.T) {
	a, b := testBody(t)
	w := donburi.NewWorld()
	tun := cfg.Defaults()
	tun.Input.HoldToSprint = false

	e, err := CreateCharacter(w, CharacterOptions{
		Name:     "hero",
		Body:     b,
		Ground:   a,
		Input:    idleInput{},
		Yaw:      90,
		Tunables: tun,
	})
	require.NoError(t, err)

	character := components.Character.Get(e)
	assert.Equal(t, "hero", character.Name)
	assert.Equal(t, mgl64.Vec3{5, 0, 5}, character.Spawn)
	assert.Equal(t, character.Spawn, character.LastSafe)

	assert.Equal(t, tun.Movement.StepOffset, b.StepOffset())
	assert.Equal(t, []string{"ground"}, components.Body.Get(e).GroundLayers)
	assert.False(t, components.Input.Get(e).HoldToSprint)

	state := components.State.Get(e)
	assert.Equal(t, cfg.Idling, state.Current())
	assert.Equal(t, cfg.Idling, state.Previous())

	rotation := components.Rotation.Get(e)
	assert.InDelta(t, 90, rotation.BodyYaw(), 1e-9)
	assert.Equal(t, 90.0, rotation.CameraYaw)
	assert.Equal(t, 0.0, rotation.CameraPitch)

	physics := components.Physics.Get(e)
	assert.InDelta(t, 1, physics.ForwardXZ.X(), 1e-9)
	assert.Equal(t, tun.Movement, physics.Movement)

	anim := components.Animation.Get(e)
	assert.True(t, anim.IsIdling)
	assert.Equal(t, tun.Animation, anim.Tuning)
}

func TestCreateCharacterSanitizesTuning(t *testing.T) {
	a, b := testBody(t)
	tun := cfg.Defaults()
	tun.Movement.RunSpeed = -1
	tun.Ground.Layers = nil

	e, err := CreateCharacter(donburi.NewWorld(), CharacterOptions{Body: b, Ground: a, Input: idleInput{}, Tunables: tun})
	require.NoError(t, err)
	assert.Equal(t, 0.0, components.Physics.Get(e).Movement.RunSpeed)
	assert.Equal(t, cfg.Defaults().Ground.Layers, components.Body.Get(e).GroundLayers)
}
