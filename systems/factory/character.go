package factory

import (
	"errors"
	"fmt"

	"github.com/automoto/locomotion/archetypes"
	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

var (
	ErrNoBody        = errors.New("character has no kinematic body")
	ErrNoGroundQuery = errors.New("character has no ground query")
	ErrNoInputSource = errors.New("character has no input source")
)

// CharacterOptions are the collaborators and tuning a character is built
// from. Body, Ground and Input are required.
type CharacterOptions struct {
	Name     string
	Body     components.KinematicBody
	Ground   components.GroundQuery
	Input    components.InputSource
	Yaw      float64 // Initial facing of body and camera
	Tunables cfg.Tunables
}

// CreateCharacter spawns a character in the Idling state.
func CreateCharacter(w donburi.World, opts CharacterOptions) (*donburi.Entry, error) {
	if opts.Body == nil {
		return nil, fmt.Errorf("create character %q: %w", opts.Name, ErrNoBody)
	}
	if opts.Ground == nil {
		return nil, fmt.Errorf("create character %q: %w", opts.Name, ErrNoGroundQuery)
	}
	if opts.Input == nil {
		return nil, fmt.Errorf("create character %q: %w", opts.Name, ErrNoInputSource)
	}

	t := opts.Tunables
	cfg.Sanitize(&t)

	character := archetypes.Character.Spawn(w)

	spawn := opts.Body.Position()
	components.Character.SetValue(character, components.CharacterData{
		Name:     opts.Name,
		Spawn:    spawn,
		SpawnYaw: opts.Yaw,
		LastSafe: spawn,
	})

	layers := make([]string, len(t.Ground.Layers))
	copy(layers, t.Ground.Layers)
	components.Body.SetValue(character, components.BodyData{
		Body:         opts.Body,
		Ground:       opts.Ground,
		GroundLayers: layers,
	})
	opts.Body.SetStepOffset(t.Movement.StepOffset)

	components.Input.SetValue(character, components.InputData{
		Source:       opts.Input,
		HoldToSprint: t.Input.HoldToSprint,
	})
	components.State.SetValue(character, components.NewStateData())
	components.Physics.SetValue(character, components.PhysicsData{
		ForwardXZ: gamemath.YawForward(opts.Yaw),
		RightXZ:   gamemath.YawRight(opts.Yaw),
		Movement:  t.Movement,
	})
	components.Rotation.SetValue(character, components.NewRotationData(opts.Yaw, t.Camera, t.Rotation))
	components.Animation.SetValue(character, components.AnimationData{
		State:    cfg.Idling,
		IsIdling: true,
		Blend:    mgl64.Vec2{},
		Tuning:   t.Animation,
	})

	return character, nil
}
