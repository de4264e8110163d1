// Package simulation wires an arena, one character and the locomotion
// pipeline into a world that can be stepped without a window.
package simulation

import (
	"errors"
	"fmt"

	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/arena"
	"github.com/automoto/locomotion/shared/leveldata"
	"github.com/automoto/locomotion/systems"
	"github.com/automoto/locomotion/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

var ErrNoSpawn = errors.New("spawn point not found")

// Frame is what one tick published for the character.
type Frame struct {
	Tick      uint64
	Time      float64
	Position  mgl64.Vec3
	Velocity  mgl64.Vec3
	Animation components.AnimationData
}

type Simulation struct {
	World     donburi.World
	Pipeline  *systems.Pipeline
	Arena     *arena.Arena
	Character *donburi.Entry
}

// New builds a world from level with a single character at the named spawn
// point. An empty name picks the first spawn.
func New(level *leveldata.ArenaData, spawnName string, input components.InputSource, t cfg.Tunables) (*Simulation, error) {
	spawn, err := findSpawn(level, spawnName)
	if err != nil {
		return nil, err
	}

	w := donburi.NewWorld()
	_, a, err := factory.CreateArenaFromLevel(w, level, t.Arena.CellSize)
	if err != nil {
		return nil, err
	}
	factory.CreateClock(w)

	character, err := factory.CreateArenaCharacter(w, a, spawn.Name, spawn, input, t)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		World:     w,
		Pipeline:  systems.DefaultPipeline(t.Simulation.MaxDelta),
		Arena:     a,
		Character: character,
	}, nil
}

func findSpawn(level *leveldata.ArenaData, name string) (leveldata.SpawnPoint, error) {
	if level == nil || len(level.Spawns) == 0 {
		return leveldata.SpawnPoint{}, ErrNoSpawn
	}
	if name == "" {
		return level.Spawns[0], nil
	}
	for _, s := range level.Spawns {
		if s.Name == name {
			return s, nil
		}
	}
	return leveldata.SpawnPoint{}, fmt.Errorf("%q in %s: %w", name, level.Name, ErrNoSpawn)
}

// Step advances one tick and returns the published frame.
func (s *Simulation) Step(dt float64) (Frame, error) {
	if err := s.Pipeline.Step(s.World, dt); err != nil {
		return Frame{}, err
	}
	return s.Frame(), nil
}

// Run steps ticks times, calling onTick after each when it is set.
func (s *Simulation) Run(ticks int, dt float64, onTick func(Frame)) (Frame, error) {
	var f Frame
	for i := 0; i < ticks; i++ {
		var err error
		if f, err = s.Step(dt); err != nil {
			return f, fmt.Errorf("tick %d: %w", i, err)
		}
		if onTick != nil {
			onTick(f)
		}
	}
	return f, nil
}

// Frame reads the character's current published state.
func (s *Simulation) Frame() Frame {
	f := Frame{
		Animation: *components.Animation.Get(s.Character),
	}
	body := components.Body.Get(s.Character).Body
	f.Position = body.Position()
	f.Velocity = body.Velocity()
	if e, ok := components.Clock.First(s.World); ok {
		clock := components.Clock.Get(e)
		f.Tick = clock.Tick
		f.Time = clock.Time
	}
	return f
}
