package factory

import (
	"fmt"

	"github.com/automoto/locomotion/archetypes"
	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/arena"
	"github.com/automoto/locomotion/shared/leveldata"
	"github.com/yohamta/donburi"
)

func CreateArena(w donburi.World, a *arena.Arena) *donburi.Entry {
	entry := archetypes.Arena.Spawn(w)
	components.Arena.SetValue(entry, components.ArenaData{Arena: a})
	return entry
}

// CreateArenaFromLevel builds the collision world from parsed level data.
func CreateArenaFromLevel(w donburi.World, level *leveldata.ArenaData, cellSize int) (*donburi.Entry, *arena.Arena, error) {
	a, err := arena.FromLevel(level, cellSize)
	if err != nil {
		return nil, nil, fmt.Errorf("create arena: %w", err)
	}
	return CreateArena(w, a), a, nil
}

// CreateArenaCharacter places a new body at spawn and builds a character
// around it, using the arena as the ground query.
func CreateArenaCharacter(w donburi.World, a *arena.Arena, name string, spawn leveldata.SpawnPoint, input components.InputSource, t cfg.Tunables) (*donburi.Entry, error) {
	body, err := a.NewBody(arena.SpawnPosition(spawn), t.Arena.CharacterRadius, t.Arena.CharacterHeight, t.Movement.StepOffset)
	if err != nil {
		return nil, fmt.Errorf("create body for %q: %w", name, err)
	}
	entry, err := CreateCharacter(w, CharacterOptions{
		Name:     name,
		Body:     body,
		Ground:   a,
		Input:    input,
		Yaw:      spawn.Yaw,
		Tunables: t,
	})
	if err != nil {
		a.RemoveBody(body)
		return nil, err
	}
	return entry, nil
}

func CreateClock(w donburi.World) *donburi.Entry {
	return archetypes.Clock.Spawn(w)
}

func CreateView(w donburi.World) *donburi.Entry {
	return archetypes.View.Spawn(w)
}
