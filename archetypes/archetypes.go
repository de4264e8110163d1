package archetypes

import (
	"github.com/automoto/locomotion/components"
	"github.com/automoto/locomotion/tags"
	"github.com/yohamta/donburi"
)

var (
	Character = newArchetype(
		tags.Character,
		components.Character,
		components.Body,
		components.Input,
		components.State,
		components.Physics,
		components.Rotation,
		components.Animation,
	)
	Arena = newArchetype(
		tags.Arena,
		components.Arena,
	)
	Clock = newArchetype(
		tags.Clock,
		components.Clock,
	)
	View = newArchetype(
		components.View,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
