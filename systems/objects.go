package systems

import (
	"github.com/automoto/locomotion/components"
	"github.com/yohamta/donburi"
)

// UpdateObjects advances the arena's moving platforms.
func UpdateObjects(w donburi.World, dt float64) {
	for e := range components.Arena.Iter(w) {
		arena := components.Arena.Get(e)
		if arena.Arena != nil {
			arena.Update(dt)
		}
	}
}
