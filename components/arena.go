package components

import (
	"github.com/automoto/locomotion/shared/arena"
	"github.com/yohamta/donburi"
)

// ArenaData holds the collision world singleton.
type ArenaData struct {
	*arena.Arena
}

var Arena = donburi.NewComponentType[ArenaData]()
