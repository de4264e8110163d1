package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CharacterData struct {
	Name     string
	Spawn    mgl64.Vec3
	SpawnYaw float64
	LastSafe mgl64.Vec3 // Last position where the character was grounded
	Respawns int
}

var Character = donburi.NewComponentType[CharacterData]()
