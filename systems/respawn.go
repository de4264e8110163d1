package systems

import (
	"github.com/automoto/locomotion/components"
	"github.com/automoto/locomotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
)

// Teleporter is implemented by bodies that can be placed without moving.
type Teleporter interface {
	Teleport(pos mgl64.Vec3)
}

// UpdateRespawn tracks each character's last grounded position and puts it
// back there once it drops below the arena's kill height.
func UpdateRespawn(w donburi.World, _ float64) {
	arenaEntry, ok := components.Arena.First(w)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	if arena.Arena == nil {
		return
	}

	tags.Character.Each(w, func(e *donburi.Entry) {
		character := components.Character.Get(e)
		physics := components.Physics.Get(e)
		state := components.State.Get(e)
		body := components.Body.Get(e).Body

		pos := body.Position()
		// Both sensors must agree, so a body sliding off an edge is not recorded.
		if physics.Grounded && body.IsGrounded() && state.IsGroundedCategory() {
			character.LastSafe = pos
			return
		}
		if pos.Y() >= arena.KillHeight {
			return
		}

		t, ok := body.(Teleporter)
		if !ok {
			return
		}
		t.Teleport(character.LastSafe)
		physics.VerticalVelocity = 0
		physics.JumpedLastFrame = false
		character.Respawns++
		log.Info().
			Str("character", character.Name).
			Int("respawns", character.Respawns).
			Msg("fell out of arena, respawned")
	})
}
