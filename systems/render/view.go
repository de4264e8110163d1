// Package render draws a top-down debug view of the arena. It is the only
// systems package that depends on ebiten.
package render

import (
	"github.com/automoto/locomotion/components"
	"github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerWorld ecs.LayerID = iota
	LayerHUD
)

// UpdateView eases the view toward the first character.
func UpdateView(e *ecs.ECS) {
	viewEntry, ok := components.View.First(e.World)
	if !ok {
		return
	}
	view := components.View.Get(viewEntry)

	characterEntry, ok := tags.Character.First(e.World)
	if !ok {
		return
	}
	pos := components.Body.Get(characterEntry).Body.Position()
	target := mgl64.Vec2{pos.X(), pos.Z()}
	view.Center = view.Center.Add(target.Sub(view.Center).Mul(config.Render.FollowSmoothing))
}

// toScreen maps a world point to screen pixels. World +Z is screen up.
func toScreen(view *components.ViewData, width, height int, x, z float64) (float32, float32) {
	ppm := config.Render.PixelsPerMeter
	sx := float64(width)/2 + (x-view.Center.X())*ppm
	sy := float64(height)/2 - (z-view.Center.Y())*ppm
	return float32(sx), float32(sy)
}
