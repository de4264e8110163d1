package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ViewData is the top-down debug view, centered on a ground-plane point.
type ViewData struct {
	Center mgl64.Vec2 // World X, Z
}

var View = donburi.NewComponentType[ViewData]()
