package render

import (
	"image/color"

	"github.com/automoto/locomotion/components"
	"github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/shared/arena"
	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena fills every piece's footprint, shaded by height.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(config.Render.BackgroundColor)

	view, ok := currentView(e)
	if !ok {
		return
	}
	arenaEntry, ok := components.Arena.First(e.World)
	if !ok || components.Arena.Get(arenaEntry).Arena == nil {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := float32(config.Render.PixelsPerMeter)

	for _, p := range components.Arena.Get(arenaEntry).Pieces() {
		// Z grows up the screen, so the top-left corner is at max Z.
		x, y := toScreen(view, width, height, p.MinX(), p.MaxZ())
		w := float32(p.Width()) * ppm
		h := float32(p.Depth()) * ppm
		c := pieceColor(p)
		if p.Kind == arena.KindTrigger {
			vector.StrokeRect(screen, x, y, w, h, 1, c, false)
			continue
		}
		vector.FillRect(screen, x, y, w, h, c, false)
		vector.StrokeRect(screen, x, y, w, h, 1, color.RGBA{0, 0, 0, 120}, false)
	}
}

func pieceColor(p *arena.Piece) color.RGBA {
	switch p.Kind {
	case arena.KindWall:
		return config.Render.WallColor
	case arena.KindPlatform:
		return config.Render.PlatformColor
	case arena.KindTrigger:
		return config.Render.TriggerColor
	}
	if p.Rise != gamemath.RiseNone {
		return config.Render.RampColor
	}
	return shade(config.Render.GroundColor, p.Top)
}

// shade brightens c by 12% per meter of height.
func shade(c color.RGBA, top float64) color.RGBA {
	f := gamemath.Clamp(1+top*0.12, 0.5, 1.6)
	scale := func(v uint8) uint8 {
		return uint8(gamemath.Clamp(float64(v)*f, 0, 255))
	}
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// DrawCharacters draws each body footprint with its body and camera facing.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	view, ok := currentView(e)
	if !ok {
		return
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	ppm := config.Render.PixelsPerMeter

	tags.Character.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		rotation := components.Rotation.Get(entry)
		state := components.State.Get(entry)

		pos := body.Position()
		cx, cy := toScreen(view, width, height, pos.X(), pos.Z())
		r := float32(body.Radius() * ppm)

		c := config.Render.BodyColor
		if !state.IsGroundedCategory() {
			c.A = 160
		}
		vector.FillCircle(screen, cx, cy, r, c, true)

		drawFacing(screen, view, width, height, pos, rotation.BodyForward(), body.Radius()*2, color.RGBA{255, 255, 255, 255})
		drawFacing(screen, view, width, height, pos, rotation.CameraForward(), body.Radius()*3, config.Render.CameraColor)
	})
}

func drawFacing(screen *ebiten.Image, view *components.ViewData, width, height int, from, dir mgl64.Vec3, length float64, c color.Color) {
	flat, ok := gamemath.SafeNormalize(dir, mgl64.Vec3{})
	if !ok {
		return
	}
	to := from.Add(flat.Mul(length))
	x0, y0 := toScreen(view, width, height, from.X(), from.Z())
	x1, y1 := toScreen(view, width, height, to.X(), to.Z())
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, c, true)
}

func currentView(e *ecs.ECS) (*components.ViewData, bool) {
	entry, ok := components.View.First(e.World)
	if !ok {
		return nil, false
	}
	return components.View.Get(entry), true
}
