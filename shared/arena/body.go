package arena

import (
	"fmt"
	"math"

	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// Body is an upright character volume with a square footprint of side
// 2*radius. Its position is the center of the feet.
type Body struct {
	arena *Arena
	obj   *resolv.Object

	// Footprint minimum corner
	x, z float64

	y          float64
	radius     float64
	height     float64
	stepOffset float64

	velocity mgl64.Vec3
	grounded bool
	support  *Piece
	triggers []*Piece
}

// NewBody places a body with its feet at pos.
func (a *Arena) NewBody(pos mgl64.Vec3, radius, height, stepOffset float64) (*Body, error) {
	if radius <= 0 || height < 2*radius {
		return nil, fmt.Errorf("radius %v height %v: %w", radius, height, ErrInvalidBody)
	}
	size := toUnits(2 * radius)
	b := &Body{
		arena:      a,
		obj:        resolv.NewObject(0, 0, size, size, tags.ResolvCharacter),
		x:          pos.X() - radius,
		z:          pos.Z() - radius,
		y:          pos.Y(),
		radius:     radius,
		height:     height,
		stepOffset: math.Max(0, stepOffset),
	}
	b.obj.Data = b
	a.space.Add(b.obj)
	b.shift(0, 0)
	a.bodies = append(a.bodies, b)
	return b, nil
}

// RemoveBody takes b out of the arena.
func (a *Arena) RemoveBody(b *Body) {
	a.space.Remove(b.obj)
	for i, other := range a.bodies {
		if other == b {
			a.bodies = append(a.bodies[:i], a.bodies[i+1:]...)
			break
		}
	}
}

func (b *Body) Position() mgl64.Vec3 {
	return mgl64.Vec3{b.x + b.radius, b.y, b.z + b.radius}
}

func (b *Body) Velocity() mgl64.Vec3 { return b.velocity }
func (b *Body) Radius() float64      { return b.radius }
func (b *Body) Height() float64      { return b.height }
func (b *Body) IsGrounded() bool     { return b.grounded }
func (b *Body) StepOffset() float64  { return b.stepOffset }

func (b *Body) SetStepOffset(v float64) {
	b.stepOffset = math.Max(0, v)
}

// Support is the piece the body stood on after the last move, if any.
func (b *Body) Support() *Piece { return b.support }

// Triggers lists the trigger volumes the body overlapped after the last move.
func (b *Body) Triggers() []*Piece { return b.triggers }

// Teleport places the feet at pos and clears all motion state.
func (b *Body) Teleport(pos mgl64.Vec3) {
	b.x = pos.X() - b.radius
	b.z = pos.Z() - b.radius
	b.shift(0, 0)
	b.y = pos.Y()
	b.velocity = mgl64.Vec3{}
	b.grounded = false
	b.support = nil
	b.triggers = nil
}

// shift moves the footprint without collision and keeps the broadphase
// object in step.
func (b *Body) shift(dx, dz float64) {
	b.x += dx
	b.z += dz
	b.obj.X = toUnits(b.x)
	b.obj.Y = toUnits(b.z)
	b.obj.Update()
}

// Move displaces the body by delta, sliding along blocking pieces one axis at
// a time, and records the achieved displacement divided by dt as velocity.
func (b *Body) Move(delta mgl64.Vec3, dt float64) {
	start := b.Position()

	b.moveLateral(delta.X(), 0)
	b.moveLateral(0, delta.Z())
	b.moveVertical(delta.Y())
	b.updateTriggers()

	if dt > 0 {
		b.velocity = b.Position().Sub(start).Mul(1 / dt)
	} else {
		b.velocity = mgl64.Vec3{}
	}
}

func (b *Body) moveLateral(dx, dz float64) {
	if dx == 0 && dz == 0 {
		return
	}
	size := 2 * b.radius
	minX := math.Min(b.x, b.x+dx)
	minZ := math.Min(b.z, b.z+dz)
	maxX := math.Max(b.x, b.x+dx) + size
	maxZ := math.Max(b.z, b.z+dz) + size
	for _, p := range b.arena.query(minX, minZ, maxX, maxZ, tags.ResolvSolid) {
		if !p.Solid() {
			continue
		}
		// Already inside: let the body walk out.
		if b.overlapsXZ(p, 0, 0) {
			continue
		}
		if !b.overlapsXZ(p, dx, dz) || !b.blockedBy(p, dx, dz) {
			continue
		}
		switch {
		case dx > 0:
			dx = math.Max(0, math.Min(dx, p.MinX()-(b.x+size)))
		case dx < 0:
			dx = math.Min(0, math.Max(dx, p.MaxX()-b.x))
		}
		switch {
		case dz > 0:
			dz = math.Max(0, math.Min(dz, p.MinZ()-(b.z+size)))
		case dz < 0:
			dz = math.Min(0, math.Max(dz, p.MaxZ()-b.z))
		}
	}
	b.shift(dx, dz)
}

// blockedBy reports whether p is too tall to step onto from the current
// height once the body has moved by (dx, dz).
func (b *Body) blockedBy(p *Piece, dx, dz float64) bool {
	pos := b.Position()
	surface := p.SurfaceAt(pos.X()+dx, pos.Z()+dz)
	return surface > b.y+b.stepOffset+epsilon && p.Bottom < b.y+b.height
}

func (b *Body) moveVertical(dy float64) {
	newY := b.y + dy
	pos := b.Position()

	var support *Piece
	supportY := math.Inf(-1)
	for _, p := range b.overlapping(tags.ResolvSolid) {
		if !p.Solid() {
			continue
		}
		if dy > 0 && p.Bottom >= b.y+b.height-epsilon && p.Bottom < newY+b.height {
			newY = p.Bottom - b.height
		}
		surface := p.SurfaceAt(pos.X(), pos.Z())
		if surface <= b.y+b.stepOffset+epsilon && surface > supportY {
			support, supportY = p, surface
		}
	}

	if support != nil && newY <= supportY {
		b.y = supportY
		b.grounded = true
		b.support = support
		return
	}
	b.y = newY
	b.grounded = false
	b.support = nil
}

func (b *Body) updateTriggers() {
	b.triggers = b.triggers[:0]
	for _, p := range b.overlapping(tags.ResolvTrigger) {
		if p.Kind == KindTrigger && p.Bottom < b.y+b.height && p.Top > b.y {
			b.triggers = append(b.triggers, p)
		}
	}
}

// overlapping returns the pieces carrying any of the given tags whose
// footprint overlaps the body's.
func (b *Body) overlapping(resolvTags ...string) []*Piece {
	size := 2 * b.radius
	candidates := b.arena.query(b.x, b.z, b.x+size, b.z+size, resolvTags...)
	out := candidates[:0]
	for _, p := range candidates {
		if b.overlapsXZ(p, 0, 0) {
			out = append(out, p)
		}
	}
	return out
}

func (b *Body) overlapsXZ(p *Piece, dx, dz float64) bool {
	size := 2 * b.radius
	minX, maxX := b.x+dx, b.x+size+dx
	minZ, maxZ := b.z+dz, b.z+size+dz
	return minX < p.MaxX()-epsilon && maxX > p.MinX()+epsilon &&
		minZ < p.MaxZ()-epsilon && maxZ > p.MinZ()+epsilon
}

// LateralSpeed is the ground-plane speed from the last move.
func (b *Body) LateralSpeed() float64 {
	return gamemath.Lateral(b.velocity).Len()
}
