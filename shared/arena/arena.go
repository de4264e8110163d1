// Package arena is a resolv-backed collision world for kinematic characters.
//
// resolv works in two dimensions, so the ground plane maps onto the space:
// object X is world X and object Y is world Z, both in millimeters. resolv is
// only the broadphase. Footprints and heights are kept in meters alongside
// each object and resolved by hand.
package arena

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/shared/leveldata"
	"github.com/automoto/locomotion/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var ErrInvalidBody = errors.New("invalid body dimensions")

// Penetration smaller than this does not count as overlap.
const epsilon = 1e-6

// resolv addresses cells in whole units and trims one unit off the far edge
// of every object, so it works on millimeters rather than meters.
const unitsPerMeter = 1000

func toUnits(m float64) float64 { return m * unitsPerMeter }

type Kind int

const (
	KindGround Kind = iota
	KindWall
	KindPlatform
	KindTrigger
)

func (k Kind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindWall:
		return "wall"
	case KindPlatform:
		return "platform"
	case KindTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// Piece is a static or moving collision volume.
type Piece struct {
	Name   string
	Kind   Kind
	Object *resolv.Object

	x, z, w, d float64

	Bottom float64
	Top    float64
	Low    float64
	Rise   gamemath.Rise

	// Moving platforms only
	tween  *gween.Sequence
	origin mgl64.Vec2
	travel mgl64.Vec2
}

func (p *Piece) MinX() float64  { return p.x }
func (p *Piece) MaxX() float64  { return p.x + p.w }
func (p *Piece) MinZ() float64  { return p.z }
func (p *Piece) MaxZ() float64  { return p.z + p.d }
func (p *Piece) Width() float64 { return p.w }
func (p *Piece) Depth() float64 { return p.d }

// moveTo places the footprint's minimum corner at (x, z).
func (p *Piece) moveTo(x, z float64) {
	p.x, p.z = x, z
	p.Object.X = toUnits(x)
	p.Object.Y = toUnits(z)
	p.Object.Update()
}

// Solid reports whether the piece takes part in movement resolution.
func (p *Piece) Solid() bool { return p.Kind != KindTrigger }

// SurfaceAt returns the height of the top of the piece at the point of its
// footprint nearest to (x, z).
func (p *Piece) SurfaceAt(x, z float64) float64 {
	x = gamemath.Clamp(x, p.MinX(), p.MaxX())
	z = gamemath.Clamp(z, p.MinZ(), p.MaxZ())
	return gamemath.GetRampSurfaceY(p.x, p.z, p.w, p.d, p.Low, p.Top, p.Rise, x, z)
}

// Arena owns the resolv space and everything in it.
type Arena struct {
	Name       string
	Width      float64
	Depth      float64
	KillHeight float64 // Bodies below this have left the arena

	space  *resolv.Space
	probe  *resolv.Object
	pieces []*Piece
	bodies []*Body
}

// New creates an empty arena covering [0, width] x [0, depth].
func New(width, depth float64, cellSize int) *Arena {
	if cellSize <= 0 {
		cellSize = 1
	}
	cell := cellSize * unitsPerMeter
	space := resolv.NewSpace(int(math.Ceil(toUnits(width))), int(math.Ceil(toUnits(depth))), cell, cell)
	probe := resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	space.Add(probe)
	return &Arena{
		Width:      width,
		Depth:      depth,
		KillHeight: -20,
		space:      space,
		probe:      probe,
	}
}

// FromLevel builds an arena from parsed level data.
func FromLevel(data *leveldata.ArenaData, cellSize int) (*Arena, error) {
	if data == nil {
		return nil, errors.New("nil level data")
	}
	if data.Width <= 0 || data.Depth <= 0 {
		return nil, fmt.Errorf("arena %s has no extent (%vx%v)", data.Name, data.Width, data.Depth)
	}
	a := New(data.Width, data.Depth, cellSize)
	a.Name = data.Name
	for _, g := range data.Ground {
		a.AddGround(g)
	}
	for _, w := range data.Walls {
		a.AddWall(w)
	}
	for _, p := range data.Platforms {
		a.AddPlatform(p)
	}
	for _, t := range data.Triggers {
		a.AddTrigger(t)
	}
	return a, nil
}

func (a *Arena) addPiece(p *Piece, box leveldata.Box, resolvTags ...string) *Piece {
	p.Name = box.Name
	p.x, p.z, p.w, p.d = box.X, box.Z, box.W, box.D
	p.Object = resolv.NewObject(toUnits(box.X), toUnits(box.Z), toUnits(box.W), toUnits(box.D), resolvTags...)
	p.Object.Data = p
	a.space.Add(p.Object)
	a.pieces = append(a.pieces, p)
	return p
}

func (a *Arena) AddGround(g leveldata.GroundPiece) *Piece {
	t := []string{tags.ResolvSolid, tags.ResolvGround}
	low := g.Top
	if g.Rise != gamemath.RiseNone {
		t = append(t, tags.ResolvRamp)
		low = g.Low
	}
	return a.addPiece(&Piece{
		Kind:   KindGround,
		Bottom: g.Bottom,
		Top:    g.Top,
		Low:    low,
		Rise:   g.Rise,
	}, g.Box, t...)
}

func (a *Arena) AddWall(w leveldata.Wall) *Piece {
	return a.addPiece(&Piece{
		Kind:   KindWall,
		Bottom: w.Bottom,
		Top:    w.Top,
		Low:    w.Top,
	}, w.Box, tags.ResolvSolid)
}

// AddTrigger adds an overlap-only volume. A trigger tagged with a ground
// layer still never satisfies a ground query.
func (a *Arena) AddTrigger(t leveldata.Trigger) *Piece {
	resolvTags := []string{tags.ResolvTrigger}
	if t.Layer != "" {
		resolvTags = append(resolvTags, t.Layer)
	}
	return a.addPiece(&Piece{
		Kind:   KindTrigger,
		Bottom: t.Bottom,
		Top:    t.Top,
		Low:    t.Top,
	}, t.Box, resolvTags...)
}

// AddPlatform adds a flat ground piece that travels to its offset and back,
// one leg per Duration seconds.
func (a *Arena) AddPlatform(p leveldata.Platform) *Piece {
	piece := a.addPiece(&Piece{
		Kind:   KindPlatform,
		Bottom: p.Bottom,
		Top:    p.Top,
		Low:    p.Top,
		origin: mgl64.Vec2{p.X, p.Z},
		travel: mgl64.Vec2{p.TravelX, p.TravelZ},
	}, p.Box, tags.ResolvSolid, tags.ResolvGround, tags.ResolvPlatform)

	// Progress along the path runs 0 -> 1 -> 0.
	seq := gween.NewSequence()
	seq.Add(
		gween.New(0, 1, float32(p.Duration), ease.InOutSine),
		gween.New(1, 0, float32(p.Duration), ease.InOutSine),
	)
	piece.tween = seq
	return piece
}

func (a *Arena) Pieces() []*Piece { return a.pieces }

func (a *Arena) Bodies() []*Body { return a.bodies }

// Update advances moving platforms by dt and carries any body standing on one.
// Carried bodies are not collision checked.
func (a *Arena) Update(dt float64) {
	if dt <= 0 {
		return
	}
	for _, p := range a.pieces {
		if p.tween == nil {
			continue
		}
		progress, _, done := p.tween.Update(float32(dt))
		if done {
			p.tween.Reset()
			progress = 0
		}
		target := p.origin.Add(p.travel.Mul(float64(progress)))
		dx := target.X() - p.x
		dz := target.Y() - p.z
		if dx == 0 && dz == 0 {
			continue
		}
		p.moveTo(target.X(), target.Y())

		for _, b := range a.bodies {
			if b.support == p {
				b.shift(dx, dz)
			}
		}
	}
}

// SpawnPosition returns the feet position of a spawn point.
func SpawnPosition(s leveldata.SpawnPoint) mgl64.Vec3 {
	return mgl64.Vec3{s.X, s.Y, s.Z}
}
