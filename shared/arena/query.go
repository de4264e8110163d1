package arena

import (
	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/automoto/locomotion/tags"
	"github.com/go-gl/mathgl/mgl64"
)

// CheckSphere reports whether a sphere overlaps any piece tagged with one of
// layers. Touching counts as overlapping. Triggers are always ignored.
func (a *Arena) CheckSphere(center mgl64.Vec3, radius float64, layers ...string) bool {
	if radius < 0 || len(layers) == 0 {
		return false
	}
	candidates := a.query(
		center.X()-radius, center.Z()-radius,
		center.X()+radius, center.Z()+radius,
		layers...,
	)
	for _, p := range candidates {
		if p.Kind == KindTrigger || p.Object.HasTags(tags.ResolvTrigger) {
			continue
		}
		if sphereTouchesPiece(center, radius, p) {
			return true
		}
	}
	return false
}

// Candidate searches are widened by this many units to cover the unit resolv
// trims from both the probe and the pieces it looks for.
const broadphasePad = 2

// query returns the pieces tagged with any of resolvTags whose cells fall
// within the padded rectangle, given in meters. Callers do their own exact
// overlap test.
func (a *Arena) query(minX, minZ, maxX, maxZ float64, resolvTags ...string) []*Piece {
	a.probe.X = toUnits(minX) - broadphasePad
	a.probe.Y = toUnits(minZ) - broadphasePad
	a.probe.W = toUnits(maxX-minX) + 2*broadphasePad
	a.probe.H = toUnits(maxZ-minZ) + 2*broadphasePad
	a.probe.Update()

	check := a.probe.Check(0, 0, resolvTags...)
	if check == nil {
		return nil
	}
	out := make([]*Piece, 0, len(check.Objects))
	seen := make(map[*Piece]bool, len(check.Objects))
	for _, o := range check.Objects {
		p, ok := o.Data.(*Piece)
		if !ok || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// sphereTouchesPiece tests against the piece's bounding volume, using the
// surface height nearest the sphere's center as its top.
func sphereTouchesPiece(c mgl64.Vec3, r float64, p *Piece) bool {
	x := gamemath.Clamp(c.X(), p.MinX(), p.MaxX())
	z := gamemath.Clamp(c.Z(), p.MinZ(), p.MaxZ())
	top := p.SurfaceAt(x, z)
	y := gamemath.Clamp(c.Y(), p.Bottom, top)
	closest := mgl64.Vec3{x, y, z}
	d := c.Sub(closest)
	return d.Dot(d) <= r*r+epsilon
}
