// Package leveldata provides TMX arena parsing.
// Parsed arenas are plain values in meters, free of any engine or physics types.
package leveldata

import "github.com/automoto/locomotion/shared/gamemath"

// PixelsPerMeter converts TMX pixel coordinates to world meters.
// TMX x maps to world X and TMX y maps to world Z.
const PixelsPerMeter = 32.0

// ArenaData holds everything parsed from an arena TMX file, in meters.
type ArenaData struct {
	Name      string
	Width     float64 // World X extent
	Depth     float64 // World Z extent
	Ground    []GroundPiece
	Walls     []Wall
	Triggers  []Trigger
	Platforms []Platform
	Spawns    []SpawnPoint
}

// Box is a ground-plane footprint.
type Box struct {
	Name string
	X, Z float64 // Minimum corner
	W, D float64
}

// GroundPiece is a walkable volume. A ramp climbs from Low to Top along Rise.
type GroundPiece struct {
	Box
	Top    float64
	Bottom float64
	Low    float64
	Rise   gamemath.Rise
}

// Wall blocks lateral movement between Bottom and Top.
type Wall struct {
	Box
	Top    float64
	Bottom float64
}

// Trigger is an overlap-only volume. Layer optionally names a collision
// layer the trigger is tagged with.
type Trigger struct {
	Box
	Top    float64
	Bottom float64
	Layer  string
}

// Platform is a flat ground piece that travels back and forth.
type Platform struct {
	GroundPiece
	TravelX  float64
	TravelZ  float64
	Duration float64 // Seconds for one leg
}

// SpawnPoint represents a character spawn location.
type SpawnPoint struct {
	Name    string
	X, Y, Z float64
	Yaw     float64
	Index   int
}
