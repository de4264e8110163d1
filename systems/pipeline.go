package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/locomotion/components"
	"github.com/yohamta/donburi"
)

var ErrInvalidDelta = errors.New("tick delta must be positive")

// System is one phase of the simulation tick.
type System struct {
	Name   string
	Update func(w donburi.World, dt float64)
}

// Pipeline runs systems in a fixed order, once per tick.
type Pipeline struct {
	systems  []System
	maxDelta float64
}

// NewPipeline runs systems in the given order. A maxDelta above zero caps
// the step a single tick may integrate.
func NewPipeline(maxDelta float64, systems ...System) *Pipeline {
	return &Pipeline{systems: systems, maxDelta: maxDelta}
}

// DefaultPipeline is the locomotion tick. The order is load-bearing:
// input is captured before the state machine, the state machine reads last
// tick's body velocity before physics moves it, and the animation layer
// publishes strictly after rotation.
func DefaultPipeline(maxDelta float64) *Pipeline {
	return NewPipeline(maxDelta,
		System{Name: "objects", Update: UpdateObjects},
		System{Name: "respawn", Update: UpdateRespawn},
		System{Name: "input", Update: UpdateInput},
		System{Name: "states", Update: UpdateStates},
		System{Name: "physics", Update: UpdatePhysics},
		System{Name: "rotation", Update: UpdateRotation},
		System{Name: "animation", Update: UpdateAnimation},
	)
}

// Systems returns the phase names in run order.
func (p *Pipeline) Systems() []string {
	names := make([]string, len(p.systems))
	for i, s := range p.systems {
		names[i] = s.Name
	}
	return names
}

// Step advances the world by dt seconds.
func (p *Pipeline) Step(w donburi.World, dt float64) error {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("step %v: %w", dt, ErrInvalidDelta)
	}
	if p.maxDelta > 0 && dt > p.maxDelta {
		dt = p.maxDelta
	}

	if e, ok := components.Clock.First(w); ok {
		clock := components.Clock.Get(e)
		clock.Delta = dt
		clock.Tick++
		clock.Time += dt
	}

	for _, s := range p.systems {
		s.Update(w, dt)
	}
	return nil
}
