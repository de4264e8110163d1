package components

import (
	"github.com/automoto/locomotion/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	VerticalVelocity float64
	JumpedLastFrame  bool // Set on the launch tick, cleared by the state machine
	Grounded         bool // Last ground sensor result

	// Last non-degenerate ground-plane camera axes
	ForwardXZ mgl64.Vec3
	RightXZ   mgl64.Vec3

	Movement config.MovementConfig
}

var Physics = donburi.NewComponentType[PhysicsData]()
