package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// NewActionState derives edges from the current and previous frame's pressed state.
func NewActionState(curr, prev bool) ActionState {
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// RawInput is what an input device reports for one frame, before toggle
// semantics are applied.
type RawInput struct {
	Movement mgl64.Vec2 // X strafe, Y forward
	Look     mgl64.Vec2 // Per-frame delta
	Jump     ActionState
	Sprint   ActionState
	Walk     ActionState
}

// InputSource is the external input collaborator. Poll is called once per tick.
type InputSource interface {
	Poll() RawInput
}

// InputSnapshot is the immutable per-tick capture read by the locomotion systems.
type InputSnapshot struct {
	Movement      mgl64.Vec2
	Look          mgl64.Vec2
	JumpPressed   bool // True for exactly one tick per press
	SprintToggled bool
	WalkToggled   bool
}

// HasMovement reports whether any movement input is held.
func (s InputSnapshot) HasMovement() bool {
	return s.Movement.X() != 0 || s.Movement.Y() != 0
}

// InputData is the per-character input state.
type InputData struct {
	Source       InputSource
	HoldToSprint bool

	Snapshot InputSnapshot

	// Toggle state carried across ticks
	SprintOn bool
	WalkOn   bool

	jumpArmed bool
}

// Begin installs the snapshot for a new tick. Any jump left unconsumed from
// the previous tick is discarded, so a press can never fire twice.
func (d *InputData) Begin(s InputSnapshot) {
	d.Snapshot = s
	d.jumpArmed = s.JumpPressed
}

// ConsumeJump reports whether a jump was pressed this tick and disarms it.
func (d *InputData) ConsumeJump() bool {
	armed := d.jumpArmed
	d.jumpArmed = false
	return armed
}

var Input = donburi.NewComponentType[InputData]()
