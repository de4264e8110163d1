package controls

import (
	"math"

	"github.com/automoto/locomotion/components"
	cfg "github.com/automoto/locomotion/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Device is an InputSource reading keyboard, mouse and standard gamepads
// through ebiten. Poll must be called from ebiten's Update.
type Device struct {
	current  [ActionCount]bool
	previous [ActionCount]bool

	cursorX, cursorY int
	hasCursor        bool

	// Reusable slice for gamepad IDs to avoid allocations
	gamepadIDs []ebiten.GamepadID

	deadzone         float64
	mouseLookScale   float64
	gamepadLookScale float64
}

func NewDevice(c cfg.InputConfig) *Device {
	return &Device{
		deadzone:         c.AnalogDeadzone,
		mouseLookScale:   c.MouseLookScale,
		gamepadLookScale: c.GamepadLookScale,
	}
}

// Poll swaps the action buffers, samples every device and derives edges.
func (d *Device) Poll() components.RawInput {
	d.previous = d.current
	d.current = [ActionCount]bool{}

	d.gamepadIDs = ebiten.AppendGamepadIDs(d.gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				d.current[actionID] = true
			}
		}
		for _, gpID := range d.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					d.current[actionID] = true
				}
			}
		}
	}

	return components.RawInput{
		Movement: d.movement(),
		Look:     d.look(),
		Jump:     d.action(ActionJump),
		Sprint:   d.action(ActionSprint),
		Walk:     d.action(ActionWalk),
	}
}

func (d *Device) action(id ActionID) components.ActionState {
	return components.NewActionState(d.current[id], d.previous[id])
}

func (d *Device) movement() mgl64.Vec2 {
	var move mgl64.Vec2
	if d.current[ActionMoveForward] {
		move[1]++
	}
	if d.current[ActionMoveBack] {
		move[1]--
	}
	if d.current[ActionMoveRight] {
		move[0]++
	}
	if d.current[ActionMoveLeft] {
		move[0]--
	}
	if move.Len() > 1 {
		move = move.Normalize()
	}
	if move.Len() > 0 {
		return move
	}

	// Screen Y grows downward, world forward is stick up.
	h, v := d.stick(ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical)
	return mgl64.Vec2{h, -v}
}

func (d *Device) look() mgl64.Vec2 {
	x, y := ebiten.CursorPosition()
	var look mgl64.Vec2
	if d.hasCursor && ebiten.CursorMode() == ebiten.CursorModeCaptured {
		look = mgl64.Vec2{
			float64(x-d.cursorX) * d.mouseLookScale,
			-float64(y-d.cursorY) * d.mouseLookScale,
		}
	}
	d.cursorX, d.cursorY, d.hasCursor = x, y, true

	h, v := d.stick(ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical)
	return look.Add(mgl64.Vec2{h, -v}.Mul(d.gamepadLookScale))
}

// stick reads a stick pair from the first standard gamepad outside the
// radial deadzone, rescaled so the deadzone edge maps to zero.
func (d *Device) stick(hAxis, vAxis ebiten.StandardGamepadAxis) (h, v float64) {
	for _, gpID := range d.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h = ebiten.StandardGamepadAxisValue(gpID, hAxis)
		v = ebiten.StandardGamepadAxisValue(gpID, vAxis)
		mag := math.Hypot(h, v)
		if mag <= d.deadzone {
			continue
		}
		scaled := math.Min(1, (mag-d.deadzone)/(1-d.deadzone))
		return h / mag * scaled, v / mag * scaled
	}
	return 0, 0
}
