package controls

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical locomotion action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionSprint
	ActionWalk
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds the default device mappings
var Bindings map[ActionID]InputBinding

func init() {
	Bindings = map[ActionID]InputBinding{
		ActionMoveForward: {
			Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
			// D-pad Up (analog stick handled separately)
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		ActionMoveBack: {
			Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		ActionMoveLeft: {
			Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftLeft,
			},
		},
		ActionMoveRight: {
			Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftRight,
			},
		},
		ActionJump: {
			Keys: []ebiten.Key{ebiten.KeySpace},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		ActionSprint: {
			Keys: []ebiten.Key{ebiten.KeyShiftLeft},
			// Left stick click
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftStick,
			},
		},
		ActionWalk: {
			Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
			// Y / Triangle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightTop,
			},
		},
	}
}
