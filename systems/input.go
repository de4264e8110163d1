package systems

import (
	"github.com/automoto/locomotion/components"
	"github.com/automoto/locomotion/tags"
	"github.com/yohamta/donburi"
)

// UpdateInput polls each character's input source and installs the tick's
// snapshot. Must run BEFORE UpdateStates in the system order.
func UpdateInput(w donburi.World, _ float64) {
	tags.Character.Each(w, func(e *donburi.Entry) {
		input := components.Input.Get(e)
		if input.Source == nil {
			input.Begin(components.InputSnapshot{})
			return
		}
		input.Begin(BuildSnapshot(input, input.Source.Poll()))
	})
}

// BuildSnapshot applies sprint and walk toggle semantics to a raw device
// frame. Toggle state is carried on input.
func BuildSnapshot(input *components.InputData, raw components.RawInput) components.InputSnapshot {
	if input.HoldToSprint {
		input.SprintOn = raw.Sprint.Pressed
	} else if raw.Sprint.JustPressed {
		input.SprintOn = !input.SprintOn
	}

	if raw.Walk.JustPressed {
		input.WalkOn = !input.WalkOn
	}

	return components.InputSnapshot{
		Movement:      raw.Movement,
		Look:          raw.Look,
		JumpPressed:   raw.Jump.JustPressed,
		SprintToggled: input.SprintOn,
		WalkToggled:   input.WalkOn,
	}
}
