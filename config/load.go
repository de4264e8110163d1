package config

import (
	"fmt"
	"math"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Clamp records a configuration value that Sanitize replaced.
type Clamp struct {
	Field string
	From  float64
	To    float64
}

// Load overlays the YAML file at path onto the defaults and sanitizes the
// result. Fields missing from the file keep their default values.
func Load(path string) (Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tunables{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse is Load for an in-memory document.
func Parse(data []byte) (Tunables, error) {
	t := Defaults()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("parse config: %w", err)
	}
	for _, c := range Sanitize(&t) {
		log.Warn().
			Str("field", c.Field).
			Float64("from", c.From).
			Float64("to", c.To).
			Msg("config value out of range, clamped")
	}
	return t, nil
}

// Sanitize clamps every out-of-range value in t to the nearest valid one so
// the simulation can never integrate a NaN from configuration alone. NaN and
// infinite values are replaced with the default for that field.
func Sanitize(t *Tunables) []Clamp {
	var clamps []Clamp
	record := func(field string, v *float64, to float64) {
		clamps = append(clamps, Clamp{Field: field, From: *v, To: to})
		*v = to
	}
	finite := func(field string, v *float64, fallback float64) bool {
		if math.IsNaN(*v) || math.IsInf(*v, 0) {
			record(field, v, fallback)
			return false
		}
		return true
	}
	atLeast := func(field string, v *float64, fallback, min float64) {
		if finite(field, v, fallback) && *v < min {
			record(field, v, min)
		}
	}
	within := func(field string, v *float64, fallback, min, max float64) {
		if !finite(field, v, fallback) {
			return
		}
		if *v < min {
			record(field, v, min)
		} else if *v > max {
			record(field, v, max)
		}
	}
	positive := func(field string, v *float64, fallback float64) {
		if finite(field, v, fallback) && *v <= 0 {
			record(field, v, fallback)
		}
	}

	d := Defaults()

	m, dm := &t.Movement, d.Movement
	atLeast("movement.walk_acceleration", &m.WalkAcceleration, dm.WalkAcceleration, 0)
	atLeast("movement.walk_speed", &m.WalkSpeed, dm.WalkSpeed, 0)
	atLeast("movement.run_acceleration", &m.RunAcceleration, dm.RunAcceleration, 0)
	atLeast("movement.run_speed", &m.RunSpeed, dm.RunSpeed, 0)
	atLeast("movement.sprint_acceleration", &m.SprintAcceleration, dm.SprintAcceleration, 0)
	atLeast("movement.sprint_speed", &m.SprintSpeed, dm.SprintSpeed, 0)
	atLeast("movement.in_air_acceleration", &m.InAirAcceleration, dm.InAirAcceleration, 0)
	atLeast("movement.drag", &m.Drag, dm.Drag, 0)
	atLeast("movement.moving_threshold", &m.MovingThreshold, dm.MovingThreshold, 0)
	atLeast("movement.gravity", &m.Gravity, dm.Gravity, 0)
	atLeast("movement.jump_speed", &m.JumpSpeed, dm.JumpSpeed, 0)
	atLeast("movement.anti_bump", &m.AntiBump, dm.AntiBump, 0)
	atLeast("movement.step_offset", &m.StepOffset, dm.StepOffset, 0)

	// Negative sensitivity inverts an axis, so only the value itself is checked.
	finite("camera.look_sensitivity_h", &t.Camera.LookSensitivityH, d.Camera.LookSensitivityH)
	finite("camera.look_sensitivity_v", &t.Camera.LookSensitivityV, d.Camera.LookSensitivityV)
	// The camera forward vector degenerates at exactly +-90.
	within("camera.look_limit_v", &t.Camera.LookLimitV, d.Camera.LookLimitV, 0, 89.9)

	atLeast("rotation.rotation_speed", &t.Rotation.RotationSpeed, d.Rotation.RotationSpeed, 0)
	atLeast("rotation.rotate_to_target_time", &t.Rotation.RotateToTargetTime, d.Rotation.RotateToTargetTime, 0)
	within("rotation.idle_tolerance", &t.Rotation.IdleTolerance, d.Rotation.IdleTolerance, 0, 180)

	a, da := &t.Animation, d.Animation
	atLeast("animation.blend_speed", &a.BlendSpeed, da.BlendSpeed, 0)
	finite("animation.sprint_blend_scale", &a.SprintBlendScale, da.SprintBlendScale)
	finite("animation.run_blend_scale", &a.RunBlendScale, da.RunBlendScale)
	finite("animation.default_blend_scale", &a.DefaultBlendScale, da.DefaultBlendScale)

	within("input.analog_deadzone", &t.Input.AnalogDeadzone, d.Input.AnalogDeadzone, 0, 0.95)
	finite("input.mouse_look_scale", &t.Input.MouseLookScale, d.Input.MouseLookScale)
	finite("input.gamepad_look_scale", &t.Input.GamepadLookScale, d.Input.GamepadLookScale)

	positive("simulation.max_delta", &t.Simulation.MaxDelta, d.Simulation.MaxDelta)
	if t.Simulation.TickRate <= 0 {
		clamps = append(clamps, Clamp{
			Field: "simulation.tick_rate",
			From:  float64(t.Simulation.TickRate),
			To:    float64(d.Simulation.TickRate),
		})
		t.Simulation.TickRate = d.Simulation.TickRate
	}
	positive("arena.character_radius", &t.Arena.CharacterRadius, d.Arena.CharacterRadius)
	positive("arena.character_height", &t.Arena.CharacterHeight, d.Arena.CharacterHeight)
	if t.Arena.CellSize <= 0 {
		clamps = append(clamps, Clamp{
			Field: "arena.cell_size",
			From:  float64(t.Arena.CellSize),
			To:    float64(d.Arena.CellSize),
		})
		t.Arena.CellSize = d.Arena.CellSize
	}

	if len(t.Ground.Layers) == 0 {
		t.Ground.Layers = d.Ground.Layers
	}

	return clamps
}

// Marshal renders t as YAML.
func Marshal(t Tunables) ([]byte, error) {
	return yaml.Marshal(t)
}
