package config

import "image/color"

// MovementConfig contains the velocity integration tunables.
type MovementConfig struct {
	// Lateral
	WalkAcceleration   float64 `yaml:"walk_acceleration"`
	WalkSpeed          float64 `yaml:"walk_speed"`
	RunAcceleration    float64 `yaml:"run_acceleration"`
	RunSpeed           float64 `yaml:"run_speed"`
	SprintAcceleration float64 `yaml:"sprint_acceleration"`
	SprintSpeed        float64 `yaml:"sprint_speed"`
	InAirAcceleration  float64 `yaml:"in_air_acceleration"`
	Drag               float64 `yaml:"drag"`
	MovingThreshold    float64 `yaml:"moving_threshold"` // Lateral speed below this counts as standing still

	// Vertical
	Gravity   float64 `yaml:"gravity"`
	JumpSpeed float64 `yaml:"jump_speed"` // Feel constant, impulse is sqrt(JumpSpeed*3*Gravity)
	AntiBump  float64 `yaml:"anti_bump"`  // Downward speed held while grounded

	// Collision primitive
	StepOffset float64 `yaml:"step_offset"` // Restored whenever the character is grounded
}

// CameraConfig contains look input handling.
type CameraConfig struct {
	LookSensitivityH float64 `yaml:"look_sensitivity_h"`
	LookSensitivityV float64 `yaml:"look_sensitivity_v"`
	LookLimitV       float64 `yaml:"look_limit_v"` // Degrees, pitch is clamped to [-limit, limit]
}

// RotationConfig contains body rotate-to-target tuning.
type RotationConfig struct {
	RotationSpeed      float64 `yaml:"rotation_speed"`        // Slerp rate per second
	RotateToTargetTime float64 `yaml:"rotate_to_target_time"` // Seconds an idle turn stays committed
	IdleTolerance      float64 `yaml:"idle_tolerance"`        // Degrees of mismatch before an idle turn starts
}

// AnimationConfig contains the published blend parameters.
type AnimationConfig struct {
	BlendSpeed        float64 `yaml:"blend_speed"`
	SprintBlendScale  float64 `yaml:"sprint_blend_scale"`
	RunBlendScale     float64 `yaml:"run_blend_scale"`
	DefaultBlendScale float64 `yaml:"default_blend_scale"`
}

// GroundConfig contains ground sensor settings.
type GroundConfig struct {
	Layers []string `yaml:"layers"` // Collision tags that count as ground
}

// InputConfig contains input interpretation settings.
type InputConfig struct {
	HoldToSprint     bool    `yaml:"hold_to_sprint"`
	AnalogDeadzone   float64 `yaml:"analog_deadzone"`
	MouseLookScale   float64 `yaml:"mouse_look_scale"`   // Pixels of cursor travel to look units
	GamepadLookScale float64 `yaml:"gamepad_look_scale"` // Full stick deflection to look units per tick
}

// SimulationConfig contains tick pacing.
type SimulationConfig struct {
	TickRate int     `yaml:"tick_rate"`
	MaxDelta float64 `yaml:"max_delta"` // Longest step the pipeline will integrate
}

// ArenaConfig contains the demo arena and character body settings.
type ArenaConfig struct {
	Level           string  `yaml:"level"`
	CellSize        int     `yaml:"cell_size"`
	CharacterRadius float64 `yaml:"character_radius"`
	CharacterHeight float64 `yaml:"character_height"`
}

// Tunables groups every config section so a full set can be loaded,
// sanitized and handed to a factory in one value.
type Tunables struct {
	Movement   MovementConfig   `yaml:"movement"`
	Camera     CameraConfig     `yaml:"camera"`
	Rotation   RotationConfig   `yaml:"rotation"`
	Animation  AnimationConfig  `yaml:"animation"`
	Ground     GroundConfig     `yaml:"ground"`
	Input      InputConfig      `yaml:"input"`
	Simulation SimulationConfig `yaml:"simulation"`
	Arena      ArenaConfig      `yaml:"arena"`
}

// RenderConfig contains demo window settings.
type RenderConfig struct {
	PixelsPerMeter  float64
	FollowSmoothing float64
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	RampColor       color.RGBA
	PlatformColor   color.RGBA
	WallColor       color.RGBA
	TriggerColor    color.RGBA
	BodyColor       color.RGBA
	CameraColor     color.RGBA
	TextColor       color.RGBA
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Movement MovementConfig
var Camera CameraConfig
var Rotation RotationConfig
var Animation AnimationConfig
var Ground GroundConfig
var Input InputConfig
var Simulation SimulationConfig
var Arena ArenaConfig
var Render RenderConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHUD bool
}

// Defaults returns the built-in tuning.
func Defaults() Tunables {
	return Tunables{
		Movement: MovementConfig{
			WalkAcceleration:   25.0,
			WalkSpeed:          2.0,
			RunAcceleration:    35.0,
			RunSpeed:           4.0,
			SprintAcceleration: 50.0,
			SprintSpeed:        7.0,
			InAirAcceleration:  25.0,
			Drag:               15.0,
			MovingThreshold:    0.01,

			Gravity:   25.0,
			JumpSpeed: 1.0,
			AntiBump:  7.0, // Same value as SprintSpeed, tuned by feel

			StepOffset: 0.3,
		},
		Camera: CameraConfig{
			LookSensitivityH: 0.1,
			LookSensitivityV: 0.1,
			LookLimitV:       89.0,
		},
		Rotation: RotationConfig{
			RotationSpeed:      10.0,
			RotateToTargetTime: 0.25,
			IdleTolerance:      90.0,
		},
		Animation: AnimationConfig{
			BlendSpeed:        4.0,
			SprintBlendScale:  1.5,
			RunBlendScale:     1.0,
			DefaultBlendScale: 0.5,
		},
		Ground: GroundConfig{
			Layers: []string{"ground"},
		},
		Input: InputConfig{
			HoldToSprint:     true,
			AnalogDeadzone:   0.25,
			MouseLookScale:   1.0,
			GamepadLookScale: 12.0,
		},
		Simulation: SimulationConfig{
			TickRate: 60,
			MaxDelta: 0.1,
		},
		Arena: ArenaConfig{
			Level:           "levels/arena.tmx",
			CellSize:        2,
			CharacterRadius: 0.5,
			CharacterHeight: 1.8,
		},
	}
}

// Apply replaces the global configuration sections with t.
func Apply(t Tunables) {
	Movement = t.Movement
	Camera = t.Camera
	Rotation = t.Rotation
	Animation = t.Animation
	Ground = t.Ground
	Input = t.Input
	Simulation = t.Simulation
	Arena = t.Arena
}

// Current collects the global configuration sections into a Tunables value.
func Current() Tunables {
	return Tunables{
		Movement:   Movement,
		Camera:     Camera,
		Rotation:   Rotation,
		Animation:  Animation,
		Ground:     Ground,
		Input:      Input,
		Simulation: Simulation,
		Arena:      Arena,
	}
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Apply(Defaults())

	Render = RenderConfig{
		PixelsPerMeter:  24,
		FollowSmoothing: 0.15,
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		GroundColor:     color.RGBA{R: 60, G: 100, B: 160, A: 255},
		RampColor:       color.RGBA{R: 90, G: 140, B: 200, A: 255},
		PlatformColor:   color.RGBA{R: 200, G: 180, B: 60, A: 255},
		WallColor:       color.RGBA{R: 100, G: 100, B: 100, A: 255},
		TriggerColor:    color.RGBA{R: 255, G: 0, B: 255, A: 120},
		BodyColor:       color.RGBA{R: 255, G: 140, B: 0, A: 255},
		CameraColor:     color.RGBA{R: 100, G: 255, B: 100, A: 255},
		TextColor:       color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
