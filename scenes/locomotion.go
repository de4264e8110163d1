package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/locomotion/assets"
	cfg "github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/controls"
	"github.com/automoto/locomotion/systems"
	"github.com/automoto/locomotion/systems/factory"
	"github.com/automoto/locomotion/systems/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LocomotionScene is the interactive arena: one keyboard/mouse/gamepad
// character driven by the locomotion pipeline.
type LocomotionScene struct {
	ecs      *ecs.ECS
	pipeline *systems.Pipeline
	store    systems.ItemStore
	once     sync.Once
	err      error
}

// NewLocomotionScene creates the scene. store may be nil, in which case
// settings are neither loaded nor saved.
func NewLocomotionScene(store systems.ItemStore) *LocomotionScene {
	return &LocomotionScene{store: store}
}

func (s *LocomotionScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}

	s.handleHotkeys()
	s.ecs.Update()
	return s.err
}

func (s *LocomotionScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *LocomotionScene) configure() {
	t := cfg.Current()
	world := donburi.NewWorld()
	s.ecs = ecs.NewECS(world)
	s.pipeline = systems.DefaultPipeline(t.Simulation.MaxDelta)

	level, err := assets.LoadArena(t.Arena.Level)
	if err != nil {
		s.err = err
		return
	}
	_, a, err := factory.CreateArenaFromLevel(world, level, t.Arena.CellSize)
	if err != nil {
		s.err = err
		return
	}
	if len(level.Spawns) == 0 {
		s.err = fmt.Errorf("arena %s has no spawn points", level.Name)
		return
	}
	factory.CreateClock(world)
	factory.CreateView(world)

	if _, err := factory.CreateArenaCharacter(world, a, "player", level.Spawns[0], controls.NewDevice(t.Input), t); err != nil {
		s.err = err
		return
	}

	if saved, err := systems.LoadSettings(s.store); err != nil {
		log.Warn().Err(err).Msg("could not load settings")
	} else {
		systems.ApplySavedSettings(world, saved)
	}

	s.ecs.AddSystem(s.step)
	s.ecs.AddSystem(render.UpdateView)

	s.ecs.AddRenderer(render.LayerWorld, render.DrawArena)
	s.ecs.AddRenderer(render.LayerWorld, render.DrawCharacters)
	s.ecs.AddRenderer(render.LayerHUD, render.DrawHUD)

	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	log.Info().
		Str("arena", level.Name).
		Int("pieces", len(a.Pieces())).
		Strs("systems", s.pipeline.Systems()).
		Msg("scene ready")
}

func (s *LocomotionScene) step(e *ecs.ECS) {
	if err := s.pipeline.Step(e.World, 1/float64(ebiten.TPS())); err != nil {
		s.err = err
	}
}

func (s *LocomotionScene) handleHotkeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	case inpututil.IsKeyJustPressed(ebiten.KeyF1):
		cfg.Debug.ShowHUD = !cfg.Debug.ShowHUD
	case inpututil.IsKeyJustPressed(ebiten.KeyF5):
		s.saveSettings()
	}
}

func (s *LocomotionScene) saveSettings() {
	current, ok := systems.CurrentSettings(s.ecs.World)
	if !ok {
		return
	}
	if err := systems.SaveSettings(s.store, current); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return
	}
	log.Info().Msg("settings saved")
}

// Close saves settings on the way out.
func (s *LocomotionScene) Close() {
	if s.ecs != nil {
		s.saveSettings()
	}
}
