package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/fonts"
	"github.com/automoto/locomotion/scenes"
	"github.com/automoto/locomotion/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug     bool   `help:"Whether to enable debug logging."`
	Config    string `help:"YAML tuning overlay." type:"existingfile" short:"c"`
	HideHUD   bool   `help:"Start with the parameter readout hidden."`
	NoPersist bool   `help:"Do not load or save settings."`
}

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(store systems.ItemStore) *Game {
	return &Game{
		scene: scenes.NewLocomotionScene(store),
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	kong.Parse(&CLI,
		kong.Name("locomotion"),
		kong.Description("third-person locomotion arena"),
		kong.UsageOnError(),
	)

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Config != "" {
		t, err := config.Load(CLI.Config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
		}
		config.Apply(t)
	}
	config.Debug.ShowHUD = !CLI.HideHUD

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("could not load fonts")
	}

	var store systems.ItemStore
	if !CLI.NoPersist {
		s, err := systems.OpenSettingsStore("locomotion")
		if err != nil {
			log.Warn().Err(err).Msg("could not initialize persistence")
		} else {
			store = s
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("locomotion")
	ebiten.SetTPS(config.Simulation.TickRate)

	game := NewGame(store)
	err := ebiten.RunGame(game)
	if closer, ok := game.scene.(interface{ Close() }); ok {
		closer.Close()
	}
	if err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
