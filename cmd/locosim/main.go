package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/automoto/locomotion/assets"
	"github.com/automoto/locomotion/config"
	"github.com/automoto/locomotion/controls/script"
	"github.com/automoto/locomotion/shared/leveldata"
	"github.com/automoto/locomotion/simulation"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Debug bool `help:"Whether to enable debug logging."`

	Run struct {
		Script string  `arg:"" name:"script" help:"Scenario file." type:"existingfile"`
		Config string  `help:"YAML tuning overlay." type:"existingfile" short:"c"`
		Level  string  `help:"TMX file on disk instead of the embedded arena." type:"existingfile"`
		Ticks  int     `help:"Ticks to run, 0 for the length of the script."`
		Dt     float64 `help:"Seconds per tick, 0 for 1/tick_rate."`
		Every  int     `help:"Log every Nth tick." default:"10"`
	} `cmd:"" help:"Replay a scenario headlessly and log the published state."`

	Config struct {
	} `cmd:"" help:"Write the default tuning to standard output."`

	Arenas struct {
	} `cmd:"" help:"List the embedded arenas."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("locosim"),
		kong.Description("headless locomotion runner"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	switch ctx.Command() {
	case "run <script>":
		if err := runCommand(); err != nil {
			writeError(err)
		}
	case "config":
		data, err := config.Marshal(config.Defaults())
		if err != nil {
			writeError(err)
		}
		os.Stdout.Write(data)
	case "arenas":
		arenas, names, err := leveldata.LoadAllArenas(assets.FS(), "levels")
		if err != nil {
			writeError(err)
		}
		for _, name := range names {
			a := arenas[name]
			fmt.Printf("%-12s %4.0fx%-4.0f ground=%d walls=%d platforms=%d spawns=%d\n",
				name, a.Width, a.Depth, len(a.Ground), len(a.Walls), len(a.Platforms), len(a.Spawns))
		}
	}
}

func runCommand() error {
	t := config.Defaults()
	if CLI.Run.Config != "" {
		loaded, err := config.Load(CLI.Run.Config)
		if err != nil {
			return err
		}
		t = loaded
	}

	scenario, err := script.Load(CLI.Run.Script)
	if err != nil {
		return err
	}

	var level *leveldata.ArenaData
	if CLI.Run.Level != "" {
		level, err = leveldata.LoadArena(os.DirFS(filepath.Dir(CLI.Run.Level)), filepath.Base(CLI.Run.Level))
	} else {
		level, err = assets.LoadArena(t.Arena.Level)
	}
	if err != nil {
		return err
	}

	input := scenario.Script()
	sim, err := simulation.New(level, scenario.Spawn, input, t)
	if err != nil {
		return err
	}

	ticks := CLI.Run.Ticks
	if ticks <= 0 {
		ticks = input.Len()
	}
	dt := CLI.Run.Dt
	if dt <= 0 {
		dt = 1 / float64(t.Simulation.TickRate)
	}
	every := CLI.Run.Every
	if every <= 0 {
		every = 1
	}

	log.Info().
		Str("scenario", scenario.Name).
		Str("arena", level.Name).
		Int("ticks", ticks).
		Float64("dt", dt).
		Msg("running")

	final, err := sim.Run(ticks, dt, func(f simulation.Frame) {
		if f.Tick%uint64(every) != 0 {
			return
		}
		logFrame(log.Info(), f)
	})
	if err != nil {
		return err
	}
	logFrame(log.Info().Bool("final", true), final)
	return nil
}

func logFrame(ev *zerolog.Event, f simulation.Frame) {
	a := f.Animation
	ev.
		Uint64("tick", f.Tick).
		Stringer("state", a.State).
		Floats64("pos", []float64{f.Position.X(), f.Position.Y(), f.Position.Z()}).
		Floats64("blend", []float64{a.Blend.X(), a.Blend.Y()}).
		Bool("grounded", a.IsGrounded).
		Float64("mismatch", a.RotationMismatch).
		Bool("rotating", a.IsRotatingToTarget).
		Msg("tick")
}
