package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/automoto/locomotion/shared/gamemath"
	"github.com/lafriks/go-tiled"
)

var ErrInvalidObject = errors.New("invalid arena object")

// LoadArena parses a TMX file and returns the arena layout. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*ArenaData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &ArenaData{
		Name:  strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width: float64(levelMap.Width*levelMap.TileWidth) / PixelsPerMeter,
		Depth: float64(levelMap.Height*levelMap.TileHeight) / PixelsPerMeter,
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			box := toBox(o)
			switch og.Name {
			case "Ground":
				g := GroundPiece{
					Box:    box,
					Top:    o.Properties.GetFloat("top"),
					Bottom: o.Properties.GetFloat("bottom"),
					Low:    o.Properties.GetFloat("low"),
					Rise:   gamemath.Rise(o.Properties.GetString("rise")),
				}
				if err := validateGround(g); err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				data.Ground = append(data.Ground, g)
			case "Walls":
				w := Wall{
					Box:    box,
					Top:    o.Properties.GetFloat("top"),
					Bottom: o.Properties.GetFloat("bottom"),
				}
				if err := validateVolume(w.Box, w.Bottom, w.Top); err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				data.Walls = append(data.Walls, w)
			case "Triggers":
				t := Trigger{
					Box:    box,
					Top:    o.Properties.GetFloat("top"),
					Bottom: o.Properties.GetFloat("bottom"),
					Layer:  o.Properties.GetString("layer"),
				}
				if err := validateVolume(t.Box, t.Bottom, t.Top); err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				data.Triggers = append(data.Triggers, t)
			case "Platforms":
				p := Platform{
					GroundPiece: GroundPiece{
						Box:    box,
						Top:    o.Properties.GetFloat("top"),
						Bottom: o.Properties.GetFloat("bottom"),
					},
					TravelX:  o.Properties.GetFloat("travelX"),
					TravelZ:  o.Properties.GetFloat("travelZ"),
					Duration: o.Properties.GetFloat("duration"),
				}
				if err := validateGround(p.GroundPiece); err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				if p.Duration <= 0 {
					return nil, fmt.Errorf("%s: object %d: platform duration %v: %w", tmxPath, o.ID, p.Duration, ErrInvalidObject)
				}
				data.Platforms = append(data.Platforms, p)
			case "Spawns":
				data.Spawns = append(data.Spawns, SpawnPoint{
					Name:  o.Name,
					X:     o.X / PixelsPerMeter,
					Y:     o.Properties.GetFloat("height"),
					Z:     o.Y / PixelsPerMeter,
					Yaw:   o.Properties.GetFloat("yaw"),
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		}
	}

	sort.SliceStable(data.Spawns, func(i, j int) bool {
		return data.Spawns[i].Index < data.Spawns[j].Index
	})

	return data, nil
}

// LoadAllArenas discovers all .tmx files in dir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAllArenas(fsys fs.FS, dir string) (map[string]*ArenaData, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*ArenaData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadArena(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		arenas[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}

func toBox(o *tiled.Object) Box {
	return Box{
		Name: o.Name,
		X:    o.X / PixelsPerMeter,
		Z:    o.Y / PixelsPerMeter,
		W:    o.Width / PixelsPerMeter,
		D:    o.Height / PixelsPerMeter,
	}
}

func validateVolume(b Box, bottom, top float64) error {
	if b.W <= 0 || b.D <= 0 {
		return fmt.Errorf("empty footprint %vx%v: %w", b.W, b.D, ErrInvalidObject)
	}
	if top < bottom {
		return fmt.Errorf("top %v below bottom %v: %w", top, bottom, ErrInvalidObject)
	}
	return nil
}

func validateGround(g GroundPiece) error {
	if err := validateVolume(g.Box, g.Bottom, g.Top); err != nil {
		return err
	}
	if !g.Rise.Valid() {
		return fmt.Errorf("unknown rise %q: %w", g.Rise, ErrInvalidObject)
	}
	if g.Rise != gamemath.RiseNone && (g.Low < g.Bottom || g.Low > g.Top) {
		return fmt.Errorf("ramp low %v outside [%v, %v]: %w", g.Low, g.Bottom, g.Top, ErrInvalidObject)
	}
	return nil
}
