package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/locomotion/shared/leveldata"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadArena parses an embedded arena by path, e.g. "levels/arena.tmx".
func LoadArena(path string) (*leveldata.ArenaData, error) {
	data, err := leveldata.LoadArena(assetFS, path)
	if err != nil {
		return nil, fmt.Errorf("embedded arena: %w", err)
	}
	return data, nil
}

// MustLoadArena is LoadArena for startup code that cannot continue without it.
func MustLoadArena(path string) *leveldata.ArenaData {
	data, err := LoadArena(path)
	if err != nil {
		panic(err)
	}
	return data
}
