// Package leveldata parses the arena layout from a Tiled TMX map.
package leveldata

import (
	"fmt"
	"io/fs"

	"github.com/automoto/hanapop/gamemath"
	"github.com/lafriks/go-tiled"
)

// Arena is the static layout of the play field: wall tiles and the player
// spawn position.
type Arena struct {
	// Pixel dimensions of the whole map.
	Width  int
	Height int

	Walls []gamemath.Rect
	Spawn gamemath.Vec2
}

// LoadArena parses a TMX file. It takes an fs.FS so callers can pass
// embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		Width:  arenaMap.Width * arenaMap.TileWidth,
		Height: arenaMap.Height * arenaMap.TileHeight,
	}

	tileW := float64(arenaMap.TileWidth)
	tileH := float64(arenaMap.TileHeight)
	for _, layer := range arenaMap.Layers {
		if layer.Name != "walls" {
			continue
		}
		for y := 0; y < arenaMap.Height; y++ {
			for x := 0; x < arenaMap.Width; x++ {
				tile := layer.Tiles[y*arenaMap.Width+x]
				if tile.IsNil() {
					continue
				}
				arena.Walls = append(arena.Walls, gamemath.Rect{
					X: float64(x) * tileW,
					Y: float64(y) * tileH,
					W: tileW,
					H: tileH,
				})
			}
		}
		break
	}

	spawnFound := false
	for _, og := range arenaMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			arena.Spawn = gamemath.Vec2{X: o.X, Y: o.Y}
			spawnFound = true
			break
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("map %s: no PlayerSpawn object", tmxPath)
	}

	return arena, nil
}
