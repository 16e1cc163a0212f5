package factory

import (
	"image"

	"github.com/automoto/hanapop/archetypes"
	"github.com/automoto/hanapop/assets"
	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const wallFPS = 24

// CreateWall spawns one immovable wall tile. Walls carry no Movement, so
// physics treats them as static obstacles; the animation just pulses the
// tile's brightness.
func CreateWall(ecs *ecs.ECS, rect gamemath.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	tile := cfg.C.TileSize
	frames := make([]image.Rectangle, 0, assets.BoxFrames*assets.BoxRows)
	for row := 0; row < assets.BoxRows; row++ {
		for col := 0; col < assets.BoxFrames; col++ {
			frames = append(frames, image.Rect(
				col*tile, row*tile, (col+1)*tile, (row+1)*tile))
		}
	}

	components.Sprite.SetValue(wall, components.SpriteData{
		Image: assets.BoxSheet(),
		Src:   frames[0],
		Pos:   gamemath.Vec2{X: rect.X, Y: rect.Y},
	})
	components.Hitbox.SetValue(wall, components.HitboxData{
		Rect:     rect,
		Blocking: true,
	})
	components.Animation.SetValue(wall, components.AnimationData{
		Frames: frames,
		FPS:    wallFPS,
	})

	return wall
}
