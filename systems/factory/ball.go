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

// CreateBall spawns a falling ball. The color band selects the sprite's
// source sub-rectangle on the balls sheet; collision effects recover the
// color from that offset later. Balls are detection-only, they never push
// anything around.
func CreateBall(ecs *ecs.ECS, x, y float64, band int, velocity float64) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	tile := cfg.C.TileSize
	components.Sprite.SetValue(ball, components.SpriteData{
		Image: assets.BallsSheet(),
		Src:   image.Rect(band*tile, 0, (band+1)*tile, tile),
		Pos:   gamemath.Vec2{X: x, Y: y},
	})
	components.Hitbox.SetValue(ball, components.HitboxData{
		Rect:     gamemath.NewRect(x, y, float64(tile), float64(tile)),
		Blocking: false,
	})
	components.Movement.SetValue(ball, components.MovementData{
		Velocity: gamemath.Vec2{X: 0, Y: velocity},
	})
	components.Life.SetValue(ball, components.LifeData{
		Points: 1,
		Alive:  true,
	})

	return ball
}
