package factory

import (
	"image"

	"github.com/automoto/hanapop/archetypes"
	"github.com/automoto/hanapop/assets"
	"github.com/automoto/hanapop/components"
	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSakura spawns a petal flying upward from the player.
func CreateSakura(ecs *ecs.ECS, x, y, velocityY float64) *donburi.Entry {
	sakura := archetypes.Sakura.Spawn(ecs)

	size := assets.SakuraSize
	components.Sprite.SetValue(sakura, components.SpriteData{
		Image: assets.SakuraImage(),
		Src:   image.Rect(0, 0, size, size),
		Pos:   gamemath.Vec2{X: x, Y: y},
	})
	components.Hitbox.SetValue(sakura, components.HitboxData{
		Rect:     gamemath.NewRect(x, y, float64(size), float64(size)),
		Blocking: false,
	})
	components.Movement.SetValue(sakura, components.MovementData{
		Velocity: gamemath.Vec2{X: 0, Y: velocityY},
	})
	components.Life.SetValue(sakura, components.LifeData{
		Points: 1,
		Alive:  true,
	})

	return sakura
}
