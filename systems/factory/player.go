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

// CreatePlayer spawns the player at the arena spawn point with the tier's
// starting life points.
func CreatePlayer(ecs *ecs.ECS, x, y float64, lifePoints int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	tile := cfg.C.TileSize
	components.Sprite.SetValue(player, components.SpriteData{
		Image: assets.PlayerImage(),
		Src:   image.Rect(0, 0, tile, tile),
		Pos:   gamemath.Vec2{X: x, Y: y},
	})
	components.Hitbox.SetValue(player, components.HitboxData{
		Rect:     gamemath.NewRect(x, y, float64(tile), float64(tile)),
		Blocking: true,
	})
	components.Life.SetValue(player, components.LifeData{
		Points: lifePoints,
		Alive:  true,
	})

	return player
}
