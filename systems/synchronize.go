package systems

import (
	"github.com/automoto/hanapop/components"
	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSynchronize copies each hitbox position to its sprite after physics
// has moved it. Runs between physics and rendering so the drawable never
// lags the physical state.
func UpdateSynchronize(e *ecs.ECS) {
	components.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Sprite) {
			return
		}
		hb := components.Hitbox.Get(entry)
		sprite := components.Sprite.Get(entry)
		sprite.Pos = gamemath.Vec2{X: hb.Rect.X, Y: hb.Rect.Y}
	})
}
