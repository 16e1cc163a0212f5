package systems

import (
	"github.com/automoto/hanapop/assets"
	"github.com/automoto/hanapop/components"
	"github.com/automoto/hanapop/systems/factory"
	"github.com/automoto/hanapop/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControl turns the sampled input into player velocity and fires
// sakura petals subject to the tier's shot cooldown.
func UpdateControl(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	game := components.Game.Get(entry)

	player, ok := tags.Player.First(e.World)
	if !ok {
		return
	}

	mov := components.Movement.Get(player)
	mov.Velocity.X = input.MoveX * game.Tier.PlayerSpeed
	mov.Velocity.Y = 0

	if input.Shoot && game.SinceShot >= game.Tier.ShootInterval() {
		game.SinceShot = 0
		hb := components.Hitbox.Get(player)
		x := hb.Rect.X + hb.Rect.W/2 - float64(assets.SakuraSize)/2
		y := hb.Rect.Y - float64(assets.SakuraSize)
		factory.CreateSakura(e, x, y, game.Tier.SakuraVelocity())
	}
}
