package systems

import (
	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/systems/factory"
	"github.com/automoto/hanapop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSpawn drops a new ball whenever the tier's spawn interval has
// elapsed, and culls sakura that flew off the top of the arena.
func UpdateSpawn(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	game := components.Game.Get(entry)

	if game.SinceBallSpawn >= game.Tier.BallsInterval() {
		game.SinceBallSpawn = 0

		tile := cfg.C.TileSize
		// Random x inside the playable span between the side walls.
		span := cfg.C.Width - 3*tile
		x := float64(tile + game.Rng.Intn(span+1))
		band := game.Rng.Intn(len(cfg.AffinityCycle))
		factory.CreateBall(e, x, float64(-tile), band, game.Tier.BallVelocity)
	}

	// No top wall: petals leaving the screen would live forever otherwise.
	tags.Sakura.Each(e.World, func(s *donburi.Entry) {
		hb := components.Hitbox.Get(s)
		if hb.Rect.Bottom() < -float64(cfg.C.TileSize) {
			components.DeletionMarker.Get(s).ToDelete = true
		}
	})
}
