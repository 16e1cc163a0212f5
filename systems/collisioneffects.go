package systems

import (
	"image/color"

	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/events"
	"github.com/automoto/hanapop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisionEffects turns the tick's recorded collision pairs into
// gameplay outcomes. Dispatch is on the ordered pair of archetype tags;
// anything outside the rule table is ignored. The record is cleared once
// processed, it is not a running history.
func UpdateCollisionEffects(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	record := components.Collisions.Get(entry)
	queue := components.Bus.Get(entry).Queue

	for _, pair := range record.Pairs {
		fst, snd := pair.First, pair.Second
		if !fst.Valid() || !snd.Valid() {
			continue
		}

		switch {
		case fst.HasComponent(tags.Sakura) && snd.HasComponent(tags.Ball):
			killEntity(fst)
			killEntity(snd)
			sprite := components.Sprite.Get(snd)
			queue.Push(events.BallShot{
				Color:  ballColor(sprite),
				Center: sprite.Bounds().Center(),
			})

		case fst.HasComponent(tags.Ball) && snd.HasComponent(tags.Wall):
			killEntity(fst)

		case fst.HasComponent(tags.Wall) && snd.HasComponent(tags.Ball):
			killEntity(snd)

		case fst.HasComponent(tags.Ball) && snd.HasComponent(tags.Player):
			killEntity(fst)
			components.Life.Get(snd).Points--
			queue.Push(events.PlayerHit{})

		case fst.HasComponent(tags.Player) && snd.HasComponent(tags.Ball):
			killEntity(snd)
			components.Life.Get(fst).Points--
			queue.Push(events.PlayerHit{})
		}
	}

	record.Pairs = record.Pairs[:0]
}

func killEntity(entry *donburi.Entry) {
	if entry.HasComponent(components.Life) {
		components.Life.Get(entry).Points = 0
	}
	components.DeletionMarker.Get(entry).ToDelete = true
}

// ballColor quantizes a ball sprite into one of the four color bands by the
// horizontal offset of its source sub-rectangle on the balls sheet.
func ballColor(sprite *components.SpriteData) color.RGBA {
	switch x := sprite.Src.Min.X; {
	case x < cfg.C.TileSize:
		return cfg.Red
	case x < 2*cfg.C.TileSize:
		return cfg.Blue
	case x < 3*cfg.C.TileSize:
		return cfg.Green
	default:
		return cfg.Yellow
	}
}
