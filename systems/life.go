package systems

import (
	"github.com/automoto/hanapop/components"
	"github.com/automoto/hanapop/events"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLife flips depleted entities to not-alive and announces the death.
// It never flags deletion; that stays with collision effects and spawners.
func UpdateLife(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	queue := components.Bus.Get(entry).Queue

	components.Life.Each(e.World, func(le *donburi.Entry) {
		life := components.Life.Get(le)
		if life.Points <= 0 {
			life.Alive = false
			queue.Push(events.EntityDeath{Entity: le.Entity()})
		}
	})
}
