package systems

import (
	"github.com/automoto/hanapop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSweep removes every entity flagged for deletion. It is registered
// last so a flagged entity stays fully readable by every system and event
// handler of the tick it died in. Entries are collected first; removing
// while Each is iterating would invalidate the iteration.
func UpdateSweep(e *ecs.ECS) {
	var doomed []donburi.Entity
	components.DeletionMarker.Each(e.World, func(entry *donburi.Entry) {
		if components.DeletionMarker.Get(entry).ToDelete {
			doomed = append(doomed, entry.Entity())
		}
	})

	for _, entity := range doomed {
		e.World.Remove(entity)
	}
}
