package systems

import (
	"github.com/automoto/hanapop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// session returns the run-state singleton entry. Every gameplay system reads
// its clock, game state and event queue off this one entity.
func session(e *ecs.ECS) (*donburi.Entry, bool) {
	return components.Game.First(e.World)
}

// delta returns the clamped tick duration in seconds.
func delta(e *ecs.ECS) float64 {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Delta
}
