package systems

import (
	"time"

	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock computes the tick's wall-clock delta and advances the run
// timers. Must run first in the pipeline; every other system reads
// ClockData.Delta instead of the wall clock.
func UpdateClock(e *ecs.ECS) {
	entry, ok := session(e)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	now := time.Now()
	if clock.Last.IsZero() {
		clock.Last = now
	}
	dt := now.Sub(clock.Last).Seconds()
	clock.Last = now

	// A stalled frame must not teleport entities through each other.
	if dt > cfg.MaxTickSeconds {
		dt = cfg.MaxTickSeconds
	}
	clock.Delta = dt

	game := components.Game.Get(entry)
	game.SinceShot += dt
	game.SinceBallSpawn += dt
	game.SinceAffinityChange += dt
	game.SinceSugoi += dt
}
