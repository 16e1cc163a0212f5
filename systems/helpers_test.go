package systems

import (
	"math/rand"
	"time"

	"github.com/automoto/hanapop/archetypes"
	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/events"
	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testDelta is exactly representable in binary so displacement arithmetic
// in assertions stays exact.
const testDelta = 0.125

func testTier() *cfg.Tier {
	return &cfg.Tier{
		ComboMin:          5,
		LifePoints:        5,
		BallVelocity:      300,
		SugoiCombo:        10,
		BallsIntervalMs:   750,
		PlayerSpeed:       500,
		ShootIntervalMs:   250,
		AffinityChangeSec: 25,
	}
}

// newTestECS builds a world with a session singleton and a fixed tick delta
// so tests never touch the wall clock.
func newTestECS(tier *cfg.Tier) (*ecs.ECS, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())

	entry := archetypes.Session.Spawn(e)
	components.Clock.SetValue(entry, components.ClockData{
		Delta: testDelta,
		Last:  time.Now(),
	})
	components.Bus.SetValue(entry, components.BusData{Queue: events.NewQueue()})
	components.Game.SetValue(entry, components.GameData{
		Running:  true,
		Affinity: cfg.AffinityCycle[0],
		Tier:     tier,
		Rng:      rand.New(rand.NewSource(1)),
	})
	return e, entry
}

// newMover spawns a bare physics body: hitbox plus velocity, no sprite.
func newMover(e *ecs.ECS, rect gamemath.Rect, velocity gamemath.Vec2, blocking bool, extra ...donburi.IComponentType) *donburi.Entry {
	comps := append([]donburi.IComponentType{
		components.DeletionMarker,
		components.Hitbox,
		components.Movement,
	}, extra...)
	entry := e.World.Entry(e.Create(cfg.Default, comps...))
	components.Hitbox.SetValue(entry, components.HitboxData{Rect: rect, Blocking: blocking})
	components.Movement.SetValue(entry, components.MovementData{Velocity: velocity})
	return entry
}

// newStatic spawns an immovable hitbox, wall-style.
func newStatic(e *ecs.ECS, rect gamemath.Rect, blocking bool, extra ...donburi.IComponentType) *donburi.Entry {
	comps := append([]donburi.IComponentType{
		components.DeletionMarker,
		components.Hitbox,
	}, extra...)
	entry := e.World.Entry(e.Create(cfg.Default, comps...))
	components.Hitbox.SetValue(entry, components.HitboxData{Rect: rect, Blocking: blocking})
	return entry
}
