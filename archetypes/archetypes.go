package archetypes

import (
	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.DeletionMarker,
		components.Sprite,
		components.Hitbox,
		components.Movement,
		components.Life,
	)
	Wall = newArchetype(
		tags.Wall,
		components.DeletionMarker,
		components.Sprite,
		components.Hitbox,
		components.Animation,
	)
	Ball = newArchetype(
		tags.Ball,
		components.DeletionMarker,
		components.Sprite,
		components.Hitbox,
		components.Movement,
		components.Life,
	)
	Sakura = newArchetype(
		tags.Sakura,
		components.DeletionMarker,
		components.Sprite,
		components.Hitbox,
		components.Movement,
		components.Life,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.DeletionMarker,
		components.ParticleSystem,
	)
	// Session is the run-state singleton entity: clock, input, collision
	// record, event queue, game state and pending audio cues.
	Session = newArchetype(
		components.Clock,
		components.Input,
		components.Collisions,
		components.Bus,
		components.Game,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
