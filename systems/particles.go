package systems

import (
	"github.com/automoto/hanapop/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles ages every burst. A burst past its lifetime flags itself
// for the sweep; live ones advance their points and burn down per-particle
// lifetimes, which drive the fade-out alpha.
func UpdateParticles(e *ecs.ECS) {
	dt := delta(e)

	components.ParticleSystem.Each(e.World, func(entry *donburi.Entry) {
		burst := components.ParticleSystem.Get(entry)

		burst.Age += dt
		if burst.Age >= components.ParticleLifetime {
			components.DeletionMarker.Get(entry).ToDelete = true
			return
		}

		for i := range burst.Particles {
			p := &burst.Particles[i]
			if p.Life <= 0 {
				continue
			}
			p.Pos = p.Pos.Add(p.Velocity.Scale(dt))
			p.Life -= dt
		}
	})
}
