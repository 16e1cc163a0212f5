package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/automoto/hanapop/archetypes"
	"github.com/automoto/hanapop/components"
	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion spawns a particle burst where a ball popped. The burst
// ages itself out and self-flags for deletion; nothing else manages its
// lifetime.
func CreateExplosion(ecs *ecs.ECS, center gamemath.Vec2, c color.RGBA, rng *rand.Rand) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(ecs)

	burst := components.ParticleData{
		Color:  c,
		Center: center,
	}
	for i := range burst.Particles {
		angle := float64(rng.Intn(360)) * math.Pi / 180
		speed := float64(rng.Intn(50) + 20)
		burst.Particles[i] = components.Particle{
			Pos: center,
			Velocity: gamemath.Vec2{
				X: math.Cos(angle) * speed,
				Y: math.Sin(angle) * speed,
			},
			Life: float64(rng.Intn(2000)+1000) / 1000,
		}
	}
	components.ParticleSystem.SetValue(explosion, burst)

	return explosion
}
