package components

import (
	"image/color"

	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
)

// ParticleCount is the fixed number of points in one burst.
const ParticleCount = 1000

// ParticleLifetime is how long a burst lives before it flags itself for
// deletion, in seconds.
const ParticleLifetime = 2.0

// Particle is a single point of a burst.
type Particle struct {
	Pos      gamemath.Vec2
	Velocity gamemath.Vec2
	// Remaining lifetime in seconds; drives the fade-out alpha.
	Life float64
}

// ParticleData is a fixed-size explosion burst spawned when a ball is shot.
type ParticleData struct {
	Color     color.RGBA
	Center    gamemath.Vec2
	Particles [ParticleCount]Particle
	// Age of the whole system in seconds.
	Age float64
}

var ParticleSystem = donburi.NewComponentType[ParticleData]()
