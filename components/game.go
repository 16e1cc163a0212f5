package components

import (
	"image/color"
	"math/rand"

	"github.com/automoto/hanapop/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameData is the run state singleton: score, combo, affinity and the spawn
// and rotation timers. Tier is immutable after construction.
type GameData struct {
	Running    bool
	Score      int
	Combo      int
	Affinity   color.RGBA
	Difficulty config.Difficulty
	Tier       *config.Tier
	Rng        *rand.Rand

	// Timers in seconds of simulated time.
	SinceShot           float64
	SinceBallSpawn      float64
	SinceAffinityChange float64
	SinceSugoi          float64

	// Scale tween of the SUGOI banner, reset on each celebration. SugoiValue
	// is the tween's latest output, read by the banner renderer.
	SugoiScale *gween.Tween
	SugoiValue float32
}

var Game = donburi.NewComponentType[GameData]()
