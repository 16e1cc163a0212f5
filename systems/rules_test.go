package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/events"
	"github.com/automoto/hanapop/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestComboAndScoreArithmetic(t *testing.T) {
	tier := testTier()
	tier.ComboMin = 2
	tier.SugoiCombo = 3
	e, session := newTestECS(tier)
	game := components.Game.Get(session)
	queue := components.Bus.Get(session).Queue

	// Four matches: combo climbs 1,2,3,4; the first two score a flat +1,
	// the rest score the combo itself.
	for i := 0; i < 4; i++ {
		queue.Push(events.BallShot{Color: cfg.Red, Center: gamemath.Vec2{X: 100, Y: 100}})
	}
	UpdateRules(e)

	assert.Equal(t, 4, game.Combo)
	assert.Equal(t, 1+1+3+4, game.Score)
	assert.NotNil(t, game.SugoiScale, "combo 3 is a sugoi multiple above the minimum")
	assert.Contains(t, components.Audio.Get(session).PendingSFX, cfg.SoundSugoi)

	// A mismatch costs one point and resets the combo.
	queue.Push(events.BallShot{Color: cfg.Green})
	UpdateRules(e)

	assert.Equal(t, 0, game.Combo)
	assert.Equal(t, 8, game.Score)
	assert.Contains(t, components.Audio.Get(session).PendingSFX, cfg.SoundWrongBall)
}

func TestBallShotSpawnsExplosion(t *testing.T) {
	e, session := newTestECS(testTier())
	queue := components.Bus.Get(session).Queue

	queue.Push(events.BallShot{Color: cfg.Red, Center: gamemath.Vec2{X: 300, Y: 300}})
	UpdateRules(e)

	bursts := 0
	components.ParticleSystem.Each(e.World, func(entry *donburi.Entry) {
		bursts++
		burst := components.ParticleSystem.Get(entry)
		assert.Equal(t, cfg.Red, burst.Color)
		assert.Equal(t, gamemath.Vec2{X: 300, Y: 300}, burst.Center)
		for i := range burst.Particles {
			assert.Positive(t, burst.Particles[i].Life)
		}
	})
	assert.Equal(t, 1, bursts)
}

func TestAffinityRotatesThroughFullCycle(t *testing.T) {
	tier := testTier()
	e, session := newTestECS(tier)
	game := components.Game.Get(session)
	require.Equal(t, cfg.Red, game.Affinity)

	want := []color.RGBA{cfg.Blue, cfg.Green, cfg.Yellow, cfg.Red}
	for _, next := range want {
		game.SinceAffinityChange = tier.AffinityChangeSec
		UpdateRules(e)
		assert.Equal(t, next, game.Affinity)
		assert.Zero(t, game.SinceAffinityChange)
	}
}

func TestAffinityWaitsForInterval(t *testing.T) {
	tier := testTier()
	e, session := newTestECS(tier)
	game := components.Game.Get(session)

	game.SinceAffinityChange = tier.AffinityChangeSec / 2
	UpdateRules(e)

	assert.Equal(t, cfg.Red, game.Affinity)
}

func TestPlayerHitResetsComboNotGame(t *testing.T) {
	// Mirrors a normal-difficulty run taking three hits: lives fall
	// 4, 3, 2 and the run keeps going with the combo zeroed each time.
	e, session := newTestECS(testTier())
	game := components.Game.Get(session)
	player := newTestPlayer(e, 5)
	life := components.Life.Get(player)
	queue := components.Bus.Get(session).Queue

	for _, wantPoints := range []int{4, 3, 2} {
		game.Combo = 7
		life.Points--
		queue.Push(events.PlayerHit{})
		UpdateRules(e)

		assert.Equal(t, wantPoints, life.Points)
		assert.Zero(t, game.Combo)
		assert.True(t, game.Running)
	}
}

func TestPlayerHitWithNoLifeLeftEndsRun(t *testing.T) {
	e, session := newTestECS(testTier())
	game := components.Game.Get(session)
	player := newTestPlayer(e, 1)
	components.Life.Get(player).Points = 0
	queue := components.Bus.Get(session).Queue

	queue.Push(events.PlayerHit{})
	UpdateRules(e)

	assert.False(t, game.Running)
}

func TestEntityDeathIsIgnored(t *testing.T) {
	e, session := newTestECS(testTier())
	game := components.Game.Get(session)
	ball := newTestBall(e, 0, gamemath.Vec2{})
	queue := components.Bus.Get(session).Queue

	queue.Push(events.EntityDeath{Entity: ball.Entity()})
	UpdateRules(e)

	assert.Equal(t, 0, game.Score)
	assert.Equal(t, 0, game.Combo)
	assert.True(t, game.Running)
	assert.Zero(t, queue.Len(), "the queue is still fully drained")
}
