package events

import (
	"testing"

	cfg "github.com/automoto/hanapop/config"
	"github.com/automoto/hanapop/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueIsFIFOAcrossKinds(t *testing.T) {
	q := NewQueue()
	q.Push(BallShot{Color: cfg.Red, Center: gamemath.Vec2{X: 1, Y: 2}})
	q.Push(PlayerHit{})
	q.Push(BallShot{Color: cfg.Blue})

	require.Equal(t, 3, q.Len())

	ev, ok := q.Poll()
	require.True(t, ok)
	shot, ok := ev.(BallShot)
	require.True(t, ok)
	assert.Equal(t, cfg.Red, shot.Color)
	assert.Equal(t, gamemath.Vec2{X: 1, Y: 2}, shot.Center)

	ev, ok = q.Poll()
	require.True(t, ok)
	assert.Equal(t, KindPlayerHit, ev.Kind())

	ev, ok = q.Poll()
	require.True(t, ok)
	assert.Equal(t, KindColoredBallShot, ev.Kind())

	_, ok = q.Poll()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestEventKinds(t *testing.T) {
	assert.Equal(t, KindColoredBallShot, BallShot{}.Kind())
	assert.Equal(t, KindEntityDeath, EntityDeath{}.Kind())
	assert.Equal(t, KindPlayerHit, PlayerHit{}.Kind())
}
