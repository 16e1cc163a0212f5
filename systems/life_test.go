package systems

import (
	"testing"

	"github.com/automoto/hanapop/components"
	"github.com/automoto/hanapop/events"
	"github.com/automoto/hanapop/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifeDepletionEmitsDeath(t *testing.T) {
	e, session := newTestECS(testTier())
	ball := newTestBall(e, 0, gamemath.Vec2{})
	components.Life.Get(ball).Points = 0

	UpdateLife(e)

	life := components.Life.Get(ball)
	assert.False(t, life.Alive)
	assert.False(t, components.DeletionMarker.Get(ball).ToDelete,
		"life never flags deletion itself")

	queue := components.Bus.Get(session).Queue
	ev, ok := queue.Poll()
	require.True(t, ok)
	death, ok := ev.(events.EntityDeath)
	require.True(t, ok)
	assert.Equal(t, ball.Entity(), death.Entity)
}

func TestLifeLeavesHealthyEntitiesAlone(t *testing.T) {
	e, session := newTestECS(testTier())
	player := newTestPlayer(e, 3)

	UpdateLife(e)

	assert.True(t, components.Life.Get(player).Alive)
	assert.Zero(t, components.Bus.Get(session).Queue.Len())
}

func TestSweepRemovesOnlyFlaggedEntities(t *testing.T) {
	e, _ := newTestECS(testTier())
	doomed := newTestBall(e, 0, gamemath.Vec2{})
	survivor := newTestBall(e, 1, gamemath.Vec2{})

	components.DeletionMarker.Get(doomed).ToDelete = true
	doomedEntity := doomed.Entity()

	// Flagged entities stay fully readable until the sweep runs.
	assert.True(t, e.World.Valid(doomedEntity))
	assert.Equal(t, 1, components.Life.Get(doomed).Points)

	UpdateSweep(e)

	assert.False(t, e.World.Valid(doomedEntity))
	assert.True(t, e.World.Valid(survivor.Entity()))
}
