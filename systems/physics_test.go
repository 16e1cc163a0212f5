package systems

import (
	"testing"

	"github.com/automoto/hanapop/components"
	"github.com/automoto/hanapop/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhysicsFlushContactFromAbove(t *testing.T) {
	e, session := newTestECS(testTier())

	// Falling fast enough to overshoot the obstacle by a wide margin.
	mover := newMover(e, gamemath.NewRect(0, 0, 64, 64), gamemath.Vec2{Y: 500}, true)
	obstacle := newStatic(e, gamemath.NewRect(0, 100, 64, 64), true)

	UpdatePhysics(e)

	hb := components.Hitbox.Get(mover)
	assert.Equal(t, 100.0, hb.Rect.Bottom(), "mover ends flush with the obstacle")

	// The corrected displacement (36 px) over dt becomes the new velocity.
	mov := components.Movement.Get(mover)
	assert.Equal(t, 36.0/testDelta, mov.Velocity.Y)

	record := components.Collisions.Get(session)
	require.Len(t, record.Pairs, 1)
	assert.Same(t, mover, record.Pairs[0].First)
	assert.Same(t, obstacle, record.Pairs[0].Second)
}

func TestPhysicsPairOrderIsMoverFirst(t *testing.T) {
	e, session := newTestECS(testTier())

	mover := newMover(e, gamemath.NewRect(0, 0, 64, 64), gamemath.Vec2{Y: 500}, false)
	other := newStatic(e, gamemath.NewRect(0, 100, 64, 64), false)

	UpdatePhysics(e)

	record := components.Collisions.Get(session)
	require.Len(t, record.Pairs, 1)
	assert.Same(t, mover, record.Pairs[0].First, "the swept entity is always First")
	assert.Same(t, other, record.Pairs[0].Second)
}

func TestPhysicsNonBlockingPassesThrough(t *testing.T) {
	e, session := newTestECS(testTier())

	// Detection-only mover against a blocking wall: the pair is recorded
	// but neither velocity nor displacement is corrected.
	mover := newMover(e, gamemath.NewRect(0, 0, 64, 64), gamemath.Vec2{Y: 500}, false)
	newStatic(e, gamemath.NewRect(0, 100, 64, 64), true)

	UpdatePhysics(e)

	hb := components.Hitbox.Get(mover)
	assert.Equal(t, 62.5, hb.Rect.Y, "full displacement applied")
	assert.Equal(t, 500.0, components.Movement.Get(mover).Velocity.Y)
	assert.Len(t, components.Collisions.Get(session).Pairs, 1)
}

func TestPhysicsInternalOverlapGetsNoCorrection(t *testing.T) {
	e, session := newTestECS(testTier())

	// Boxes overlapping on both axes before the move: no side test holds,
	// so no correction is computed. Accepted gap, not a bug.
	mover := newMover(e, gamemath.NewRect(0, 90, 64, 64), gamemath.Vec2{Y: 500}, true)
	newStatic(e, gamemath.NewRect(0, 100, 64, 64), true)

	UpdatePhysics(e)

	mov := components.Movement.Get(mover)
	assert.Equal(t, 500.0, mov.Velocity.Y, "velocity survives the overlap unchanged")

	hb := components.Hitbox.Get(mover)
	assert.Equal(t, 152.5, hb.Rect.Y, "mover keeps moving through")

	assert.Len(t, components.Collisions.Get(session).Pairs, 1, "overlap is still recorded")
}

func TestPhysicsHorizontalClampFromLeft(t *testing.T) {
	e, _ := newTestECS(testTier())

	mover := newMover(e, gamemath.NewRect(0, 0, 64, 64), gamemath.Vec2{X: 500}, true)
	newStatic(e, gamemath.NewRect(100, 0, 64, 64), true)

	UpdatePhysics(e)

	hb := components.Hitbox.Get(mover)
	assert.Equal(t, 100.0, hb.Rect.Right())
	assert.Equal(t, 0.0, hb.Rect.Y, "perpendicular axis untouched")
}

func TestPhysicsMissesLeaveVelocityAlone(t *testing.T) {
	e, session := newTestECS(testTier())

	mover := newMover(e, gamemath.NewRect(0, 0, 64, 64), gamemath.Vec2{Y: 100}, true)
	newStatic(e, gamemath.NewRect(500, 500, 64, 64), true)

	UpdatePhysics(e)

	hb := components.Hitbox.Get(mover)
	assert.Equal(t, 12.5, hb.Rect.Y)
	assert.Equal(t, 100.0, components.Movement.Get(mover).Velocity.Y)
	assert.Empty(t, components.Collisions.Get(session).Pairs)
}

func TestPhysicsRecordRebuiltEachTick(t *testing.T) {
	e, session := newTestECS(testTier())

	mover := newMover(e, gamemath.NewRect(0, 0, 64, 64), gamemath.Vec2{Y: 500}, false)
	newStatic(e, gamemath.NewRect(0, 100, 64, 64), false)

	UpdatePhysics(e)
	require.Len(t, components.Collisions.Get(session).Pairs, 1)

	// Teleport the mover clear of the obstacle: the record is rebuilt from
	// scratch, it is not a running history.
	components.Hitbox.Get(mover).Rect.Y = 500
	UpdatePhysics(e)
	assert.Empty(t, components.Collisions.Get(session).Pairs)
}
