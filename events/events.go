// Package events carries gameplay events between the simulation systems and
// the rule layer. All events produced during one tick go through a single
// shared FIFO queue which the rule layer drains completely before the
// deletion sweep runs, so event payloads referencing a dying entity stay
// valid for the whole tick.
package events

import (
	"image/color"

	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
)

// Kind tags an event.
type Kind int

const (
	KindColoredBallShot Kind = iota + 1
	KindEntityDeath
	KindPlayerHit
)

// Event is a tagged variant; switch on the concrete type to read the payload.
type Event interface {
	Kind() Kind
}

// BallShot is emitted when a sakura destroys a ball. Color is the ball's
// quantized color band and Center its screen-space center at impact.
type BallShot struct {
	Color  color.RGBA
	Center gamemath.Vec2
}

func (BallShot) Kind() Kind { return KindColoredBallShot }

// EntityDeath is emitted by the life system when an entity runs out of life
// points. The entity is still fully readable until the end-of-tick sweep.
type EntityDeath struct {
	Entity donburi.Entity
}

func (EntityDeath) Kind() Kind { return KindEntityDeath }

// PlayerHit is emitted when a ball reaches the player.
type PlayerHit struct{}

func (PlayerHit) Kind() Kind { return KindPlayerHit }

// Queue is a single-threaded FIFO event queue.
type Queue struct {
	items []Event
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Push(ev Event) {
	q.items = append(q.items, ev)
}

// Poll removes and returns the oldest event.
func (q *Queue) Poll() (Event, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	ev := q.items[0]
	q.items = q.items[1:]
	return ev, true
}

func (q *Queue) Len() int {
	return len(q.items)
}
