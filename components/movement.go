package components

import (
	"github.com/automoto/hanapop/gamemath"
	"github.com/yohamta/donburi"
)

// MovementData holds an entity's velocity in pixels per second. An entity
// with a hitbox but no movement is immovable; it still participates as the
// other side of collision checks.
type MovementData struct {
	Velocity gamemath.Vec2
}

var Movement = donburi.NewComponentType[MovementData]()
