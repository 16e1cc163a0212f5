package components

import "github.com/yohamta/donburi"

// CollisionPair records one collision detected by the physics system.
// First is always the moving entity whose swept box hit Second; the effects
// rules are looked up by this exact order.
type CollisionPair struct {
	First  *donburi.Entry
	Second *donburi.Entry
}

// CollisionsData is the tick's collision record, rebuilt by the physics
// system every tick and cleared by the collision effects system.
type CollisionsData struct {
	Pairs []CollisionPair
}

var Collisions = donburi.NewComponentType[CollisionsData]()
