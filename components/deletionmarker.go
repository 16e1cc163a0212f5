package components

import "github.com/yohamta/donburi"

// DeletionMarkerData flags an entity for removal. Every spawned entity gets
// one; systems set ToDelete instead of removing entities directly, and the
// sweep system removes flagged entities once per tick after the event queue
// has been drained. Entities are never removed while a system is iterating.
type DeletionMarkerData struct {
	ToDelete bool
}

var DeletionMarker = donburi.NewComponentType[DeletionMarkerData]()
