package components

import (
	"github.com/automoto/hanapop/events"
	"github.com/yohamta/donburi"
)

// BusData holds the tick's shared event queue.
type BusData struct {
	Queue *events.Queue
}

var Bus = donburi.NewComponentType[BusData]()
