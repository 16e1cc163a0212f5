package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData is the per-tick time source. Delta is the wall-clock time since
// the previous tick in seconds, clamped by the clock system; every other
// system reads Delta instead of touching the wall clock.
type ClockData struct {
	Delta float64
	Last  time.Time
}

var Clock = donburi.NewComponentType[ClockData]()
