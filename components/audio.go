package components

import (
	"github.com/automoto/hanapop/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound cues for the audio system. Gameplay systems append
// to PendingSFX; the audio system drains it once per tick.
type AudioData struct {
	PendingSFX []config.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
