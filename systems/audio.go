package systems

import (
	"bytes"
	"sync"

	"github.com/automoto/hanapop/assets"
	"github.com/automoto/hanapop/components"
	cfg "github.com/automoto/hanapop/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state, created once and shared across all scenes.
var (
	globalAudioContext *audio.Context
	globalToneLoader   *assets.ToneLoader
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	audioInitOnce      sync.Once
)

func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalToneLoader = assets.NewToneLoader(cfg.Audio.SampleRate)
	})
}

// UpdateAudio drains the pending sound cues queued by the gameplay systems.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		PlaySFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX plays one synthesized cue immediately. Menu scenes call it
// directly; gameplay systems go through the Audio singleton instead.
func PlaySFX(soundID cfg.SoundID) {
	initGlobalAudio()

	if globalSFXVolume <= 0 {
		return
	}
	pcm := globalToneLoader.PCM(soundID)
	if pcm == nil {
		return
	}

	player, err := globalAudioContext.NewPlayer(bytes.NewReader(pcm))
	if err != nil {
		return
	}
	player.SetVolume(globalSFXVolume)
	player.Play()
}
