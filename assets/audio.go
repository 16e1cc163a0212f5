package assets

import (
	"math"

	cfg "github.com/automoto/hanapop/config"
)

// ToneLoader synthesizes and caches the game's sound cues as raw 16-bit
// little-endian stereo PCM. The repository ships no audio files; every cue
// is a short swept sine.
type ToneLoader struct {
	sampleRate int
	cache      map[cfg.SoundID][]byte
}

func NewToneLoader(sampleRate int) *ToneLoader {
	return &ToneLoader{
		sampleRate: sampleRate,
		cache:      make(map[cfg.SoundID][]byte),
	}
}

type toneDef struct {
	startHz  float64
	endHz    float64
	duration float64
}

var toneDefs = map[cfg.SoundID]toneDef{
	cfg.SoundGoodBall:       {startHz: 880, endHz: 1320, duration: 0.12},
	cfg.SoundWrongBall:      {startHz: 220, endHz: 150, duration: 0.25},
	cfg.SoundPlayerHit:      {startHz: 140, endHz: 80, duration: 0.30},
	cfg.SoundAffinityChange: {startHz: 523, endHz: 784, duration: 0.35},
	cfg.SoundSugoi:          {startHz: 440, endHz: 1760, duration: 0.50},
	cfg.SoundMenuNavigate:   {startHz: 660, endHz: 660, duration: 0.05},
	cfg.SoundMenuSelect:     {startHz: 880, endHz: 880, duration: 0.08},
}

// PCM returns the synthesized samples for a cue.
func (l *ToneLoader) PCM(id cfg.SoundID) []byte {
	if pcm, ok := l.cache[id]; ok {
		return pcm
	}

	def, ok := toneDefs[id]
	if !ok {
		return nil
	}

	pcm := l.synthesize(def)
	l.cache[id] = pcm
	return pcm
}

func (l *ToneLoader) synthesize(def toneDef) []byte {
	n := int(def.duration * float64(l.sampleRate))
	buf := make([]byte, n*4) // 2 channels, 2 bytes each

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := def.startHz + (def.endHz-def.startHz)*t
		phase += 2 * math.Pi * freq / float64(l.sampleRate)

		// Exponential decay envelope.
		env := math.Exp(-4 * t)
		sample := int16(math.Sin(phase) * env * 0.4 * math.MaxInt16)

		buf[i*4] = byte(sample)
		buf[i*4+1] = byte(sample >> 8)
		buf[i*4+2] = byte(sample)
		buf[i*4+3] = byte(sample >> 8)
	}
	return buf
}
