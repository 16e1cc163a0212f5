package config

// SoundID identifies a sound effect cue.
type SoundID int

const (
	SoundGoodBall SoundID = iota
	SoundWrongBall
	SoundPlayerHit
	SoundAffinityChange
	SoundSugoi
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio system configuration values.
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

var Audio = AudioConfig{
	SampleRate:    44100,
	DefaultSFXVol: 1.0,
}
