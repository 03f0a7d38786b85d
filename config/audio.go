package config

import "time"

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuBack
)

// Tone describes a synthesized UI beep
type Tone struct {
	Frequency float64 // Hz
	Duration  time.Duration
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to the tones that play them
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.5,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundMenuNavigate: {Frequency: 880, Duration: 40 * time.Millisecond},
			SoundMenuSelect:   {Frequency: 1320, Duration: 70 * time.Millisecond},
			SoundMenuBack:     {Frequency: 440, Duration: 70 * time.Millisecond},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMenuNavigate: 0.6,
		},
	}
}
