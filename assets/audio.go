package assets

import (
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/nativemenu/config"
)

// bytesPerFrame is one 16-bit stereo sample frame
const bytesPerFrame = 4

// envelopeTime is the attack and release ramp applied to every tone
const envelopeTime = 0.005

// AudioLoader synthesizes UI tones and caches them as 16-bit stereo PCM
type AudioLoader struct {
	sfxCache   map[cfg.SoundID][]byte
	sampleRate int
}

// NewAudioLoader creates a loader producing PCM at sampleRate
func NewAudioLoader(sampleRate int) *AudioLoader {
	return &AudioLoader{
		sfxCache:   make(map[cfg.SoundID][]byte),
		sampleRate: sampleRate,
	}
}

// PreloadSFX synthesizes a sound effect and caches it.
// Call this at startup to avoid the work on first play.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	_, err := l.LoadSFX(id)
	return err
}

// LoadSFX returns the PCM bytes for a sound effect
func (l *AudioLoader) LoadSFX(id cfg.SoundID) ([]byte, error) {
	if cached, ok := l.sfxCache[id]; ok {
		return cached, nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	if tone.Frequency <= 0 || tone.Duration <= 0 {
		return nil, fmt.Errorf("invalid tone for sound %d: %+v", id, tone)
	}

	pcm := SynthesizeTone(tone, l.sampleRate)
	l.sfxCache[id] = pcm
	return pcm, nil
}

// SynthesizeTone renders a sine beep with short linear fades at both ends
func SynthesizeTone(tone cfg.Tone, sampleRate int) []byte {
	frames := int(tone.Duration.Seconds() * float64(sampleRate))
	if frames <= 0 {
		return nil
	}
	ramp := max(1, int(envelopeTime*float64(sampleRate)))

	out := make([]byte, frames*bytesPerFrame)
	for i := 0; i < frames; i++ {
		gain := 1.0
		if i < ramp {
			gain = float64(i) / float64(ramp)
		}
		if tail := frames - 1 - i; tail < ramp {
			gain = math.Min(gain, float64(tail)/float64(ramp))
		}

		v := math.Sin(2*math.Pi*tone.Frequency*float64(i)/float64(sampleRate)) * gain
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame:], sample)
		binary.LittleEndian.PutUint16(out[i*bytesPerFrame+2:], sample)
	}
	return out
}
