package audio

import (
	"errors"
	"time"
)

// SoundType represents the lifecycle cues
type SoundType int

const (
	SoundFinalize SoundType = iota // Shape closed and field drawn
	SoundDiscard                   // Degenerate shape dropped
	SoundRestart                   // Scene cleared
	soundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundFinalize:
		return "finalize"
	case SoundDiscard:
		return "discard"
	case SoundRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Wave is the oscillator shape of a partial
type Wave uint8

const (
	WaveSine  Wave = iota // pure tone
	WaveSaw               // buzzy, used for rejection
	WaveNoise             // white noise, Freq ignored
)

// Partial is one voice of a cue: a wave at a gain, faded out over Release
type Partial struct {
	Wave    Wave
	Freq    float64
	Gain    float64
	Release time.Duration
}

// Cue is the recipe for one lifecycle sound, all partials share Duration and Attack
type Cue struct {
	Duration time.Duration
	Attack   time.Duration
	Partials []Partial
}

// cues is indexed by SoundType
var cues = [soundTypeCount]Cue{
	// E5 with a fifth above, the overtone dies first
	SoundFinalize: {
		Duration: 220 * time.Millisecond,
		Attack:   5 * time.Millisecond,
		Partials: []Partial{
			{Wave: WaveSine, Freq: 659.25, Gain: 0.7, Release: 200 * time.Millisecond},
			{Wave: WaveSine, Freq: 987.77, Gain: 0.3, Release: 120 * time.Millisecond},
		},
	},
	// A2 saw blip
	SoundDiscard: {
		Duration: 90 * time.Millisecond,
		Attack:   2 * time.Millisecond,
		Partials: []Partial{
			{Wave: WaveSaw, Freq: 110, Gain: 1, Release: 40 * time.Millisecond},
		},
	},
	// Soft noise swell
	SoundRestart: {
		Duration: 140 * time.Millisecond,
		Attack:   30 * time.Millisecond,
		Partials: []Partial{
			{Wave: WaveNoise, Gain: 1, Release: 90 * time.Millisecond},
		},
	},
}

// CueFor returns the recipe of a sound type
func CueFor(s SoundType) (Cue, bool) {
	if s < 0 || s >= soundTypeCount {
		return Cue{}, false
	}
	return cues[s], true
}

// AudioConfig holds cue volumes and device settings
type AudioConfig struct {
	Enabled       bool
	Muted         bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audible defaults at 44.1kHz
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   44100,
		EffectVolumes: map[SoundType]float64{
			SoundFinalize: 0.6,
			SoundDiscard:  0.4,
			SoundRestart:  0.3,
		},
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled")
	ErrBadSampleRate = errors.New("invalid sample rate")
)
