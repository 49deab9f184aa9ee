package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// TestSampleShapes checks each wave at known phases
func TestSampleShapes(t *testing.T) {
	tests := []struct {
		wave  Wave
		phase float64
		want  float64
	}{
		{WaveSine, 0, 0},
		{WaveSine, 0.25, 1},
		{WaveSine, 0.75, -1},
		{WaveSaw, 0, -1},
		{WaveSaw, 0.5, 0},
		{WaveSaw, 0.75, 0.5},
	}
	for _, tt := range tests {
		if got := sample(tt.wave, tt.phase); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("sample(%d, %v) = %v, want %v", tt.wave, tt.phase, got, tt.want)
		}
	}
}

// TestSampleNoiseRange verifies noise stays in [-1, 1] and varies
func TestSampleNoiseRange(t *testing.T) {
	first := sample(WaveNoise, 0)
	varied := false
	for i := 0; i < 200; i++ {
		v := sample(WaveNoise, 0)
		if v < -1 || v > 1 {
			t.Fatalf("noise sample out of range: %v", v)
		}
		if v != first {
			varied = true
		}
	}
	if !varied {
		t.Error("Expected noise samples to vary, but all were the same")
	}
}

// TestFade covers attack ramp, sustain, release ramp and overlap
func TestFade(t *testing.T) {
	tests := []struct {
		name                        string
		pos, total, attack, release int
		want                        float64
	}{
		{"attack start", 0, 100, 10, 20, 0},
		{"attack middle", 5, 100, 10, 20, 0.5},
		{"sustain", 50, 100, 10, 20, 1},
		{"release middle", 90, 100, 10, 20, 0.5},
		{"last sample", 99, 100, 10, 20, 0.05},
		{"no envelope", 0, 100, 0, 0, 1},
		{"overlap takes quieter", 8, 10, 10, 10, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fade(tt.pos, tt.total, tt.attack, tt.release)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("fade = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestVoiceLength verifies a voice ends after the cue duration
func TestVoiceLength(t *testing.T) {
	c := Cue{
		Duration: 10 * time.Millisecond,
		Attack:   time.Millisecond,
		Partials: []Partial{{Wave: WaveSine, Freq: 440, Gain: 1, Release: 5 * time.Millisecond}},
	}
	v := newVoice(c.Partials[0], c, testRate)

	if got, want := drain(v, 64), testRate.N(c.Duration); got != want {
		t.Errorf("Expected %d samples, got %d", want, got)
	}

	n, ok := v.Stream(make([][2]float64, 8))
	if n != 0 || ok {
		t.Errorf("Expected drained voice to return (0, false), got (%d, %v)", n, ok)
	}
}

// TestCueTable checks every sound type has a playable recipe
func TestCueTable(t *testing.T) {
	for s := SoundFinalize; s < soundTypeCount; s++ {
		c, ok := CueFor(s)
		if !ok {
			t.Fatalf("no cue for %v", s)
		}
		if len(c.Partials) == 0 {
			t.Errorf("%v: cue has no partials", s)
		}
		if c.Attack >= c.Duration {
			t.Errorf("%v: attack %v not shorter than duration %v", s, c.Attack, c.Duration)
		}
		gain := 0.0
		for _, p := range c.Partials {
			if p.Release > c.Duration {
				t.Errorf("%v: release %v longer than duration %v", s, p.Release, c.Duration)
			}
			gain += p.Gain
		}
		if gain > 1 {
			t.Errorf("%v: partial gains sum to %v, mix could clip", s, gain)
		}
	}

	if _, ok := CueFor(SoundType(-1)); ok {
		t.Error("Expected no cue for negative sound type")
	}
	if _, ok := CueFor(soundTypeCount); ok {
		t.Error("Expected no cue past the last sound type")
	}
}

// TestGetSoundEffect renders each cue to its full length within range
func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()

	for s := SoundFinalize; s < soundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			sound := GetSoundEffect(s, cfg)
			if sound == nil {
				t.Fatalf("Expected non-nil sound for %v", s)
			}

			c, _ := CueFor(s)
			want := beep.SampleRate(cfg.SampleRate).N(c.Duration)
			total, peak := measure(sound, 512)
			if total != want {
				t.Errorf("Expected %d samples, got %d", want, total)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
			if peak > 1 {
				t.Errorf("Expected peak within [-1, 1], got %v", peak)
			}
		})
	}
}

// TestGetSoundEffectInvalid verifies handling of invalid sound type
func TestGetSoundEffectInvalid(t *testing.T) {
	if GetSoundEffect(SoundType(999), DefaultAudioConfig()) != nil {
		t.Error("Expected nil for invalid sound type")
	}
}

// TestSoundEffectVolume verifies master volume scales the cue
func TestSoundEffectVolume(t *testing.T) {
	cfg := DefaultAudioConfig()

	cfg.MasterVolume = 0
	if _, peak := measure(GetSoundEffect(SoundDiscard, cfg), 512); peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %v", peak)
	}

	cfg.MasterVolume = 1
	_, loud := measure(GetSoundEffect(SoundDiscard, cfg), 512)
	cfg.MasterVolume = 0.5
	_, quiet := measure(GetSoundEffect(SoundDiscard, cfg), 512)
	if math.Abs(quiet-loud/2) > 1e-9 {
		t.Errorf("Expected half volume to halve the peak, got %v vs %v", quiet, loud)
	}
}

// drain streams s to the end and returns the sample count
func drain(s beep.Streamer, buffer int) int {
	n, _ := measure(s, buffer)
	return n
}

// measure streams s to the end, returning the sample count and the peak amplitude
func measure(s beep.Streamer, buffer int) (total int, peak float64) {
	samples := make([][2]float64, buffer)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(samples)
		for _, smp := range samples[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok || n < buffer {
			break
		}
	}
	return total, peak
}
