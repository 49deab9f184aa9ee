package audio

import (
	"math"
	"math/rand/v2"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// voice renders one Partial of a cue: oscillator and fade in a single pass
type voice struct {
	wave    Wave
	step    float64 // phase advance per sample, cycles
	phase   float64
	gain    float64
	pos     int
	total   int
	attack  int
	release int
}

func newVoice(p Partial, c Cue, rate beep.SampleRate) *voice {
	return &voice{
		wave:    p.Wave,
		step:    p.Freq / float64(rate),
		gain:    p.Gain,
		total:   rate.N(c.Duration),
		attack:  rate.N(c.Attack),
		release: rate.N(p.Release),
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if v.pos >= v.total {
			return i, i > 0
		}
		val := v.gain * fade(v.pos, v.total, v.attack, v.release) * sample(v.wave, v.phase)
		samples[i][0] = val
		samples[i][1] = val

		v.phase += v.step
		v.phase -= math.Floor(v.phase)
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// sample evaluates a wave at phase in [0, 1), output in [-1, 1]
func sample(w Wave, phase float64) float64 {
	switch w {
	case WaveSaw:
		return 2*phase - 1
	case WaveNoise:
		return rand.Float64()*2 - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// fade is the linear attack/release gain at sample pos of total
// Release runs to zero at the last sample; attack and release may overlap, the quieter wins
func fade(pos, total, attack, release int) float64 {
	g := 1.0
	if attack > 0 && pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 {
		if left := total - pos; left < release {
			g = math.Min(g, float64(left)/float64(release))
		}
	}
	return g
}

// gainStage scales a stream linearly; beep's Volume works in log2 steps, so zero means silent
func gainStage(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Render mixes the partials of a cue and applies the overall gain
func Render(c Cue, rate beep.SampleRate, gain float64) beep.Streamer {
	voices := make([]beep.Streamer, len(c.Partials))
	for i, p := range c.Partials {
		voices[i] = newVoice(p, c, rate)
	}
	return gainStage(beep.Mix(voices...), gain)
}

// GetSoundEffect renders the cue of a sound type at its configured volume, nil for unknown types
func GetSoundEffect(s SoundType, cfg *AudioConfig) beep.Streamer {
	c, ok := CueFor(s)
	if !ok {
		return nil
	}
	return Render(c, beep.SampleRate(cfg.SampleRate), cfg.EffectVolumes[s]*cfg.MasterVolume)
}
