package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a beep.Streamer producing one synthesized note: a waveform
// with a linear frequency sweep from f0 to f1 and an attack/decay
// amplitude envelope. Each tone owns its generation state, so
// overlapping playback never interferes.
type tone struct {
	wave   Wave
	f0, f1 float64
	gain   float64
	sr     beep.SampleRate

	phase  float64
	pos    int
	total  int
	attack int
}

// newTone builds a tone of the given duration. attack sets the ramp-in
// time; the remainder decays linearly to silence.
func newTone(wave Wave, f0, f1 float64, dur, attack time.Duration, gain float64, sr beep.SampleRate) *tone {
	total := sr.N(dur)
	if total < 1 {
		total = 1
	}
	att := sr.N(attack)
	if att > total {
		att = total
	}
	return &tone{
		wave:   wave,
		f0:     f0,
		f1:     f1,
		gain:   gain,
		sr:     sr,
		total:  total,
		attack: att,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		progress := float64(t.pos) / float64(t.total)
		freq := t.f0 + (t.f1-t.f0)*progress

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (t.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		env := 1.0
		if t.pos < t.attack && t.attack > 0 {
			env = float64(t.pos) / float64(t.attack)
		} else if t.total > t.attack {
			env = float64(t.total-t.pos) / float64(t.total-t.attack)
		}

		out := val * env * t.gain
		samples[i][0] = out
		samples[i][1] = out

		t.phase += freq / float64(t.sr)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// Effect identifies a synthesized sound in the fixed catalog.
type Effect uint8

const (
	EffectFire Effect = iota
	EffectExplosion
	EffectHit
	EffectPickup
	EffectGameOver
)

// ms is a duration shorthand for the catalog tables.
func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

// effectStreamer synthesizes the waveform for an effect. Every call
// returns a fresh streamer with its own transient state.
func effectStreamer(e Effect, sr beep.SampleRate) beep.Streamer {
	switch e {
	case EffectFire:
		// Quick downward zap.
		return newTone(WaveSquare, 880, 220, ms(90), ms(4), 0.22, sr)
	case EffectExplosion:
		// Noise burst with a long decay.
		return newTone(WaveNoise, 0, 0, ms(420), ms(8), 0.5, sr)
	case EffectHit:
		// Low buzz sweeping down.
		return newTone(WaveSaw, 200, 60, ms(140), ms(4), 0.35, sr)
	case EffectPickup:
		// Two rising chime notes.
		return beep.Seq(
			newTone(WaveSine, 660, 660, ms(80), ms(6), 0.3, sr),
			newTone(WaveSine, 990, 990, ms(110), ms(6), 0.3, sr),
		)
	case EffectGameOver:
		// Descending four-note jingle.
		return beep.Seq(
			newTone(WaveSquare, 392, 392, ms(180), ms(8), 0.25, sr),
			newTone(WaveSquare, 330, 330, ms(180), ms(8), 0.25, sr),
			newTone(WaveSquare, 262, 262, ms(180), ms(8), 0.25, sr),
			newTone(WaveSquare, 196, 196, ms(320), ms(8), 0.25, sr),
		)
	default:
		return nil
	}
}
