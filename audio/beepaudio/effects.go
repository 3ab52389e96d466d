package beepaudio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/side-fighter/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep generates a wave whose frequency slides linearly from start to end
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates an oscillator gliding between two frequencies
// Equal frequencies give a steady tone, WaveNoise ignores frequency
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so 0 volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// createPlayerFire is a short descending square "pew"
func createPlayerFire(rate beep.SampleRate) beep.Streamer {
	d := 80 * time.Millisecond
	osc := NewSweep(1400, 500, d, WaveSquare, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 40*time.Millisecond, rate), 0.35)
}

// createAlienFire is a lower saw zap
func createAlienFire(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	osc := NewSweep(700, 180, d, WaveSaw, rate)
	return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 60*time.Millisecond, rate), 0.3)
}

// createPlayerTakeDamage mixes a low sine thud with a noise crack
func createPlayerTakeDamage(rate beep.SampleRate) beep.Streamer {
	d := 150 * time.Millisecond
	var thud beep.Streamer = NewSweep(160, 160, d, WaveSine, rate)
	if tone, err := generators.SineTone(rate, 110); err == nil {
		thud = beep.Take(rate.N(d), beep.Mix(thud, newVolume(beep.Take(rate.N(d), tone), 0.5)))
	}
	crack := NewSweep(0, 0, d/3, WaveNoise, rate)
	mixed := beep.Take(rate.N(d), beep.Mix(
		NewEnvelope(thud, d, time.Millisecond, 100*time.Millisecond, rate),
		newVolume(NewEnvelope(crack, d/3, 0, 40*time.Millisecond, rate), 0.6),
	))
	return newVolume(mixed, 0.5)
}

// createExplosion is decaying noise over a falling rumble
func createExplosion(rate beep.SampleRate, d time.Duration, vol float64) beep.Streamer {
	noise := NewSweep(0, 0, d, WaveNoise, rate)
	rumble := NewSweep(120, 30, d, WaveSine, rate)
	// Mix alone may stream silence past its inputs, Take bounds it
	mixed := beep.Take(rate.N(d), beep.Mix(
		newVolume(NewEnvelope(noise, d, time.Millisecond, d*3/4, rate), 0.7),
		newVolume(NewEnvelope(rumble, d, time.Millisecond, d/2, rate), 0.5),
	))
	return newVolume(mixed, vol)
}

// NewSound returns a fresh streamer for the sound type, nil for unknown types
func NewSound(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundPlayerFire:
		return createPlayerFire(rate)
	case core.SoundAlienFire:
		return createAlienFire(rate)
	case core.SoundPlayerTakeDamage:
		return createPlayerTakeDamage(rate)
	case core.SoundPlayerDie:
		return createExplosion(rate, 900*time.Millisecond, 0.8)
	case core.SoundAlienDie:
		return createExplosion(rate, 400*time.Millisecond, 0.5)
	default:
		return nil
	}
}
