package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Sweep is a finite sine sweep with an attack/decay envelope.
type Sweep struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	total    int
}

// NewSweep creates a sweep from one frequency to another over the duration.
func NewSweep(sr beep.SampleRate, fromHz, toHz float64, d time.Duration) *Sweep {
	return &Sweep{sr: sr, from: fromHz, to: toHz, total: sr.N(d)}
}

func (g *Sweep) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.total)

		freq := g.from + (g.to-g.from)*progress
		sample := 0.25 * envelope(progress) * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Sweep) Err() error { return nil }

// NoiseBurst is a decaying white-noise burst.
type NoiseBurst struct {
	sr    beep.SampleRate
	pos   int
	total int
	seed  int64
}

// NewNoiseBurst creates a burst of the given duration.
func NewNoiseBurst(sr beep.SampleRate, d time.Duration) *NoiseBurst {
	return &NoiseBurst{sr: sr, total: sr.N(d), seed: 0x6a09e667}
}

func (g *NoiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		sample := 0.2 * envelope(progress) * noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *NoiseBurst) Err() error { return nil }

// Tick is a short square-wave click.
type Tick struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewTick creates a square tick at the given frequency.
func NewTick(sr beep.SampleRate, freqHz float64, d time.Duration) *Tick {
	return &Tick{sr: sr, freq: freqHz, total: sr.N(d)}
}

func (g *Tick) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.total)

		square := 1.0
		if math.Sin(2*math.Pi*g.freq*t) < 0 {
			square = -1.0
		}
		sample := 0.15 * envelope(progress) * square

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Tick) Err() error { return nil }

// Buzz is a low harmonic-stacked buzz.
type Buzz struct {
	sr    beep.SampleRate
	freq  float64
	pos   int
	total int
}

// NewBuzz creates a buzz at the given base frequency.
func NewBuzz(sr beep.SampleRate, freqHz float64, d time.Duration) *Buzz {
	return &Buzz{sr: sr, freq: freqHz, total: sr.N(d)}
}

func (g *Buzz) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		progress := float64(g.pos) / float64(g.total)

		sample := 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)
		sample *= 0.6 * envelope(progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *Buzz) Err() error { return nil }

// envelope shapes a cue with a 10% linear attack and linear decay to zero,
// so cues never click at their edges.
func envelope(progress float64) float64 {
	const attack = 0.1
	if progress < attack {
		return progress / attack
	}
	return 1 - (progress-attack)/(1-attack)
}
