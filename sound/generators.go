package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// toneGenerator produces a sine wave with a short fade-in to avoid clicks.
type toneGenerator struct {
	sr   beep.SampleRate
	freq float64
	amp  float64
	pos  int
}

func newToneGenerator(sr beep.SampleRate, freq, amp float64) *toneGenerator {
	return &toneGenerator{sr: sr, freq: freq, amp: amp}
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Min(t/0.005, 1.0)
		sample := g.amp * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }

// noiseGenerator produces filtered white noise for swish cues.
type noiseGenerator struct {
	sr   beep.SampleRate
	amp  float64
	seed int64
	pos  int
}

func newNoiseGenerator(sr beep.SampleRate, amp float64) *noiseGenerator {
	return &noiseGenerator{sr: sr, amp: amp, seed: 0x5eed}
}

func (g *noiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		envelope := math.Exp(-t * 30)
		sample := g.amp * envelope * noise

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *noiseGenerator) Err() error { return nil }

// sweepGenerator glides linearly between two frequencies over its duration.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	phase    float64
	pos      int
}

func newSweepGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *sweepGenerator {
	return &sweepGenerator{sr: sr, from: from, to: to, samples: sr.N(d)}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress

		// Accumulated phase keeps the glide continuous.
		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)

		envelope := 1.0 - progress*0.7
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }
