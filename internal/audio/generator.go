package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChirpGenerator generates a sine tone sweeping linearly between two
// frequencies, with a short attack/release envelope to avoid clicks.
// Duration is imposed by wrapping it in beep.Take.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	pos      int
	sweep    int // samples over which the sweep completes
	phase    float64
}

func NewChirpGenerator(sr beep.SampleRate, from, to float64) *ChirpGenerator {
	return &ChirpGenerator{
		sr:    sr,
		from:  from,
		to:    to,
		sweep: int(sr) / 4,
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.sweep)
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress

		// Envelope: 10ms attack, gentle exponential tail.
		attack := math.Min(float64(g.pos)/(float64(g.sr)*0.01), 1.0)
		release := math.Exp(-float64(g.pos) / (float64(g.sr) * 0.3))
		amplitude := 0.2 * attack * release

		sample := amplitude * math.Sin(2*math.Pi*g.phase)
		g.phase += freq / float64(g.sr)
		if g.phase >= 1.0 {
			g.phase -= 1.0
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}
