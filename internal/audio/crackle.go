package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/faiface/beep"
)

const (
	crackleDuration = 350 * time.Millisecond
	// Bursts at or above this many particles play at full volume.
	loudBurst = 140
)

// NewCrackle returns a finite streamer for a burst of the given particle
// count. Equal seeds produce equal samples.
func NewCrackle(sr beep.SampleRate, particles int, volume float64, seed uint64) beep.Streamer {
	return newCrackle(sr, particles, volume, seed)
}

// crackle is exponentially decaying white noise.
type crackle struct {
	pos, length int
	amp, tau    float64
	rng         *rand.Rand
}

func newCrackle(sr beep.SampleRate, particles int, volume float64, seed uint64) *crackle {
	length := sr.N(crackleDuration)
	loudness := math.Min(1, float64(particles)/loudBurst)
	return &crackle{
		length: length,
		amp:    volume * loudness,
		tau:    float64(length) / 5,
		rng:    rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

func (c *crackle) Stream(samples [][2]float64) (int, bool) {
	if c.pos >= c.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if c.pos >= c.length {
			break
		}
		env := c.amp * math.Exp(-float64(c.pos)/c.tau)
		v := (c.rng.Float64()*2 - 1) * env
		samples[i][0], samples[i][1] = v, v
		c.pos++
		n++
	}
	return n, true
}

func (c *crackle) Err() error { return nil }
