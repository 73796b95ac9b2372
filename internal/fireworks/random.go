package fireworks

import "math/rand/v2"

// Random supplies uniform values in [0, 1). Every randomized choice the loop
// makes goes through it.
type Random interface {
	Float64() float64
}

// NewRandom returns a PCG-backed source; equal seeds replay equal shows.
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func between(r Random, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// intn returns an int in [lo, hi).
func intn(r Random, lo, hi int) int {
	n := lo + int(r.Float64()*float64(hi-lo))
	if n >= hi {
		n = hi - 1
	}
	return n
}
