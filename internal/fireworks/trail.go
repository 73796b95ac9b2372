package fireworks

// Point is a recorded shell position.
type Point struct {
	X, Y float64
}

// Trail keeps the most recent positions of a shell in a fixed ring.
type Trail struct {
	buffer    []Point
	nextIndex int
	size      int
}

func newTrail(capacity int) Trail {
	if capacity <= 0 {
		capacity = 1
	}
	return Trail{buffer: make([]Point, capacity)}
}

// Push records p, overwriting the oldest entry when full.
func (t *Trail) Push(p Point) {
	t.buffer[t.nextIndex] = p
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
	}
	if t.size < len(t.buffer) {
		t.size++
	}
}

func (t *Trail) Len() int { return t.size }

// Points returns the recorded positions, oldest first.
func (t *Trail) Points() []Point {
	out := make([]Point, 0, t.size)
	idx := t.nextIndex - t.size
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := 0; i < t.size; i++ {
		out = append(out, t.buffer[idx])
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
	return out
}
