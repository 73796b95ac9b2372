package fireworks

import (
	"image/color"
	"sync"
)

// recordingSurface counts draw calls and fans out resize notifications.
type recordingSurface struct {
	mu        sync.Mutex
	w, h      int
	fades     []float64
	circles   int
	lines     int
	listeners map[int]func(int, int)
	nextID    int
}

func newRecordingSurface(w, h int) *recordingSurface {
	return &recordingSurface{w: w, h: h, listeners: map[int]func(int, int){}}
}

func (s *recordingSurface) Size() (int, int) { return s.w, s.h }

func (s *recordingSurface) Fade(_ color.NRGBA, alpha float64) { s.fades = append(s.fades, alpha) }

func (s *recordingSurface) FillCircle(_, _, _ float64, _ color.NRGBA) { s.circles++ }

func (s *recordingSurface) StrokeLine(_, _, _, _, _ float64, _ color.NRGBA) { s.lines++ }

func (s *recordingSurface) OnResize(fn func(int, int)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *recordingSurface) resize(w, h int) {
	s.mu.Lock()
	s.w, s.h = w, h
	fns := make([]func(int, int), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(w, h)
	}
}

func (s *recordingSurface) listenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// constRandom always returns the same value.
type constRandom float64

func (r constRandom) Float64() float64 { return float64(r) }

// sequenceRandom cycles through fixed values.
type sequenceRandom struct {
	values []float64
	i      int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func stepN(q *FrameQueue, n int) {
	for i := 0; i < n; i++ {
		q.Step()
	}
}
