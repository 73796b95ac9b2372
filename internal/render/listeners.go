package render

import (
	"math"
	"sync"
)

// Listeners fans surface size changes out to subscribers. The zero value is
// ready to use.
type Listeners struct {
	mu     sync.Mutex
	nextID int
	fns    map[int]func(width, height int)
}

// Add subscribes fn; the returned func unsubscribes it and is idempotent.
func (l *Listeners) Add(fn func(width, height int)) func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fns == nil {
		l.fns = map[int]func(int, int){}
	}
	id := l.nextID
	l.nextID++
	l.fns[id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.fns, id)
			l.mu.Unlock()
		})
	}
}

func (l *Listeners) Notify(width, height int) {
	l.mu.Lock()
	fns := make([]func(int, int), 0, len(l.fns))
	for _, fn := range l.fns {
		fns = append(fns, fn)
	}
	l.mu.Unlock()
	for _, fn := range fns {
		fn(width, height)
	}
}

func (l *Listeners) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.fns)
}

// AlphaByte maps an opacity in [0, 1] to an 8-bit alpha, clamping outliers.
func AlphaByte(alpha float64) uint8 {
	return uint8(math.Round(clamp01(alpha) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
