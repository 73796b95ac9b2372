package game

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/celebration/internal/render"
)

// Canvas is an offscreen ebiten image the fireworks render into. The window
// host blits it every Draw and resizes it from Layout.
type Canvas struct {
	mu        sync.Mutex
	img       *ebiten.Image
	w, h      int
	listeners render.Listeners
}

func NewCanvas(w, h int) *Canvas {
	w, h = max(w, 1), max(h, 1)
	return &Canvas{img: ebiten.NewImage(w, h), w: w, h: h}
}

func (c *Canvas) Size() (int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.w, c.h
}

func (c *Canvas) Fade(col color.NRGBA, alpha float64) {
	col.A = render.AlphaByte(alpha)
	c.mu.Lock()
	defer c.mu.Unlock()
	vector.DrawFilledRect(c.img, 0, 0, float32(c.w), float32(c.h), col, false)
}

func (c *Canvas) FillCircle(x, y, r float64, col color.NRGBA) {
	if r <= 0 || col.A == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), col, true)
}

func (c *Canvas) StrokeLine(x0, y0, x1, y1, width float64, col color.NRGBA) {
	if width <= 0 || col.A == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), col, true)
}

// Resize reallocates the backing image when the size changes and notifies
// listeners.
func (c *Canvas) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	c.mu.Lock()
	if w == c.w && h == c.h {
		c.mu.Unlock()
		return
	}
	old := c.img
	c.img = ebiten.NewImage(w, h)
	c.img.DrawImage(old, nil)
	old.Deallocate()
	c.w, c.h = w, h
	c.mu.Unlock()

	c.listeners.Notify(w, h)
}

func (c *Canvas) OnResize(fn func(width, height int)) func() {
	return c.listeners.Add(fn)
}

// DrawTo blits the canvas onto dst.
func (c *Canvas) DrawTo(dst *ebiten.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	dst.DrawImage(c.img, nil)
}
