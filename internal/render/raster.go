package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"sync"

	"golang.org/x/image/vector"
)

// circleSegments is the polygon resolution used for filled circles.
const circleSegments = 24

// Raster is a CPU surface backed by an *image.RGBA. Shapes are rasterized
// with golang.org/x/image/vector and composited with draw.Over.
type Raster struct {
	mu        sync.Mutex
	img       *image.RGBA
	z         *vector.Rasterizer
	listeners Listeners
}

// NewRaster returns a transparent w×h surface.
func NewRaster(w, h int) *Raster {
	w, h = max(w, 1), max(h, 1)
	return &Raster{
		img: image.NewRGBA(image.Rect(0, 0, w, h)),
		z:   vector.NewRasterizer(w, h),
	}
}

func (r *Raster) Size() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Fade(c color.NRGBA, alpha float64) {
	c.A = AlphaByte(alpha)
	r.mu.Lock()
	defer r.mu.Unlock()
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Over)
}

func (r *Raster) FillCircle(x, y, radius float64, c color.NRGBA) {
	if radius <= 0 || c.A == 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rect := r.clip(x-radius, y-radius, x+radius, y+radius)
	if rect.Empty() {
		return
	}
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	r.z.Reset(rect.Dx(), rect.Dy())
	r.z.MoveTo(float32(x+radius-ox), float32(y-oy))
	for i := 1; i < circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / circleSegments
		r.z.LineTo(float32(x+radius*math.Cos(a)-ox), float32(y+radius*math.Sin(a)-oy))
	}
	r.z.ClosePath()
	r.fill(rect, c)
}

func (r *Raster) StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 || c.A == 0 {
		return
	}
	// Offset both ends by half the width along the normal.
	nx, ny := -dy/length*width/2, dx/length*width/2
	hw := width / 2

	r.mu.Lock()
	defer r.mu.Unlock()
	rect := r.clip(min(x0, x1)-hw, min(y0, y1)-hw, max(x0, x1)+hw, max(y0, y1)+hw)
	if rect.Empty() {
		return
	}
	ox, oy := float64(rect.Min.X), float64(rect.Min.Y)
	r.z.Reset(rect.Dx(), rect.Dy())
	r.z.MoveTo(float32(x0+nx-ox), float32(y0+ny-oy))
	r.z.LineTo(float32(x1+nx-ox), float32(y1+ny-oy))
	r.z.LineTo(float32(x1-nx-ox), float32(y1-ny-oy))
	r.z.LineTo(float32(x0-nx-ox), float32(y0-ny-oy))
	r.z.ClosePath()
	r.fill(rect, c)
}

// clip returns the pixel box covering [x0, x1]×[y0, y1], cut to the image.
func (r *Raster) clip(x0, y0, x1, y1 float64) image.Rectangle {
	box := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1))+1, int(math.Ceil(y1))+1,
	)
	return box.Intersect(r.img.Bounds())
}

// fill composites the rasterizer, sized to rect, onto rect.
func (r *Raster) fill(rect image.Rectangle, c color.NRGBA) {
	r.z.DrawOp = draw.Over
	r.z.Draw(r.img, rect, image.NewUniform(c), image.Point{})
}

// Resize reallocates the surface and notifies listeners. The old pixels are
// copied into the top-left corner.
func (r *Raster) Resize(w, h int) {
	w, h = max(w, 1), max(h, 1)
	r.mu.Lock()
	if b := r.img.Bounds(); b.Dx() == w && b.Dy() == h {
		r.mu.Unlock()
		return
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), r.img, image.Point{}, draw.Src)
	r.img = img
	r.z = vector.NewRasterizer(w, h)
	r.mu.Unlock()

	r.listeners.Notify(w, h)
}

func (r *Raster) OnResize(fn func(width, height int)) func() {
	return r.listeners.Add(fn)
}

// Image returns a copy of the current pixels.
func (r *Raster) Image() *image.RGBA {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := image.NewRGBA(r.img.Bounds())
	copy(out.Pix, r.img.Pix)
	return out
}

// WritePNG encodes the current pixels.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
