package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/celebration/internal/fireworks"
)

var (
	_ fireworks.Surface        = (*Raster)(nil)
	_ fireworks.ResizeNotifier = (*Raster)(nil)
)

func TestRasterFadeAccumulates(t *testing.T) {
	t.Parallel()

	r := NewRaster(4, 4)
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	r.Fade(white, 1)
	require.Equal(t, uint8(255), r.Image().RGBAAt(2, 2).R)

	black := color.NRGBA{A: 255}
	r.Fade(black, 0.5)
	once := r.Image().RGBAAt(2, 2).R
	r.Fade(black, 0.5)
	twice := r.Image().RGBAAt(2, 2).R
	require.Less(t, once, uint8(255))
	require.Less(t, twice, once)
	require.Greater(t, twice, uint8(0))
}

func TestRasterFillCircleCoversCenterOnly(t *testing.T) {
	t.Parallel()

	r := NewRaster(40, 40)
	r.FillCircle(20, 20, 5, color.NRGBA{R: 255, A: 255})
	img := r.Image()

	require.Equal(t, uint8(255), img.RGBAAt(20, 20).R)
	require.Equal(t, uint8(0), img.RGBAAt(2, 2).A)
	require.Equal(t, uint8(0), img.RGBAAt(20, 30).A)
}

func TestRasterStrokeLine(t *testing.T) {
	t.Parallel()

	r := NewRaster(20, 20)
	r.StrokeLine(2, 10, 18, 10, 2, color.NRGBA{G: 255, A: 255})
	img := r.Image()

	require.Greater(t, img.RGBAAt(10, 10).G, uint8(0))
	require.Equal(t, uint8(0), img.RGBAAt(10, 3).A)

	// Degenerate strokes draw nothing.
	r.StrokeLine(5, 5, 5, 5, 2, color.NRGBA{B: 255, A: 255})
	require.Equal(t, uint8(0), r.Image().RGBAAt(5, 5).B)
}

func TestRasterResizeNotifiesUntilDetached(t *testing.T) {
	t.Parallel()

	r := NewRaster(10, 10)
	var got [][2]int
	detach := r.OnResize(func(w, h int) { got = append(got, [2]int{w, h}) })

	r.Resize(10, 10)
	r.Resize(30, 20)
	w, h := r.Size()
	require.Equal(t, 30, w)
	require.Equal(t, 20, h)

	detach()
	detach()
	r.Resize(5, 5)
	require.Equal(t, [][2]int{{30, 20}}, got)
	require.Zero(t, r.listeners.Len())
}

func TestRasterWritePNG(t *testing.T) {
	t.Parallel()

	r := NewRaster(8, 6)
	r.Fade(color.NRGBA{B: 200, A: 255}, 1)

	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, 8, img.Bounds().Dx())
	require.Equal(t, 6, img.Bounds().Dy())
}

func TestAlphaByteClamps(t *testing.T) {
	t.Parallel()

	require.Equal(t, uint8(0), AlphaByte(-1))
	require.Equal(t, uint8(38), AlphaByte(0.15))
	require.Equal(t, uint8(255), AlphaByte(3))
}

func TestRasterClipsShapesToImage(t *testing.T) {
	t.Parallel()

	r := NewRaster(30, 30)
	red := color.NRGBA{R: 255, A: 255}

	// Off-surface shapes are dropped, edge shapes keep their visible part.
	r.FillCircle(-50, -50, 4, red)
	r.StrokeLine(100, 100, 140, 100, 3, red)
	r.FillCircle(0, 29, 4, red)
	r.StrokeLine(25, 5, 45, 5, 2, red)

	img := r.Image()
	require.Equal(t, uint8(255), img.RGBAAt(1, 28).R)
	require.Greater(t, img.RGBAAt(28, 5).R, uint8(0))
	require.Equal(t, uint8(0), img.RGBAAt(15, 15).A)
	require.Equal(t, uint8(0), img.RGBAAt(28, 10).A)
	require.Equal(t, uint8(0), img.RGBAAt(0, 0).A)
}

func TestRasterShapeLandsAtItsPosition(t *testing.T) {
	t.Parallel()

	r := NewRaster(100, 60)
	r.FillCircle(80.5, 45.5, 3, color.NRGBA{B: 255, A: 255})
	img := r.Image()

	require.Equal(t, uint8(255), img.RGBAAt(80, 45).B)
	require.Equal(t, uint8(0), img.RGBAAt(80, 40).A)
	require.Equal(t, uint8(0), img.RGBAAt(75, 45).A)
	require.Equal(t, uint8(0), img.RGBAAt(3, 3).A)
}
