package fireworks

import "image/color"

// Surface is the drawable the loop renders into. Coordinates are pixels with
// the origin top-left; colors are non-premultiplied.
type Surface interface {
	Size() (width, height int)
	// Fade paints c over the whole surface at the given opacity.
	Fade(c color.NRGBA, alpha float64)
	FillCircle(x, y, r float64, c color.NRGBA)
	StrokeLine(x0, y0, x1, y1, width float64, c color.NRGBA)
}

// ResizeNotifier is implemented by surfaces whose size can change while the
// loop runs. The returned func detaches fn.
type ResizeNotifier interface {
	OnResize(fn func(width, height int)) (detach func())
}
