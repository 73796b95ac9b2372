package fireworks

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Shell hues in degrees: red, orange, gold, green, cyan, violet, rose.
var paletteHues = []float64{0, 25, 45, 130, 190, 280, 330}

const (
	shellSaturation = 0.85
	burstHueJitter  = 20
)

var sparkleColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

func pickHue(r Random) float64 {
	return paletteHues[intn(r, 0, len(paletteHues))]
}

// hueColor converts a hue (any real, wrapped to [0, 360)) to an opaque color.
func hueColor(hue, saturation float64) color.NRGBA {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	cr, cg, cb := colorful.Hsv(hue, saturation, 1).Clamped().RGB255()
	return color.NRGBA{R: cr, G: cg, B: cb, A: 255}
}

func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(alpha) * 255))
	return c
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
