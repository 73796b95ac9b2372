package fireworks

import "image/color"

// Shell is an ascending firework. Screen y grows downward, so it climbs with
// negative VY until gravity stalls it or it passes TargetY.
type Shell struct {
	X, Y    float64
	TargetY float64
	VY      float64
	Hue     float64
	Color   color.NRGBA
	Trail   Trail
}

func (s *Shell) update(gravity float64) {
	s.Y += s.VY
	s.VY += gravity
	s.Trail.Push(Point{X: s.X, Y: s.Y})
}

// ready reports whether the shell has reached its apex or its target height.
func (s *Shell) ready() bool {
	return s.VY >= 0 || s.Y <= s.TargetY
}

func (s *Shell) draw(surf Surface) {
	pts := s.Trail.Points()
	for i := 1; i < len(pts); i++ {
		fade := float64(i) / float64(len(pts))
		surf.StrokeLine(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, 2, withAlpha(s.Color, fade*0.8))
	}
	surf.FillCircle(s.X, s.Y, 2.5, s.Color)
}
