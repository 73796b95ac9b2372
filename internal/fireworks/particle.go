package fireworks

import "image/color"

// Particle is one decaying point of light spawned by a burst.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Color   color.NRGBA
	Alpha   float64
	Decay   float64
	Radius  float64
	Gravity float64
	Sparkle bool
}

// update integrates one frame. Decay is strictly positive so Alpha only falls.
func (p *Particle) update() {
	p.VY += p.Gravity
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= p.Decay
}

func (p *Particle) dead() bool { return p.Alpha <= 0 }

func (p *Particle) draw(s Surface) {
	// Glow halo under the core, in the particle's own color.
	s.FillCircle(p.X, p.Y, p.Radius*3, withAlpha(p.Color, p.Alpha*0.12))
	s.FillCircle(p.X, p.Y, p.Radius*1.8, withAlpha(p.Color, p.Alpha*0.3))
	s.FillCircle(p.X, p.Y, p.Radius, withAlpha(p.Color, p.Alpha))
}
