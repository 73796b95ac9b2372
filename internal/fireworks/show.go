package fireworks

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/iburimskiy/celebration/internal/config"
	"github.com/iburimskiy/celebration/internal/logging"
)

// NightSky is the color the loop fades the surface toward every frame.
var NightSky = color.NRGBA{R: 8, G: 6, B: 20, A: 255}

// Burst summarizes one explosion.
type Burst struct {
	Frame    int
	X, Y     float64
	Color    color.NRGBA
	Main     int
	Sparkles int
}

// Total is the number of particles the burst spawned.
func (b Burst) Total() int { return b.Main + b.Sparkles }

// Stats is a snapshot of the loop's counters.
type Stats struct {
	Frame     int
	Shells    int
	Particles int
	Launched  int
	Bursts    int
}

// Show is the fireworks animation loop. It is driven by a FrameScheduler and
// renders into a Surface; shells and particles are only touched from Tick.
type Show struct {
	cfg    config.Fireworks
	frames FrameScheduler
	rng    Random
	log    *zap.Logger

	// OnBurst, when set, is called from Tick once per explosion.
	OnBurst func(Burst)

	surface Surface
	running bool
	handle  FrameHandle
	detach  func()

	sizeMu        sync.Mutex
	width, height int

	frame     int
	shells    []*Shell
	particles []Particle
	launched  int
	bursts    int
}

// New builds a stopped Show. Zero fields of cfg take the package defaults;
// the result must pass config validation.
func New(cfg config.Fireworks, frames FrameScheduler, rng Random, log *zap.Logger) (*Show, error) {
	cfg = cfg.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new show: %w", err)
	}
	if frames == nil {
		frames = NewFrameQueue()
	}
	if rng == nil {
		rng = NewRandom(cfg.Seed)
	}
	return &Show{
		cfg:    cfg,
		frames: frames,
		rng:    rng,
		log:    logging.OrNop(log).Named("fireworks"),
	}, nil
}

// Start resets the show onto surface and requests the first frame. A nil
// surface leaves the show stopped.
func (s *Show) Start(surface Surface) {
	if surface == nil {
		return
	}
	if s.running {
		s.Stop()
	}
	s.surface = surface
	w, h := surface.Size()
	s.resize(w, h)
	if rn, ok := surface.(ResizeNotifier); ok {
		s.detach = rn.OnResize(s.resize)
	}

	s.shells = nil
	s.particles = make([]Particle, 0, s.cfg.BurstMax+s.cfg.Sparkles)
	s.frame = 0
	s.launched = 0
	s.bursts = 0
	s.running = true
	s.handle = s.frames.RequestFrame(s.Tick)

	s.log.Info("show started", zap.Int("width", w), zap.Int("height", h))
}

// Stop cancels the pending frame and detaches the resize listener. A Tick in
// progress finishes its frame and schedules nothing.
func (s *Show) Stop() {
	if !s.running {
		return
	}
	s.running = false
	s.frames.Cancel(s.handle)
	if s.detach != nil {
		s.detach()
		s.detach = nil
	}
	s.log.Info("show stopped",
		zap.Int("frames", s.frame),
		zap.Int("launched", s.launched),
		zap.Int("bursts", s.bursts))
}

// Running reports whether the show is between Start and Stop.
func (s *Show) Running() bool { return s.running }

// Tick renders one frame and requests the next. It does nothing unless the
// show is running.
func (s *Show) Tick() {
	if !s.running || s.surface == nil {
		return
	}
	s.frames.Cancel(s.handle)
	s.step()
	if s.running {
		s.handle = s.frames.RequestFrame(s.Tick)
	}
}

func (s *Show) step() {
	s.frame++
	w, h := s.size()

	s.surface.Fade(NightSky, s.cfg.FadeAlpha)

	if s.frame%s.cfg.LaunchInterval == 0 {
		s.launch(float64(w), float64(h))
	}

	live := s.shells[:0]
	for _, sh := range s.shells {
		sh.update(s.cfg.ShellGravity)
		sh.draw(s.surface)
		if sh.ready() {
			s.explode(sh)
			continue
		}
		live = append(live, sh)
	}
	for i := len(live); i < len(s.shells); i++ {
		s.shells[i] = nil
	}
	s.shells = live

	kept := s.particles[:0]
	for _, p := range s.particles {
		p.update()
		if p.dead() {
			continue
		}
		p.draw(s.surface)
		kept = append(kept, p)
	}
	s.particles = kept
}

func (s *Show) launch(w, h float64) {
	target := between(s.rng, h*config.TargetTopRatio, h*config.TargetLowRatio)
	x := between(s.rng, w*config.LaunchMarginX, w*(1-config.LaunchMarginX))
	hue := pickHue(s.rng)
	// Initial speed that would stall close to the target height.
	vy := -math.Sqrt(2*s.cfg.ShellGravity*(h-target)) * between(s.rng, 0.92, 1.08)

	s.shells = append(s.shells, &Shell{
		X:       x,
		Y:       h,
		TargetY: target,
		VY:      vy,
		Hue:     hue,
		Color:   hueColor(hue, shellSaturation),
		Trail:   newTrail(s.cfg.TrailLength),
	})
	s.launched++
}

func (s *Show) explode(sh *Shell) {
	n := intn(s.rng, s.cfg.BurstMin, s.cfg.BurstMax)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		angle := float64(i)*step + between(s.rng, -step/2, step/2)
		speed := between(s.rng, config.BurstSpeedMin, config.BurstSpeedMax)
		hue := sh.Hue + between(s.rng, -burstHueJitter, burstHueJitter)
		s.particles = append(s.particles, Particle{
			X:       sh.X,
			Y:       sh.Y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Color:   hueColor(hue, shellSaturation),
			Alpha:   1,
			Decay:   between(s.rng, s.cfg.DecayMin, s.cfg.DecayMax),
			Radius:  between(s.rng, 1.5, 3),
			Gravity: s.cfg.ParticleGravity,
		})
	}
	for i := 0; i < s.cfg.Sparkles; i++ {
		angle := between(s.rng, 0, 2*math.Pi)
		speed := between(s.rng, config.SparkleSpeedMin, config.SparkleSpeedMax)
		s.particles = append(s.particles, Particle{
			X:       sh.X,
			Y:       sh.Y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Color:   sparkleColor,
			Alpha:   1,
			Decay:   between(s.rng, s.cfg.DecayMin, s.cfg.DecayMax),
			Radius:  between(s.rng, 1, 1.8),
			Gravity: s.cfg.ParticleGravity,
			Sparkle: true,
		})
	}
	s.bursts++

	b := Burst{Frame: s.frame, X: sh.X, Y: sh.Y, Color: sh.Color, Main: n, Sparkles: s.cfg.Sparkles}
	s.log.Debug("burst",
		zap.Int("frame", b.Frame),
		zap.Float64("x", b.X),
		zap.Float64("y", b.Y),
		zap.Int("particles", b.Total()))
	if s.OnBurst != nil {
		s.OnBurst(b)
	}
}

// Stats returns the current counters.
func (s *Show) Stats() Stats {
	return Stats{
		Frame:     s.frame,
		Shells:    len(s.shells),
		Particles: len(s.particles),
		Launched:  s.launched,
		Bursts:    s.bursts,
	}
}

// Shells returns the active shells. The slice is owned by the show.
func (s *Show) Shells() []*Shell { return s.shells }

// Particles returns the active particles. The slice is owned by the show.
func (s *Show) Particles() []Particle { return s.particles }

func (s *Show) resize(w, h int) {
	s.sizeMu.Lock()
	s.width, s.height = w, h
	s.sizeMu.Unlock()
}

func (s *Show) size() (int, int) {
	s.sizeMu.Lock()
	defer s.sizeMu.Unlock()
	return s.width, s.height
}
