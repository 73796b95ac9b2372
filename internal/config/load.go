package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the runtime configuration. Zero fields take the package defaults.
type Config struct {
	LogLevel  string    `yaml:"log_level"`
	LogFormat string    `yaml:"log_format"`
	Window    Window    `yaml:"window"`
	Fireworks Fireworks `yaml:"fireworks"`
	Promo     Promo     `yaml:"promo"`
	Sound     Sound     `yaml:"sound"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Fireworks tunes the animation loop. Velocities and gravity are per frame.
type Fireworks struct {
	Seed            uint64        `yaml:"seed"`
	Hold            time.Duration `yaml:"hold"`
	FadeAlpha       float64       `yaml:"fade_alpha"`
	LaunchInterval  int           `yaml:"launch_interval"`
	TrailLength     int           `yaml:"trail_length"`
	ShellGravity    float64       `yaml:"shell_gravity"`
	BurstMin        int           `yaml:"burst_min"`
	BurstMax        int           `yaml:"burst_max"`
	Sparkles        int           `yaml:"sparkles"`
	ParticleGravity float64       `yaml:"particle_gravity"`
	DecayMin        float64       `yaml:"decay_min"`
	DecayMax        float64       `yaml:"decay_max"`
}

type Promo struct {
	Campaign  string `yaml:"campaign"`
	Language  string `yaml:"language"`
	FlagsFile string `yaml:"flags_file"`
	Force     bool   `yaml:"force"`
}

type Sound struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "console",
		Window: Window{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Holland Flowers",
		},
		Fireworks: DefaultFireworks(),
		Promo: Promo{
			Campaign: "auto",
		},
		Sound: Sound{
			Enabled:    true,
			SampleRate: SampleRate,
			Volume:     0.35,
		},
	}
}

func DefaultFireworks() Fireworks {
	return Fireworks{
		Hold:            HoldDuration,
		FadeAlpha:       FadeAlpha,
		LaunchInterval:  LaunchInterval,
		TrailLength:     TrailLength,
		ShellGravity:    ShellGravity,
		BurstMin:        BurstMin,
		BurstMax:        BurstMax,
		Sparkles:        SparkleCount,
		ParticleGravity: ParticleGravity,
		DecayMin:        DecayMin,
		DecayMax:        DecayMax,
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	if c.Promo.Campaign == "" {
		c.Promo.Campaign = d.Promo.Campaign
	}
	if c.Sound.SampleRate <= 0 {
		c.Sound.SampleRate = d.Sound.SampleRate
	}
	c.Fireworks = c.Fireworks.WithDefaults()
}

// WithDefaults fills zero fields from DefaultFireworks.
func (f Fireworks) WithDefaults() Fireworks {
	d := DefaultFireworks()
	if f.Hold <= 0 {
		f.Hold = d.Hold
	}
	if f.FadeAlpha == 0 {
		f.FadeAlpha = d.FadeAlpha
	}
	if f.LaunchInterval == 0 {
		f.LaunchInterval = d.LaunchInterval
	}
	if f.TrailLength == 0 {
		f.TrailLength = d.TrailLength
	}
	if f.ShellGravity == 0 {
		f.ShellGravity = d.ShellGravity
	}
	if f.BurstMin == 0 {
		f.BurstMin = d.BurstMin
	}
	if f.BurstMax == 0 {
		f.BurstMax = d.BurstMax
	}
	if f.Sparkles == 0 {
		f.Sparkles = d.Sparkles
	}
	if f.ParticleGravity == 0 {
		f.ParticleGravity = d.ParticleGravity
	}
	if f.DecayMin == 0 {
		f.DecayMin = d.DecayMin
	}
	if f.DecayMax == 0 {
		f.DecayMax = d.DecayMax
	}
	return f
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	if err := c.Fireworks.Validate(); err != nil {
		return err
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		return fmt.Errorf("%w: sound.volume %v outside [0, 1]", ErrInvalid, c.Sound.Volume)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

func (f Fireworks) Validate() error {
	switch {
	case f.FadeAlpha <= 0 || f.FadeAlpha > 1:
		return fmt.Errorf("%w: fireworks.fade_alpha %v outside (0, 1]", ErrInvalid, f.FadeAlpha)
	case f.LaunchInterval <= 0:
		return fmt.Errorf("%w: fireworks.launch_interval must be positive", ErrInvalid)
	case f.TrailLength <= 0:
		return fmt.Errorf("%w: fireworks.trail_length must be positive", ErrInvalid)
	case f.ShellGravity <= 0:
		return fmt.Errorf("%w: fireworks.shell_gravity must be positive", ErrInvalid)
	case f.BurstMin <= 0 || f.BurstMin >= f.BurstMax:
		return fmt.Errorf("%w: fireworks burst range [%d, %d)", ErrInvalid, f.BurstMin, f.BurstMax)
	case f.Sparkles < 0:
		return fmt.Errorf("%w: fireworks.sparkles is negative", ErrInvalid)
	case f.DecayMin <= 0 || f.DecayMax > 1 || f.DecayMin > f.DecayMax:
		return fmt.Errorf("%w: fireworks decay range [%v, %v]", ErrInvalid, f.DecayMin, f.DecayMax)
	}
	return nil
}
