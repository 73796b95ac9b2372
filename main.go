package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/celebration/internal/celebration"
	"github.com/iburimskiy/celebration/internal/config"
	"github.com/iburimskiy/celebration/internal/fireworks"
	"github.com/iburimskiy/celebration/internal/game"
	"github.com/iburimskiy/celebration/internal/logging"
	"github.com/iburimskiy/celebration/internal/promo"
)

var (
	configPath   = flag.String("config", "", "YAML config file")
	headlessFlag = flag.Bool("headless", false, "Render to a PNG instead of opening a window")
	framesFlag   = flag.Int("frames", 240, "Frames to render in headless mode")
	outFlag      = flag.String("out", "fireworks.png", "PNG written in headless mode")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 picks one")
	langFlag     = flag.String("lang", "", "Dialog language: en, ar (default from the environment)")
	campaignFlag = flag.String("campaign", "", "Campaign: auto, new-year, valentine")
	forceFlag    = flag.Bool("force", false, "Show the dialog even if it was shown this season")
	muteFlag     = flag.Bool("mute", false, "Disable burst sounds")
)

// dialogShutdown bounds the wait for a canceled dialog to close.
const dialogShutdown = 2 * time.Second

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "celebration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "celebration: init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *headlessFlag {
		err = runHeadless(cfg, log)
	} else {
		err = runWindow(ctx, cfg, log)
	}
	if err != nil {
		log.Error("celebration failed", zap.Error(err))
		stop()
		_ = log.Sync()
		os.Exit(1)
	}
}

func applyFlags(cfg *config.Config) {
	if *seedFlag != 0 {
		cfg.Fireworks.Seed = *seedFlag
	}
	if cfg.Fireworks.Seed == 0 {
		cfg.Fireworks.Seed = uint64(time.Now().UnixNano())
	}
	if *langFlag != "" {
		cfg.Promo.Language = *langFlag
	}
	if *campaignFlag != "" {
		cfg.Promo.Campaign = *campaignFlag
	}
	if *forceFlag {
		cfg.Promo.Force = true
	}
	if *muteFlag {
		cfg.Sound.Enabled = false
	}
}

func runHeadless(cfg config.Config, log *zap.Logger) error {
	if *framesFlag <= 0 {
		return fmt.Errorf("frames must be positive, got %d", *framesFlag)
	}
	raster, stats, err := celebration.RenderHeadless(cfg.Fireworks, *framesFlag, cfg.Window.Width, cfg.Window.Height, log)
	if err != nil {
		return err
	}

	f, err := os.Create(*outFlag)
	if err != nil {
		return fmt.Errorf("create %s: %w", *outFlag, err)
	}
	if err := raster.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", *outFlag, err)
	}

	log.Info("frame written",
		zap.String("path", *outFlag),
		zap.Uint64("seed", cfg.Fireworks.Seed),
		zap.Int("frames", stats.Frame),
		zap.Int("shells", stats.Shells),
		zap.Int("particles", stats.Particles),
		zap.Int("bursts", stats.Bursts))
	return nil
}

func runWindow(ctx context.Context, cfg config.Config, log *zap.Logger) error {
	campaign, err := promo.ParseCampaign(cfg.Promo.Campaign)
	if err != nil {
		return err
	}
	popup := &promo.Popup{
		Campaign:  campaign,
		Lang:      promo.ResolveLanguage(cfg.Promo.Language, os.Getenv("LC_ALL"), os.Getenv("LANG")),
		Force:     cfg.Promo.Force,
		Store:     flagStore(cfg.Promo.FlagsFile, log),
		Presenter: promo.ZenityPresenter{Width: 420},
		Log:       log,
	}

	frames := fireworks.NewFrameQueue()
	show, err := fireworks.New(cfg.Fireworks, frames, nil, log)
	if err != nil {
		return err
	}

	var sound *game.Sound
	if cfg.Sound.Enabled {
		sound, err = game.NewSound(cfg.Sound.SampleRate, cfg.Sound.Volume, log)
		if err != nil {
			log.Warn("sound disabled", zap.Error(err))
			sound = nil
		} else {
			show.OnBurst = sound.Burst
		}
	}

	seq := celebration.NewSequence(show, frames, popup, cfg.Fireworks.Hold, log)
	canvas := game.NewCanvas(cfg.Window.Width, cfg.Window.Height)
	if err := game.Run(cfg.Window, game.New(ctx, seq, canvas, sound, log)); err != nil {
		return err
	}

	if seq.Phase() != celebration.PhaseDone {
		log.Info("closed before the dialog finished", zap.Stringer("phase", seq.Phase()))
		waitCtx, cancel := context.WithTimeout(context.Background(), dialogShutdown)
		defer cancel()
		if _, err := seq.Close(waitCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("dialog did not close", zap.Error(err))
		}
		return nil
	}
	outcome, err := seq.Result()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("celebration finished", zap.Stringer("outcome", outcome))
	return nil
}

// flagStore persists popup flags under the user config dir, falling back to
// memory when there is none.
func flagStore(path string, log *zap.Logger) promo.Store {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			log.Warn("no config dir, popup flags kept in memory", zap.Error(err))
			return promo.NewMemoryStore()
		}
		path = filepath.Join(dir, "holland-flowers", "popup-flags.yaml")
	}
	return promo.NewFileStore(path)
}
