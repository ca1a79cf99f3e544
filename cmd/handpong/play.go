package main

import (
	"context"
	"fmt"
	"os"

	"github.com/coder/quartz"

	"github.com/diegok/handpong/internal/app"
	"github.com/diegok/handpong/internal/audio"
	"github.com/diegok/handpong/internal/config"
	"github.com/diegok/handpong/internal/protocol"
	"github.com/diegok/handpong/internal/tracker"
	"github.com/diegok/handpong/internal/ui"
)

// PlayCmd runs the game in the terminal
type PlayCmd struct {
	CommonFlags

	TrackerAddr string `help:"Address hand trackers connect to" placeholder:"HOST:PORT"`
	NoTracker   bool   `help:"Do not listen for hand trackers"`
	Record      string `type:"path" help:"Record the session to this file for replay"`
	Mute        bool   `help:"Disable sound effects"`
}

func (c *PlayCmd) apply(cfg *config.Config) error {
	if c.TrackerAddr != "" {
		cfg.Tracker.Address = c.TrackerAddr
	}
	if c.NoTracker {
		cfg.Tracker.Disabled = true
	}
	if c.Record != "" {
		cfg.RecordPath = c.Record
	}
	if c.Mute {
		cfg.Mute = true
	}
	return cfg.Validate()
}

func (c *PlayCmd) Run(ctx context.Context) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	if err := c.apply(cfg); err != nil {
		return err
	}

	logger, logFile, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	trackerAddr := cfg.Tracker.Address
	if cfg.Tracker.Disabled {
		trackerAddr = ""
	}
	printBanner(os.Stdout, trackerAddr)

	opts := []app.Option{app.WithLogger(logger)}

	if !cfg.Mute {
		// The game works without sound
		if err := audio.Init(); err != nil {
			logger.Warn("audio unavailable", "error", err)
		} else {
			defer audio.Close()
			opts = append(opts, app.WithSounds(audio.Speaker{}))
		}
	}

	if trackerAddr != "" {
		hub := tracker.NewHub(trackerAddr, cfg.StaleAfter(), quartz.NewReal(), logger)
		opts = append(opts, app.WithHub(hub))
	}

	if cfg.RecordPath != "" {
		f, err := os.Create(cfg.RecordPath)
		if err != nil {
			return fmt.Errorf("failed to create recording: %w", err)
		}
		defer f.Close()
		opts = append(opts, app.WithRecorder(protocol.NewEncoder(f)))
		logger.Info("recording session", "path", cfg.RecordPath)
	}

	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	renderer := ui.NewRenderer(screen)
	if trackerAddr != "" {
		if urls := trackerURLs(trackerAddr, nil); len(urls) > 0 {
			renderer.SetFooter("Tracker: " + urls[len(urls)-1])
		}
	}
	opts = append(opts, app.WithDisplay(renderer))

	logger.Info("starting", "tracker", trackerAddr, "tick_rate", cfg.TickRate, "mute", cfg.Mute)
	return app.New(cfg, opts...).Run(ctx, screen)
}
