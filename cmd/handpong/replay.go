package main

import (
	"context"
	"fmt"
	"os"

	"github.com/diegok/handpong/internal/app"
	"github.com/diegok/handpong/internal/ui"
)

// ReplayCmd re-runs a recording headlessly, or streams its hands into a
// running game as if it were a hand tracker.
type ReplayCmd struct {
	CommonFlags

	File string `arg:"" type:"existingfile" help:"Recording made with play --record"`
	To   string `help:"Stream the hands to a running game's tracker address instead" placeholder:"URL"`
}

func (c *ReplayCmd) Run(ctx context.Context) error {
	cfg, err := c.load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, logFile, err := setupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	a := app.New(cfg, app.WithLogger(logger))

	if c.To != "" {
		sent, err := a.Stream(ctx, f, c.To)
		if err != nil {
			return err
		}
		fmt.Printf("Sent %d frames to %s\n", sent, c.To)
		return nil
	}

	state, err := a.Replay(ctx, f)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render(" HandPong replay "))
	fmt.Printf("Ticks: %d\n", state.Tick)
	fmt.Printf("Mode:  %s\n", state.Mode)
	fmt.Printf("Phase: %s\n", state.Phase)
	fmt.Printf("Score: %s\n", urlStyle.Render(ui.EndScoreText(state)))
	return nil
}
