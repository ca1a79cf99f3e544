package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/diegok/handpong/internal/config"
)

// CommonFlags are shared by every command; flags that are set win over the file
type CommonFlags struct {
	Config   string `short:"c" type:"path" default:"handpong.hcl" help:"HCL config file, defaults are used when it is missing"`
	TickRate int    `help:"Game ticks per second"`
	LogFile  string `help:"File the log is written to"`
	LogLevel string `help:"Log level: debug, info, warn or error"`
}

func (f *CommonFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}
	if f.TickRate != 0 {
		cfg.TickRate = f.TickRate
	}
	if f.LogFile != "" {
		cfg.LogFile = f.LogFile
	}
	if f.LogLevel != "" {
		cfg.LogLevel = f.LogLevel
	}
	return cfg, nil
}

// setupLogger opens the log file; the terminal belongs to the game screen
func setupLogger(cfg *config.Config) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := log.NewWithOptions(file, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "handpong",
		Level:           level,
	})
	return logger, file, nil
}
