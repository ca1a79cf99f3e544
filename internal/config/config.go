package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/diegok/handpong/internal/game"
)

// Default values for configuration
const (
	DefaultTrackerAddr = ":8765"
	DefaultTickRate    = 30 // roughly a webcam's frame rate
	MaxTickRate        = 1000
	DefaultStaleAfter  = 150 * time.Millisecond
	DefaultLogFile     = "handpong.log"
	DefaultLogLevel    = "info"
)

// Config holds the application configuration
type Config struct {
	Arena   ArenaSettings
	Tracker TrackerSettings

	TickRate   int
	LogFile    string
	LogLevel   string
	RecordPath string
	Mute       bool
}

// ArenaSettings tunes the ball and the match rules
type ArenaSettings struct {
	BallSpeed        float64 `hcl:"ball_speed,optional"`
	InitialBallSpeed float64 `hcl:"initial_ball_speed,optional"`
	WinScore         int     `hcl:"win_score,optional"`
	PaddleWidth      float64 `hcl:"paddle_width,optional"`
	PaddleHeight     float64 `hcl:"paddle_height,optional"`
}

// TrackerSettings configures the hand-tracker endpoint
type TrackerSettings struct {
	Address      string `hcl:"address,optional"`
	StaleAfterMS int    `hcl:"stale_after_ms,optional"`
	Disabled     bool   `hcl:"disabled,optional"`
}

var (
	ErrTickRate   = errors.New("tick rate must be between 1 and 1000")
	ErrBallSpeed  = errors.New("ball speeds must be positive")
	ErrWinScore   = errors.New("win score must be at least 1")
	ErrPaddleSize = errors.New("paddle size must be positive")
	ErrTracker    = errors.New("tracker address must not be empty")
	ErrStaleAfter = errors.New("stale_after_ms must be positive")
)

// Default returns the configuration used when no file is present
func Default() *Config {
	t := game.DefaultTuning()
	return &Config{
		Arena: ArenaSettings{
			BallSpeed:        t.Speed,
			InitialBallSpeed: t.InitialSpeed,
			WinScore:         t.WinScore,
			PaddleWidth:      t.PaddleWidth,
			PaddleHeight:     t.PaddleHeight,
		},
		Tracker: TrackerSettings{
			Address:      DefaultTrackerAddr,
			StaleAfterMS: int(DefaultStaleAfter / time.Millisecond),
		},
		TickRate: DefaultTickRate,
		LogFile:  DefaultLogFile,
		LogLevel: DefaultLogLevel,
	}
}

// Load reads an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := raw.merge(Default())
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// fileConfig mirrors Config with optional blocks so a file may omit them
type fileConfig struct {
	Arena   *ArenaSettings   `hcl:"arena,block"`
	Tracker *TrackerSettings `hcl:"tracker,block"`

	TickRate   int    `hcl:"tick_rate,optional"`
	LogFile    string `hcl:"log_file,optional"`
	LogLevel   string `hcl:"log_level,optional"`
	RecordPath string `hcl:"record,optional"`
	Mute       bool   `hcl:"mute,optional"`
}

// merge applies every value set in the file on top of the defaults
func (f *fileConfig) merge(cfg *Config) *Config {
	if a := f.Arena; a != nil {
		if a.BallSpeed != 0 {
			cfg.Arena.BallSpeed = a.BallSpeed
		}
		if a.InitialBallSpeed != 0 {
			cfg.Arena.InitialBallSpeed = a.InitialBallSpeed
		}
		if a.WinScore != 0 {
			cfg.Arena.WinScore = a.WinScore
		}
		if a.PaddleWidth != 0 {
			cfg.Arena.PaddleWidth = a.PaddleWidth
		}
		if a.PaddleHeight != 0 {
			cfg.Arena.PaddleHeight = a.PaddleHeight
		}
	}
	if tr := f.Tracker; tr != nil {
		if tr.Address != "" {
			cfg.Tracker.Address = tr.Address
		}
		if tr.StaleAfterMS != 0 {
			cfg.Tracker.StaleAfterMS = tr.StaleAfterMS
		}
		cfg.Tracker.Disabled = tr.Disabled
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
	cfg.RecordPath = f.RecordPath
	cfg.Mute = f.Mute
	return cfg
}

// Validate checks every setting is usable
func (c *Config) Validate() error {
	if c.TickRate < 1 || c.TickRate > MaxTickRate {
		return fmt.Errorf("%w, got %d", ErrTickRate, c.TickRate)
	}
	if c.Arena.BallSpeed <= 0 || c.Arena.InitialBallSpeed <= 0 {
		return fmt.Errorf("%w, got %v and %v", ErrBallSpeed, c.Arena.BallSpeed, c.Arena.InitialBallSpeed)
	}
	if c.Arena.WinScore < 1 {
		return fmt.Errorf("%w, got %d", ErrWinScore, c.Arena.WinScore)
	}
	if c.Arena.PaddleWidth <= 0 || c.Arena.PaddleHeight <= 0 {
		return fmt.Errorf("%w, got %vx%v", ErrPaddleSize, c.Arena.PaddleWidth, c.Arena.PaddleHeight)
	}
	if !c.Tracker.Disabled && strings.TrimSpace(c.Tracker.Address) == "" {
		return ErrTracker
	}
	if c.Tracker.StaleAfterMS <= 0 {
		return fmt.Errorf("%w, got %d", ErrStaleAfter, c.Tracker.StaleAfterMS)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Tuning returns the game tuning with the configured overrides
func (c *Config) Tuning() game.Tuning {
	t := game.DefaultTuning()
	t.Speed = c.Arena.BallSpeed
	t.InitialSpeed = c.Arena.InitialBallSpeed
	t.WinScore = c.Arena.WinScore
	t.PaddleWidth = c.Arena.PaddleWidth
	t.PaddleHeight = c.Arena.PaddleHeight
	return t
}

// TickInterval is the fixed duration of one game tick
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// StaleAfter is how long a tracker frame keeps driving the paddles
func (c *Config) StaleAfter() time.Duration {
	return time.Duration(c.Tracker.StaleAfterMS) * time.Millisecond
}
