package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handpong.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultTickRate, cfg.TickRate)
	assert.Equal(t, DefaultTrackerAddr, cfg.Tracker.Address)
	assert.Equal(t, DefaultStaleAfter, cfg.StaleAfter())
	assert.Equal(t, 30.0, cfg.Arena.BallSpeed)
	assert.Equal(t, 40.0, cfg.Arena.InitialBallSpeed)
	assert.Equal(t, 5, cfg.Arena.WinScore)
	assert.False(t, cfg.Mute)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
tick_rate = 60
log_file  = "pong.log"
log_level = "debug"
record    = "session.gob"
mute      = true

arena {
  ball_speed         = 25
  initial_ball_speed = 35
  win_score          = 7
  paddle_width       = 30
  paddle_height      = 180
}

tracker {
  address        = "127.0.0.1:9000"
  stale_after_ms = 250
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.TickRate)
	assert.Equal(t, "pong.log", cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "session.gob", cfg.RecordPath)
	assert.True(t, cfg.Mute)
	assert.Equal(t, "127.0.0.1:9000", cfg.Tracker.Address)
	assert.Equal(t, 250*time.Millisecond, cfg.StaleAfter())
	assert.Equal(t, time.Second/60, cfg.TickInterval())

	tuning := cfg.Tuning()
	assert.Equal(t, 25.0, tuning.Speed)
	assert.Equal(t, 35.0, tuning.InitialSpeed)
	assert.Equal(t, 7, tuning.WinScore)
	assert.Equal(t, 30.0, tuning.PaddleWidth)
	assert.Equal(t, 180.0, tuning.PaddleHeight)
	// Geometry that is not configurable stays canonical
	assert.Equal(t, 1280, tuning.ArenaWidth)
	assert.Equal(t, 59.0, tuning.LeftAnchor)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
arena {
  win_score = 3
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Arena.WinScore)
	assert.Equal(t, 30.0, cfg.Arena.BallSpeed)
	assert.Equal(t, DefaultTrackerAddr, cfg.Tracker.Address)
	assert.Equal(t, DefaultTickRate, cfg.TickRate)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax error", `arena {`},
		{"unknown attribute", `speed = 3`},
		{"wrong type", `tick_rate = "fast"`},
		{"invalid value", `tick_rate = -2`},
		{"bad log level", `log_level = "chatty"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }, ErrTickRate},
		{"tick rate over the cap", func(c *Config) { c.TickRate = MaxTickRate + 1 }, ErrTickRate},
		{"huge tick rate", func(c *Config) { c.TickRate = 1_000_000_000 }, ErrTickRate},
		{"negative speed", func(c *Config) { c.Arena.BallSpeed = -1 }, ErrBallSpeed},
		{"zero initial speed", func(c *Config) { c.Arena.InitialBallSpeed = 0 }, ErrBallSpeed},
		{"zero win score", func(c *Config) { c.Arena.WinScore = 0 }, ErrWinScore},
		{"flat paddle", func(c *Config) { c.Arena.PaddleHeight = 0 }, ErrPaddleSize},
		{"empty tracker", func(c *Config) { c.Tracker.Address = " " }, ErrTracker},
		{"zero stale window", func(c *Config) { c.Tracker.StaleAfterMS = 0 }, ErrStaleAfter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestValidate_DisabledTrackerNeedsNoAddress(t *testing.T) {
	cfg := Default()
	cfg.Tracker.Disabled = true
	cfg.Tracker.Address = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MaxTickRate(t *testing.T) {
	cfg := Default()
	cfg.TickRate = MaxTickRate
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Millisecond, cfg.TickInterval())
}
