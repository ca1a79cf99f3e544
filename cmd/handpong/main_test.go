package main

import (
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diegok/handpong/internal/config"
)

func parse(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return &cli, kctx
}

func TestCLI_PlayIsDefault(t *testing.T) {
	_, kctx := parse(t)
	assert.Equal(t, "play", kctx.Command())
}

func TestCLI_PlayFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "handpong.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
tick_rate = 60
log_level = "debug"

tracker {
  address = ":9000"
}
`), 0o644))

	cli, _ := parse(t, "play", "-c", path, "--tick-rate", "25", "--tracker-addr", "127.0.0.1:7000", "--mute")

	cfg, err := cli.Play.load()
	require.NoError(t, err)
	require.NoError(t, cli.Play.apply(cfg))

	assert.Equal(t, 25, cfg.TickRate)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:7000", cfg.Tracker.Address)
	assert.True(t, cfg.Mute)
}

func TestCLI_PlayRejectsBadFlags(t *testing.T) {
	cli, _ := parse(t, "play", "-c", filepath.Join(t.TempDir(), "missing.hcl"), "--tick-rate=-5")

	cfg, err := cli.Play.load()
	require.NoError(t, err)
	assert.ErrorIs(t, cli.Play.apply(cfg), config.ErrTickRate)
}

func TestCLI_Replay(t *testing.T) {
	recording := filepath.Join(t.TempDir(), "game.rec")
	require.NoError(t, os.WriteFile(recording, nil, 0o644))

	cli, kctx := parse(t, "replay", recording, "--to", "localhost:8765")
	assert.Equal(t, "replay <file>", kctx.Command())
	assert.Equal(t, recording, cli.Replay.File)
	assert.Equal(t, "localhost:8765", cli.Replay.To)
}

func TestTrackerURLs(t *testing.T) {
	ifaces := []net.Addr{
		&net.IPNet{IP: net.ParseIP("127.0.0.1"), Mask: net.CIDRMask(8, 32)},
		&net.IPNet{IP: net.ParseIP("192.168.1.20"), Mask: net.CIDRMask(24, 32)},
		&net.IPNet{IP: net.ParseIP("fe80::1"), Mask: net.CIDRMask(64, 128)},
	}

	tests := []struct {
		name string
		addr string
		want []string
	}{
		{"wildcard", ":8765", []string{"ws://192.168.1.20:8765/hands", "ws://localhost:8765/hands"}},
		{"explicit host", "10.0.0.5:9000", []string{"ws://10.0.0.5:9000/hands"}},
		{"no port", "tracker", []string{"ws://tracker/hands"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trackerURLs(tt.addr, ifaces))
		})
	}
}
