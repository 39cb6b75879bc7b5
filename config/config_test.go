package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/battingorder/prefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "battingorder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, prefs.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "BattingOrder_v1", cfg.Storage.Key)
	assert.Equal(t, 48, cfg.SwapFrames)
	assert.Equal(t, 120, cfg.ToastFrames)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
storage:
  backend: sqlite
  path: /tmp/lineup.db
swap_frames: 30
easing: linear
seed: 99
players: [Ada, Ben, Cy, Dee, Eve, Fay, Gus, Hal, Ivy, Jo, Kit]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/lineup.db", cfg.Storage.Path)
	assert.Equal(t, "BattingOrder_v1", cfg.Storage.Key, "unset fields keep defaults")
	assert.Equal(t, 30, cfg.SwapFrames)
	assert.Equal(t, "linear", cfg.Easing)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 120, cfg.ToastFrames)

	r, err := cfg.Roster()
	require.NoError(t, err)
	p, ok := r.Lookup("P11")
	require.True(t, ok)
	assert.Equal(t, "Kit", p.DisplayName)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "swap_frames: 30\n")
	t.Setenv("BATTINGORDER_SWAP_FRAMES", "12")
	t.Setenv("BATTINGORDER_STORAGE_BACKEND", "memory")
	t.Setenv("BATTINGORDER_STORAGE_KEY", "lineup/away")
	t.Setenv("BATTINGORDER_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.SwapFrames)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, "lineup/away", cfg.Storage.Key)
	assert.True(t, cfg.Debug)
}

func TestEnvPlayers(t *testing.T) {
	t.Setenv("BATTINGORDER_PLAYERS", "A,B,C,D,E,F,G,H,I,J,K")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Players, 11)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad_yaml", "storage: [", false},
		{"unknown_backend", "storage: {backend: redis}", true},
		{"blank_path", "storage: {backend: file, path: ''}", true},
		{"blank_key", "storage: {key: ' '}", true},
		{"few_players", "players: [a, b]", true},
		{"negative_frames", "swap_frames: -1", true},
		{"zero_toast", "toast_frames: 0", true},
		{"bad_easing", "easing: bounce", true},
		{"zero_scale", "scale: 0", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, c.body))
			require.Error(t, err)
			assert.Equal(t, c.invalid, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestZeroSwapFramesIsInstant(t *testing.T) {
	cfg, err := Load(writeConfig(t, "swap_frames: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.SwapFrames)
}

func TestLoadMissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := Load(missing)
	assert.Error(t, err)

	cfg, err := LoadOptional(missing)
	require.NoError(t, err)
	assert.Equal(t, Default().SwapFrames, cfg.SwapFrames)
}

func TestOpenStore(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = prefs.BackendMemory
	s, err := cfg.OpenStore()
	require.NoError(t, err)
	assert.NoError(t, s.Close())

	cfg.Storage.Backend = prefs.BackendFile
	cfg.Storage.Path = filepath.Join(t.TempDir(), "prefs.json")
	s, err = cfg.OpenStore()
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}
