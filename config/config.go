// Package config loads settings from defaults, an optional YAML file and
// BATTINGORDER_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/battingorder/lineup"
	"github.com/milk9111/battingorder/prefs"
	"github.com/milk9111/battingorder/roster"
	"gopkg.in/yaml.v3"
)

const EnvPrefix = "BATTINGORDER_"

var ErrInvalid = errors.New("config: invalid")

type StorageConfig struct {
	Backend string `yaml:"backend" env:"BACKEND"`
	Path    string `yaml:"path" env:"PATH"`
	Key     string `yaml:"key" env:"KEY"`
}

type Config struct {
	Storage StorageConfig `yaml:"storage" envPrefix:"STORAGE_"`

	// Players overrides the display names of P01..P11.
	Players []string `yaml:"players" env:"PLAYERS" envSeparator:","`

	SwapFrames  int     `yaml:"swap_frames" env:"SWAP_FRAMES"`
	Easing      string  `yaml:"easing" env:"EASING"`
	ToastFrames int     `yaml:"toast_frames" env:"TOAST_FRAMES"`
	Seed        int64   `yaml:"seed" env:"SEED"`
	Scale       float64 `yaml:"scale" env:"SCALE"`
	Debug       bool    `yaml:"debug" env:"DEBUG"`
}

// Default returns the built-in settings. Swap and toast lengths are in
// ticks at 60 TPS: 0.8s and 2s.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Backend: prefs.BackendFile,
			Path:    DefaultPrefsPath(),
			Key:     lineup.DefaultKey,
		},
		SwapFrames:  48,
		Easing:      "ease-in-out",
		ToastFrames: 120,
		Scale:       1,
	}
}

// DefaultPrefsPath is prefs.json under the user config dir, or the working
// directory when that is unavailable.
func DefaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "battingorder-prefs.json"
	}
	return filepath.Join(dir, "battingorder", "prefs.json")
}

// Load builds a Config from defaults, then path (if non-empty and present),
// then the environment. A named file that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOptional is Load, except a missing file is treated as no file.
func LoadOptional(path string) (Config, error) {
	if path != "" {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}
	return Load(path)
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Storage.Backend) {
	case prefs.BackendMemory:
	case prefs.BackendFile, prefs.BackendSQLite:
		if strings.TrimSpace(c.Storage.Path) == "" {
			return fmt.Errorf("%w: storage.path is required for %s storage", ErrInvalid, c.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: storage.backend %q (want memory, file or sqlite)", ErrInvalid, c.Storage.Backend)
	}
	if strings.TrimSpace(c.Storage.Key) == "" {
		return fmt.Errorf("%w: storage.key is required", ErrInvalid)
	}
	if len(c.Players) != 0 && len(c.Players) != roster.Size {
		return fmt.Errorf("%w: players needs %d names, got %d", ErrInvalid, roster.Size, len(c.Players))
	}
	if c.SwapFrames < 0 {
		return fmt.Errorf("%w: swap_frames must not be negative", ErrInvalid)
	}
	if c.ToastFrames <= 0 {
		return fmt.Errorf("%w: toast_frames must be positive", ErrInvalid)
	}
	switch strings.ToLower(c.Easing) {
	case "linear", "ease-in-out":
	default:
		return fmt.Errorf("%w: easing %q (want linear or ease-in-out)", ErrInvalid, c.Easing)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("%w: scale must be positive", ErrInvalid)
	}
	return nil
}

// Roster builds the roster, applying configured player names.
func (c Config) Roster() (*roster.Roster, error) {
	if len(c.Players) == 0 {
		return roster.New(), nil
	}
	r, err := roster.NewNamed(c.Players)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return r, nil
}

// OpenStore opens the configured prefs backend.
func (c Config) OpenStore() (prefs.Store, error) {
	return prefs.Open(c.Storage.Backend, c.Storage.Path)
}
