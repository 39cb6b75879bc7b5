package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/battingorder/config"
	"github.com/milk9111/battingorder/lineup"
	"github.com/milk9111/battingorder/logging"
	"github.com/milk9111/battingorder/prefs"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "battingorder.yaml", "YAML config file (ignored when missing)")
	debug := flag.Bool("debug", false, "enable debug logging")
	storage := flag.String("storage", "", "storage backend: memory, file or sqlite (overrides config)")
	path := flag.String("path", "", "storage file path (overrides config)")
	seed := flag.Int64("seed", 0, "shuffle seed; 0 uses the clock")
	flag.Parse()

	cfg, err := config.LoadOptional(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *storage != "" {
		cfg.Storage.Backend = *storage
	}
	if *path != "" {
		cfg.Storage.Path = *path
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg.Debug = cfg.Debug || *debug
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	r, err := cfg.Roster()
	if err != nil {
		log.Fatal(err)
	}
	store, err := cfg.OpenStore()
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	manager := lineup.NewManager(r, store,
		lineup.WithKey(cfg.Storage.Key),
		lineup.WithLogger(logger.Named("lineup")),
		lineup.WithRand(rand.New(rand.NewSource(seedValue))),
	)

	ctx := context.Background()
	if err := manager.Load(ctx); err != nil {
		log.Fatal(err)
	}
	logger.Info("batting order ready",
		zap.String("storage", cfg.Storage.Backend),
		zap.String("path", cfg.Storage.Path),
		zap.Stringer("source", manager.Source()),
	)

	var watcher *prefs.Watcher
	if fileStore, ok := store.(*prefs.FileStore); ok {
		if err := os.MkdirAll(filepath.Dir(fileStore.Path()), 0o755); err != nil {
			log.Fatal(err)
		}
		watcher, err = prefs.NewWatcher(fileStore.Path())
		if err != nil {
			logger.Warn("prefs watcher disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(int(baseWidth*cfg.Scale), int(baseHeight*cfg.Scale))
	ebiten.SetWindowTitle("Batting Order")

	game := NewGame(ctx, cfg, manager, watcher, logger.Named("ui"))

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
