// Command lineup inspects and edits the saved batting order from a terminal.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/milk9111/battingorder/config"
	"github.com/milk9111/battingorder/lineup"
	"github.com/milk9111/battingorder/logging"
	"github.com/milk9111/battingorder/prefs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	configPath string
	storage    string
	storePath  string
	verbose    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lineup",
	Short: "Inspect and edit the saved batting order",
	Long: `lineup works on the same saved batting order as the game.

Positions are 1-based. Changes are only written when --save is given,
except for reset, which always erases the saved order.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "battingorder.yaml", "YAML config file (ignored when missing)")
	rootCmd.PersistentFlags().StringVar(&storage, "storage", "", "storage backend: memory, file or sqlite")
	rootCmd.PersistentFlags().StringVar(&storePath, "path", "", "storage file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(showCmd, shuffleCmd, moveCmd, resetCmd, editCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// session is a loaded manager plus the store it must close.
type session struct {
	cfg     config.Config
	manager *lineup.Manager
	store   prefs.Store
}

func (s *session) Close() error {
	return s.store.Close()
}

func openSession(ctx context.Context, seed int64) (*session, error) {
	cfg, err := config.LoadOptional(configPath)
	if err != nil {
		return nil, err
	}
	if storage != "" {
		cfg.Storage.Backend = storage
	}
	if storePath != "" {
		cfg.Storage.Path = storePath
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r, err := cfg.Roster()
	if err != nil {
		return nil, err
	}
	store, err := cfg.OpenStore()
	if err != nil {
		return nil, err
	}

	seedValue := cfg.Seed
	if seedValue == 0 {
		seedValue = time.Now().UnixNano()
	}
	m := lineup.NewManager(r, store,
		lineup.WithKey(cfg.Storage.Key),
		lineup.WithLogger(logging.OrNop(logger).Named("lineup")),
		lineup.WithRand(rand.New(rand.NewSource(seedValue))),
	)
	if err := m.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return &session{cfg: cfg, manager: m, store: store}, nil
}

func printOrder(cmd *cobra.Command, m *lineup.Manager) {
	out := cmd.OutOrStdout()
	cur := m.Current()
	for i := 0; i < cur.Len(); i++ {
		p, _ := m.PlayerAt(i)
		fmt.Fprintf(out, "%2d. %-12s %s\n", i+1, p.DisplayName, p.ID)
	}
}
