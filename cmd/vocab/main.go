package main

import (
	"fmt"
	"os"

	"vocablayers/internal/config"
	"vocablayers/internal/service"
	"vocablayers/internal/storage"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// storageOpener returns the backend together with the key the collection lives under
type storageOpener func(logger *zap.Logger) (*storage.Backend, string, error)

// app carries what every subcommand needs; filled in by PersistentPreRunE
type app struct {
	open    storageOpener
	verbose bool

	logger      *zap.Logger
	backend     *storage.Backend
	store       *service.VocabularyStore
	suggestions *service.SuggestionEngine
	stats       *service.StatsService
}

func main() {
	root, a := newRootCmd(openConfiguredStorage)
	if err := execute(root, a); err != nil {
		os.Exit(1)
	}
}

// openConfiguredStorage opens the backend named by the environment
func openConfiguredStorage(logger *zap.Logger) (*storage.Backend, string, error) {
	cfg, err := config.LoadStorage()
	if err != nil {
		return nil, "", err
	}
	backend, err := storage.Open(*cfg, logger)
	if err != nil {
		return nil, "", err
	}
	return backend, cfg.Key, nil
}

// execute runs the command line and releases storage whether or not it failed
func execute(root *cobra.Command, a *app) error {
	defer a.close()
	return root.Execute()
}

// newRootCmd builds the command tree around the given storage opener
func newRootCmd(open storageOpener) (*cobra.Command, *app) {
	a := &app{open: open}

	root := &cobra.Command{
		Use:   "vocab",
		Short: "Manage vocabulary layers from the terminal",
		Long: `vocab edits the same layer collection the Telegram bot uses.

The bot reads the collection only at startup and every save rewrites it
whole, so edits made here while the bot is running are lost on the bot's
next change. Stop the bot first, or restart it afterwards.

Storage is selected with STORAGE_DRIVER (postgres, sqlite or memory)
and the usual DB_* / SQLITE_PATH variables or a .env file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newLayerCmd(a),
		newWordCmd(a),
		newSuggestCmd(a),
		newStatsCmd(a),
	)
	return root, a
}

func (a *app) init() error {
	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if a.verbose {
		logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := logConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	backend, key, err := a.open(logger)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	a.backend = backend

	a.store = service.NewVocabularyStore(backend.Repo, logger, service.WithStorageKey(key))
	a.suggestions = service.NewSuggestionEngine(0, logger)
	a.stats = service.NewStatsService(a.store, logger)
	return nil
}

func (a *app) close() {
	if a.backend != nil {
		if err := a.backend.Close(); err != nil {
			a.logger.Warn("Failed to close storage", zap.Error(err))
		}
		a.backend = nil
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}
