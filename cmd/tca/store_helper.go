package main

import (
	"fmt"
	"os"
	"sync"

	"tca/internal/config"
	"tca/internal/logging"
	"tca/internal/storage"
)

var (
	storeOnce   sync.Once
	sharedStore *storage.Store
	sharedKV    *storage.SQLiteKV
	sharedCfg   *config.Config
)

// getStore returns a shared protocol store instance.
// The store is lazily initialized on first use. When the SQLite substrate
// cannot be opened, the session falls back to an in-memory store so
// read-only commands still work against an empty collection.
func getStore(dataDir string) (*storage.Store, *config.Config) {
	storeOnce.Do(func() {
		cfg, err := config.LoadConfig(dataDir)
		if err != nil {
			cfg = config.DefaultConfig()
		}
		sharedCfg = cfg

		logger := newLogger(cfg)

		kv, err := storage.Open(dataDir, logger)
		if err != nil {
			logger.Warn("Storage unavailable, continuing in memory", map[string]interface{}{
				"error": err.Error(),
			})
			sharedStore = storage.NewStore(storage.NewMemoryKV(), logger)
			return
		}

		sharedKV = kv
		sharedStore = storage.NewStore(kv, logger)
	})

	return sharedStore, sharedCfg
}

// closeStore releases the SQLite substrate if one was opened.
func closeStore() {
	if sharedKV != nil {
		_ = sharedKV.Close()
	}
}

// getDataDir returns the data directory from the --data-dir flag.
func getDataDir() (string, error) {
	if dataDirFlag != "" && dataDirFlag != "." {
		return dataDirFlag, nil
	}
	return os.Getwd()
}

// mustGetDataDir returns the data directory or exits on error.
func mustGetDataDir() string {
	dataDir, err := getDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return dataDir
}

// newLogger creates a logger from the configured format and level.
func newLogger(cfg *config.Config) *logging.Logger {
	if cfg == nil {
		return logging.NewLogger(logging.Config{
			Format: logging.HumanFormat,
			Level:  logging.InfoLevel,
		})
	}
	return logging.NewLogger(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  logging.Level(cfg.Logging.Level),
	})
}
