package main

import (
	"fmt"
	"os"
	"path/filepath"

	"tca/internal/config"
	"tca/internal/errors"
	"tca/internal/logging"

	"github.com/spf13/cobra"
)

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize TCA configuration",
	Long:  "Creates a .tca/ directory with default configuration in the data directory",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Force reinitialization (removes existing .tca directory)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger(logging.Config{
		Format: logging.HumanFormat,
		Level:  logging.InfoLevel,
	})

	dataDir, err := getDataDir()
	if err != nil {
		return errors.New(errors.InternalError, "Failed to resolve data directory", err)
	}

	// Check if .tca already exists
	tcaDir := filepath.Join(dataDir, ".tca")
	if _, statErr := os.Stat(tcaDir); statErr == nil {
		if !initForce {
			// Idempotent behavior: already initialized is success (CI-friendly)
			fmt.Println("TCA already initialized.")
			fmt.Printf("Configuration at: %s\n", filepath.Join(tcaDir, "config.json"))
			fmt.Println("\nRun 'tca init --force' to reinitialize.")
			return nil
		}
		if removeErr := os.RemoveAll(tcaDir); removeErr != nil {
			return errors.New(errors.InternalError, "Failed to remove existing .tca directory", removeErr)
		}
		logger.Info("Removed existing .tca directory", nil)
	}

	if mkdirErr := os.MkdirAll(tcaDir, 0755); mkdirErr != nil {
		return errors.New(errors.InternalError, "Failed to create .tca directory", mkdirErr)
	}

	cfg := config.DefaultConfig()
	if err := cfg.Save(dataDir); err != nil {
		return errors.New(errors.InternalError, "Failed to write config file", err)
	}

	configPath := filepath.Join(tcaDir, "config.json")
	logger.Info("TCA initialized successfully", map[string]interface{}{
		"config_path": configPath,
	})

	fmt.Println("TCA initialized successfully!")
	fmt.Printf("Configuration written to: %s\n", configPath)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Run 'tca new --depot <code>' to start a protocol")
	fmt.Println("  2. Run 'tca list' to see stored protocols")

	return nil
}
