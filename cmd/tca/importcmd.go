package main

import (
	"fmt"

	"tca/internal/errors"
	"tca/internal/storage"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import protocols from an export file",
	Long: `Reads an export document (plain JSON or .zst compressed) and merges its
protocols into the store. Protocols whose id already exists are skipped;
imported settings are merged over the current ones.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	doc, err := storage.ReadExportFile(args[0])
	if err != nil {
		return errors.New(errors.ParseFailed, fmt.Sprintf("Failed to read %s", args[0]), err)
	}

	result := store.ImportAll(doc)
	if !result.Success {
		return errors.New(errors.ImportInvalid, result.Message, nil).
			WithDetails(errors.SuggestedAction(errors.ImportInvalid))
	}

	fmt.Println(result.Message)
	return nil
}
