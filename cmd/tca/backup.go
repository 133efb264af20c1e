package main

import (
	"fmt"

	"tca/internal/errors"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Snapshot the collection inside the store",
	Long:  "Writes a full snapshot of protocols and settings under the backup key of the store. A later 'tca restore' merges the snapshot back.",
	RunE:  runBackup,
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore the collection from the last backup",
	RunE:  runRestore,
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	if !store.CreateBackup() {
		return errors.New(errors.StorageWriteFailed, "Failed to write the backup snapshot", nil).
			WithDetails(errors.SuggestedAction(errors.StorageWriteFailed))
	}

	stats := store.Statistics()
	fmt.Printf("Backup created (%d protocols)\n", stats.Total)
	return nil
}

func runRestore(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	result := store.RestoreFromBackup()
	if !result.Success {
		return errors.New(errors.BackupMissing, result.Message, nil).
			WithDetails(errors.SuggestedAction(errors.BackupMissing))
	}

	fmt.Println(result.Message)
	return nil
}
