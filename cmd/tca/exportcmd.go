package main

import (
	"fmt"
	"path/filepath"
	"time"

	"tca/internal/errors"
	"tca/internal/storage"

	"github.com/spf13/cobra"
)

var (
	exportOutput   string
	exportCompress bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all protocols and settings to a file",
	Long: `Writes the whole collection as a versioned export document. Files ending
in .zst are compressed with zstandard; --compress appends the suffix when
the output path does not already carry it.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output path (default: <export-dir>/tca-export-<date>.json)")
	exportCmd.Flags().BoolVarP(&exportCompress, "compress", "c", false, "Compress the export with zstandard")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, cfg := getStore(dataDir)
	defer closeStore()

	path := exportOutput
	if path == "" {
		name := fmt.Sprintf("tca-export-%s.json", time.Now().Format("2006-01-02"))
		path = filepath.Join(dataDir, cfg.Export.Directory, name)
	}
	if (exportCompress || cfg.Export.Compress) && filepath.Ext(path) != ".zst" {
		path += ".zst"
	}

	doc, err := store.ExportAll()
	if err != nil {
		return errors.New(errors.InternalError, "Failed to build the export document", err)
	}

	if err := storage.WriteExportFile(path, doc); err != nil {
		return errors.New(errors.StorageWriteFailed, fmt.Sprintf("Failed to write %s", path), err).
			WithDetails(errors.SuggestedAction(errors.StorageWriteFailed))
	}

	stats := store.Statistics()
	fmt.Printf("Exported %d protocols to %s\n", stats.Total, path)
	return nil
}
