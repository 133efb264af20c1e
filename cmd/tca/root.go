package main

import (
	"tca/internal/version"

	"github.com/spf13/cobra"
)

var (
	// formatFlag is the CLI --format flag value
	formatFlag string
	// dataDirFlag is the CLI --data-dir flag value
	dataDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "tca",
	Short: "TCA - Technical Condition Assessment",
	Long: `TCA (Technical Condition Assessment) manages assessment protocols for
railway vehicles: commission composition, the point-by-point technical state
table, validation against the assessment rules, and rendering of the final
protocol document.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("TCA version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "human",
		"Output format: human, json, or yaml")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", ".",
		"Directory holding the .tca data store")
}

// outputFormat resolves the --format flag into an OutputFormat.
func outputFormat() OutputFormat {
	switch formatFlag {
	case "json":
		return FormatJSON
	case "yaml":
		return FormatYAML
	default:
		return FormatHuman
	}
}
