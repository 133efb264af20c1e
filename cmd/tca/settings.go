package main

import (
	"fmt"

	"tca/internal/errors"

	"github.com/spf13/cobra"
)

var (
	settingsAutoSave string
	settingsBackup   string
	settingsTheme    string
	settingsDepot    string
	settingsLocation string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change application settings",
	Long:  "Without flags, prints the current settings. Flags update individual settings; unset flags leave their settings untouched.",
	RunE:  runSettings,
}

func init() {
	settingsCmd.Flags().StringVar(&settingsAutoSave, "autosave", "", "Enable or disable auto-save (true/false)")
	settingsCmd.Flags().StringVar(&settingsBackup, "backup", "", "Enable or disable backups (true/false)")
	settingsCmd.Flags().StringVar(&settingsTheme, "theme", "", "UI theme: light or dark")
	settingsCmd.Flags().StringVar(&settingsDepot, "default-depot", "", "Default depot code for new protocols")
	settingsCmd.Flags().StringVar(&settingsLocation, "default-location", "", "Default location for new protocols")
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	settings := store.Settings()
	changed := false

	if settingsAutoSave != "" {
		v, err := parseBool(settingsAutoSave)
		if err != nil {
			return errors.New(errors.ValidationFailed, "--autosave must be true or false", err)
		}
		settings.AutoSave = v
		changed = true
	}
	if settingsBackup != "" {
		v, err := parseBool(settingsBackup)
		if err != nil {
			return errors.New(errors.ValidationFailed, "--backup must be true or false", err)
		}
		settings.BackupEnabled = v
		changed = true
	}
	if settingsTheme != "" {
		if settingsTheme != "light" && settingsTheme != "dark" {
			return errors.New(errors.ValidationFailed, "--theme must be light or dark", nil)
		}
		settings.Theme = settingsTheme
		changed = true
	}
	if settingsDepot != "" {
		settings.DefaultDepot = settingsDepot
		changed = true
	}
	if settingsLocation != "" {
		settings.DefaultLocation = settingsLocation
		changed = true
	}

	if changed {
		if !store.SaveSettings(settings) {
			return errors.New(errors.StorageWriteFailed, "Failed to save settings", nil).
				WithDetails(errors.SuggestedAction(errors.StorageWriteFailed))
		}
	}

	resp := &SettingsResponseCLI{Settings: settings}
	out, err := FormatResponse(resp, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func parseBool(s string) (bool, error) {
	switch s {
	case "true", "on", "yes":
		return true, nil
	case "false", "off", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", s)
}
