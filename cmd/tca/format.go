package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
	FormatYAML  OutputFormat = "yaml"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatYAML:
		return formatYAML(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatYAML formats the response as YAML
func formatYAML(resp interface{}) (string, error) {
	data, err := yaml.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(data), nil
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *ListResponseCLI:
		return formatListHuman(v)
	case *StatsResponseCLI:
		return formatStatsHuman(v)
	case *ValidateResponseCLI:
		return formatValidateHuman(v)
	case *SettingsResponseCLI:
		return formatSettingsHuman(v)
	default:
		// For unknown types, fall back to JSON
		return formatJSON(resp)
	}
}

// formatListHuman formats a ListResponseCLI in human-readable format
func formatListHuman(resp *ListResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Protocols (%d)\n", resp.Total))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	if resp.Total == 0 {
		b.WriteString("No protocols match the given filters.\n")
		return b.String(), nil
	}

	for i, p := range resp.Protocols {
		number := p.ProtocolNumber
		if number == "" {
			number = "(no number)"
		}
		b.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, number, p.Status))
		b.WriteString(fmt.Sprintf("   ID: %s\n", p.ID))
		b.WriteString(fmt.Sprintf("   Assessment: %s\n", p.AssessmentType))
		if p.Vehicle != "" {
			b.WriteString(fmt.Sprintf("   Vehicle: %s\n", p.Vehicle))
		}
		if p.Depot != "" {
			b.WriteString(fmt.Sprintf("   Depot: %s\n", p.Depot))
		}
		b.WriteString(fmt.Sprintf("   Issued: %s\n\n", p.IssueDate))
	}

	return b.String(), nil
}

// formatStatsHuman formats a StatsResponseCLI in human-readable format
func formatStatsHuman(resp *StatsResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString("Protocol Statistics\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Total: %d\n", resp.Total))
	b.WriteString(fmt.Sprintf("Created in the last 30 days: %d\n\n", resp.Recent))

	if len(resp.ByStatus) > 0 {
		b.WriteString("By Status:\n")
		for status, count := range resp.ByStatus {
			b.WriteString(fmt.Sprintf("  %s: %d\n", status, count))
		}
		b.WriteString("\n")
	}

	if len(resp.ByAssessmentType) > 0 {
		b.WriteString("By Assessment Type:\n")
		for at, count := range resp.ByAssessmentType {
			b.WriteString(fmt.Sprintf("  %s: %d\n", at, count))
		}
		b.WriteString("\n")
	}

	if len(resp.ByVehicleType) > 0 {
		b.WriteString("By Vehicle Type:\n")
		for vt, count := range resp.ByVehicleType {
			b.WriteString(fmt.Sprintf("  %s: %d\n", vt, count))
		}
	}

	return b.String(), nil
}

// formatValidateHuman formats a ValidateResponseCLI in human-readable format
func formatValidateHuman(resp *ValidateResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Validation: %s\n", resp.ProtocolNumber))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	verdict := "VALID"
	icon := "✓"
	if !resp.IsValid {
		verdict = "INVALID"
		icon = "✗"
	}
	b.WriteString(fmt.Sprintf("%s Protocol is %s (%d%% complete)\n\n", icon, verdict, resp.CompletionPercentage))

	if len(resp.Errors) > 0 {
		b.WriteString("Errors:\n")
		for _, e := range resp.Errors {
			b.WriteString(fmt.Sprintf("  ✗ %s\n", e))
		}
		b.WriteString("\n")
	}

	if len(resp.Warnings) > 0 {
		b.WriteString("Warnings:\n")
		for _, w := range resp.Warnings {
			b.WriteString(fmt.Sprintf("  ⚠ %s\n", w))
		}
		b.WriteString("\n")
	}

	if len(resp.MissingFields) > 0 {
		b.WriteString("Missing Fields:\n")
		for _, f := range resp.MissingFields {
			b.WriteString(fmt.Sprintf("  - %s\n", f))
		}
	}

	return b.String(), nil
}

// formatSettingsHuman formats a SettingsResponseCLI in human-readable format
func formatSettingsHuman(resp *SettingsResponseCLI) (string, error) {
	var b strings.Builder

	b.WriteString("Application Settings\n")
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	b.WriteString(fmt.Sprintf("Auto-save: %v\n", resp.AutoSave))
	b.WriteString(fmt.Sprintf("Backups: %v\n", resp.BackupEnabled))
	b.WriteString(fmt.Sprintf("Theme: %s\n", resp.Theme))
	if resp.DefaultDepot != "" {
		b.WriteString(fmt.Sprintf("Default depot: %s\n", resp.DefaultDepot))
	}
	if resp.DefaultLocation != "" {
		b.WriteString(fmt.Sprintf("Default location: %s\n", resp.DefaultLocation))
	}
	if resp.LastProtocolNumber != "" {
		b.WriteString(fmt.Sprintf("Last protocol number: %s\n", resp.LastProtocolNumber))
	}

	return b.String(), nil
}
