package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"tca/internal/types"
)

// ExportVersion tags the export document format
const ExportVersion = "1.0"

// ExportDocument is the interchange format for export, import and backup.
// Date fields in the serialized protocols are RFC 3339 strings and
// round-trip to the same instant.
type ExportDocument struct {
	Version    string           `json:"version"`
	ExportDate time.Time        `json:"exportDate"`
	Protocols  []types.Protocol `json:"protocols"`
	Settings   types.Settings   `json:"settings"`
}

// ImportResult reports the outcome of an import
type ImportResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	ImportedCount int    `json:"importedCount"`
}

// RestoreResult reports the outcome of a backup restore
type RestoreResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Settings returns the stored settings merged over the documented
// defaults. Absent or unreadable settings yield the defaults.
func (s *Store) Settings() types.Settings {
	settings := types.DefaultSettings()

	data, ok := s.kv.Get(settingsKey)
	if !ok {
		return settings
	}
	if err := json.Unmarshal([]byte(data), &settings); err != nil {
		s.logger.Warn("Failed to parse stored settings, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return types.DefaultSettings()
	}
	return settings
}

// SaveSettings persists the full settings document
func (s *Store) SaveSettings(settings types.Settings) bool {
	data, err := json.Marshal(settings)
	if err != nil {
		s.logger.Error("Failed to serialize settings", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return s.kv.Set(settingsKey, string(data))
}

// ExportAll produces the full export document as indented JSON
func (s *Store) ExportAll() (string, error) {
	doc := ExportDocument{
		Version:    ExportVersion,
		ExportDate: s.now(),
		Protocols:  s.GetAll(),
		Settings:   s.Settings(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize export document: %w", err)
	}
	return string(data), nil
}

// importDocument is the lenient parse shape for incoming data. Protocols
// stays raw so a missing field can be told apart from an empty list, and
// settings stays raw so partial settings merge over the current ones.
type importDocument struct {
	Version   string          `json:"version"`
	Protocols json.RawMessage `json:"protocols"`
	Settings  json.RawMessage `json:"settings"`
}

// ImportAll merges an export document into the current collection.
// Records whose id already exists are skipped, the rest are appended; the
// reported count covers only the records actually added. A document
// without a protocols list is rejected without touching the store.
func (s *Store) ImportAll(jsonText string) ImportResult {
	var doc importDocument
	if err := json.Unmarshal([]byte(jsonText), &doc); err != nil {
		return ImportResult{Message: fmt.Sprintf("Failed to parse import data: %v", err)}
	}
	// json.Unmarshal accepts the literal null for a slice, so a raw
	// "protocols": null has to be rejected here as absent.
	if len(doc.Protocols) == 0 || string(bytes.TrimSpace(doc.Protocols)) == "null" {
		return ImportResult{Message: "Invalid data format: missing protocols list"}
	}

	var incoming []types.Protocol
	if err := json.Unmarshal(doc.Protocols, &incoming); err != nil {
		return ImportResult{Message: fmt.Sprintf("Invalid data format: protocols is not a list: %v", err)}
	}

	existing := s.GetAll()
	existingIDs := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		existingIDs[p.ID] = struct{}{}
	}

	imported := 0
	merged := existing
	for _, p := range incoming {
		if _, ok := existingIDs[p.ID]; ok {
			continue
		}
		merged = append(merged, p)
		imported++
	}

	if !s.writeProtocols(merged) {
		return ImportResult{Message: "Error while importing data"}
	}

	if len(doc.Settings) > 0 {
		settings := s.Settings()
		if err := json.Unmarshal(doc.Settings, &settings); err != nil {
			s.logger.Warn("Ignoring unparsable settings in import", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			s.SaveSettings(settings)
		}
	}

	return ImportResult{
		Success:       true,
		Message:       fmt.Sprintf("Successfully imported %d protocols", imported),
		ImportedCount: imported,
	}
}

// CreateBackup writes a full export snapshot under the backup key
func (s *Store) CreateBackup() bool {
	doc, err := s.ExportAll()
	if err != nil {
		s.logger.Error("Failed to build backup snapshot", map[string]interface{}{
			"error": err.Error(),
		})
		return false
	}
	return s.kv.Set(backupKey, doc)
}

// RestoreFromBackup re-imports the stored backup snapshot. A missing
// backup is a reported failure, not an error.
func (s *Store) RestoreFromBackup() RestoreResult {
	data, ok := s.kv.Get(backupKey)
	if !ok {
		return RestoreResult{Message: "No backup available"}
	}

	result := s.ImportAll(data)
	if !result.Success {
		return RestoreResult{Message: result.Message}
	}
	return RestoreResult{Success: true, Message: "Restored from backup"}
}
