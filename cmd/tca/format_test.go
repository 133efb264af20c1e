package main

import (
	"strings"
	"testing"

	"tca/internal/types"
)

func TestFormatResponse_JSON(t *testing.T) {
	resp := map[string]interface{}{
		"key": "value",
		"num": 42,
	}

	result, err := FormatResponse(resp, FormatJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, `"key": "value"`) {
		t.Error("JSON output missing expected key")
	}
	if !strings.Contains(result, `"num": 42`) {
		t.Error("JSON output missing expected number")
	}
}

func TestFormatResponse_YAML(t *testing.T) {
	resp := map[string]interface{}{
		"key": "value",
		"num": 42,
	}

	result, err := FormatResponse(resp, FormatYAML)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "key: value") {
		t.Error("YAML output missing expected key")
	}
	if !strings.Contains(result, "num: 42") {
		t.Error("YAML output missing expected number")
	}
}

func TestFormatResponse_UnsupportedFormat(t *testing.T) {
	resp := map[string]string{"key": "value"}

	_, err := FormatResponse(resp, "xml")
	if err == nil {
		t.Error("expected error for unsupported format")
	}
	if !strings.Contains(err.Error(), "unsupported format") {
		t.Errorf("error should mention unsupported format, got: %v", err)
	}
}

func TestFormatListHuman(t *testing.T) {
	resp := &ListResponseCLI{
		Total: 1,
		Protocols: []ProtocolSummaryCLI{
			{
				ID:             "abc-123",
				ProtocolNumber: "WAR/001/2026",
				Status:         "draft",
				AssessmentType: "P4",
				Vehicle:        "EU07-424",
				Depot:          "Warszawa",
				IssueDate:      "2026-03-15",
			},
		},
	}

	result, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"Protocols (1)", "WAR/001/2026", "[draft]", "EU07-424", "2026-03-15"} {
		if !strings.Contains(result, want) {
			t.Errorf("human output missing %q:\n%s", want, result)
		}
	}
}

func TestFormatListHuman_Empty(t *testing.T) {
	result, err := FormatResponse(&ListResponseCLI{}, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(result, "No protocols match") {
		t.Errorf("empty listing should say so, got:\n%s", result)
	}
}

func TestFormatValidateHuman(t *testing.T) {
	resp := &ValidateResponseCLI{
		ProtocolID:           "abc-123",
		ProtocolNumber:       "WAR/001/2026",
		IsValid:              false,
		CompletionPercentage: 50,
		Errors:               []string{"Commission must have at least 2 members"},
		Warnings:             []string{"Missing document: Vehicle card"},
		MissingFields:        []string{"vehicleData"},
	}

	result, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "INVALID") {
		t.Error("verdict should be INVALID")
	}
	if !strings.Contains(result, "50% complete") {
		t.Error("completion percentage missing")
	}
	if !strings.Contains(result, "at least 2 members") {
		t.Error("error detail missing")
	}
	if !strings.Contains(result, "Vehicle card") {
		t.Error("warning detail missing")
	}
	if !strings.Contains(result, "vehicleData") {
		t.Error("missing field detail missing")
	}
}

func TestFormatStatsHuman(t *testing.T) {
	resp := &StatsResponseCLI{
		ProtocolStatistics: types.ProtocolStatistics{
			Total:  3,
			Recent: 1,
			ByStatus: map[types.ProtocolStatus]int{
				types.StatusDraft: 3,
			},
		},
	}

	result, err := FormatResponse(resp, FormatHuman)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(result, "Total: 3") {
		t.Error("total missing")
	}
	if !strings.Contains(result, "last 30 days: 1") {
		t.Error("recent count missing")
	}
	if !strings.Contains(result, "draft: 3") {
		t.Error("status breakdown missing")
	}
}

func TestSummarize(t *testing.T) {
	p := types.NewProtocol(types.AssessmentP4)
	p.ProtocolNumber = "WAR/002/2026"
	p.Depot = "Warszawa"
	p.VehicleData = &types.VehicleData{
		VehicleType: types.VehicleElectricLocomotive,
		Identification: types.VehicleIdentification{
			VehicleNumber: "EU07-424",
			Series:        types.SeriesOther,
		},
	}

	s := summarize(*p)

	if s.ProtocolNumber != "WAR/002/2026" {
		t.Errorf("number = %q", s.ProtocolNumber)
	}
	if s.Vehicle != "EU07-424" {
		t.Errorf("vehicle = %q", s.Vehicle)
	}
	if s.Status != "draft" {
		t.Errorf("status = %q", s.Status)
	}
}
