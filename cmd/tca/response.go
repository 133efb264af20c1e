package main

import (
	"tca/internal/types"
)

// ProtocolSummaryCLI is the one-line listing view of a stored protocol
type ProtocolSummaryCLI struct {
	ID             string `json:"id" yaml:"id"`
	ProtocolNumber string `json:"protocolNumber" yaml:"protocolNumber"`
	Status         string `json:"status" yaml:"status"`
	AssessmentType string `json:"assessmentType" yaml:"assessmentType"`
	Vehicle        string `json:"vehicle,omitempty" yaml:"vehicle,omitempty"`
	Depot          string `json:"depot,omitempty" yaml:"depot,omitempty"`
	IssueDate      string `json:"issueDate" yaml:"issueDate"`
}

// ListResponseCLI is the response for the list command
type ListResponseCLI struct {
	Total     int                  `json:"total" yaml:"total"`
	Protocols []ProtocolSummaryCLI `json:"protocols" yaml:"protocols"`
}

// StatsResponseCLI is the response for the stats command
type StatsResponseCLI struct {
	types.ProtocolStatistics `yaml:",inline"`
}

// ValidateResponseCLI is the response for the validate command
type ValidateResponseCLI struct {
	ProtocolID     string `json:"protocolId" yaml:"protocolId"`
	ProtocolNumber string `json:"protocolNumber" yaml:"protocolNumber"`
	IsValid        bool   `json:"isValid" yaml:"isValid"`

	CompletionPercentage int      `json:"completionPercentage" yaml:"completionPercentage"`
	Errors               []string `json:"errors" yaml:"errors"`
	Warnings             []string `json:"warnings" yaml:"warnings"`
	MissingFields        []string `json:"missingFields" yaml:"missingFields"`
}

// SettingsResponseCLI is the response for the settings command
type SettingsResponseCLI struct {
	types.Settings `yaml:",inline"`
}

// summarize builds the listing view of a protocol
func summarize(p types.Protocol) ProtocolSummaryCLI {
	vehicle := ""
	if p.VehicleData != nil {
		vehicle = p.VehicleData.Identification.VehicleNumber
		if vehicle == "" && p.VehicleData.Identification.Series != types.SeriesOther {
			vehicle = string(p.VehicleData.Identification.Series)
		}
	}
	return ProtocolSummaryCLI{
		ID:             p.ID,
		ProtocolNumber: p.ProtocolNumber,
		Status:         string(p.Status),
		AssessmentType: string(p.AssessmentType),
		Vehicle:        vehicle,
		Depot:          p.Depot,
		IssueDate:      p.IssueDate.Format("2006-01-02"),
	}
}
