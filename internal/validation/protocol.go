package validation

import (
	"fmt"
	"math"
	"strings"
	"time"

	"tca/internal/types"
)

// requiredDocuments are the named documents whose absence from the
// technical documentation list is reported as an individual warning.
var requiredDocuments = []string{
	"Vehicle card",
	"Last inspection protocol",
	"Technical documentation",
	"Certificate of acceptance for operation",
}

// CheckDates validates the protocol's date consistency against the
// current wall clock. See CheckDatesAt.
func CheckDates(p *types.Protocol) SectionResult {
	return CheckDatesAt(p, time.Now())
}

// CheckDatesAt evaluates every date rule independently: the issue,
// overhaul and commissioning dates must not be in the future, and the
// commissioning date must precede the last overhaul when both are set.
func CheckDatesAt(p *types.Protocol, now time.Time) SectionResult {
	var errors []string

	if !p.IssueDate.IsZero() && p.IssueDate.After(now) {
		errors = append(errors, "Protocol issue date cannot be in the future")
	}

	if v := p.VehicleData; v != nil {
		if v.LastOverhaul != nil && v.LastOverhaul.After(now) {
			errors = append(errors, "Last overhaul date cannot be in the future")
		}
		if v.CommissioningDate != nil && v.CommissioningDate.After(now) {
			errors = append(errors, "Commissioning date cannot be in the future")
		}
		if v.CommissioningDate != nil && v.LastOverhaul != nil &&
			v.CommissioningDate.After(*v.LastOverhaul) {
			errors = append(errors, "Last overhaul date cannot precede the commissioning date")
		}
	}

	return SectionResult{Valid: len(errors) == 0, Errors: errors}
}

// CheckDocumentation validates documentation completeness. A vehicle with
// no technical documentation at all is an error; absence of each named
// required document and absence of certificates are warnings only.
func CheckDocumentation(p *types.Protocol) DocResult {
	var errors, warnings []string

	if p.VehicleData == nil || len(p.VehicleData.TechnicalDocumentation) == 0 {
		errors = append(errors, "Vehicle technical documentation is missing")
	} else {
		for _, doc := range requiredDocuments {
			if !containsDocument(p.VehicleData.TechnicalDocumentation, doc) {
				warnings = append(warnings, fmt.Sprintf("Missing document: %s", doc))
			}
		}
	}

	if p.VehicleData == nil || len(p.VehicleData.Certificates) == 0 {
		warnings = append(warnings, "No information about vehicle certificates")
	}

	return DocResult{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// containsDocument reports whether any list entry contains name as a
// case-insensitive substring
func containsDocument(docs []string, name string) bool {
	lower := strings.ToLower(name)
	for _, d := range docs {
		if strings.Contains(strings.ToLower(d), lower) {
			return true
		}
	}
	return false
}

// CheckProtocol runs every section check and aggregates the results into
// one verdict. See CheckProtocolAt.
func CheckProtocol(p *types.Protocol) types.ProtocolValidation {
	return CheckProtocolAt(p, time.Now())
}

// CheckProtocolAt aggregates the section checks. Errors and warnings are
// concatenated in section order; the verdict is valid only when the
// combined error list is empty. Missing fields and the completion
// percentage are computed independently of the error lists.
func CheckProtocolAt(p *types.Protocol, now time.Time) types.ProtocolValidation {
	errors := []string{}
	warnings := []string{}

	if p.ProtocolNumber != "" {
		if r := CheckProtocolNumber(p.ProtocolNumber); !r.Valid {
			errors = append(errors, r.Error)
		}
	} else {
		errors = append(errors, "Protocol number is required")
	}

	if p.VehicleData != nil {
		if r := CheckVehicleNumber(p.VehicleData.Identification.VehicleNumber, p.VehicleData.VehicleType); !r.Valid {
			errors = append(errors, r.Error)
		}
		errors = append(errors, CheckVehicleDataAt(p.VehicleData, now).Errors...)
	} else {
		errors = append(errors, "Vehicle data is required")
	}

	if len(p.Commission) > 0 {
		errors = append(errors, CheckCommissionAt(p.Commission, now).Errors...)
	} else {
		errors = append(errors, "Commission composition is required")
	}

	if len(p.TechnicalState) > 0 {
		errors = append(errors, CheckTechnicalState(p.TechnicalState).Errors...)
	} else {
		errors = append(errors, "Technical state assessment is required")
	}

	errors = append(errors, CheckDatesAt(p, now).Errors...)

	docResult := CheckDocumentation(p)
	errors = append(errors, docResult.Errors...)
	warnings = append(warnings, docResult.Warnings...)

	if len(p.Signatures) == 0 {
		warnings = append(warnings, "Protocol requires signatures of the commission members")
	}

	return types.ProtocolValidation{
		IsValid:              len(errors) == 0,
		Errors:               errors,
		Warnings:             warnings,
		MissingFields:        missingFields(p),
		CompletionPercentage: completionPercentage(p),
	}
}

// missingFields lists the human-readable names of absent top-level fields
func missingFields(p *types.Protocol) []string {
	missing := []string{}
	if p.ProtocolNumber == "" {
		missing = append(missing, "Protocol number")
	}
	if p.Location == "" {
		missing = append(missing, "Location")
	}
	if p.Depot == "" {
		missing = append(missing, "Depot")
	}
	if p.InspectionReason == "" {
		missing = append(missing, "Inspection reason")
	}
	if p.VehicleData == nil {
		missing = append(missing, "Vehicle data")
	}
	if len(p.Commission) == 0 {
		missing = append(missing, "Commission composition")
	}
	if len(p.TechnicalState) == 0 {
		missing = append(missing, "Technical state")
	}
	if p.LegalBasis == "" {
		missing = append(missing, "Legal basis")
	}
	return missing
}

// completionPercentage is the ratio of filled required sections: protocol
// number, vehicle data, commission, technical state, location and
// inspection reason.
func completionPercentage(p *types.Protocol) int {
	filled := 0
	if p.ProtocolNumber != "" {
		filled++
	}
	if p.VehicleData != nil {
		filled++
	}
	if len(p.Commission) > 0 {
		filled++
	}
	if len(p.TechnicalState) > 0 {
		filled++
	}
	if p.Location != "" {
		filled++
	}
	if p.InspectionReason != "" {
		filled++
	}
	return int(math.Round(float64(filled) / 6 * 100))
}

// CheckSection runs the section check named by the presentation layer.
// The second return value is false for unknown section names.
func CheckSection(name string, p *types.Protocol) (SectionResult, bool) {
	switch name {
	case "protocolNumber":
		r := CheckProtocolNumber(p.ProtocolNumber)
		if r.Valid {
			return SectionResult{Valid: true, Errors: nil}, true
		}
		return SectionResult{Valid: false, Errors: []string{r.Error}}, true
	case "vehicle":
		if p.VehicleData == nil {
			return SectionResult{Valid: false, Errors: []string{"Vehicle data is required"}}, true
		}
		r := CheckVehicleNumber(p.VehicleData.Identification.VehicleNumber, p.VehicleData.VehicleType)
		if r.Valid {
			return SectionResult{Valid: true, Errors: nil}, true
		}
		return SectionResult{Valid: false, Errors: []string{r.Error}}, true
	case "vehicleData":
		return CheckVehicleData(p.VehicleData), true
	case "commission":
		return CheckCommission(p.Commission), true
	case "technicalState":
		return CheckTechnicalState(p.TechnicalState), true
	case "dates":
		return CheckDates(p), true
	case "documentation":
		d := CheckDocumentation(p)
		return SectionResult{Valid: d.Valid, Errors: d.Errors}, true
	case "signatures":
		return CheckSignatures(p), true
	}
	return SectionResult{}, false
}
