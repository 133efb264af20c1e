// Package validation implements the rule engine for assessment protocols.
// Every check is a pure function over the domain model; checks that depend
// on the current date take an explicit reference time in their *At variant
// so results stay deterministic under test. Section checks never
// short-circuit: each violated rule contributes its own human-readable
// error and multiple violations can co-occur in one result.
package validation

import (
	"fmt"
	"regexp"

	"tca/internal/types"
)

// Result is the outcome of a single-field check
type Result struct {
	Valid bool   `json:"isValid"`
	Error string `json:"error,omitempty"`
}

// SectionResult is the outcome of a section-level check
type SectionResult struct {
	Valid  bool     `json:"isValid"`
	Errors []string `json:"errors"`
}

// DocResult is the outcome of the documentation check, which distinguishes
// blocking errors from informational warnings
type DocResult struct {
	Valid    bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// protocolNumberPattern accepts ABC/123/YYYY and ABC-123-YYYY forms
var protocolNumberPattern = regexp.MustCompile(`^[A-Z]{2,4}[/\-][0-9]{1,4}[/\-][0-9]{4}$`)

// vehicleNumberPatterns maps vehicle types to their numbering formats.
// Types without an entry pass unconditionally.
var vehicleNumberPatterns = map[types.VehicleType]*regexp.Regexp{
	types.VehicleElectricLocomotive: regexp.MustCompile(`^(ET|EU|EP|EL)[0-9]{2}[A-Z]?-[0-9]{3}$`),
	types.VehicleDieselLocomotive:   regexp.MustCompile(`^(ST|SM|SU)[0-9]{2}[A-Z]?-[0-9]{3}$`),
	types.VehicleElectricMultiple:   regexp.MustCompile(`^(EN|ED)[0-9]{2}[A-Z]?-[0-9]{3}$`),
	types.VehicleDieselMultiple:     regexp.MustCompile(`^(SA|SN)[0-9]{2}[A-Z]?-[0-9]{3}$`),
	types.VehiclePassengerWagon:     regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{3}-[0-9]$`),
	types.VehicleFreightWagon:       regexp.MustCompile(`^[0-9]{2}-[0-9]{2}-[0-9]{3}-[0-9]$`),
}

// CheckProtocolNumber validates the protocol numbering scheme
func CheckProtocolNumber(number string) Result {
	if number == "" {
		return Result{Valid: false, Error: "Protocol number is required"}
	}
	if !protocolNumberPattern.MatchString(number) {
		return Result{Valid: false, Error: "Invalid protocol number format, expected ABC/123/YYYY"}
	}
	return Result{Valid: true}
}

// CheckVehicleNumber validates the vehicle number against the format for
// its vehicle type. Types with no registered format always pass; an empty
// number is always invalid.
func CheckVehicleNumber(number string, vehicleType types.VehicleType) Result {
	if number == "" {
		return Result{Valid: false, Error: "Vehicle number is required"}
	}
	if pattern, ok := vehicleNumberPatterns[vehicleType]; ok && !pattern.MatchString(number) {
		return Result{
			Valid: false,
			Error: fmt.Sprintf("Invalid vehicle number format for vehicle type %s", vehicleType),
		}
	}
	return Result{Valid: true}
}
