package validation

import (
	"fmt"
	"time"

	"tca/internal/types"
)

// CheckVehicleData validates the vehicle record snapshot against the
// current wall clock. See CheckVehicleDataAt.
func CheckVehicleData(v *types.VehicleData) SectionResult {
	return CheckVehicleDataAt(v, time.Now())
}

// CheckVehicleDataAt validates the numeric plausibility of the vehicle
// record. Required technical fields must be positive and inside their
// documented caps (lengths in mm, mass in kg, speed in km/h, axle load
// in tonnes); optional fields only have to be non-negative, zero meaning
// unset. The production year must fall between 1800 and the current
// year when given.
func CheckVehicleDataAt(v *types.VehicleData, now time.Time) SectionResult {
	if v == nil {
		return SectionResult{Valid: false, Errors: []string{"Vehicle data is required"}}
	}

	var errors []string

	if year := v.Identification.ProductionYear; year != 0 {
		if year < 1800 {
			errors = append(errors, "Invalid production year")
		} else if year > now.Year() {
			errors = append(errors, "Production year cannot be in the future")
		}
	}

	td := v.TechnicalData
	required := []struct {
		value    float64
		max      float64
		belowMsg string
		aboveMsg string
	}{
		{td.Length, 50000, "Vehicle length must be greater than 0", "Invalid vehicle length"},
		{td.Width, 5000, "Vehicle width must be greater than 0", "Invalid vehicle width"},
		{td.Height, 10000, "Vehicle height must be greater than 0", "Invalid vehicle height"},
		{td.Weight, 500000, "Vehicle weight must be greater than 0", "Invalid vehicle weight"},
		{td.MaxSpeed, 400, "Maximum speed must be greater than 0", "Invalid maximum speed"},
		{td.AxleLoad, 30, "Axle load must be greater than 0", "Invalid axle load"},
	}
	for _, r := range required {
		switch {
		case r.value <= 0:
			errors = append(errors, r.belowMsg)
		case r.value > r.max:
			errors = append(errors, r.aboveMsg)
		}
	}

	if td.Gauge <= 0 {
		errors = append(errors, "Track gauge must be greater than 0")
	}
	if len(td.BrakeType) == 0 {
		errors = append(errors, "At least one brake type is required")
	}

	optional := []struct {
		value float64
		name  string
	}{
		{td.MaxWeight, "Maximum weight"},
		{td.Power, "Power"},
		{td.TractionForce, "Traction force"},
		{td.Voltage, "Voltage"},
		{td.Current, "Current"},
		{td.EnginePower, "Engine power"},
		{td.FuelCapacity, "Fuel capacity"},
		{td.BrakeForce, "Brake force"},
	}
	for _, o := range optional {
		if o.value < 0 {
			errors = append(errors, fmt.Sprintf("%s cannot be negative", o.name))
		}
	}

	return SectionResult{Valid: len(errors) == 0, Errors: errors}
}
