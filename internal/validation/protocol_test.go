package validation

import (
	"testing"
	"time"

	"tca/internal/types"
)

func completeVehicleData() *types.VehicleData {
	commissioned := time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC)
	overhauled := time.Date(2024, 9, 12, 0, 0, 0, 0, time.UTC)
	return &types.VehicleData{
		VehicleType: types.VehicleElectricLocomotive,
		Identification: types.VehicleIdentification{
			VehicleNumber:  "EU07-424",
			ProductionYear: 1983,
		},
		TechnicalData: types.VehicleTechnicalData{
			Length:    15715,
			Width:     3000,
			Height:    4245,
			Weight:    80000,
			Power:     2000,
			MaxSpeed:  125,
			Voltage:   3000,
			AxleLoad:  20,
			Gauge:     1435,
			BrakeType: []string{"Oerlikon pneumatic"},
		},
		CommissioningDate: &commissioned,
		LastOverhaul:      &overhauled,
		TechnicalDocumentation: []string{
			"Vehicle card no. 424",
			"Last inspection protocol WAW/117/2025",
			"Technical documentation rev. 3",
			"Certificate of acceptance for operation",
		},
		Certificates: []string{"UTK certificate 2023/442"},
	}
}

func completeProtocol() *types.Protocol {
	p := types.NewProtocol(types.AssessmentP5)
	p.ProtocolNumber = "WAW/001/2026"
	p.Location = "Hala przeglądowa 2"
	p.Depot = "Warszawa Grochów"
	p.InspectionReason = "Periodic P5 assessment"
	p.LegalBasis = "Regulation on rail vehicle maintenance"
	p.IssueDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	p.VehicleData = completeVehicleData()
	p.Commission = validCommission()
	p.TechnicalState = allMandatoryFit()
	return p
}

func TestCheckProtocolComplete(t *testing.T) {
	p := completeProtocol()
	v := CheckProtocolAt(p, commissionNow)

	if !v.IsValid {
		t.Errorf("expected complete protocol to be valid, got %v", v.Errors)
	}
	if v.CompletionPercentage != 100 {
		t.Errorf("expected 100%% completion, got %d", v.CompletionPercentage)
	}
	if len(v.MissingFields) != 0 {
		t.Errorf("expected no missing fields, got %v", v.MissingFields)
	}
	// No signatures recorded yet, which is a warning, never an error.
	if !hasError(v.Warnings, "signatures") {
		t.Errorf("expected signature warning, got %v", v.Warnings)
	}
}

func TestCheckProtocolEmpty(t *testing.T) {
	p := &types.Protocol{}
	v := CheckProtocolAt(p, commissionNow)

	if v.IsValid {
		t.Fatal("expected empty protocol to be invalid")
	}
	if v.CompletionPercentage != 0 {
		t.Errorf("expected 0%% completion, got %d", v.CompletionPercentage)
	}
	for _, want := range []string{
		"Protocol number is required",
		"Vehicle data is required",
		"Commission composition is required",
		"Technical state assessment is required",
	} {
		if !hasError(v.Errors, want) {
			t.Errorf("expected error %q, got %v", want, v.Errors)
		}
	}
	if len(v.MissingFields) != 8 {
		t.Errorf("expected all 8 fields missing, got %v", v.MissingFields)
	}
}

func TestCompletionPercentageSteps(t *testing.T) {
	p := &types.Protocol{}
	if got := completionPercentage(p); got != 0 {
		t.Errorf("empty: expected 0, got %d", got)
	}

	p.ProtocolNumber = "WAW/001/2026"
	if got := completionPercentage(p); got != 17 {
		t.Errorf("one of six: expected 17, got %d", got)
	}

	p.Location = "Hala 2"
	if got := completionPercentage(p); got != 33 {
		t.Errorf("two of six: expected 33, got %d", got)
	}

	p.InspectionReason = "P4"
	p.VehicleData = &types.VehicleData{}
	p.Commission = validCommission()
	p.TechnicalState = allMandatoryFit()
	if got := completionPercentage(p); got != 100 {
		t.Errorf("all six: expected 100, got %d", got)
	}
}

func TestCheckDates(t *testing.T) {
	t.Run("future issue date", func(t *testing.T) {
		p := completeProtocol()
		p.IssueDate = commissionNow.AddDate(0, 0, 1)
		r := CheckDatesAt(p, commissionNow)
		if !hasError(r.Errors, "issue date cannot be in the future") {
			t.Errorf("expected future issue date error, got %v", r.Errors)
		}
	})

	t.Run("future overhaul", func(t *testing.T) {
		p := completeProtocol()
		future := commissionNow.AddDate(1, 0, 0)
		p.VehicleData.LastOverhaul = &future
		r := CheckDatesAt(p, commissionNow)
		if !hasError(r.Errors, "overhaul date cannot be in the future") {
			t.Errorf("expected future overhaul error, got %v", r.Errors)
		}
	})

	t.Run("overhaul before commissioning", func(t *testing.T) {
		p := completeProtocol()
		commissioned := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		overhauled := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
		p.VehicleData.CommissioningDate = &commissioned
		p.VehicleData.LastOverhaul = &overhauled
		r := CheckDatesAt(p, commissionNow)
		if !hasError(r.Errors, "cannot precede the commissioning date") {
			t.Errorf("expected ordering error, got %v", r.Errors)
		}
	})

	t.Run("unset dates pass", func(t *testing.T) {
		p := completeProtocol()
		p.VehicleData.CommissioningDate = nil
		p.VehicleData.LastOverhaul = nil
		if r := CheckDatesAt(p, commissionNow); !r.Valid {
			t.Errorf("expected unset dates to pass, got %v", r.Errors)
		}
	})
}

func TestCheckDocumentation(t *testing.T) {
	t.Run("complete", func(t *testing.T) {
		p := completeProtocol()
		d := CheckDocumentation(p)
		if !d.Valid || len(d.Warnings) != 0 {
			t.Errorf("expected clean result, got errors %v warnings %v", d.Errors, d.Warnings)
		}
	})

	t.Run("no documentation at all", func(t *testing.T) {
		p := completeProtocol()
		p.VehicleData.TechnicalDocumentation = nil
		d := CheckDocumentation(p)
		if d.Valid {
			t.Fatal("expected missing documentation to be an error")
		}
		if !hasError(d.Errors, "technical documentation is missing") {
			t.Errorf("expected documentation error, got %v", d.Errors)
		}
	})

	t.Run("missing named documents warn", func(t *testing.T) {
		p := completeProtocol()
		p.VehicleData.TechnicalDocumentation = []string{"Vehicle card no. 424"}
		d := CheckDocumentation(p)
		if !d.Valid {
			t.Errorf("named document absence must not be an error, got %v", d.Errors)
		}
		if len(d.Warnings) != 3 {
			t.Errorf("expected 3 warnings for the other named documents, got %v", d.Warnings)
		}
	})

	t.Run("match is case insensitive", func(t *testing.T) {
		p := completeProtocol()
		p.VehicleData.TechnicalDocumentation = []string{
			"VEHICLE CARD",
			"last inspection protocol (copy)",
			"technical documentation",
			"certificate of acceptance for operation",
		}
		d := CheckDocumentation(p)
		if len(d.Warnings) != 0 {
			t.Errorf("expected case-insensitive match, got warnings %v", d.Warnings)
		}
	})

	t.Run("no certificates warns", func(t *testing.T) {
		p := completeProtocol()
		p.VehicleData.Certificates = nil
		d := CheckDocumentation(p)
		if !hasError(d.Warnings, "certificates") {
			t.Errorf("expected certificate warning, got %v", d.Warnings)
		}
	})
}

func TestCheckSection(t *testing.T) {
	p := completeProtocol()

	for _, name := range []string{
		"protocolNumber", "vehicle", "vehicleData", "commission",
		"technicalState", "dates", "documentation", "signatures",
	} {
		t.Run(name, func(t *testing.T) {
			r, ok := CheckSection(name, p)
			if !ok {
				t.Fatalf("section %q not recognized", name)
			}
			if !r.Valid {
				t.Errorf("expected section %q of a complete protocol to pass, got %v", name, r.Errors)
			}
		})
	}

	t.Run("unknown section", func(t *testing.T) {
		if _, ok := CheckSection("paintColor", p); ok {
			t.Error("expected unknown section to report false")
		}
	})

	t.Run("vehicle without data", func(t *testing.T) {
		empty := types.NewProtocol(types.AssessmentP4)
		r, ok := CheckSection("vehicle", empty)
		if !ok || r.Valid {
			t.Errorf("expected missing vehicle data to fail, got %v", r.Errors)
		}
	})
}

func TestCheckProtocolSectionErrorOrder(t *testing.T) {
	p := completeProtocol()
	p.ProtocolNumber = "bad"
	p.Commission = p.Commission[:1] // drop below minimum size

	v := CheckProtocolAt(p, commissionNow)
	if v.IsValid {
		t.Fatal("expected protocol with violations to be invalid")
	}
	if len(v.Errors) < 2 {
		t.Fatalf("expected errors from both sections, got %v", v.Errors)
	}
	if !hasError(v.Errors[:1], "protocol number format") {
		t.Errorf("expected number error first, got %v", v.Errors)
	}
}
