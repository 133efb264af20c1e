package validation

import (
	"testing"

	"tca/internal/types"
)

func TestCheckVehicleDataComplete(t *testing.T) {
	r := CheckVehicleDataAt(completeVehicleData(), commissionNow)
	if !r.Valid {
		t.Errorf("expected complete vehicle data to pass, got %v", r.Errors)
	}
}

func TestCheckVehicleDataNil(t *testing.T) {
	r := CheckVehicleDataAt(nil, commissionNow)
	if r.Valid {
		t.Fatal("expected nil vehicle data to fail")
	}
	if !hasError(r.Errors, "Vehicle data is required") {
		t.Errorf("expected missing-data error, got %v", r.Errors)
	}
}

func TestCheckVehicleDataNegativeValues(t *testing.T) {
	v := completeVehicleData()
	v.TechnicalData.MaxSpeed = -120
	v.TechnicalData.Weight = -1

	r := CheckVehicleDataAt(v, commissionNow)
	if r.Valid {
		t.Fatal("expected negative technical data to fail")
	}
	if !hasError(r.Errors, "Maximum speed must be greater than 0") {
		t.Errorf("expected speed error, got %v", r.Errors)
	}
	if !hasError(r.Errors, "Vehicle weight must be greater than 0") {
		t.Errorf("expected weight error, got %v", r.Errors)
	}
}

func TestCheckVehicleDataUpperBounds(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.VehicleTechnicalData)
		wantErr string
	}{
		{"speed over 400", func(td *types.VehicleTechnicalData) { td.MaxSpeed = 420 }, "Invalid maximum speed"},
		{"axle load over 30", func(td *types.VehicleTechnicalData) { td.AxleLoad = 35 }, "Invalid axle load"},
		{"length over 50 m", func(td *types.VehicleTechnicalData) { td.Length = 60000 }, "Invalid vehicle length"},
		{"weight over 500 t", func(td *types.VehicleTechnicalData) { td.Weight = 600000 }, "Invalid vehicle weight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := completeVehicleData()
			tt.mutate(&v.TechnicalData)
			r := CheckVehicleDataAt(v, commissionNow)
			if r.Valid || !hasError(r.Errors, tt.wantErr) {
				t.Errorf("expected %q, got %v", tt.wantErr, r.Errors)
			}
		})
	}
}

func TestCheckVehicleDataProductionYear(t *testing.T) {
	t.Run("before 1800", func(t *testing.T) {
		v := completeVehicleData()
		v.Identification.ProductionYear = 1799
		r := CheckVehicleDataAt(v, commissionNow)
		if !hasError(r.Errors, "Invalid production year") {
			t.Errorf("expected invalid year error, got %v", r.Errors)
		}
	})

	t.Run("in the future", func(t *testing.T) {
		v := completeVehicleData()
		v.Identification.ProductionYear = commissionNow.Year() + 1
		r := CheckVehicleDataAt(v, commissionNow)
		if !hasError(r.Errors, "Production year cannot be in the future") {
			t.Errorf("expected future year error, got %v", r.Errors)
		}
	})

	t.Run("unset is accepted", func(t *testing.T) {
		v := completeVehicleData()
		v.Identification.ProductionYear = 0
		r := CheckVehicleDataAt(v, commissionNow)
		if !r.Valid {
			t.Errorf("expected unset year to pass, got %v", r.Errors)
		}
	})
}

func TestCheckVehicleDataGaugeAndBrakes(t *testing.T) {
	v := completeVehicleData()
	v.TechnicalData.Gauge = 0
	v.TechnicalData.BrakeType = nil

	r := CheckVehicleDataAt(v, commissionNow)
	if !hasError(r.Errors, "Track gauge must be greater than 0") {
		t.Errorf("expected gauge error, got %v", r.Errors)
	}
	if !hasError(r.Errors, "At least one brake type is required") {
		t.Errorf("expected brake type error, got %v", r.Errors)
	}
}

func TestCheckVehicleDataOptionalFields(t *testing.T) {
	// Zero means the optional field was never filled in.
	v := completeVehicleData()
	v.TechnicalData.Power = 0
	v.TechnicalData.Voltage = 0
	if r := CheckVehicleDataAt(v, commissionNow); !r.Valid {
		t.Errorf("expected unset optional fields to pass, got %v", r.Errors)
	}

	v.TechnicalData.Voltage = -3000
	r := CheckVehicleDataAt(v, commissionNow)
	if !hasError(r.Errors, "Voltage cannot be negative") {
		t.Errorf("expected negative voltage error, got %v", r.Errors)
	}
}

func TestCheckProtocolReportsVehicleDataBounds(t *testing.T) {
	p := completeProtocol()
	p.VehicleData.TechnicalData.MaxSpeed = -120
	p.VehicleData.TechnicalData.Weight = -1

	v := CheckProtocolAt(p, commissionNow)
	if v.IsValid {
		t.Fatal("expected protocol with implausible technical data to be invalid")
	}
	if !hasError(v.Errors, "Maximum speed must be greater than 0") {
		t.Errorf("expected speed error in the aggregate verdict, got %v", v.Errors)
	}
	if !hasError(v.Errors, "Vehicle weight must be greater than 0") {
		t.Errorf("expected weight error in the aggregate verdict, got %v", v.Errors)
	}
}

func TestCheckSectionVehicleData(t *testing.T) {
	p := completeProtocol()
	r, ok := CheckSection("vehicleData", p)
	if !ok || !r.Valid {
		t.Errorf("expected vehicleData section of a complete protocol to pass, got %v", r.Errors)
	}

	p.VehicleData.TechnicalData.AxleLoad = 35
	r, ok = CheckSection("vehicleData", p)
	if !ok || r.Valid || !hasError(r.Errors, "Invalid axle load") {
		t.Errorf("expected axle load error through section dispatch, got %v", r.Errors)
	}
}
