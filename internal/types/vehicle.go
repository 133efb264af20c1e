package types

import "time"

// VehicleType represents the fixed classification of railway vehicles
type VehicleType string

const (
	VehicleElectricLocomotive VehicleType = "electric_locomotive"
	VehicleDieselLocomotive   VehicleType = "diesel_locomotive"
	VehicleSteamLocomotive    VehicleType = "steam_locomotive"
	VehicleElectricMultiple   VehicleType = "electric_multiple_unit"
	VehicleDieselMultiple     VehicleType = "diesel_multiple_unit"
	VehiclePassengerWagon     VehicleType = "passenger_wagon"
	VehicleFreightWagon       VehicleType = "freight_wagon"
	VehicleSpecialWagon       VehicleType = "special_wagon"
	VehicleDraisine           VehicleType = "draisine"
	VehicleServiceVehicle     VehicleType = "service_vehicle"
)

// VehicleTypes lists every known vehicle type in display order
var VehicleTypes = []VehicleType{
	VehicleElectricLocomotive,
	VehicleDieselLocomotive,
	VehicleSteamLocomotive,
	VehicleElectricMultiple,
	VehicleDieselMultiple,
	VehiclePassengerWagon,
	VehicleFreightWagon,
	VehicleSpecialWagon,
	VehicleDraisine,
	VehicleServiceVehicle,
}

// Valid reports whether the vehicle type is one of the ten known categories
func (v VehicleType) Valid() bool {
	for _, t := range VehicleTypes {
		if v == t {
			return true
		}
	}
	return false
}

// VehicleSeries represents a known series designation, or SeriesOther for
// anything outside the fixed list
type VehicleSeries string

// SeriesOther marks a series outside the known enumeration
const SeriesOther VehicleSeries = "other"

// KnownSeries lists the fixed series codes grouped by traction kind
var KnownSeries = []VehicleSeries{
	// Electric locomotives
	"ET22", "ET25", "EU07", "EU46", "EP08", "EP09",
	// Diesel locomotives
	"ST43", "ST44", "ST45", "SM31", "SM42",
	// Electric multiple units
	"EN57", "EN71", "EN76", "ED72", "ED74",
	// Diesel multiple units
	"SA104", "SA105", "SA106", "SA108",
}

// Valid reports whether the series is a known code or SeriesOther
func (s VehicleSeries) Valid() bool {
	if s == SeriesOther {
		return true
	}
	for _, k := range KnownSeries {
		if s == k {
			return true
		}
	}
	return false
}

// OwnershipStatus represents who holds the vehicle
type OwnershipStatus string

const (
	OwnershipOwned   OwnershipStatus = "owned"
	OwnershipLeased  OwnershipStatus = "leased"
	OwnershipRented  OwnershipStatus = "rented"
	OwnershipForeign OwnershipStatus = "foreign"
)

// OperationalStatus represents the current service state of the vehicle
type OperationalStatus string

const (
	OperationalActive        OperationalStatus = "active"
	OperationalFaulty        OperationalStatus = "faulty"
	OperationalRunningRepair OperationalStatus = "running_repair"
	OperationalMajorRepair   OperationalStatus = "major_repair"
	OperationalSidelined     OperationalStatus = "sidelined"
	OperationalWithdrawn     OperationalStatus = "withdrawn"
	OperationalReserve       OperationalStatus = "reserve"
)

// VehicleIdentification holds the identifying marks of a vehicle
type VehicleIdentification struct {
	VehicleNumber      string        `json:"vehicleNumber"`
	InventoryNumber    string        `json:"inventoryNumber,omitempty"`
	Series             VehicleSeries `json:"series"`
	Manufacturer       string        `json:"manufacturer"`
	ProductionYear     int           `json:"productionYear"`
	FactoryNumber      string        `json:"factoryNumber,omitempty"`
	UICNumber          string        `json:"uicNumber,omitempty"`
	AdditionalMarkings []string      `json:"additionalMarkings,omitempty"`
}

// VehicleTechnicalData holds dimensions, masses and traction parameters.
// Units follow railway practice: lengths in mm, masses in kg, axle load in
// tonnes, speed in km/h, power in kW.
type VehicleTechnicalData struct {
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
	MaxWeight float64 `json:"maxWeight,omitempty"`

	Power         float64 `json:"power,omitempty"`
	MaxSpeed      float64 `json:"maxSpeed"`
	TractionForce float64 `json:"tractionForce,omitempty"`

	Voltage float64 `json:"voltage,omitempty"`
	Current float64 `json:"current,omitempty"`

	EngineType   string  `json:"engineType,omitempty"`
	EnginePower  float64 `json:"enginePower,omitempty"`
	FuelCapacity float64 `json:"fuelCapacity,omitempty"`

	WheelArrangement string  `json:"wheelArrangement,omitempty"`
	AxleLoad         float64 `json:"axleLoad"`
	Gauge            float64 `json:"gauge"` // standard gauge is 1435 mm

	BrakeType  []string `json:"brakeType"`
	BrakeForce float64  `json:"brakeForce,omitempty"`

	Equipment     []string `json:"equipment,omitempty"`
	SafetyDevices []string `json:"safetyDevices,omitempty"`
}

// VehicleData is the embedded snapshot of the assessed vehicle
type VehicleData struct {
	Identification VehicleIdentification `json:"identification"`

	VehicleType VehicleType `json:"vehicleType"`
	Category    string      `json:"category,omitempty"`

	TechnicalData VehicleTechnicalData `json:"technicalData"`

	OwnershipStatus   OwnershipStatus   `json:"ownershipStatus"`
	OperationalStatus OperationalStatus `json:"operationalStatus"`
	CurrentLocation   string            `json:"currentLocation,omitempty"`
	AssignedDepot     string            `json:"assignedDepot,omitempty"`

	CommissioningDate *time.Time `json:"commissioningDate,omitempty"`
	LastOverhaul      *time.Time `json:"lastOverhaul,omitempty"`
	LastInspection    *time.Time `json:"lastInspection,omitempty"`
	Mileage           float64    `json:"mileage,omitempty"`
	OperatingHours    float64    `json:"operatingHours,omitempty"`

	TechnicalDocumentation []string `json:"technicalDocumentation"`
	Certificates           []string `json:"certificates"`
	Modifications          []string `json:"modifications,omitempty"`

	SpecialConditions []string `json:"specialConditions,omitempty"`
	Limitations       []string `json:"limitations,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}
