// Package templates provides the standard descriptions for the
// technical-state assessment points and per-series vehicle templates with
// typical findings. The point list a through q follows the annex 8
// assessment table used on the national rail network.
package templates

import (
	"github.com/google/uuid"

	"tca/internal/types"
)

// Points lists the assessment point letters in table order
var Points = []string{
	"a", "b", "c", "d", "e", "f", "g", "h", "i",
	"j", "k", "l", "m", "n", "o", "p", "q",
}

// PointDescriptions are the generic descriptions of the assessment points
var PointDescriptions = map[string]string{
	"a": "Load-bearing structure (main frame, underframes, cross beams)",
	"b": "Body structure (walls, roof, windows, doors)",
	"c": "Running gear (bogies, axles, bearings, suspension)",
	"d": "Railway wheels (running surfaces, tyres, wheelsets)",
	"e": "Brake system (cylinders, piping, shoes, discs)",
	"f": "Couplers and draw gear (automatic couplers, buffers)",
	"g": "Traction electrical system (motors, converters, pantographs)",
	"h": "Auxiliary electrical system (lighting, heating, ventilation)",
	"i": "Diesel drive system (engine, gearbox, radiators)",
	"j": "Pneumatic and hydraulic systems (compressors, reservoirs, valves)",
	"k": "Driver's cab (control desk, seats, safety systems)",
	"l": "Interior equipment (seats, handrails, information boards)",
	"m": "Safety systems (automatic train stop, radio-stop, sensors)",
	"n": "Control and measuring equipment (gauges, meters, recorders)",
	"o": "Sanitary installations (toilets, washbasins, tanks)",
	"p": "Special equipment (air conditioning, PA system, passenger information)",
	"q": "General cleanliness and vehicle marking condition",
}

// detailedDescriptions refine the generic point descriptions for the
// vehicle types that have a standard assessment profile. Types without a
// profile fall back to the electric locomotive profile, matching
// established assessment practice for traction vehicles.
var detailedDescriptions = map[types.VehicleType]map[string]string{
	types.VehicleElectricLocomotive: {
		"a": "Main frame, welded steel structure, traction motor mounts, main transformer mounts, longitudinal and cross beams",
		"b": "Machine body, side and front walls, roof with pantograph mounts, cab windows, machine room and cab doors",
		"c": "Motor and trailing bogies, bogie frames, primary and secondary suspension, wheelset guides, dampers",
		"d": "Driving wheelsets, monoblock wheels, axles, roller bearings, traction gearboxes",
		"e": "Electrodynamic and pneumatic brake, braking resistors, brake cylinders, composite shoes, brake piping",
		"f": "Automatic couplers, coupler heads, shock absorbers, pneumatic and electric jumper connections",
		"g": "Electric drive, asynchronous traction motors, traction converters, pantographs, main transformer",
		"h": "Auxiliary circuits, auxiliary converters, electric heating, LED lighting, cooling fans",
		"i": "Not applicable, electric traction vehicle",
		"j": "Main compressor, main and auxiliary air reservoirs, reducing valves, air dryer",
		"k": "Driver's cab, control desk, seats, automatic train stop and vigilance systems, cab radio",
		"l": "Not applicable, locomotive without passenger compartments",
		"m": "Automatic train stop, active vigilance device, radio-stop system, hot axle box detectors",
		"n": "Digital meters, ammeters, voltmeters, pressure gauges, ride parameter recorders",
		"o": "Not applicable, no sanitary installations on the locomotive",
		"p": "Cab air conditioning, on-board diagnostics, GSM-R radio communication",
		"q": "Paintwork per network livery rules, UIC markings, warning boards, overall cleanliness",
	},
	types.VehicleDieselLocomotive: {
		"a": "Main frame, welded steel structure, diesel engine and generator mounts, longitudinal and cross beams",
		"b": "Machine body, engine compartment with ventilation grilles, driver's cab, service doors",
		"c": "Motor bogies, welded construction, leaf and rubber suspension, axle guides, vibration dampers",
		"d": "Wheelsets, solid or tyred wheels, axles, plain or roller bearings, axle boxes",
		"e": "Pneumatic brake, brake cylinder, cast iron or composite shoes, piping, valves",
		"f": "Screw or automatic couplers, buffing and draw gear, buffer springs, safety chains",
		"g": "Main DC generator, voltage regulators, diesel engine starter, batteries",
		"h": "24V installation, lighting, signalling, cab heating, generator cooling fans",
		"i": "Diesel engine, cylinder block, injection pump, turbocharger, radiators",
		"j": "Air compressor, main and auxiliary reservoirs, pressure regulators, air dryers",
		"k": "Driver's cab, drive controller, driver's brake valve, pressure gauges, temperature and rpm meters",
		"l": "Not applicable, locomotive without passenger compartments",
		"m": "Mechanical vigilance device, alarm signal, engine overload protection",
		"n": "Pneumatic pressure gauges, thermometers, engine tachometer, analogue current and voltage meters",
		"o": "Not applicable, no sanitary installations",
		"p": "Independent cab heating, forced engine compartment ventilation, analogue radio",
		"q": "Anti-corrosion protective paintwork, service markings, engine compartment cleanliness",
	},
	types.VehicleElectricMultiple: {
		"a": "Load-bearing structure of motor and trailer cars, aluminium or steel profiles, welded and riveted joints",
		"b": "Car bodies, outer walls, safety glazing, automatic passenger doors, compartments",
		"c": "Motor and trailing bogies, welded construction, pneumatic suspension, anti-roll bars",
		"d": "Wheelsets, brake-resistant wheels, S1002 profiles, roller bearings, hot box detectors",
		"e": "Electrodynamic and pneumatic brake, roof resistors, brake cylinders, brake discs",
		"f": "Fixed intermediate couplers, automatic couplers at unit ends, shock absorbers",
		"g": "Asynchronous motors, traction inverters, pantographs, transformers, filter circuits",
		"h": "Auxiliary converters, LED lighting, air conditioning, electric compartment heating",
		"i": "Not applicable, electric traction",
		"j": "Oil-free compressors, air reservoirs, regulators, door control valves",
		"k": "Driver's cab, microprocessor control desk, safety systems, ergonomic seats",
		"l": "Passenger seats, handrails, information boards, anti-slip floors, interior lighting",
		"m": "Automatic train stop and vigilance, radio-stop, wheel slide protection, door sensors, train management system",
		"n": "On-board computers, LCD displays, diagnostic systems, parameter recorders",
		"o": "Passenger toilets with recirculation, washbasins, waste tanks, vacuum pumps",
		"p": "Comfort air conditioning, passenger information system, Wi-Fi, 230V sockets, PA system",
		"q": "Operator livery paintwork, interior cleanliness, marking serviceability",
	},
	types.VehiclePassengerWagon: {
		"a": "Welded steel underframe, main longitudinal beams, cross bearers, bogie mounts",
		"b": "Body, steel or aluminium construction, windows, entrance doors, passenger compartments",
		"c": "Passenger bogies of Y25 or similar type, multi-stage suspension, roll dampers",
		"d": "Standard wheelsets, monoblock wheels, axles, roller bearings, axle boxes",
		"e": "Pneumatic brake, cylinder, composite shoes, pads, piping, valves",
		"f": "Screw couplers with buffing and draw gear, buffer springs, chains",
		"g": "Not applicable, wagon without own drive",
		"h": "1000V or 3000V electrical installation, lighting, heating, sockets, wiring",
		"i": "Not applicable, no diesel drive",
		"j": "Brake piping, end cocks, isolating valves, inter-car connections",
		"k": "Not applicable, no driver's cab",
		"l": "Passenger seats, tables, luggage racks, handrails, floors, upholstery, lighting",
		"m": "Alarm installation, fire extinguishers, emergency hammers, evacuation instructions",
		"n": "Not applicable, no measuring equipment",
		"o": "Toilets with gravity or recirculation system, washbasins, mirrors, dispensers",
		"p": "Electric or steam heating, natural or forced ventilation, blinds",
		"q": "Exterior and interior paintwork condition, cleanliness, marking completeness",
	},
}

// Template carries the per-series assessment template
type Template struct {
	Series         types.VehicleSeries
	VehicleType    types.VehicleType
	SpecificPoints []string
	CommonDefects  []string
}

// seriesTemplates are the series with an established assessment template
var seriesTemplates = map[types.VehicleSeries]Template{
	"ET22": {
		Series:      "ET22",
		VehicleType: types.VehicleElectricLocomotive,
		SpecificPoints: []string{
			"Main transformer type OLMb 3150/25",
			"Traction motors type 1LM315M",
			"IGBT static converters",
			"Pantographs type 5ZU with 1600mm heads",
		},
		CommonDefects: []string{
			"Brake shoe wear",
			"Oil leaks from traction gearboxes",
			"Wheel tyre wear",
			"Main transformer cooling problems",
		},
	},
	"EU07": {
		Series:      "EU07",
		VehicleType: types.VehicleElectricLocomotive,
		SpecificPoints: []string{
			"Main transformer type OLMb 2500/25",
			"Six traction motors type LK450",
			"Silicon rectifiers type VPKSz",
			"Pantographs type 95NA",
		},
		CommonDefects: []string{
			"Traction motor brush wear",
			"Oil leaks from bearings",
			"Body corrosion",
			"Main gearbox wear",
		},
	},
	"EN57": {
		Series:      "EN57",
		VehicleType: types.VehicleElectricMultiple,
		SpecificPoints: []string{
			"Three-car formation (motor + trailer + motor)",
			"Traction motors 4 x 185kW",
			"Electrodynamic brake",
			"Pneumatically operated automatic doors",
		},
		CommonDefects: []string{
			"Door guide wear",
			"Pneumatic system problems",
			"Seat upholstery wear",
			"LED lighting faults",
		},
	},
	"EN71": {
		Series:      "EN71",
		VehicleType: types.VehicleElectricMultiple,
		SpecificPoints: []string{
			"Modernized formation with air conditioning",
			"Asynchronous motors controlled by IGBT inverters",
			"LCD passenger information system",
			"Interior video monitoring",
		},
		CommonDefects: []string{
			"Air conditioning faults",
			"Passenger information display problems",
			"Brake pad wear",
			"Door sensor faults",
		},
	},
}

// commonDefectsByType are the typical findings when no series template
// applies
var commonDefectsByType = map[types.VehicleType][]string{
	types.VehicleElectricLocomotive: {
		"Traction motor brush wear",
		"Oil leaks from gearboxes",
		"Wheel tyre wear",
		"Main transformer problems",
		"Pantograph faults",
	},
	types.VehicleDieselLocomotive: {
		"Diesel engine wear",
		"Main generator problems",
		"Operating fluid leaks",
		"Brake system wear",
		"Structural corrosion",
	},
	types.VehicleElectricMultiple: {
		"Automatic door faults",
		"Air conditioning problems",
		"Interior equipment wear",
		"Information system faults",
		"Brake problems",
	},
	types.VehiclePassengerWagon: {
		"Interior equipment wear",
		"Sanitary installation leaks",
		"Heating problems",
		"Brake system wear",
		"Structural corrosion",
	},
}

// Description returns the assessment point description for the vehicle
// type, falling back to the generic point description when the type has
// no detailed profile or the point is unknown.
func Description(vehicleType types.VehicleType, point string) string {
	if profile, ok := detailedDescriptions[vehicleType]; ok {
		if d, ok := profile[point]; ok {
			return d
		}
	}
	return PointDescriptions[point]
}

// DefaultTechnicalState builds the full a-q assessment table for a
// vehicle type. Every point starts fit with medium criticality; the
// descriptions come from the type's detailed profile where one exists.
func DefaultTechnicalState(vehicleType types.VehicleType) []types.TechnicalStateItem {
	items := make([]types.TechnicalStateItem, 0, len(Points))
	for _, point := range Points {
		items = append(items, types.TechnicalStateItem{
			ID:          "tech-" + point + "-" + uuid.New().String(),
			Point:       point,
			Description: Description(vehicleType, point),
			Condition:   types.ConditionFit,
			Criticality: types.CriticalityMedium,
		})
	}
	return items
}

// ForSeries returns the template registered for a vehicle series, or nil
func ForSeries(series types.VehicleSeries) *Template {
	if t, ok := seriesTemplates[series]; ok {
		return &t
	}
	return nil
}

// CommonDefects returns the typical findings for a series, falling back
// to the per-type list when the series has no template.
func CommonDefects(vehicleType types.VehicleType, series types.VehicleSeries) []string {
	if t := ForSeries(series); t != nil {
		return t.CommonDefects
	}
	return commonDefectsByType[vehicleType]
}
