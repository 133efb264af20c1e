package main

import (
	"fmt"

	"tca/internal/errors"
	"tca/internal/templates"
	"tca/internal/types"

	"github.com/spf13/cobra"
)

var (
	newAssessmentType string
	newNumber         string
	newDepot          string
	newLocation       string
	newReason         string
	newVehicleType    string
	newSeries         string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new assessment protocol",
	Long: `Creates a draft protocol. The protocol number is assigned from the depot
sequence unless --number is given, and the technical state table is
pre-filled from the vehicle type profile when --vehicle-type is set.`,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newAssessmentType, "type", "t", "P4", "Assessment type: P4 or P5")
	newCmd.Flags().StringVarP(&newNumber, "number", "n", "", "Protocol number (default: next in depot sequence)")
	newCmd.Flags().StringVarP(&newDepot, "depot", "d", "", "Depot code (default from config)")
	newCmd.Flags().StringVarP(&newLocation, "location", "l", "", "Assessment location (default from config)")
	newCmd.Flags().StringVar(&newReason, "reason", "", "Inspection reason")
	newCmd.Flags().StringVar(&newVehicleType, "vehicle-type", "", "Vehicle type to pre-fill the technical state table")
	newCmd.Flags().StringVar(&newSeries, "series", "", "Vehicle series designation (for example EU07)")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	assessmentType := types.AssessmentType(newAssessmentType)
	if !assessmentType.Valid() {
		return errors.New(errors.ValidationFailed, fmt.Sprintf("unknown assessment type %q, expected P4 or P5", newAssessmentType), nil)
	}

	dataDir := mustGetDataDir()
	store, cfg := getStore(dataDir)
	defer closeStore()

	p := types.NewProtocol(assessmentType)
	p.Depot = newDepot
	if p.Depot == "" {
		p.Depot = cfg.Defaults.Depot
	}
	p.Location = newLocation
	if p.Location == "" {
		p.Location = cfg.Defaults.Location
	}
	p.InspectionReason = newReason
	p.LegalBasis = cfg.Defaults.LegalBasis

	p.ProtocolNumber = newNumber
	if p.ProtocolNumber == "" && p.Depot != "" {
		p.ProtocolNumber = store.NextProtocolNumber(p.Depot)
	}

	if newVehicleType != "" {
		vehicleType := types.VehicleType(newVehicleType)
		if !vehicleType.Valid() {
			return errors.New(errors.ValidationFailed, fmt.Sprintf("unknown vehicle type %q", newVehicleType), nil)
		}
		p.VehicleData = &types.VehicleData{
			VehicleType: vehicleType,
			Identification: types.VehicleIdentification{
				Series: types.SeriesOther,
			},
			AssignedDepot: p.Depot,
		}
		if newSeries != "" {
			p.VehicleData.Identification.Series = types.VehicleSeries(newSeries)
		}
		p.TechnicalState = templates.DefaultTechnicalState(vehicleType)
	}

	if !store.Save(p) {
		return errors.New(errors.StorageWriteFailed, "Failed to save the new protocol", nil)
	}

	settings := store.Settings()
	settings.LastProtocolNumber = p.ProtocolNumber
	store.SaveSettings(settings)

	if outputFormat() == FormatHuman {
		number := p.ProtocolNumber
		if number == "" {
			number = "(no number)"
		}
		fmt.Printf("Created protocol %s\n", number)
		fmt.Printf("ID: %s\n", p.ID)
		if len(p.TechnicalState) > 0 {
			fmt.Printf("Technical state table pre-filled with %d points\n", len(p.TechnicalState))
		}
		return nil
	}

	out, err := FormatResponse(p, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
