package main

import (
	"fmt"
	"time"

	"tca/internal/errors"
	"tca/internal/types"

	"github.com/spf13/cobra"
)

var (
	listStatus         []string
	listVehicleType    []string
	listAssessmentType []string
	listDepot          string
	listNumber         string
	listFrom           string
	listTo             string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored protocols",
	Long:  "Lists protocols, optionally narrowed by status, vehicle type, assessment type, depot, number fragment, or issue date range. All given filters are combined with AND.",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringSliceVar(&listStatus, "status", nil, "Filter by status (draft, completed, approved, archived)")
	listCmd.Flags().StringSliceVar(&listVehicleType, "vehicle-type", nil, "Filter by vehicle type")
	listCmd.Flags().StringSliceVar(&listAssessmentType, "type", nil, "Filter by assessment type (P4, P5)")
	listCmd.Flags().StringVar(&listDepot, "depot", "", "Filter by depot (substring match)")
	listCmd.Flags().StringVar(&listNumber, "number", "", "Filter by protocol number (substring match)")
	listCmd.Flags().StringVar(&listFrom, "from", "", "Only protocols issued on or after this date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listTo, "to", "", "Only protocols issued on or before this date (YYYY-MM-DD)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	filters, err := buildFilters()
	if err != nil {
		return err
	}

	dataDir := mustGetDataDir()
	store, _ := getStore(dataDir)
	defer closeStore()

	protocols := store.Filter(filters)

	resp := &ListResponseCLI{
		Total:     len(protocols),
		Protocols: make([]ProtocolSummaryCLI, 0, len(protocols)),
	}
	for _, p := range protocols {
		resp.Protocols = append(resp.Protocols, summarize(p))
	}

	out, err := FormatResponse(resp, outputFormat())
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func buildFilters() (types.ProtocolFilters, error) {
	var filters types.ProtocolFilters

	for _, s := range listStatus {
		status := types.ProtocolStatus(s)
		if !status.Valid() {
			return filters, errors.New(errors.ValidationFailed, fmt.Sprintf("unknown status %q", s), nil)
		}
		filters.Status = append(filters.Status, status)
	}
	for _, s := range listVehicleType {
		vt := types.VehicleType(s)
		if !vt.Valid() {
			return filters, errors.New(errors.ValidationFailed, fmt.Sprintf("unknown vehicle type %q", s), nil)
		}
		filters.VehicleType = append(filters.VehicleType, vt)
	}
	for _, s := range listAssessmentType {
		at := types.AssessmentType(s)
		if !at.Valid() {
			return filters, errors.New(errors.ValidationFailed, fmt.Sprintf("unknown assessment type %q", s), nil)
		}
		filters.AssessmentType = append(filters.AssessmentType, at)
	}

	filters.Depot = listDepot
	filters.ProtocolNumber = listNumber

	if listFrom != "" {
		from, err := time.Parse("2006-01-02", listFrom)
		if err != nil {
			return filters, errors.New(errors.ValidationFailed, "invalid --from date, expected YYYY-MM-DD", err)
		}
		filters.DateFrom = &from
	}
	if listTo != "" {
		to, err := time.Parse("2006-01-02", listTo)
		if err != nil {
			return filters, errors.New(errors.ValidationFailed, "invalid --to date, expected YYYY-MM-DD", err)
		}
		filters.DateTo = &to
	}

	return filters, nil
}
