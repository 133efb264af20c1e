package main

import (
	"fmt"
	"strings"
	"time"

	"tca/internal/autosave"
	"tca/internal/errors"
	"tca/internal/types"

	"github.com/spf13/cobra"
)

var (
	editSet        []string
	editPoint      []string
	editPointNotes []string
)

var editCmd = &cobra.Command{
	Use:   "edit <protocol-id>",
	Short: "Apply field updates to a protocol",
	Long: `Applies one or more field updates. Scalar fields are set with repeated
--set key=value flags (keys: number, depot, location, reason,
legal-basis, notes, summary). Technical state points are updated with
--point <letter>=<condition> and --point-notes <letter>=<text>.

Updates flow through the debounced auto-save, mirroring form editing:
a burst of changes results in a single write.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringArrayVar(&editSet, "set", nil, "Set a scalar field, key=value")
	editCmd.Flags().StringArrayVar(&editPoint, "point", nil, "Set a technical state point's condition, letter=condition")
	editCmd.Flags().StringArrayVar(&editPointNotes, "point-notes", nil, "Set a technical state point's notes, letter=text")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	dataDir := mustGetDataDir()
	store, cfg := getStore(dataDir)
	defer closeStore()

	p := store.GetByID(args[0])
	if p == nil {
		return errors.New(errors.ProtocolNotFound, fmt.Sprintf("no protocol with id %s", args[0]), nil).
			WithDetails(errors.SuggestedAction(errors.ProtocolNotFound))
	}

	delay := time.Duration(cfg.AutoSave.DelayMs) * time.Millisecond
	if !cfg.AutoSave.Enabled || !store.Settings().AutoSave {
		delay = 0
	}
	debouncer := autosave.NewDebouncer(func(p *types.Protocol) bool {
		return store.Save(p)
	}, delay, newLogger(cfg))

	applied := 0
	for _, kv := range editSet {
		key, value, ok := splitPair(kv)
		if !ok {
			return errors.New(errors.ValidationFailed, fmt.Sprintf("invalid --set %q, expected key=value", kv), nil)
		}
		if err := setField(p, key, value); err != nil {
			return err
		}
		debouncer.Trigger(p)
		applied++
	}

	for _, kv := range editPoint {
		point, value, ok := splitPair(kv)
		if !ok {
			return errors.New(errors.ValidationFailed, fmt.Sprintf("invalid --point %q, expected letter=condition", kv), nil)
		}
		condition := types.Condition(value)
		if !condition.Valid() {
			return errors.New(errors.ValidationFailed, fmt.Sprintf("unknown condition %q", value), nil)
		}
		item := findPoint(p, point)
		if item == nil {
			return errors.New(errors.ValidationFailed, fmt.Sprintf("no technical state point %q on this protocol", point), nil)
		}
		item.Condition = condition
		debouncer.Trigger(p)
		applied++
	}

	for _, kv := range editPointNotes {
		point, value, ok := splitPair(kv)
		if !ok {
			return errors.New(errors.ValidationFailed, fmt.Sprintf("invalid --point-notes %q, expected letter=text", kv), nil)
		}
		item := findPoint(p, point)
		if item == nil {
			return errors.New(errors.ValidationFailed, fmt.Sprintf("no technical state point %q on this protocol", point), nil)
		}
		item.Notes = value
		debouncer.Trigger(p)
		applied++
	}

	// Flushes the pending save before the process exits.
	debouncer.Close()

	if applied == 0 {
		fmt.Println("Nothing to update. See 'tca edit --help' for the available flags.")
		return nil
	}
	fmt.Printf("Applied %d updates to %s\n", applied, p.ProtocolNumber)
	return nil
}

func splitPair(s string) (string, string, bool) {
	key, value, found := strings.Cut(s, "=")
	if !found || key == "" {
		return "", "", false
	}
	return key, value, true
}

func setField(p *types.Protocol, key, value string) error {
	switch key {
	case "number":
		p.ProtocolNumber = value
	case "depot":
		p.Depot = value
	case "location":
		p.Location = value
	case "reason":
		p.InspectionReason = value
	case "legal-basis":
		p.LegalBasis = value
	case "notes":
		p.GeneralNotes = value
	case "summary":
		p.Summary = value
	default:
		return errors.New(errors.ValidationFailed, fmt.Sprintf("unknown field %q", key), nil)
	}
	return nil
}

func findPoint(p *types.Protocol, point string) *types.TechnicalStateItem {
	for i := range p.TechnicalState {
		if p.TechnicalState[i].Point == point {
			return &p.TechnicalState[i]
		}
	}
	return nil
}
