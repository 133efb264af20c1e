package validation

import (
	"fmt"
	"strings"

	"tca/internal/types"
)

// ConditionalAcceptanceMarker is the notes convention that lets a protocol
// with a critically unfit point still pass, given explicit justification.
const ConditionalAcceptanceMarker = "conditional acceptance"

// MandatoryPoints are the technical-state points that must always be
// assessed and may never be marked not applicable.
var MandatoryPoints = []string{"a", "b", "c", "d", "e", "f"}

// structurallyCriticalPoints are the points whose unfit condition blocks
// acceptance: load-bearing structure, running gear, wheels and brakes.
var structurallyCriticalPoints = map[string]bool{
	"a": true,
	"c": true,
	"d": true,
	"e": true,
}

// CheckTechnicalState validates the technical-state table: presence of all
// mandatory points, the unfit-requires-notes rule, the prohibition of
// not-applicable on mandatory points, and the conditional-acceptance rule
// for critically unfit points. Each rule reports independently.
func CheckTechnicalState(items []types.TechnicalStateItem) SectionResult {
	var errors []string

	if len(items) == 0 {
		errors = append(errors, "At least one technical state element must be assessed")
	}

	assessed := make(map[string]bool, len(items))
	for _, item := range items {
		assessed[item.Point] = true
	}
	for _, point := range MandatoryPoints {
		if !assessed[point] {
			errors = append(errors, fmt.Sprintf("Mandatory point %q has not been assessed", point))
		}
	}

	criticalUnfit := false
	justified := false
	for _, item := range items {
		if item.Condition == types.ConditionUnfit && structurallyCriticalPoints[item.Point] {
			criticalUnfit = true
		}
		if strings.Contains(strings.ToLower(item.Notes), ConditionalAcceptanceMarker) {
			justified = true
		}
	}
	if criticalUnfit && !justified {
		errors = append(errors, "Vehicle with unfit load-bearing structure, running gear, wheels or brakes requires conditional acceptance justification")
	}

	for _, item := range items {
		if item.Condition == types.ConditionUnfit && item.Notes == "" {
			errors = append(errors, fmt.Sprintf("Point %q assessed as unfit requires justification in notes", item.Point))
		}
		if item.Condition == types.ConditionNotApplicable && isMandatoryPoint(item.Point) {
			errors = append(errors, fmt.Sprintf("Point %q is mandatory and cannot be marked as not applicable", item.Point))
		}
	}

	return SectionResult{Valid: len(errors) == 0, Errors: errors}
}

func isMandatoryPoint(point string) bool {
	for _, p := range MandatoryPoints {
		if p == point {
			return true
		}
	}
	return false
}
