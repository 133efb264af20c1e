package validation

import (
	"fmt"
	"strings"
	"time"

	"tca/internal/types"
)

const (
	// MinCommissionSize is the smallest commission allowed to assess
	MinCommissionSize = 2
	// MaxCommissionSize is the largest commission allowed to assess
	MaxCommissionSize = 10
)

// chairmanQualifications is the technical subset at least one of which the
// chairman must hold
var chairmanQualifications = []types.Qualification{
	types.QualEngineer,
	types.QualMasterEngineer,
	types.QualRailwayAppraiser,
}

// CheckCommission validates the commission composition rules against the
// current wall clock. See CheckCommissionAt.
func CheckCommission(members []types.CommissionMember) SectionResult {
	return CheckCommissionAt(members, time.Now())
}

// CheckCommissionAt evaluates every composition rule independently:
// cardinality, exactly one chairman, chairman qualifications, presence of
// a technical expert, license validity as of now, and the same-employer
// conflict-of-interest rule.
func CheckCommissionAt(members []types.CommissionMember, now time.Time) SectionResult {
	var errors []string

	if len(members) < MinCommissionSize {
		errors = append(errors, fmt.Sprintf("Commission must have at least %d members", MinCommissionSize))
	}
	if len(members) > MaxCommissionSize {
		errors = append(errors, fmt.Sprintf("Commission cannot have more than %d members", MaxCommissionSize))
	}

	var chairmen []types.CommissionMember
	for _, m := range members {
		if m.Role == types.RoleChairman {
			chairmen = append(chairmen, m)
		}
	}
	switch {
	case len(chairmen) == 0:
		errors = append(errors, "Commission must have a chairman")
	case len(chairmen) > 1:
		errors = append(errors, "Commission can have only one chairman")
	default:
		qualified := false
		for _, q := range chairmanQualifications {
			if chairmen[0].HasQualification(q) {
				qualified = true
				break
			}
		}
		if !qualified {
			errors = append(errors, "Commission chairman must hold appropriate technical qualifications")
		}
	}

	hasExpert := false
	for _, m := range members {
		if m.Role == types.RoleExpert || m.Role == types.RoleAppraiser {
			hasExpert = true
			break
		}
	}
	if !hasExpert {
		errors = append(errors, "Commission must include at least one technical expert")
	}

	for _, m := range members {
		if m.LicenseExpiry != nil && m.LicenseExpiry.Before(now) {
			errors = append(errors, fmt.Sprintf("Commission member %s has an expired license", m.FullName()))
		}
	}

	if len(members) > 1 {
		companies := make(map[string]struct{})
		for _, m := range members {
			companies[strings.ToLower(m.Company)] = struct{}{}
		}
		if len(companies) == 1 {
			errors = append(errors, "All commission members come from the same company, which is a possible conflict of interest")
		}
	}

	return SectionResult{Valid: len(errors) == 0, Errors: errors}
}

// CheckSignatures validates that every recorded signature references a
// commission member and that signed signatures carry all four accepted
// declarations. Used for section-scoped display; the aggregate check only
// reports missing signatures as a warning.
func CheckSignatures(p *types.Protocol) SectionResult {
	var errors []string

	memberIDs := make(map[string]struct{}, len(p.Commission))
	for _, m := range p.Commission {
		memberIDs[m.ID] = struct{}{}
	}

	for _, sig := range p.Signatures {
		if sig.MemberID == "" {
			errors = append(errors, "Signature is not linked to a commission member")
			continue
		}
		if _, ok := memberIDs[sig.MemberID]; !ok {
			errors = append(errors, fmt.Sprintf("Signature references unknown commission member %s", sig.MemberID))
		}
		if sig.Status == types.SignatureSigned && !sig.Declarations.Complete() {
			errors = append(errors, fmt.Sprintf("Signature of member %s is missing mandatory declarations", sig.MemberID))
		}
	}

	return SectionResult{Valid: len(errors) == 0, Errors: errors}
}
