// Package render produces the printable plain-text form of an assessment
// protocol following the annex 8 section layout. The output is line
// oriented and paginated so it can be printed or archived as-is; a
// validation verdict can be appended for review copies.
package render

import (
	"fmt"
	"strings"
	"time"

	"tca/internal/templates"
	"tca/internal/types"
	"tca/internal/validation"
)

const (
	pageWidth  = 78
	pageHeight = 56

	headerTitle = "RAILWAY VEHICLE TECHNICAL CONDITION ASSESSMENT PROTOCOL"
	dateLayout  = "2006-01-02"
)

// Options control the rendered output
type Options struct {
	// IncludeValidation appends the rule engine verdict to the document
	IncludeValidation bool
	// Now is the render timestamp used in the footer; zero means wall clock
	Now time.Time
}

// Document renders the full protocol as paginated text
func Document(p *types.Protocol, opts Options) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	var b builder
	b.header(p)

	b.section("1-2. BASIC PROTOCOL DATA")
	b.field("Protocol number", orBlank(p.ProtocolNumber))
	b.field("Assessment type", assessmentLabel(p.AssessmentType))
	b.field("Issue date", formatDate(p.IssueDate))
	b.field("Location", orBlank(p.Location))
	b.field("Depot", orBlank(p.Depot))
	b.field("Inspection reason", orBlank(p.InspectionReason))

	b.section("3-4. VEHICLE IDENTIFICATION AND TECHNICAL DATA")
	if v := p.VehicleData; v != nil {
		b.subsection("Identification")
		b.field("Vehicle number", orBlank(v.Identification.VehicleNumber))
		b.field("Series", string(v.Identification.Series))
		b.field("Vehicle type", string(v.VehicleType))
		b.field("Manufacturer", orBlank(v.Identification.Manufacturer))
		if v.Identification.ProductionYear > 0 {
			b.field("Production year", fmt.Sprintf("%d", v.Identification.ProductionYear))
		}
		if v.Identification.UICNumber != "" {
			b.field("UIC number", v.Identification.UICNumber)
		}

		b.subsection("Technical data")
		b.field("Length [mm]", formatNumber(v.TechnicalData.Length))
		b.field("Weight [kg]", formatNumber(v.TechnicalData.Weight))
		b.field("Max speed [km/h]", formatNumber(v.TechnicalData.MaxSpeed))
		b.field("Axle load [t]", formatNumber(v.TechnicalData.AxleLoad))
		b.field("Gauge [mm]", formatNumber(v.TechnicalData.Gauge))
		if len(v.TechnicalData.BrakeType) > 0 {
			b.field("Brake types", strings.Join(v.TechnicalData.BrakeType, ", "))
		}
		b.field("Operational status", string(v.OperationalStatus))
		if v.CurrentLocation != "" {
			b.field("Current location", v.CurrentLocation)
		}
	} else {
		b.line("  (vehicle data not recorded)")
	}

	b.section("5-6. COMMISSION COMPOSITION AND LEGAL BASIS")
	b.subsection("Legal basis")
	b.line("  " + orBlank(p.LegalBasis))
	for _, reg := range p.Regulations {
		b.bullet(reg)
	}
	b.subsection("Commission")
	if len(p.Commission) == 0 {
		b.line("  (commission not appointed)")
	}
	for i, m := range p.Commission {
		b.line(fmt.Sprintf("  %d. %s", i+1, m.FullName()))
		b.line(fmt.Sprintf("     Role: %s", m.Role))
		if m.Position != "" || m.Company != "" {
			b.line(fmt.Sprintf("     Position: %s, %s", m.Position, m.Company))
		}
		if len(m.Qualifications) > 0 {
			quals := make([]string, len(m.Qualifications))
			for j, q := range m.Qualifications {
				quals[j] = string(q)
			}
			b.line("     Qualifications: " + strings.Join(quals, ", "))
		}
	}

	b.section("7. ACCOMPANYING DOCUMENTATION")
	for _, doc := range p.AccompanyingDocuments {
		b.bullet(doc)
	}
	for _, insp := range p.PreviousInspections {
		b.bullet("Previous inspection: " + insp)
	}
	if len(p.AccompanyingDocuments) == 0 && len(p.PreviousInspections) == 0 {
		b.line("  (none recorded)")
	}

	b.section("8. INSPECTION CONDITIONS")
	b.field("Weather", orBlank(p.InspectionConditions.Weather))
	b.field("Temperature [C]", formatNumber(p.InspectionConditions.Temperature))
	if p.InspectionConditions.Other != "" {
		b.field("Other", p.InspectionConditions.Other)
	}

	b.section("9-10. TOOLS AND ASSESSMENT SCOPE")
	for _, tool := range p.ToolsUsed {
		b.bullet("Tool: " + tool)
	}
	for _, dev := range p.MeasuringDevices {
		b.bullet("Measuring device: " + dev)
	}
	for _, scope := range p.AssessmentScope {
		b.bullet("Scope: " + scope)
	}
	if len(p.ToolsUsed) == 0 && len(p.MeasuringDevices) == 0 && len(p.AssessmentScope) == 0 {
		b.line("  (none recorded)")
	}

	b.section("11-15. TECHNICAL STATE ASSESSMENT (POINTS a-q)")
	b.technicalStateTable(p)

	b.section("16. GENERAL NOTES AND RECOMMENDATIONS")
	if p.GeneralNotes != "" {
		b.wrapped(p.GeneralNotes, 2)
	}
	for _, defect := range p.DefectsFound {
		b.bullet("Defect: " + defect)
	}
	for _, rec := range p.Recommendations {
		b.bullet("Recommendation: " + rec)
	}
	if p.RepairNeeded {
		b.line("")
		b.line("  *** VEHICLE REQUIRES REPAIR BEFORE RETURN TO SERVICE ***")
	}

	b.section("17. SIGNATURES OF COMMISSION MEMBERS")
	b.signatureBlocks(p)
	if p.ApprovalDate != nil {
		b.field("Protocol approval date", p.ApprovalDate.Format(dateLayout))
	}

	if opts.IncludeValidation {
		b.verdict(validation.CheckProtocolAt(p, now))
	}

	return b.paginate(p, now)
}

// builder accumulates document lines before pagination
type builder struct {
	lines []string
}

func (b *builder) line(s string) {
	b.lines = append(b.lines, s)
}

func (b *builder) header(p *types.Protocol) {
	b.line(strings.Repeat("=", pageWidth))
	b.line(center(headerTitle))
	num := p.ProtocolNumber
	if num == "" {
		num = "(draft)"
	}
	b.line(center(fmt.Sprintf("No. %s    Assessment type: %s    Status: %s", num, p.AssessmentType, p.Status)))
	b.line(strings.Repeat("=", pageWidth))
}

func (b *builder) section(title string) {
	b.line("")
	b.line(title)
	b.line(strings.Repeat("-", pageWidth))
}

func (b *builder) subsection(title string) {
	b.line("  " + title + ":")
}

func (b *builder) field(label, value string) {
	b.line(fmt.Sprintf("  %-28s %s", label+":", value))
}

func (b *builder) bullet(text string) {
	b.wrapped("* "+text, 2)
}

// wrapped appends text wrapped to the page width with the given indent
func (b *builder) wrapped(text string, indent int) {
	prefix := strings.Repeat(" ", indent)
	width := pageWidth - indent
	for _, line := range wrap(text, width) {
		b.line(prefix + line)
	}
}

func (b *builder) technicalStateTable(p *types.Protocol) {
	if len(p.TechnicalState) == 0 {
		b.line("  (technical state not assessed)")
		return
	}

	b.line(fmt.Sprintf("  %-3s %-44s %-18s %-5s", "Pt", "Element", "Condition", "Crit"))
	b.line("  " + strings.Repeat("-", pageWidth-2))
	for _, item := range p.TechnicalState {
		desc := item.Description
		if desc == "" {
			desc = templates.PointDescriptions[item.Point]
		}
		b.line(fmt.Sprintf("  %-3s %-44s %-18s %-5s",
			item.Point, truncate(desc, 44), conditionLabel(item.Condition), criticalityLabel(item.Criticality)))
		if item.Notes != "" {
			b.wrapped("Notes: "+item.Notes, 6)
		}
	}
}

func (b *builder) signatureBlocks(p *types.Protocol) {
	signedBy := make(map[string]*types.Signature, len(p.Signatures))
	for i := range p.Signatures {
		sig := &p.Signatures[i]
		signedBy[sig.MemberID] = sig
	}

	for _, m := range p.Commission {
		b.line("")
		b.line("  " + strings.Repeat(".", pageWidth-4))
		b.line(fmt.Sprintf("  %s, %s (%s)", m.FullName(), m.Position, m.Company))
		if sig, ok := signedBy[m.ID]; ok && sig.Status == types.SignatureSigned {
			b.line(fmt.Sprintf("  Signed: %s %s at %s (%s)",
				sig.SignatureDate.Format(dateLayout), sig.SignatureTime, sig.Location, sig.Kind))
			if sig.Digital != nil && sig.Digital.Hash != "" {
				b.line(fmt.Sprintf("  Digest: %s (%s)", sig.Digital.Hash, sig.Digital.Algorithm))
			}
		} else {
			b.line("  Signature: ______________________    Date: ______________")
		}
	}
}

func (b *builder) verdict(v types.ProtocolValidation) {
	b.section("VALIDATION VERDICT")
	if v.IsValid {
		b.line("  Result: VALID")
	} else {
		b.line("  Result: INVALID")
	}
	b.field("Completion", fmt.Sprintf("%d%%", v.CompletionPercentage))
	for _, e := range v.Errors {
		b.bullet("Error: " + e)
	}
	for _, w := range v.Warnings {
		b.bullet("Warning: " + w)
	}
	for _, f := range v.MissingFields {
		b.bullet("Missing: " + f)
	}
}

// paginate splits the accumulated lines into pages with a footer on each
func (b *builder) paginate(p *types.Protocol, now time.Time) string {
	bodyHeight := pageHeight - 3
	pages := (len(b.lines) + bodyHeight - 1) / bodyHeight
	if pages == 0 {
		pages = 1
	}

	var out strings.Builder
	for page := 0; page < pages; page++ {
		start := page * bodyHeight
		end := start + bodyHeight
		if end > len(b.lines) {
			end = len(b.lines)
		}
		for _, line := range b.lines[start:end] {
			out.WriteString(line)
			out.WriteByte('\n')
		}
		for filled := end - start; filled < bodyHeight; filled++ {
			out.WriteByte('\n')
		}
		out.WriteString(strings.Repeat("-", pageWidth))
		out.WriteByte('\n')
		out.WriteString(fmt.Sprintf("Protocol %s%sPage %d of %d\n",
			orBlank(p.ProtocolNumber),
			strings.Repeat(" ", 30),
			page+1, pages))
		out.WriteString(fmt.Sprintf("Generated: %s\n", now.Format("2006-01-02 15:04")))
		if page < pages-1 {
			out.WriteByte('\f')
		}
	}
	return out.String()
}

func center(s string) string {
	if len(s) >= pageWidth {
		return s
	}
	pad := (pageWidth - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func orBlank(s string) string {
	if s == "" {
		return "________________"
	}
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "________________"
	}
	return t.Format(dateLayout)
}

func formatNumber(f float64) string {
	if f == 0 {
		return "-"
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", f), "0"), ".")
}

func assessmentLabel(a types.AssessmentType) string {
	switch a {
	case types.AssessmentP4:
		return "P4 (periodic inspection)"
	case types.AssessmentP5:
		return "P5 (major overhaul inspection)"
	}
	return string(a)
}

func conditionLabel(c types.Condition) string {
	switch c {
	case types.ConditionFit:
		return "fit"
	case types.ConditionUnfit:
		return "UNFIT"
	case types.ConditionNeedsRepair:
		return "needs repair"
	case types.ConditionNeedsReplacement:
		return "needs replacement"
	case types.ConditionNotApplicable:
		return "n/a"
	}
	return string(c)
}

func criticalityLabel(c types.Criticality) string {
	switch c {
	case types.CriticalityLow:
		return "L"
	case types.CriticalityMedium:
		return "M"
	case types.CriticalityHigh:
		return "H"
	case types.CriticalityCritical:
		return "CRIT"
	}
	return ""
}
