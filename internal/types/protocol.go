// Package types defines the domain model for technical condition
// assessment protocols of railway vehicles. It carries no behavior beyond
// construction helpers and enum validity checks; validation rules live in
// the validation package and persistence in the storage package.
package types

import (
	"time"

	"github.com/google/uuid"
)

// ProtocolStatus represents the lifecycle state of a protocol
type ProtocolStatus string

const (
	// StatusDraft is the initial state of every protocol
	StatusDraft ProtocolStatus = "draft"
	// StatusCompleted indicates the assessment has been finished
	StatusCompleted ProtocolStatus = "completed"
	// StatusApproved indicates the protocol has been signed off
	StatusApproved ProtocolStatus = "approved"
	// StatusArchived indicates the protocol is retained for records only
	StatusArchived ProtocolStatus = "archived"
)

// Valid reports whether the status is one of the known lifecycle states
func (s ProtocolStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusCompleted, StatusApproved, StatusArchived:
		return true
	}
	return false
}

// statusOrder is the documented progression draft -> completed -> approved
// -> archived. Transitions are not enforced by the store; CanTransition
// exists so callers that want the ordering can check it.
var statusOrder = map[ProtocolStatus]int{
	StatusDraft:     0,
	StatusCompleted: 1,
	StatusApproved:  2,
	StatusArchived:  3,
}

// CanTransition reports whether moving from s to next follows the
// documented forward-only progression.
func (s ProtocolStatus) CanTransition(next ProtocolStatus) bool {
	from, ok := statusOrder[s]
	if !ok {
		return false
	}
	to, ok := statusOrder[next]
	if !ok {
		return false
	}
	return to == from+1
}

// AssessmentType represents the assessment cycle category
type AssessmentType string

const (
	// AssessmentP4 is the short-cycle periodic assessment
	AssessmentP4 AssessmentType = "P4"
	// AssessmentP5 is the major-cycle assessment
	AssessmentP5 AssessmentType = "P5"
)

// Valid reports whether the assessment type is P4 or P5
func (a AssessmentType) Valid() bool {
	return a == AssessmentP4 || a == AssessmentP5
}

// Condition represents the assessed condition of a technical-state point
type Condition string

const (
	ConditionFit              Condition = "fit"
	ConditionUnfit            Condition = "unfit"
	ConditionNeedsRepair      Condition = "needs_repair"
	ConditionNeedsReplacement Condition = "needs_replacement"
	ConditionNotApplicable    Condition = "not_applicable"
)

// Valid reports whether the condition is one of the five known values
func (c Condition) Valid() bool {
	switch c {
	case ConditionFit, ConditionUnfit, ConditionNeedsRepair,
		ConditionNeedsReplacement, ConditionNotApplicable:
		return true
	}
	return false
}

// Criticality represents how severe a finding on a point is
type Criticality string

const (
	CriticalityLow      Criticality = "low"
	CriticalityMedium   Criticality = "medium"
	CriticalityHigh     Criticality = "high"
	CriticalityCritical Criticality = "critical"
)

// TechnicalStateItem is one assessed inspection point (a-q)
type TechnicalStateItem struct {
	ID          string      `json:"id"`
	Point       string      `json:"point"` // a through q
	Description string      `json:"description"`
	Condition   Condition   `json:"condition"`
	Notes       string      `json:"notes,omitempty"`
	Criticality Criticality `json:"criticality,omitempty"`
}

// InspectionConditions describes the circumstances of the assessment
type InspectionConditions struct {
	Weather     string  `json:"weather"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity,omitempty"`
	Other       string  `json:"other,omitempty"`
}

// Protocol is the root entity: one technical condition assessment of one
// railway vehicle. Every date field round-trips through RFC 3339 text in
// the persisted JSON form.
type Protocol struct {
	ID        string         `json:"id"`
	Status    ProtocolStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	// Section 1: basic protocol data
	ProtocolNumber string         `json:"protocolNumber"`
	AssessmentType AssessmentType `json:"assessmentType"`
	IssueDate      time.Time      `json:"issueDate"`

	// Section 2: location and circumstances
	Location         string `json:"location"`
	Depot            string `json:"depot"`
	InspectionReason string `json:"inspectionReason"`

	// Sections 3-4: vehicle data
	VehicleData *VehicleData `json:"vehicleData,omitempty"`

	// Section 5: commission composition
	Commission         []CommissionMember `json:"commission"`
	CommissionChairman string             `json:"commissionChairman,omitempty"`

	// Section 6: legal basis
	LegalBasis  string   `json:"legalBasis"`
	Regulations []string `json:"regulations,omitempty"`

	// Section 7: accompanying documentation
	AccompanyingDocuments []string `json:"accompanyingDocuments,omitempty"`
	PreviousInspections   []string `json:"previousInspections,omitempty"`

	// Section 8: inspection circumstances
	InspectionConditions InspectionConditions `json:"inspectionConditions"`

	// Section 9: tools and measuring devices
	ToolsUsed        []string `json:"toolsUsed,omitempty"`
	MeasuringDevices []string `json:"measuringDevices,omitempty"`

	// Section 10: assessment scope
	AssessmentScope  []string `json:"assessmentScope,omitempty"`
	ExcludedElements []string `json:"excludedElements,omitempty"`

	// Sections 11-15: technical state table (points a-q)
	TechnicalState []TechnicalStateItem `json:"technicalState"`

	// Section 16: notes and recommendations
	GeneralNotes    string   `json:"generalNotes,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	DefectsFound    []string `json:"defectsFound,omitempty"`
	RepairNeeded    bool     `json:"repairNeeded"`

	// Section 17: signatures
	Signatures   []Signature `json:"signatures"`
	ApprovalDate *time.Time  `json:"approvalDate,omitempty"`

	Attachments []string `json:"attachments,omitempty"`
	Photos      []string `json:"photos,omitempty"`
	Summary     string   `json:"summary,omitempty"`
}

// NewProtocol creates a draft protocol with a generated id and creation
// timestamps. All other fields start empty and are filled in by the caller.
func NewProtocol(assessmentType AssessmentType) *Protocol {
	now := time.Now().UTC()
	return &Protocol{
		ID:             uuid.New().String(),
		Status:         StatusDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
		AssessmentType: assessmentType,
		IssueDate:      now,
	}
}

// ProtocolValidation is the aggregate verdict of the rule engine
type ProtocolValidation struct {
	IsValid              bool     `json:"isValid"`
	Errors               []string `json:"errors"`
	Warnings             []string `json:"warnings"`
	MissingFields        []string `json:"missingFields"`
	CompletionPercentage int      `json:"completionPercentage"`
}

// ProtocolFilters narrows a protocol listing. Unset fields impose no
// constraint; all set fields are combined with AND.
type ProtocolFilters struct {
	Status         []ProtocolStatus `json:"status,omitempty"`
	VehicleType    []VehicleType    `json:"vehicleType,omitempty"`
	AssessmentType []AssessmentType `json:"assessmentType,omitempty"`
	DateFrom       *time.Time       `json:"dateFrom,omitempty"`
	DateTo         *time.Time       `json:"dateTo,omitempty"`
	Depot          string           `json:"depot,omitempty"`
	ProtocolNumber string           `json:"protocolNumber,omitempty"`
}

// ProtocolStatistics summarizes the stored collection
type ProtocolStatistics struct {
	Total            int                    `json:"total"`
	ByStatus         map[ProtocolStatus]int `json:"byStatus"`
	ByVehicleType    map[VehicleType]int    `json:"byVehicleType"`
	ByAssessmentType map[AssessmentType]int `json:"byAssessmentType"`
	Recent           int                    `json:"recent"` // created within the last 30 days
}

// Settings are the user-facing application settings kept alongside the
// protocol collection. Absent fields merge over DefaultSettings on read.
type Settings struct {
	AutoSave           bool   `json:"autoSave"`
	BackupEnabled      bool   `json:"backupEnabled"`
	DefaultDepot       string `json:"defaultDepot"`
	DefaultLocation    string `json:"defaultLocation"`
	LastProtocolNumber string `json:"lastProtocolNumber"`
	Theme              string `json:"theme"` // "light" or "dark"
}

// DefaultSettings returns the documented setting defaults
func DefaultSettings() Settings {
	return Settings{
		AutoSave:      true,
		BackupEnabled: true,
		Theme:         "light",
	}
}
