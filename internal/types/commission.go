package types

import "time"

// CommissionRole represents a member's function within the commission
type CommissionRole string

const (
	RoleChairman               CommissionRole = "chairman"
	RoleMember                 CommissionRole = "member"
	RoleSecretary              CommissionRole = "secretary"
	RoleExpert                 CommissionRole = "expert"
	RoleOwnerRepresentative    CommissionRole = "owner_representative"
	RoleOperatorRepresentative CommissionRole = "operator_representative"
	RoleInspector              CommissionRole = "inspector"
	RoleAppraiser              CommissionRole = "appraiser"
)

// Valid reports whether the role is one of the eight known functions
func (r CommissionRole) Valid() bool {
	switch r {
	case RoleChairman, RoleMember, RoleSecretary, RoleExpert,
		RoleOwnerRepresentative, RoleOperatorRepresentative,
		RoleInspector, RoleAppraiser:
		return true
	}
	return false
}

// Qualification represents a professional qualification of a member
type Qualification string

const (
	QualEngineer           Qualification = "engineer"
	QualMasterEngineer     Qualification = "master_engineer"
	QualTechnician         Qualification = "technician"
	QualForeman            Qualification = "foreman"
	QualRailwayAppraiser   Qualification = "railway_appraiser"
	QualTechnicalInspector Qualification = "technical_inspector"
	QualSafetySpecialist   Qualification = "safety_specialist"
	QualOther              Qualification = "other"
)

// CommissionMember is one qualified individual on the assessing commission
type CommissionMember struct {
	ID string `json:"id"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Title     string `json:"title,omitempty"`

	Role          CommissionRole `json:"role"`
	IsPrimaryRole bool           `json:"isPrimaryRole"`

	Position   string `json:"position"`
	Company    string `json:"company"`
	Department string `json:"department,omitempty"`

	Qualifications []Qualification `json:"qualifications"`
	LicenseNumber  string          `json:"licenseNumber,omitempty"`
	LicenseExpiry  *time.Time      `json:"licenseExpiryDate,omitempty"`

	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	Experience     string   `json:"experience,omitempty"`
	Specialization []string `json:"specialization,omitempty"`

	IsActive bool   `json:"isActive"`
	Notes    string `json:"notes,omitempty"`
}

// FullName returns the member's display name
func (m CommissionMember) FullName() string {
	if m.FirstName == "" {
		return m.LastName
	}
	return m.FirstName + " " + m.LastName
}

// HasQualification reports whether the member holds the given qualification
func (m CommissionMember) HasQualification(q Qualification) bool {
	for _, held := range m.Qualifications {
		if held == q {
			return true
		}
	}
	return false
}

// SignatureStatus represents the state of a signature
type SignatureStatus string

const (
	SignaturePending  SignatureStatus = "pending"
	SignatureSigned   SignatureStatus = "signed"
	SignatureRejected SignatureStatus = "rejected"
	SignatureExpired  SignatureStatus = "expired"
)

// SignatureKind represents the signing mechanism used
type SignatureKind string

const (
	SignatureElectronic  SignatureKind = "electronic"
	SignatureHandwritten SignatureKind = "handwritten"
	SignatureDigitalCert SignatureKind = "digital_certificate"
)

// Declarations are the four mandatory statements each signer accepts.
// A signature is complete only when all four are true.
type Declarations struct {
	AccuracyConfirmed      bool `json:"accuracyConfirmed"`
	ResponsibilityAccepted bool `json:"responsibilityAccepted"`
	ConfidentialityAgreed  bool `json:"confidentialityAgreed"`
	DataProcessingConsent  bool `json:"dataProcessingConsent"`
}

// Complete reports whether all four declarations have been accepted
func (d Declarations) Complete() bool {
	return d.AccuracyConfirmed && d.ResponsibilityAccepted &&
		d.ConfidentialityAgreed && d.DataProcessingConsent
}

// DigitalSignatureData carries metadata for electronic signatures
type DigitalSignatureData struct {
	CertificateID string `json:"certificateId,omitempty"`
	Algorithm     string `json:"algorithm,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
	Hash          string `json:"hash,omitempty"`
}

// PhysicalSignatureData carries metadata for handwritten signatures
type PhysicalSignatureData struct {
	ImageURL         string `json:"imageUrl,omitempty"`
	WitnessName      string `json:"witnessName,omitempty"`
	WitnessSignature string `json:"witnessSignature,omitempty"`
}

// Signature is one commission member's signature on a protocol
type Signature struct {
	ID       string `json:"id"`
	MemberID string `json:"memberId"`

	SignatureDate time.Time `json:"signatureDate"`
	SignatureTime string    `json:"signatureTime,omitempty"` // HH:MM
	Location      string    `json:"location"`

	Kind   SignatureKind   `json:"signatureType"`
	Status SignatureStatus `json:"status"`

	Digital  *DigitalSignatureData  `json:"digitalSignature,omitempty"`
	Physical *PhysicalSignatureData `json:"physicalSignature,omitempty"`

	Declarations Declarations `json:"declarations"`

	IPAddress string `json:"ipAddress,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
