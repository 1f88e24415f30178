package models

import "time"

// ClearanceOffice identifies one of the independent obligation-clearing
// units. Unlike the approval pipeline there is no ordering between offices.
type ClearanceOffice string

const (
	OfficeLibrary      ClearanceOffice = "LIBRARY"
	OfficeSKS          ClearanceOffice = "SKS"
	OfficeDOITP        ClearanceOffice = "DOITP"
	OfficeCareerOffice ClearanceOffice = "CAREER_OFFICE"
)

// ClearanceOffices lists all offices that must clear a student
var ClearanceOffices = []ClearanceOffice{
	OfficeLibrary,
	OfficeSKS,
	OfficeDOITP,
	OfficeCareerOffice,
}

// IsValid reports whether the office is one of the known clearance offices
func (o ClearanceOffice) IsValid() bool {
	for _, office := range ClearanceOffices {
		if o == office {
			return true
		}
	}
	return false
}

// ClearanceRecord defines the clearance model based on the
// 'clearance_records' table. Each flag is owned by exactly one office role.
type ClearanceRecord struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	StudentID    int64      `json:"studentId" db:"student_id" example:"301"`
	Library      bool       `json:"library" db:"library" example:"true"`
	SKS          bool       `json:"sks" db:"sks" example:"true"`
	DOITP        bool       `json:"doitp" db:"doitp" example:"false"`
	CareerOffice bool       `json:"careerOffice" db:"career_office" example:"true"`
	Finalized    bool       `json:"finalized" db:"finalized" example:"false"`
	FinalizedAt  *time.Time `json:"finalizedAt,omitempty" db:"finalized_at"`
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
}

// NewClearanceRecord returns a record with no office cleared yet
func NewClearanceRecord(studentID int64) *ClearanceRecord {
	return &ClearanceRecord{StudentID: studentID}
}

// Cleared returns the flag recorded for the given office
func (c *ClearanceRecord) Cleared(office ClearanceOffice) bool {
	switch office {
	case OfficeLibrary:
		return c.Library
	case OfficeSKS:
		return c.SKS
	case OfficeDOITP:
		return c.DOITP
	case OfficeCareerOffice:
		return c.CareerOffice
	}
	return false
}

// SetCleared sets one office's flag without touching the others
func (c *ClearanceRecord) SetCleared(office ClearanceOffice, cleared bool) {
	switch office {
	case OfficeLibrary:
		c.Library = cleared
	case OfficeSKS:
		c.SKS = cleared
	case OfficeDOITP:
		c.DOITP = cleared
	case OfficeCareerOffice:
		c.CareerOffice = cleared
	}
}

// AllClear reports whether every office has cleared the student
func (c *ClearanceRecord) AllClear() bool {
	return c.Library && c.SKS && c.DOITP && c.CareerOffice
}

// Outstanding returns the offices that have not cleared the student yet,
// in the canonical office order
func (c *ClearanceRecord) Outstanding() []ClearanceOffice {
	var outstanding []ClearanceOffice
	for _, office := range ClearanceOffices {
		if !c.Cleared(office) {
			outstanding = append(outstanding, office)
		}
	}
	return outstanding
}
