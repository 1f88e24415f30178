package models

import "time"

// HonorsTier is the GPA-threshold-derived distinction label used in
// rectorate review
type HonorsTier string

const (
	HonorsSummaCumLaude HonorsTier = "SUMMA_CUM_LAUDE"
	HonorsMagnaCumLaude HonorsTier = "MAGNA_CUM_LAUDE"
	HonorsCumLaude      HonorsTier = "CUM_LAUDE"
	HonorsNone          HonorsTier = ""
)

// HonorsThresholds holds the configurable GPA cutoffs per tier. Each
// threshold is inclusive.
type HonorsThresholds struct {
	SummaCumLaude float64
	MagnaCumLaude float64
	CumLaude      float64
}

// TierForGPA returns the highest tier whose threshold the GPA meets
func TierForGPA(gpa float64, t HonorsThresholds) HonorsTier {
	switch {
	case gpa >= t.SummaCumLaude:
		return HonorsSummaCumLaude
	case gpa >= t.MagnaCumLaude:
		return HonorsMagnaCumLaude
	case gpa >= t.CumLaude:
		return HonorsCumLaude
	}
	return HonorsNone
}

// HonorsEntry is one row of the honors list reviewed by the rectorate
type HonorsEntry struct {
	StudentID     int64      `json:"studentId" example:"301"`
	StudentNumber string     `json:"studentNumber" example:"270201001"`
	FirstName     string     `json:"firstName" example:"Serhat"`
	LastName      string     `json:"lastName" example:"Evren"`
	Department    string     `json:"department" example:"Computer Engineering"`
	GPA           float64    `json:"gpa" example:"3.95"`
	Tier          HonorsTier `json:"honorsTier" example:"SUMMA_CUM_LAUDE"`
}

// HonorsList defines the honors list model based on the 'honors_lists'
// table. Finalization by the rectorate is terminal.
type HonorsList struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	FinalizedBy int64     `json:"finalizedBy" db:"finalized_by" example:"9"`
	FinalizedAt time.Time `json:"finalizedAt" db:"finalized_at"`
}
