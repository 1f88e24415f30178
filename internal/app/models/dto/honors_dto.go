package dto

import "time"

// HonorsEntryResponse represents a single honors list entry
type HonorsEntryResponse struct {
	StudentID     int64   `json:"studentId"`
	StudentNumber string  `json:"studentNumber" example:"270201001"`
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	Department    string  `json:"department" example:"CENG"`
	GPA           float64 `json:"gpa" example:"3.92"`
	Tier          string  `json:"tier" example:"SUMMA_CUM_LAUDE"`
}

// HonorsListResponse represents the ranked honors list
type HonorsListResponse struct {
	Entries     []HonorsEntryResponse `json:"entries"`
	Finalized   bool                  `json:"finalized"`
	FinalizedAt *time.Time            `json:"finalizedAt,omitempty"`
}
