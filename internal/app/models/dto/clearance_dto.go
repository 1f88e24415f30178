package dto

import "time"

// SetClearanceRequest represents a clearance flag update from an office
type SetClearanceRequest struct {
	Cleared *bool `json:"cleared" binding:"required"`
}

// OfficeStatus represents the clearance state of a single office
type OfficeStatus struct {
	Office  string `json:"office" example:"LIBRARY"`
	Cleared bool   `json:"cleared"`
}

// ClearanceResponse represents the aggregate clearance record for a student
type ClearanceResponse struct {
	StudentID   int64          `json:"studentId"`
	Offices     []OfficeStatus `json:"offices"`
	AllClear    bool           `json:"allClear"`
	Outstanding []string       `json:"outstanding"`
	Finalized   bool           `json:"finalized"`
	FinalizedAt *time.Time     `json:"finalizedAt,omitempty"`
}
