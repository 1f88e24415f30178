package dto

import "time"

// AdvanceRequest represents a stage decision submitted by a staff member
type AdvanceRequest struct {
	Decision string `json:"decision" binding:"required,oneof=APPROVED DENIED"`
}

// StageStatus represents the status of a single pipeline stage
type StageStatus struct {
	Stage  string `json:"stage" example:"ADVISOR"`
	Status string `json:"status" example:"APPROVED"`
}

// GraduationRequestResponse represents the full pipeline snapshot for a student
type GraduationRequestResponse struct {
	StudentID    int64         `json:"studentId"`
	Stages       []StageStatus `json:"stages"`
	CurrentStage string        `json:"currentStage,omitempty" example:"DEPARTMENT_SECRETARY"`
	Pipeline     string        `json:"pipeline" example:"IN_PROGRESS"`
	UpdatedAt    *time.Time    `json:"updatedAt,omitempty"`
}

// EligibilityResponse represents the outcome of an eligibility evaluation
type EligibilityResponse struct {
	StudentID      int64    `json:"studentId"`
	Eligible       bool     `json:"eligible"`
	Department     string   `json:"department" example:"CENG"`
	GPA            float64  `json:"gpa" example:"2.85"`
	MinGPA         float64  `json:"minGpa" example:"2.0"`
	EctsCompleted  int      `json:"ectsCompleted" example:"120"`
	EctsRequired   int      `json:"ectsRequired" example:"150"`
	MissingCourses []string `json:"missingCourses"`
	Reasons        []string `json:"reasons"`
}

// AuditEventResponse represents a single audit trail entry
type AuditEventResponse struct {
	ID        string    `json:"id"`
	StudentID *int64    `json:"studentId,omitempty"`
	Action    string    `json:"action" example:"STAGE_DECIDED"`
	Stage     string    `json:"stage,omitempty" example:"ADVISOR"`
	Office    string    `json:"office,omitempty"`
	Decision  string    `json:"decision,omitempty" example:"APPROVED"`
	ActorID   int64     `json:"actorId"`
	ActorRole string    `json:"actorRole" example:"ADVISOR"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuditListResponse wraps a list of audit entries
type AuditListResponse struct {
	Events []AuditEventResponse `json:"events"`
}
