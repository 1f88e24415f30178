package models

import (
	"time"

	"github.com/agms/agms-backend/internal/pkg/apperrors"
)

// ApprovalStage identifies one step of the sequential graduation approval
// chain. The order of ApprovalStages is the order decisions must be taken in.
type ApprovalStage string

const (
	StageAdvisor             ApprovalStage = "ADVISOR"
	StageDepartmentSecretary ApprovalStage = "DEPARTMENT_SECRETARY"
	StageFacultyDeansOffice  ApprovalStage = "FACULTY_DEANS_OFFICE"
	StageStudentAffairs      ApprovalStage = "STUDENT_AFFAIRS"
)

// ApprovalStages lists the stages in pipeline order. Code iterating the
// pipeline must use this slice, never the map of a role lookup.
var ApprovalStages = []ApprovalStage{
	StageAdvisor,
	StageDepartmentSecretary,
	StageFacultyDeansOffice,
	StageStudentAffairs,
}

// IsValid reports whether the stage is one of the four pipeline stages
func (s ApprovalStage) IsValid() bool {
	for _, stage := range ApprovalStages {
		if s == stage {
			return true
		}
	}
	return false
}

// ApprovalStatus is the decision state of a single stage
type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusDenied   ApprovalStatus = "DENIED"
)

// IsDecision reports whether the status is a terminal stage decision
func (s ApprovalStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusDenied
}

// PipelineState summarizes the request as a whole
type PipelineState string

const (
	PipelineInProgress PipelineState = "IN_PROGRESS"
	PipelineComplete   PipelineState = "COMPLETE"
	PipelineHalted     PipelineState = "HALTED"
)

// GraduationRequest defines the graduation request model based on the
// 'graduation_requests' table. One row per student, one status per stage.
type GraduationRequest struct {
	ID                        int64          `json:"id" db:"id" example:"1"`
	StudentID                 int64          `json:"studentId" db:"student_id" example:"301"`
	AdvisorStatus             ApprovalStatus `json:"advisorStatus" db:"advisor_status" example:"APPROVED"`
	DepartmentSecretaryStatus ApprovalStatus `json:"departmentSecretaryStatus" db:"department_secretary_status" example:"PENDING"`
	FacultyDeansOfficeStatus  ApprovalStatus `json:"facultyDeansOfficeStatus" db:"faculty_deans_office_status" example:"PENDING"`
	StudentAffairsStatus      ApprovalStatus `json:"studentAffairsStatus" db:"student_affairs_status" example:"PENDING"`
	CreatedAt                 time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt                 time.Time      `json:"updatedAt" db:"updated_at"`
}

// NewGraduationRequest returns a fresh request with every stage pending
func NewGraduationRequest(studentID int64) *GraduationRequest {
	return &GraduationRequest{
		StudentID:                 studentID,
		AdvisorStatus:             StatusPending,
		DepartmentSecretaryStatus: StatusPending,
		FacultyDeansOfficeStatus:  StatusPending,
		StudentAffairsStatus:      StatusPending,
	}
}

// StatusOf returns the status recorded for the given stage
func (r *GraduationRequest) StatusOf(stage ApprovalStage) ApprovalStatus {
	switch stage {
	case StageAdvisor:
		return r.AdvisorStatus
	case StageDepartmentSecretary:
		return r.DepartmentSecretaryStatus
	case StageFacultyDeansOffice:
		return r.FacultyDeansOfficeStatus
	case StageStudentAffairs:
		return r.StudentAffairsStatus
	}
	return StatusPending
}

func (r *GraduationRequest) setStatus(stage ApprovalStage, status ApprovalStatus) {
	switch stage {
	case StageAdvisor:
		r.AdvisorStatus = status
	case StageDepartmentSecretary:
		r.DepartmentSecretaryStatus = status
	case StageFacultyDeansOffice:
		r.FacultyDeansOfficeStatus = status
	case StageStudentAffairs:
		r.StudentAffairsStatus = status
	}
}

// CanAct reports whether the given stage may currently be decided: the stage
// itself must still be pending and every earlier stage must be approved.
// This is a capability check and never an error.
func (r *GraduationRequest) CanAct(stage ApprovalStage) bool {
	if !stage.IsValid() || r.StatusOf(stage) != StatusPending {
		return false
	}
	for _, earlier := range ApprovalStages {
		if earlier == stage {
			break
		}
		if r.StatusOf(earlier) != StatusApproved {
			return false
		}
	}
	return true
}

// Apply records a decision for the given stage. A decided stage is never
// reopened: repeating a decision fails with ErrStageAlreadyDecided instead of
// silently succeeding, and an out-of-order decision fails with
// ErrUnauthorizedTransition.
func (r *GraduationRequest) Apply(stage ApprovalStage, decision ApprovalStatus) error {
	if !decision.IsDecision() {
		return apperrors.ErrInvalidDecision
	}
	if !stage.IsValid() {
		return apperrors.ErrUnauthorizedTransition
	}
	if r.StatusOf(stage) != StatusPending {
		return apperrors.ErrStageAlreadyDecided
	}
	if !r.CanAct(stage) {
		return apperrors.ErrUnauthorizedTransition
	}
	r.setStatus(stage, decision)
	return nil
}

// CurrentStage returns the next stage waiting for a decision together with
// the overall pipeline state. The stage is empty when the pipeline is
// complete (all approved) or halted (any stage denied).
func (r *GraduationRequest) CurrentStage() (ApprovalStage, PipelineState) {
	for _, stage := range ApprovalStages {
		switch r.StatusOf(stage) {
		case StatusDenied:
			return "", PipelineHalted
		case StatusPending:
			return stage, PipelineInProgress
		}
	}
	return "", PipelineComplete
}

// Approved reports whether every stage of the pipeline is approved
func (r *GraduationRequest) Approved() bool {
	_, state := r.CurrentStage()
	return state == PipelineComplete
}
