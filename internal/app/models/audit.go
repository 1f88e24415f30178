package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction identifies the kind of workflow mutation being recorded
type AuditAction string

const (
	AuditStageDecided       AuditAction = "STAGE_DECIDED"
	AuditClearanceSet       AuditAction = "CLEARANCE_SET"
	AuditClearanceFinalized AuditAction = "CLEARANCE_FINALIZED"
	AuditHonorsFinalized    AuditAction = "HONORS_FINALIZED"
)

// AuditEvent defines the append-only audit model based on the
// 'audit_events' table. Every advance, clearance update and finalization
// leaves one event; events are never updated or deleted.
type AuditEvent struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	StudentID *int64      `json:"studentId,omitempty" db:"student_id" example:"301"`
	Action    AuditAction `json:"action" db:"action" example:"STAGE_DECIDED"`
	Stage     string      `json:"stage,omitempty" db:"stage" example:"ADVISOR"`
	Office    string      `json:"office,omitempty" db:"office" example:""`
	Decision  string      `json:"decision,omitempty" db:"decision" example:"APPROVED"`
	ActorID   int64       `json:"actorId" db:"actor_id" example:"4"`
	ActorRole RoleType    `json:"actorRole" db:"actor_role" example:"ADVISOR"`
	CreatedAt time.Time   `json:"createdAt" db:"created_at"`
}
