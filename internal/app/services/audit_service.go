package services

import (
	"context"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
)

// AuditService exposes the audit trail to staff readers
type AuditService struct {
	audit    AuditStore
	students StudentStore
}

// NewAuditService creates a new audit service
func NewAuditService(audit AuditStore, students StudentStore) *AuditService {
	return &AuditService{
		audit:    audit,
		students: students,
	}
}

// ListByStudent retrieves a student's audit trail. Staff only.
func (s *AuditService) ListByStudent(ctx context.Context, studentID int64, role models.RoleType, action *models.AuditAction, limit int) ([]*models.AuditEvent, error) {
	if !role.IsStaff() {
		return nil, apperrors.ErrPermissionDenied
	}

	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	return s.audit.ListByStudent(ctx, studentID, action, limit)
}
