package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
	"github.com/agms/agms-backend/internal/pkg/logger"
	"github.com/agms/agms-backend/internal/pkg/metrics"
	"github.com/agms/agms-backend/internal/pkg/notification"
)

// ClearanceService aggregates office clearance flags and finalization
type ClearanceService struct {
	clearances ClearanceStore
	students   StudentStore
	audit      AuditStore
	notifier   notification.Notifier
}

// NewClearanceService creates a new clearance service
func NewClearanceService(clearances ClearanceStore, students StudentStore, audit AuditStore, notifier notification.Notifier) *ClearanceService {
	return &ClearanceService{
		clearances: clearances,
		students:   students,
		audit:      audit,
		notifier:   notifier,
	}
}

// SetClearance writes one office's flag. The office is derived from the
// actor's role; a role that owns no office gets ErrUnauthorizedOffice. Flags
// may be toggled both ways until the record is finalized.
func (s *ClearanceService) SetClearance(ctx context.Context, studentID, actorID int64, role models.RoleType, cleared bool) (*models.ClearanceRecord, error) {
	office, ok := models.OfficeForRole(role)
	if !ok {
		return nil, apperrors.ErrUnauthorizedOffice
	}

	record, err := s.clearances.UpdateAtomic(ctx, studentID, func(c *models.ClearanceRecord) error {
		if c.Finalized {
			return apperrors.ErrAlreadyFinalized
		}
		c.SetCleared(office, cleared)
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.ClearanceUpdates.WithLabelValues(string(office)).Inc()

	event := &models.AuditEvent{
		ID:        uuid.New(),
		StudentID: &studentID,
		Action:    models.AuditClearanceSet,
		Office:    string(office),
		Decision:  clearedLabel(cleared),
		ActorID:   actorID,
		ActorRole: role,
	}
	if err := s.audit.Record(ctx, event); err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to record audit event")
	}

	s.notifier.ClearanceUpdated(ctx, studentID, office, cleared)

	return record, nil
}

// Finalize locks a student's clearance record. Only Student Affairs may
// finalize, every office must have cleared the student first, and a second
// finalize fails rather than silently succeeding.
func (s *ClearanceService) Finalize(ctx context.Context, studentID, actorID int64, role models.RoleType) (*models.ClearanceRecord, error) {
	if role != models.RoleStudentAffairs {
		return nil, apperrors.ErrUnauthorizedRole
	}

	record, err := s.clearances.UpdateAtomic(ctx, studentID, func(c *models.ClearanceRecord) error {
		if c.Finalized {
			return apperrors.ErrAlreadyFinalized
		}
		if !c.AllClear() {
			outstanding := make([]string, 0, len(models.ClearanceOffices))
			for _, office := range c.Outstanding() {
				outstanding = append(outstanding, string(office))
			}
			return apperrors.NewIncompleteClearanceError(outstanding)
		}
		now := time.Now()
		c.Finalized = true
		c.FinalizedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.Finalizations.WithLabelValues("clearance").Inc()

	event := &models.AuditEvent{
		ID:        uuid.New(),
		StudentID: &studentID,
		Action:    models.AuditClearanceFinalized,
		ActorID:   actorID,
		ActorRole: role,
	}
	if err := s.audit.Record(ctx, event); err != nil {
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to record audit event")
	}

	s.notifier.ClearanceFinalized(ctx, studentID)

	logger.Info().Int64("studentId", studentID).Int64("actorId", actorID).Msg("Clearance finalized")

	return record, nil
}

// GetClearance retrieves a student's clearance record. Students may only
// read their own; a student no office has touched yet gets an empty record.
func (s *ClearanceService) GetClearance(ctx context.Context, studentID, actorUserID int64, role models.RoleType) (*models.ClearanceRecord, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if role == models.RoleStudent && student.UserID != actorUserID {
		return nil, apperrors.ErrPermissionDenied
	}

	record, err := s.clearances.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = models.NewClearanceRecord(studentID)
	}

	return record, nil
}

// GetOfficeStatus retrieves a single office's flag for a student
func (s *ClearanceService) GetOfficeStatus(ctx context.Context, studentID int64, office models.ClearanceOffice) (bool, error) {
	if !office.IsValid() {
		return false, apperrors.ErrBadRequest
	}

	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, apperrors.ErrStudentNotFound
	}

	record, err := s.clearances.GetByStudentID(ctx, studentID)
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, nil
	}

	return record.Cleared(office), nil
}

func clearedLabel(cleared bool) string {
	if cleared {
		return "CLEARED"
	}
	return "NOT_CLEARED"
}
