package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
	"github.com/agms/agms-backend/internal/pkg/logger"
	"github.com/agms/agms-backend/internal/pkg/metrics"
	"github.com/agms/agms-backend/internal/pkg/notification"
)

// ApprovalService drives the sequential graduation approval pipeline
type ApprovalService struct {
	requests GraduationRequestStore
	students StudentStore
	audit    AuditStore
	notifier notification.Notifier
}

// NewApprovalService creates a new approval service
func NewApprovalService(requests GraduationRequestStore, students StudentStore, audit AuditStore, notifier notification.Notifier) *ApprovalService {
	return &ApprovalService{
		requests: requests,
		students: students,
		audit:    audit,
		notifier: notifier,
	}
}

// Advance records the actor's decision on the stage their role owns. The
// stage is derived from the role, never from the request body. The decision
// is applied under a row lock so concurrent decisions on the same student
// serialize; losers of the race get ErrStageAlreadyDecided.
func (s *ApprovalService) Advance(ctx context.Context, studentID, actorID int64, role models.RoleType, decision models.ApprovalStatus) (*models.GraduationRequest, error) {
	stage, ok := models.StageForRole(role)
	if !ok {
		return nil, apperrors.ErrUnauthorizedTransition
	}

	request, err := s.requests.UpdateAtomic(ctx, studentID, func(r *models.GraduationRequest) error {
		return r.Apply(stage, decision)
	})
	if err != nil {
		return nil, err
	}

	metrics.ApprovalDecisions.WithLabelValues(string(stage), string(decision)).Inc()

	event := &models.AuditEvent{
		ID:        uuid.New(),
		StudentID: &studentID,
		Action:    models.AuditStageDecided,
		Stage:     string(stage),
		Decision:  string(decision),
		ActorID:   actorID,
		ActorRole: role,
	}
	if err := s.audit.Record(ctx, event); err != nil {
		// The decision is already committed; a lost audit row is logged,
		// not surfaced to the actor
		logger.Error().Err(err).Int64("studentId", studentID).Msg("Failed to record audit event")
	}

	s.notifier.StatusChanged(ctx, studentID, stage, decision)

	logger.Info().
		Int64("studentId", studentID).
		Int64("actorId", actorID).
		Str("stage", string(stage)).
		Str("decision", string(decision)).
		Msg("Approval stage decided")

	return request, nil
}

// GetRequest retrieves a student's pipeline snapshot. Students may only read
// their own request; staff roles may read any. A student with no recorded
// decision yet gets an all-pending snapshot.
func (s *ApprovalService) GetRequest(ctx context.Context, studentID, actorUserID int64, role models.RoleType) (*models.GraduationRequest, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if role == models.RoleStudent && student.UserID != actorUserID {
		return nil, apperrors.ErrPermissionDenied
	}

	request, err := s.requests.GetByStudentID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if request == nil {
		request = models.NewGraduationRequest(studentID)
	}

	return request, nil
}
