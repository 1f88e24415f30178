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

// HonorsService builds and finalizes the rectorate's honors list
type HonorsService struct {
	honors     HonorsStore
	audit      AuditStore
	notifier   notification.Notifier
	thresholds models.HonorsThresholds
}

// NewHonorsService creates a new honors service
func NewHonorsService(honors HonorsStore, audit AuditStore, notifier notification.Notifier, thresholds models.HonorsThresholds) *HonorsService {
	return &HonorsService{
		honors:     honors,
		audit:      audit,
		notifier:   notifier,
		thresholds: thresholds,
	}
}

// List returns the current honors list: fully approved students at or above
// the cum laude cutoff, ranked by GPA, each tagged with their tier.
func (s *HonorsService) List(ctx context.Context) ([]*models.HonorsEntry, *models.HonorsList, error) {
	entries, err := s.honors.ListCandidates(ctx, s.thresholds.CumLaude)
	if err != nil {
		return nil, nil, err
	}

	for _, entry := range entries {
		entry.Tier = models.TierForGPA(entry.GPA, s.thresholds)
	}

	finalized, err := s.honors.GetFinalized(ctx)
	if err != nil {
		return nil, nil, err
	}

	return entries, finalized, nil
}

// Finalize locks the honors list. Rectorate only, and only once.
func (s *HonorsService) Finalize(ctx context.Context, actorID int64, role models.RoleType) ([]*models.HonorsEntry, *models.HonorsList, error) {
	if role != models.RoleRectorate {
		return nil, nil, apperrors.ErrUnauthorizedRole
	}

	entries, err := s.honors.ListCandidates(ctx, s.thresholds.CumLaude)
	if err != nil {
		return nil, nil, err
	}
	for _, entry := range entries {
		entry.Tier = models.TierForGPA(entry.GPA, s.thresholds)
	}

	list, err := s.honors.Finalize(ctx, actorID)
	if err != nil {
		return nil, nil, err
	}

	metrics.Finalizations.WithLabelValues("honors_list").Inc()

	event := &models.AuditEvent{
		ID:        uuid.New(),
		Action:    models.AuditHonorsFinalized,
		ActorID:   actorID,
		ActorRole: role,
	}
	if err := s.audit.Record(ctx, event); err != nil {
		logger.Error().Err(err).Msg("Failed to record audit event")
	}

	s.notifier.HonorsListFinalized(ctx, len(entries))

	logger.Info().Int64("actorId", actorID).Int("entries", len(entries)).Msg("Honors list finalized")

	return entries, list, nil
}
