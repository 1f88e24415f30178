// Package notification delivers workflow event notifications to interested
// parties. The current implementation logs structured events; a mail or push
// based Notifier can be swapped in without touching the services.
package notification

import (
	"context"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/logger"
)

// Notifier receives workflow events as they happen.
type Notifier interface {
	StatusChanged(ctx context.Context, studentID int64, stage models.ApprovalStage, decision models.ApprovalStatus)
	ClearanceUpdated(ctx context.Context, studentID int64, office models.ClearanceOffice, cleared bool)
	ClearanceFinalized(ctx context.Context, studentID int64)
	HonorsListFinalized(ctx context.Context, entryCount int)
}

// LogNotifier writes every event to the application log.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) StatusChanged(_ context.Context, studentID int64, stage models.ApprovalStage, decision models.ApprovalStatus) {
	logger.Info().
		Int64("studentId", studentID).
		Str("stage", string(stage)).
		Str("decision", string(decision)).
		Msg("Graduation request status changed")
}

func (n *LogNotifier) ClearanceUpdated(_ context.Context, studentID int64, office models.ClearanceOffice, cleared bool) {
	logger.Info().
		Int64("studentId", studentID).
		Str("office", string(office)).
		Bool("cleared", cleared).
		Msg("Clearance status updated")
}

func (n *LogNotifier) ClearanceFinalized(_ context.Context, studentID int64) {
	logger.Info().
		Int64("studentId", studentID).
		Msg("Clearance finalized")
}

func (n *LogNotifier) HonorsListFinalized(_ context.Context, entryCount int) {
	logger.Info().
		Int("entryCount", entryCount).
		Msg("Honors list finalized")
}
