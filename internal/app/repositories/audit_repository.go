package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agms/agms-backend/internal/app/models"
)

// AuditRepository handles database operations for the append-only audit trail
type AuditRepository struct {
	db *pgxpool.Pool
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record appends an audit event. Events are never updated or deleted.
func (r *AuditRepository) Record(ctx context.Context, event *models.AuditEvent) error {
	query := `
		INSERT INTO audit_events (id, student_id, action, stage, office, decision, actor_id, actor_role)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`

	err := r.db.QueryRow(ctx, query,
		event.ID,
		event.StudentID,
		event.Action,
		event.Stage,
		event.Office,
		event.Decision,
		event.ActorID,
		event.ActorRole,
	).Scan(&event.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording audit event: %w", err)
	}

	return nil
}

// ListByStudent retrieves a student's audit trail, newest first, optionally
// filtered by action
func (r *AuditRepository) ListByStudent(ctx context.Context, studentID int64, action *models.AuditAction, limit int) ([]*models.AuditEvent, error) {
	if limit <= 0 {
		limit = 100
	}

	queryBuilder := squirrel.Select(
		"id", "student_id", "action", "stage", "office", "decision",
		"actor_id", "actor_role", "created_at",
	).
		From("audit_events").
		Where("student_id = ?", studentID).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar)

	if action != nil {
		queryBuilder = queryBuilder.Where("action = ?", *action)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error retrieving audit events: %w", err)
	}
	defer rows.Close()

	var events []*models.AuditEvent
	for rows.Next() {
		var event models.AuditEvent
		if err := rows.Scan(
			&event.ID,
			&event.StudentID,
			&event.Action,
			&event.Stage,
			&event.Office,
			&event.Decision,
			&event.ActorID,
			&event.ActorRole,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning audit event: %w", err)
		}
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
