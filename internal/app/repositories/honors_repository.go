package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
)

// HonorsRepository handles database operations for the honors list
type HonorsRepository struct {
	db *pgxpool.Pool
}

// NewHonorsRepository creates a new honors repository
func NewHonorsRepository(db *pgxpool.Pool) *HonorsRepository {
	return &HonorsRepository{db: db}
}

// ListCandidates retrieves students whose approval pipeline is fully
// approved and whose GPA meets the given minimum, ordered by GPA descending
// with student number as a stable tie-break.
func (r *HonorsRepository) ListCandidates(ctx context.Context, minGPA float64) ([]*models.HonorsEntry, error) {
	query := `
		SELECT s.id, s.student_number, u.first_name, u.last_name, d.name, s.gpa
		FROM students s
		JOIN users u ON u.id = s.user_id
		JOIN departments d ON d.id = s.department_id
		JOIN graduation_requests gr ON gr.student_id = s.id
		WHERE gr.advisor_status = 'APPROVED'
		  AND gr.department_secretary_status = 'APPROVED'
		  AND gr.faculty_deans_office_status = 'APPROVED'
		  AND gr.student_affairs_status = 'APPROVED'
		  AND s.gpa >= $1
		ORDER BY s.gpa DESC, s.student_number ASC
	`

	rows, err := r.db.Query(ctx, query, minGPA)
	if err != nil {
		return nil, fmt.Errorf("error retrieving honors candidates: %w", err)
	}
	defer rows.Close()

	var entries []*models.HonorsEntry
	for rows.Next() {
		var entry models.HonorsEntry
		if err := rows.Scan(
			&entry.StudentID,
			&entry.StudentNumber,
			&entry.FirstName,
			&entry.LastName,
			&entry.Department,
			&entry.GPA,
		); err != nil {
			return nil, fmt.Errorf("error scanning honors entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// GetFinalized retrieves the finalized honors list record, if any.
// Returns (nil, nil) when the list has not been finalized.
func (r *HonorsRepository) GetFinalized(ctx context.Context) (*models.HonorsList, error) {
	query := `SELECT id, finalized_by, finalized_at FROM honors_lists ORDER BY finalized_at DESC LIMIT 1`

	var list models.HonorsList
	err := r.db.QueryRow(ctx, query).Scan(&list.ID, &list.FinalizedBy, &list.FinalizedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving honors list: %w", err)
	}

	return &list, nil
}

// Finalize records the honors list as finalized by the given user. A second
// finalization fails with ErrHonorsListFinalized.
func (r *HonorsRepository) Finalize(ctx context.Context, finalizedBy int64) (*models.HonorsList, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM honors_lists)`).Scan(&exists); err != nil {
		return nil, fmt.Errorf("error checking honors list: %w", err)
	}
	if exists {
		return nil, apperrors.ErrHonorsListFinalized
	}

	var list models.HonorsList
	list.FinalizedBy = finalizedBy
	err = tx.QueryRow(ctx, `
		INSERT INTO honors_lists (finalized_by)
		VALUES ($1)
		RETURNING id, finalized_at
	`, finalizedBy).Scan(&list.ID, &list.FinalizedAt)
	if err != nil {
		return nil, fmt.Errorf("error finalizing honors list: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &list, nil
}
