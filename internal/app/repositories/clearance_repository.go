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

// ClearanceRepository handles database operations for clearance records.
// Like graduation requests, a record row is created lazily on first write.
type ClearanceRepository struct {
	db *pgxpool.Pool
}

// NewClearanceRepository creates a new clearance repository
func NewClearanceRepository(db *pgxpool.Pool) *ClearanceRepository {
	return &ClearanceRepository{
		db: db,
	}
}

const clearanceColumns = `id, student_id, library, sks, doitp, career_office, finalized, finalized_at, created_at, updated_at`

func scanClearanceRecord(row pgx.Row) (*models.ClearanceRecord, error) {
	var record models.ClearanceRecord
	err := row.Scan(
		&record.ID,
		&record.StudentID,
		&record.Library,
		&record.SKS,
		&record.DOITP,
		&record.CareerOffice,
		&record.Finalized,
		&record.FinalizedAt,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByStudentID retrieves the clearance record for a student. Returns
// (nil, nil) when no office has written a flag yet.
func (r *ClearanceRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.ClearanceRecord, error) {
	query := `SELECT ` + clearanceColumns + ` FROM clearance_records WHERE student_id = $1`

	record, err := scanClearanceRecord(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving clearance record: %w", err)
	}

	return record, nil
}

// UpdateAtomic loads the student's clearance record under a row lock, applies
// fn and persists the result in one transaction. Concurrent office updates
// serialize on the row lock so no flag write is lost.
func (r *ClearanceRepository) UpdateAtomic(ctx context.Context, studentID int64, fn func(*models.ClearanceRecord) error) (*models.ClearanceRecord, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var exists bool
	if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, studentID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("error checking student: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO clearance_records (student_id)
		VALUES ($1)
		ON CONFLICT (student_id) DO NOTHING
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error creating clearance record: %w", err)
	}

	record, err := scanClearanceRecord(tx.QueryRow(ctx, `
		SELECT `+clearanceColumns+`
		FROM clearance_records
		WHERE student_id = $1
		FOR UPDATE
	`, studentID))
	if err != nil {
		return nil, fmt.Errorf("error locking clearance record: %w", err)
	}

	if err := fn(record); err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		UPDATE clearance_records
		SET library = $2,
		    sks = $3,
		    doitp = $4,
		    career_office = $5,
		    finalized = $6,
		    finalized_at = $7,
		    updated_at = NOW()
		WHERE student_id = $1
		RETURNING updated_at
	`,
		studentID,
		record.Library,
		record.SKS,
		record.DOITP,
		record.CareerOffice,
		record.Finalized,
		record.FinalizedAt,
	).Scan(&record.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error updating clearance record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return record, nil
}
