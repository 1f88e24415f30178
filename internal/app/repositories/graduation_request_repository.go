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

// GraduationRequestRepository handles database operations for graduation
// requests. A request row is created lazily on the first decision.
type GraduationRequestRepository struct {
	db *pgxpool.Pool
}

// NewGraduationRequestRepository creates a new graduation request repository
func NewGraduationRequestRepository(db *pgxpool.Pool) *GraduationRequestRepository {
	return &GraduationRequestRepository{
		db: db,
	}
}

const graduationRequestColumns = `id, student_id, advisor_status, department_secretary_status, faculty_deans_office_status, student_affairs_status, created_at, updated_at`

func scanGraduationRequest(row pgx.Row) (*models.GraduationRequest, error) {
	var request models.GraduationRequest
	err := row.Scan(
		&request.ID,
		&request.StudentID,
		&request.AdvisorStatus,
		&request.DepartmentSecretaryStatus,
		&request.FacultyDeansOfficeStatus,
		&request.StudentAffairsStatus,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByStudentID retrieves the request for a student. Returns (nil, nil) when
// no decision has been recorded yet; callers present that as an all-pending
// snapshot.
func (r *GraduationRequestRepository) GetByStudentID(ctx context.Context, studentID int64) (*models.GraduationRequest, error) {
	query := `SELECT ` + graduationRequestColumns + ` FROM graduation_requests WHERE student_id = $1`

	request, err := scanGraduationRequest(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving graduation request: %w", err)
	}

	return request, nil
}

// UpdateAtomic loads the student's request under a row lock, applies fn and
// persists the result in one transaction. The row is created on first use so
// concurrent first decisions serialize on the same lock. fn errors abort the
// transaction and are returned unchanged.
func (r *GraduationRequestRepository) UpdateAtomic(ctx context.Context, studentID int64, fn func(*models.GraduationRequest) error) (*models.GraduationRequest, error) {
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
		INSERT INTO graduation_requests (student_id)
		VALUES ($1)
		ON CONFLICT (student_id) DO NOTHING
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("error creating graduation request: %w", err)
	}

	request, err := scanGraduationRequest(tx.QueryRow(ctx, `
		SELECT `+graduationRequestColumns+`
		FROM graduation_requests
		WHERE student_id = $1
		FOR UPDATE
	`, studentID))
	if err != nil {
		return nil, fmt.Errorf("error locking graduation request: %w", err)
	}

	if err := fn(request); err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx, `
		UPDATE graduation_requests
		SET advisor_status = $2,
		    department_secretary_status = $3,
		    faculty_deans_office_status = $4,
		    student_affairs_status = $5,
		    updated_at = NOW()
		WHERE student_id = $1
		RETURNING updated_at
	`,
		studentID,
		request.AdvisorStatus,
		request.DepartmentSecretaryStatus,
		request.FacultyDeansOfficeStatus,
		request.StudentAffairsStatus,
	).Scan(&request.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error updating graduation request: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return request, nil
}
