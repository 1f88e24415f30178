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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetByID retrieves a student together with the user account and department
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT s.id, s.user_id, s.student_number, s.department_id,
		       s.ects_completed, s.gpa, s.completed_courses,
		       u.id, u.email, u.first_name, u.last_name, u.role_type, u.is_active,
		       d.id, d.code, d.name, d.ects_total, d.min_gpa, d.required_courses
		FROM students s
		JOIN users u ON u.id = s.user_id
		JOIN departments d ON d.id = s.department_id
		WHERE s.id = $1
	`

	var student models.Student
	var user models.User
	var department models.Department
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.UserID,
		&student.StudentNumber,
		&student.DepartmentID,
		&student.EctsCompleted,
		&student.GPA,
		&student.CompletedCourses,
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.RoleType,
		&user.IsActive,
		&department.ID,
		&department.Code,
		&department.Name,
		&department.EctsTotal,
		&department.MinGPA,
		&department.RequiredCourses,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student.User = &user
	student.Department = &department
	return &student, nil
}

// GetByUserID retrieves the student record owned by a user account
func (r *StudentRepository) GetByUserID(ctx context.Context, userID int64) (*models.Student, error) {
	query := `SELECT id FROM students WHERE user_id = $1`

	var id int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Create creates a new student record
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (user_id, student_number, department_id, ects_completed, gpa, completed_courses)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.UserID,
		student.StudentNumber,
		student.DepartmentID,
		student.EctsCompleted,
		student.GPA,
		student.CompletedCourses,
	).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Exists reports whether a student record exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student: %w", err)
	}
	return exists, nil
}
