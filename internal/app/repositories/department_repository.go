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

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

const departmentColumns = `id, code, name, ects_total, min_gpa, required_courses`

func scanDepartment(row pgx.Row) (*models.Department, error) {
	var department models.Department
	err := row.Scan(
		&department.ID,
		&department.Code,
		&department.Name,
		&department.EctsTotal,
		&department.MinGPA,
		&department.RequiredCourses,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}
	return &department, nil
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`
	return scanDepartment(r.db.QueryRow(ctx, query, id))
}

// GetByCode retrieves a department by its short code (e.g. CENG)
func (r *DepartmentRepository) GetByCode(ctx context.Context, code string) (*models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE code = $1`
	return scanDepartment(r.db.QueryRow(ctx, query, code))
}

// Create creates a new department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (code, name, ects_total, min_gpa, required_courses)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		department.Code,
		department.Name,
		department.EctsTotal,
		department.MinGPA,
		department.RequiredCourses,
	).Scan(&department.ID)
	if err != nil {
		return fmt.Errorf("error creating department: %w", err)
	}

	return nil
}
