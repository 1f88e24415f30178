package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/auth"
)

type seedDepartment struct {
	code            string
	name            string
	ectsTotal       int
	minGPA          float64
	requiredCourses []string
}

type seedUser struct {
	email     string
	password  string
	firstName string
	lastName  string
	role      appModels.RoleType
}

type seedStudent struct {
	email            string
	password         string
	firstName        string
	lastName         string
	studentNumber    string
	departmentCode   string
	ectsCompleted    int
	gpa              float64
	completedCourses []string
}

var defaultDepartments = []seedDepartment{
	{"CENG", "Computer Engineering", 150, 2.0, []string{"CENG111", "CENG112", "CENG113"}},
	{"EE", "Electrical Engineering", 145, 2.0, []string{"EE101", "EE102"}},
	// ME is deliberately left without requirements to exercise the
	// default-department fallback
	{"ME", "Mechanical Engineering", 0, 0, nil},
}

var defaultStaff = []seedUser{
	{"advisor@iyte.edu.tr", "advisor123", "Deniz", "Aksoy", appModels.RoleAdvisor},
	{"secretary@iyte.edu.tr", "secretary123", "Elif", "Kaya", appModels.RoleDepartmentSecretary},
	{"deansoffice@iyte.edu.tr", "deans123", "Murat", "Demir", appModels.RoleFacultyDeansOffice},
	{"studentaffairs@iyte.edu.tr", "affairs123", "Zeynep", "Arslan", appModels.RoleStudentAffairs},
	{"library@iyte.edu.tr", "library123", "Kerem", "Yildiz", appModels.RoleLibrary},
	{"sks@iyte.edu.tr", "sks12345", "Aylin", "Celik", appModels.RoleSKS},
	{"doitp@iyte.edu.tr", "doitp123", "Baris", "Ozturk", appModels.RoleDOITP},
	{"careeroffice@iyte.edu.tr", "career123", "Selin", "Sahin", appModels.RoleCareerOffice},
	{"rectorate@iyte.edu.tr", "rector123", "Hasan", "Koc", appModels.RoleRectorate},
}

var defaultStudents = []seedStudent{
	{
		email: "student1@std.iyte.edu.tr", password: "student123",
		firstName: "Serhat", lastName: "Evren",
		studentNumber: "270201001", departmentCode: "CENG",
		ectsCompleted: 150, gpa: 3.92,
		completedCourses: []string{"CENG111", "CENG112", "CENG113"},
	},
	{
		email: "student2@std.iyte.edu.tr", password: "student123",
		firstName: "Melis", lastName: "Tan",
		studentNumber: "270201002", departmentCode: "CENG",
		ectsCompleted: 120, gpa: 2.85,
		completedCourses: []string{"CENG111", "CENG112"},
	},
	{
		email: "student3@std.iyte.edu.tr", password: "student123",
		firstName: "Onur", lastName: "Gunes",
		studentNumber: "270301001", departmentCode: "ME",
		ectsCompleted: 155, gpa: 3.71,
		completedCourses: []string{"CENG111", "CENG112", "CENG113"},
	},
}

// CreateDefaultData seeds departments, one account per role and a few demo
// students. Every insert is idempotent (ON CONFLICT DO NOTHING) so restarts
// never duplicate rows.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data...")

	for _, d := range defaultDepartments {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO departments (code, name, ects_total, min_gpa, required_courses)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (code) DO NOTHING
		`, d.code, d.name, d.ectsTotal, d.minGPA, d.requiredCourses)
		if err != nil {
			return fmt.Errorf("failed to seed department %s: %w", d.code, err)
		}
	}

	for _, u := range defaultStaff {
		if err := seedUserAccount(ctx, dbPool, u); err != nil {
			return err
		}
	}

	for _, s := range defaultStudents {
		if err := seedStudentAccount(ctx, dbPool, s); err != nil {
			return err
		}
	}

	lgr.Info().Msg("Default data ready.")
	return nil
}

func seedUserAccount(ctx context.Context, dbPool *pgxpool.Pool, u seedUser) error {
	hashed, err := auth.HashPassword(u.password)
	if err != nil {
		return fmt.Errorf("failed to hash password for %s: %w", u.email, err)
	}

	_, err = dbPool.Exec(ctx, `
		INSERT INTO users (email, password, first_name, last_name, role_type, is_active)
		VALUES ($1, $2, $3, $4, $5, TRUE)
		ON CONFLICT (email) DO NOTHING
	`, u.email, hashed, u.firstName, u.lastName, u.role)
	if err != nil {
		return fmt.Errorf("failed to seed user %s: %w", u.email, err)
	}
	return nil
}

func seedStudentAccount(ctx context.Context, dbPool *pgxpool.Pool, s seedStudent) error {
	if err := seedUserAccount(ctx, dbPool, seedUser{
		email:     s.email,
		password:  s.password,
		firstName: s.firstName,
		lastName:  s.lastName,
		role:      appModels.RoleStudent,
	}); err != nil {
		return err
	}

	_, err := dbPool.Exec(ctx, `
		INSERT INTO students (user_id, student_number, department_id, ects_completed, gpa, completed_courses)
		SELECT u.id, $2, d.id, $4, $5, $6
		FROM users u, departments d
		WHERE u.email = $1 AND d.code = $3
		ON CONFLICT (student_number) DO NOTHING
	`, s.email, s.studentNumber, s.departmentCode, s.ectsCompleted, s.gpa, s.completedCourses)
	if err != nil {
		return fmt.Errorf("failed to seed student %s: %w", s.studentNumber, err)
	}
	return nil
}
