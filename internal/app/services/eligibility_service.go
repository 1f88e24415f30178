package services

import (
	"context"
	"fmt"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/pkg/logger"
)

// EligibilityResult is the outcome of one eligibility evaluation
type EligibilityResult struct {
	Eligible       bool
	Department     string
	Requirements   models.GraduationRequirements
	Progress       models.GraduationProgress
	MissingCourses []string
	Reasons        []string
}

// EvaluateEligibility checks a transcript snapshot against department
// requirements. Pure: same inputs always produce the same result, and the
// evaluation never mutates workflow state.
func EvaluateEligibility(requirements models.GraduationRequirements, progress models.GraduationProgress) EligibilityResult {
	result := EligibilityResult{
		Eligible:     true,
		Requirements: requirements,
		Progress:     progress,
	}

	if progress.GPA < requirements.MinGPA {
		result.Eligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("GPA %.2f below required minimum %.2f", progress.GPA, requirements.MinGPA))
	}

	if progress.EctsCompleted < requirements.EctsTotal {
		result.Eligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("ECTS %d below required total %d", progress.EctsCompleted, requirements.EctsTotal))
	}

	completed := make(map[string]bool, len(progress.CompletedCourses))
	for _, course := range progress.CompletedCourses {
		completed[course] = true
	}
	for _, course := range requirements.RequiredCourses {
		if !completed[course] {
			result.MissingCourses = append(result.MissingCourses, course)
		}
	}
	if len(result.MissingCourses) > 0 {
		result.Eligible = false
		result.Reasons = append(result.Reasons,
			fmt.Sprintf("%d required course(s) not completed", len(result.MissingCourses)))
	}

	return result
}

// EligibilityService evaluates students against their department's
// graduation requirements
type EligibilityService struct {
	students          StudentStore
	departments       DepartmentStore
	defaultDepartment string
}

// NewEligibilityService creates a new eligibility service
func NewEligibilityService(students StudentStore, departments DepartmentStore, defaultDepartment string) *EligibilityService {
	return &EligibilityService{
		students:          students,
		departments:       departments,
		defaultDepartment: defaultDepartment,
	}
}

// Evaluate runs the eligibility check for a student. A department with no
// configured requirements falls back to the default department's
// requirements; the fallback is logged because it usually means missing
// configuration rather than intent.
func (s *EligibilityService) Evaluate(ctx context.Context, studentID int64) (*EligibilityResult, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	department := student.Department
	if department == nil || !department.HasRequirements() {
		fallback, err := s.departments.GetByCode(ctx, s.defaultDepartment)
		if err != nil {
			return nil, err
		}
		logger.Warn().
			Int64("studentId", studentID).
			Str("department", departmentCode(department)).
			Str("fallback", fallback.Code).
			Msg("Department has no graduation requirements, using default")
		department = fallback
	}

	result := EvaluateEligibility(department.Requirements(), student.Progress())
	result.Department = department.Code

	return &result, nil
}

func departmentCode(d *models.Department) string {
	if d == nil {
		return ""
	}
	return d.Code
}
