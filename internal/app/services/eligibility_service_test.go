package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agms/agms-backend/internal/app/models"
)

func TestEvaluateEligibilityAllRequirementsMet(t *testing.T) {
	requirements := cengDepartment().Requirements()
	progress := models.GraduationProgress{
		EctsCompleted:    150,
		GPA:              3.1,
		CompletedCourses: []string{"CENG111", "CENG112", "CENG113", "CENG211"},
	}

	result := EvaluateEligibility(requirements, progress)

	assert.True(t, result.Eligible)
	assert.Empty(t, result.MissingCourses)
	assert.Empty(t, result.Reasons)
}

func TestEvaluateEligibilityCollectsEveryFailure(t *testing.T) {
	requirements := cengDepartment().Requirements()
	progress := models.GraduationProgress{
		EctsCompleted:    120,
		GPA:              1.9,
		CompletedCourses: []string{"CENG111"},
	}

	result := EvaluateEligibility(requirements, progress)

	assert.False(t, result.Eligible)
	assert.Equal(t, []string{"CENG112", "CENG113"}, result.MissingCourses)
	// One reason per failed requirement: GPA, ECTS, courses
	assert.Len(t, result.Reasons, 3)
}

func TestEvaluateEligibilityIsPure(t *testing.T) {
	requirements := cengDepartment().Requirements()
	progress := models.GraduationProgress{
		EctsCompleted:    120,
		GPA:              2.85,
		CompletedCourses: []string{"CENG111", "CENG112"},
	}

	first := EvaluateEligibility(requirements, progress)
	second := EvaluateEligibility(requirements, progress)

	assert.Equal(t, first, second)
}

func TestEvaluateUsesStudentDepartment(t *testing.T) {
	ceng := cengDepartment()
	students := newFakeStudentStore(&models.Student{
		ID:               301,
		UserID:           5,
		DepartmentID:     ceng.ID,
		Department:       ceng,
		EctsCompleted:    120,
		GPA:              2.85,
		CompletedCourses: []string{"CENG111", "CENG112"},
	})
	service := NewEligibilityService(students, newFakeDepartmentStore(ceng), "CENG")

	result, err := service.Evaluate(context.Background(), 301)
	require.NoError(t, err)

	assert.False(t, result.Eligible)
	assert.Equal(t, "CENG", result.Department)
	assert.Equal(t, []string{"CENG113"}, result.MissingCourses)
}

func TestEvaluateFallsBackToDefaultDepartment(t *testing.T) {
	ceng := cengDepartment()
	// ME has no requirements configured
	me := &models.Department{ID: 3, Code: "ME", Name: "Mechanical Engineering"}

	students := newFakeStudentStore(&models.Student{
		ID:               302,
		UserID:           6,
		DepartmentID:     me.ID,
		Department:       me,
		EctsCompleted:    155,
		GPA:              3.71,
		CompletedCourses: []string{"CENG111", "CENG112", "CENG113"},
	})
	service := NewEligibilityService(students, newFakeDepartmentStore(ceng, me), "CENG")

	result, err := service.Evaluate(context.Background(), 302)
	require.NoError(t, err)

	// Evaluated against the default department's requirements
	assert.Equal(t, "CENG", result.Department)
	assert.True(t, result.Eligible)
}
