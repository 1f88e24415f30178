package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agms/agms-backend/internal/app/models/dto"
	"github.com/agms/agms-backend/internal/app/services"
	"github.com/agms/agms-backend/internal/middleware"
)

// EligibilityController handles graduation eligibility evaluations
type EligibilityController struct {
	eligibilityService *services.EligibilityService
}

// NewEligibilityController creates a new EligibilityController
func NewEligibilityController(eligibilityService *services.EligibilityService) *EligibilityController {
	return &EligibilityController{
		eligibilityService: eligibilityService,
	}
}

// Evaluate runs the eligibility check for a student
// @Summary Evaluate graduation eligibility
// @Description Checks the student's transcript snapshot against their department's graduation requirements. Read-only; never mutates workflow state.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.EligibilityResponse} "Eligibility evaluated"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{studentId}/eligibility [get]
func (c *EligibilityController) Evaluate(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	result, err := c.eligibilityService.Evaluate(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	missing := result.MissingCourses
	if missing == nil {
		missing = []string{}
	}
	reasons := result.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.EligibilityResponse{
			StudentID:      studentID,
			Eligible:       result.Eligible,
			Department:     result.Department,
			GPA:            result.Progress.GPA,
			MinGPA:         result.Requirements.MinGPA,
			EctsCompleted:  result.Progress.EctsCompleted,
			EctsRequired:   result.Requirements.EctsTotal,
			MissingCourses: missing,
			Reasons:        reasons,
		},
		Timestamp: time.Now(),
	})
}
