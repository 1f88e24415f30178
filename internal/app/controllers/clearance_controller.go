package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/app/models/dto"
	"github.com/agms/agms-backend/internal/app/services"
	"github.com/agms/agms-backend/internal/middleware"
)

// ClearanceController handles clearance aggregation operations
type ClearanceController struct {
	clearanceService *services.ClearanceService
}

// NewClearanceController creates a new ClearanceController
func NewClearanceController(clearanceService *services.ClearanceService) *ClearanceController {
	return &ClearanceController{
		clearanceService: clearanceService,
	}
}

// GetClearance retrieves a student's aggregate clearance record
// @Summary Get clearance record
// @Description Retrieves all office flags for a student. Students may only read their own record.
// @Tags clearance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClearanceResponse} "Clearance retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the student's own record"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clearance/{studentId} [get]
func (c *ClearanceController) GetClearance(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	record, err := c.clearanceService.GetClearance(ctx, studentID,
		middleware.UserIDFromContext(ctx), middleware.RoleFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toClearanceResponse(record),
		Timestamp: time.Now(),
	})
}

// SetClearance updates the caller's office flag for a student
// @Summary Set office clearance flag
// @Description Sets or unsets the clearance flag owned by the caller's office role. Other offices' flags are untouched.
// @Tags clearance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param request body dto.SetClearanceRequest true "Clearance flag"
// @Success 200 {object} dto.APIResponse{data=dto.ClearanceResponse} "Clearance updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Role does not own a clearance office"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Clearance already finalized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clearance/{studentId} [post]
func (c *ClearanceController) SetClearance(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.SetClearanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid clearance data").
			WithField("cleared").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	record, err := c.clearanceService.SetClearance(ctx, studentID,
		middleware.UserIDFromContext(ctx), middleware.RoleFromContext(ctx), *req.Cleared)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toClearanceResponse(record),
		Timestamp: time.Now(),
	})
}

// GetOfficeStatus retrieves a single office's flag for a student
// @Summary Get one office's clearance flag
// @Description Retrieves whether the given office has cleared the student
// @Tags clearance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param office path string true "Clearance office (LIBRARY, SKS, DOITP, CAREER_OFFICE)"
// @Success 200 {object} dto.APIResponse{data=dto.OfficeStatus} "Office status retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID or office"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clearance/{studentId}/office/{office} [get]
func (c *ClearanceController) GetOfficeStatus(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	office := models.ClearanceOffice(ctx.Param("office"))
	cleared, err := c.clearanceService.GetOfficeStatus(ctx, studentID, office)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.OfficeStatus{
			Office:  string(office),
			Cleared: cleared,
		},
		Timestamp: time.Now(),
	})
}

// Finalize locks a student's clearance record
// @Summary Finalize clearance
// @Description Locks the clearance record once every office has cleared the student. Student Affairs only.
// @Tags clearance
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.ClearanceResponse} "Clearance finalized"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Student Affairs only"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Already finalized"
// @Failure 422 {object} dto.ErrorResponse "Clearance incomplete, offices outstanding"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /clearance/{studentId}/finalize [post]
func (c *ClearanceController) Finalize(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	record, err := c.clearanceService.Finalize(ctx, studentID,
		middleware.UserIDFromContext(ctx), middleware.RoleFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toClearanceResponse(record),
		Timestamp: time.Now(),
	})
}

func toClearanceResponse(record *models.ClearanceRecord) dto.ClearanceResponse {
	offices := make([]dto.OfficeStatus, 0, len(models.ClearanceOffices))
	for _, office := range models.ClearanceOffices {
		offices = append(offices, dto.OfficeStatus{
			Office:  string(office),
			Cleared: record.Cleared(office),
		})
	}

	outstanding := make([]string, 0)
	for _, office := range record.Outstanding() {
		outstanding = append(outstanding, string(office))
	}

	return dto.ClearanceResponse{
		StudentID:   record.StudentID,
		Offices:     offices,
		AllClear:    record.AllClear(),
		Outstanding: outstanding,
		Finalized:   record.Finalized,
		FinalizedAt: record.FinalizedAt,
	}
}
