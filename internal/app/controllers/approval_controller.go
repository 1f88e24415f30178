package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agms/agms-backend/internal/app/models"
	"github.com/agms/agms-backend/internal/app/models/dto"
	"github.com/agms/agms-backend/internal/app/services"
	"github.com/agms/agms-backend/internal/middleware"
)

// ApprovalController handles graduation request pipeline operations
type ApprovalController struct {
	approvalService *services.ApprovalService
	auditService    *services.AuditService
}

// NewApprovalController creates a new ApprovalController
func NewApprovalController(approvalService *services.ApprovalService, auditService *services.AuditService) *ApprovalController {
	return &ApprovalController{
		approvalService: approvalService,
		auditService:    auditService,
	}
}

// GetRequest retrieves a student's graduation request
// @Summary Get graduation request status
// @Description Retrieves the approval pipeline snapshot for a student. Students may only read their own request.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.GraduationRequestResponse} "Request retrieved successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid student ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Not the student's own request"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{studentId} [get]
func (c *ApprovalController) GetRequest(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	request, err := c.approvalService.GetRequest(ctx, studentID,
		middleware.UserIDFromContext(ctx), middleware.RoleFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toGraduationRequestResponse(request),
		Timestamp: time.Now(),
	})
}

// Advance records a stage decision on a student's graduation request
// @Summary Decide the actor's pipeline stage
// @Description Records APPROVED or DENIED on the stage owned by the caller's role. Stages decide in order; decided stages are terminal.
// @Tags requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param request body dto.AdvanceRequest true "Stage decision"
// @Success 200 {object} dto.APIResponse{data=dto.GraduationRequestResponse} "Decision recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Role not authorized for the current stage"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 409 {object} dto.ErrorResponse "Stage already decided"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{studentId}/advance [post]
func (c *ApprovalController) Advance(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var req dto.AdvanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeInvalidDecision, "Decision must be APPROVED or DENIED").
			WithField("decision").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	request, err := c.approvalService.Advance(ctx, studentID,
		middleware.UserIDFromContext(ctx), middleware.RoleFromContext(ctx),
		models.ApprovalStatus(req.Decision))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toGraduationRequestResponse(request),
		Timestamp: time.Now(),
	})
}

// GetAudit retrieves a student's workflow audit trail
// @Summary Get audit trail
// @Description Retrieves the append-only audit trail for a student's graduation workflow. Staff only.
// @Tags requests
// @Produce json
// @Security BearerAuth
// @Param studentId path int true "Student ID"
// @Param action query string false "Filter by action (STAGE_DECIDED, CLEARANCE_SET, ...)"
// @Param limit query int false "Maximum number of events (default 100)"
// @Success 200 {object} dto.APIResponse{data=dto.AuditListResponse} "Audit trail retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff only"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /requests/{studentId}/audit [get]
func (c *ApprovalController) GetAudit(ctx *gin.Context) {
	studentID, ok := parseStudentID(ctx)
	if !ok {
		return
	}

	var action *models.AuditAction
	if raw := ctx.Query("action"); raw != "" {
		a := models.AuditAction(raw)
		action = &a
	}
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "100"))

	events, err := c.auditService.ListByStudent(ctx, studentID,
		middleware.RoleFromContext(ctx), action, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.AuditListResponse{Events: make([]dto.AuditEventResponse, 0, len(events))}
	for _, event := range events {
		response.Events = append(response.Events, dto.AuditEventResponse{
			ID:        event.ID.String(),
			StudentID: event.StudentID,
			Action:    string(event.Action),
			Stage:     event.Stage,
			Office:    event.Office,
			Decision:  event.Decision,
			ActorID:   event.ActorID,
			ActorRole: string(event.ActorRole),
			CreatedAt: event.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

func toGraduationRequestResponse(request *models.GraduationRequest) dto.GraduationRequestResponse {
	stages := make([]dto.StageStatus, 0, len(models.ApprovalStages))
	for _, stage := range models.ApprovalStages {
		stages = append(stages, dto.StageStatus{
			Stage:  string(stage),
			Status: string(request.StatusOf(stage)),
		})
	}

	currentStage, pipeline := request.CurrentStage()

	response := dto.GraduationRequestResponse{
		StudentID:    request.StudentID,
		Stages:       stages,
		CurrentStage: string(currentStage),
		Pipeline:     string(pipeline),
	}
	if !request.UpdatedAt.IsZero() {
		updatedAt := request.UpdatedAt
		response.UpdatedAt = &updatedAt
	}
	return response
}

// parseStudentID reads the studentId path parameter; writes the error
// response itself on failure
func parseStudentID(ctx *gin.Context) (int64, bool) {
	idStr := ctx.Param("studentId")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID").
			WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
