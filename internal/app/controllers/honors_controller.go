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

// HonorsController handles honors list operations
type HonorsController struct {
	honorsService *services.HonorsService
}

// NewHonorsController creates a new HonorsController
func NewHonorsController(honorsService *services.HonorsService) *HonorsController {
	return &HonorsController{
		honorsService: honorsService,
	}
}

// List retrieves the ranked honors list
// @Summary Get honors list
// @Description Retrieves fully approved students at or above the cum laude cutoff, ranked by GPA and tagged with their tier. Staff only.
// @Tags honors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.HonorsListResponse} "Honors list retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Staff only"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /honors [get]
func (c *HonorsController) List(ctx *gin.Context) {
	entries, finalized, err := c.honorsService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toHonorsListResponse(entries, finalized),
		Timestamp: time.Now(),
	})
}

// Finalize locks the honors list
// @Summary Finalize honors list
// @Description Locks the honors list for publication. Rectorate only; finalization is terminal.
// @Tags honors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.HonorsListResponse} "Honors list finalized"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Rectorate only"
// @Failure 409 {object} dto.ErrorResponse "Honors list already finalized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /honors/finalize [post]
func (c *HonorsController) Finalize(ctx *gin.Context) {
	entries, list, err := c.honorsService.Finalize(ctx,
		middleware.UserIDFromContext(ctx), middleware.RoleFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      toHonorsListResponse(entries, list),
		Timestamp: time.Now(),
	})
}

func toHonorsListResponse(entries []*models.HonorsEntry, list *models.HonorsList) dto.HonorsListResponse {
	response := dto.HonorsListResponse{
		Entries: make([]dto.HonorsEntryResponse, 0, len(entries)),
	}
	for _, entry := range entries {
		response.Entries = append(response.Entries, dto.HonorsEntryResponse{
			StudentID:     entry.StudentID,
			StudentNumber: entry.StudentNumber,
			FirstName:     entry.FirstName,
			LastName:      entry.LastName,
			Department:    entry.Department,
			GPA:           entry.GPA,
			Tier:          string(entry.Tier),
		})
	}
	if list != nil {
		finalizedAt := list.FinalizedAt
		response.Finalized = true
		response.FinalizedAt = &finalizedAt
	}
	return response
}
