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

// MessageController handles advisor messaging operations
type MessageController struct {
	messageService *services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService *services.MessageService) *MessageController {
	return &MessageController{
		messageService: messageService,
	}
}

// Send delivers a message from an advisor to a student
// @Summary Send a message
// @Description Sends a message to a student's user account. Advisors only.
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Advisors only"
// @Failure 404 {object} dto.ErrorResponse "Recipient is not a student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages [post]
func (c *MessageController) Send(ctx *gin.Context) {
	var req dto.SendMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid message data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	message, err := c.messageService.Send(ctx,
		middleware.UserIDFromContext(ctx), middleware.RoleFromContext(ctx),
		req.RecipientID, req.Body)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      toMessageResponse(message),
		Timestamp: time.Now(),
	})
}

// Inbox retrieves the authenticated user's messages
// @Summary Get inbox
// @Description Retrieves the caller's messages, newest first
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.InboxResponse} "Inbox retrieved"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/inbox [get]
func (c *MessageController) Inbox(ctx *gin.Context) {
	messages, err := c.messageService.Inbox(ctx, middleware.UserIDFromContext(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	response := dto.InboxResponse{Messages: make([]dto.MessageResponse, 0, len(messages))}
	for _, message := range messages {
		response.Messages = append(response.Messages, toMessageResponse(message))
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      response,
		Timestamp: time.Now(),
	})
}

// MarkRead marks one of the caller's messages as read
// @Summary Mark message as read
// @Description Marks a message in the caller's inbox as read
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "Message ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Message marked as read"
// @Failure 400 {object} dto.ErrorResponse "Invalid message ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{id}/read [put]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	idStr := ctx.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid message ID").
			WithDetails("Message ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.messageService.MarkRead(ctx, id, middleware.UserIDFromContext(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Message marked as read"},
		Timestamp: time.Now(),
	})
}

func toMessageResponse(message *models.Message) dto.MessageResponse {
	response := dto.MessageResponse{
		ID:        message.ID,
		SenderID:  message.SenderID,
		Body:      message.Body,
		Status:    string(message.Status),
		CreatedAt: message.CreatedAt,
	}
	if message.Sender != nil {
		response.SenderName = message.Sender.FullName()
	}
	return response
}
