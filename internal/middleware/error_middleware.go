package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/agms/agms-backend/internal/app/models/dto"
	"github.com/agms/agms-backend/internal/pkg/apperrors"
	"github.com/agms/agms-backend/internal/pkg/logger"
)

// HandleAPIError maps application errors to HTTP responses. Controllers call
// this for every service error so status codes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorizedTransition):
		respond(c, 403, dto.NewErrorDetail(dto.ErrorCodeUnauthorizedTransition,
			"Role is not authorized to decide this stage, or an earlier stage is not approved"))

	case errors.Is(err, apperrors.ErrStageAlreadyDecided):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeStageAlreadyDecided,
			"This stage has already been decided"))

	case errors.Is(err, apperrors.ErrInvalidDecision):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeInvalidDecision,
			"Decision must be APPROVED or DENIED").WithField("decision"))

	case errors.Is(err, apperrors.ErrUnauthorizedOffice):
		respond(c, 403, dto.NewErrorDetail(dto.ErrorCodeUnauthorizedOffice,
			"Role does not own this clearance office"))

	case errors.Is(err, apperrors.ErrIncompleteClearance):
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeIncompleteClearance,
			"Clearance incomplete, offices outstanding")
		if details := apperrors.Details(err); details != nil {
			errorDetail = errorDetail.WithDetails(details)
		}
		respond(c, 422, errorDetail)

	case errors.Is(err, apperrors.ErrAlreadyFinalized):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeClearanceFinalized,
			"Clearance record is already finalized"))

	case errors.Is(err, apperrors.ErrHonorsListFinalized):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeHonorsListFinalized,
			"Honors list is already finalized"))

	case errors.Is(err, apperrors.ErrUnauthorizedRole):
		respond(c, 403, dto.NewErrorDetail(dto.ErrorCodeUnauthorized,
			"Role not permitted for this action"))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, 403, dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Permission denied"))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials"))

	case errors.Is(err, apperrors.ErrAccountDisabled):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeAccountDisabled, "Account is disabled"))

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"))

	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, 401, dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"))

	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found"))

	case errors.Is(err, apperrors.ErrDepartmentNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Department not found"))

	case errors.Is(err, apperrors.ErrMessageNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Message not found"))

	case errors.Is(err, apperrors.ErrUserNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "User not found"))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"))

	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.NewErrorResponse(detail))
}
