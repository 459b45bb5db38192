package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

// HandleAPIError writes the response for an error returned by a service
func HandleAPIError(c *gin.Context, err error) {
	var customErr *apperrors.CustomError

	switch {
	case errors.Is(err, apperrors.ErrSessionRequired):
		c.Redirect(http.StatusFound, LoginPath)
	case errors.Is(err, apperrors.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, dto.NewFailureResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Username already exists").WithField("username")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewFailureResponse(
			dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid username or password")))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, dto.NewFailureResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Student not found")))
	case errors.Is(err, apperrors.ErrTutorNotFound):
		c.JSON(http.StatusNotFound, dto.NewFailureResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Tutor not found")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewFailureResponse(
			dto.NewErrorDetail(dto.ErrorCodeForbidden, "Permission denied")))
	case errors.As(err, &customErr) && errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewFailureResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, customErr.Message).WithField(customErr.Field)))
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewFailureResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Validation failed")))
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewFailureResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")))
	}
}
