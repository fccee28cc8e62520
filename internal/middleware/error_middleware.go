package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/berk/parentportal/internal/app/models/dto"
	"github.com/berk/parentportal/internal/pkg/apperrors"
	"github.com/berk/parentportal/internal/pkg/logger"
)

// HandleAPIError converts service errors to HTTP responses. Every named
// failure maps to a distinct user-facing message; anything unrecognized
// becomes a 500 with the underlying error and driver code echoed for
// debugging, matching the behaviour the frontend was built against.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrMissingCredentials):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Username and password are required"))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Username or password incorrect"))

	case errors.Is(err, apperrors.ErrAccountInactive):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Account is inactive. Please contact support."))

	case errors.Is(err, apperrors.ErrIncorrectOldPassword):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Incorrect old password"))

	case errors.Is(err, apperrors.ErrNoLinkedStudent):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("No associated student found. Please contact the school administration."))

	case errors.Is(err, apperrors.ErrNoActiveEnrollment):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("No active academic record found for this student."))

	case errors.Is(err, apperrors.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Student profile not found"))

	case errors.Is(err, apperrors.ErrParentNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Parent account not found"))

	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Resource not found"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")

		resp := dto.ErrorResponse{
			Error:   "Internal server error",
			Details: err.Error(),
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			resp.Code = pgErr.Code
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
