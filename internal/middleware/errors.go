package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/miniactivity/server/internal/apperrors"
	"github.com/miniactivity/server/internal/models"
	"github.com/miniactivity/server/pkg/logger"
)

// Error codes on the wire.
const (
	CodeBadUserInput        = "BAD_USER_INPUT"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeNotFound            = "NOT_FOUND"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// WireError is the stable client-facing error shape.
type WireError struct {
	Message          string            `json:"message"`
	Code             string            `json:"code"`
	CorrelationID    string            `json:"correlationId"`
	ValidationErrors []apperrors.Issue `json:"validationErrors,omitempty"`
}

// Abort records an error on the request and stops the chain. The error
// formatter reshapes it exactly once, at the outermost layer.
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorFormatter maps every recorded error into the wire error shape.
// It runs outermost so guards and handlers can fail with typed errors and
// never touch the response themselves.
func ErrorFormatter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors[0].Err

		// Freshly generated per formatted error, independent of the
		// request-scoped id used in logs.
		wire := WireError{
			Message:       err.Error(),
			CorrelationID: uuid.New().String(),
		}

		var (
			validationErr   *apperrors.ValidationError
			modelErr        *models.ValidationError
			unauthorizedErr *apperrors.UnauthorizedError
			forbiddenErr    *apperrors.ForbiddenError
			notFoundErr     *apperrors.NotFoundError
		)

		status := http.StatusInternalServerError
		switch {
		case errors.As(err, &validationErr):
			status = http.StatusBadRequest
			wire.Code = CodeBadUserInput
			wire.ValidationErrors = validationErr.Issues
		case errors.As(err, &modelErr):
			status = http.StatusBadRequest
			wire.Code = CodeBadUserInput
			wire.Message = "Invalid input"
			wire.ValidationErrors = []apperrors.Issue{{Field: modelErr.Field, Message: modelErr.Message}}
		case errors.As(err, &unauthorizedErr):
			status = http.StatusUnauthorized
			wire.Code = CodeUnauthorized
		case errors.As(err, &forbiddenErr):
			status = http.StatusForbidden
			wire.Code = CodeUnauthorized
		case errors.As(err, &notFoundErr):
			status = http.StatusNotFound
			wire.Code = CodeNotFound
		default:
			wire.Code = CodeInternalServerError
			wire.Message = "Internal server error"
			logger.FromContext(c.Request.Context()).WithError(err).Error("Unexpected error")
		}

		c.JSON(status, wire)
	}
}
