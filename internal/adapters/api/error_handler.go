package api

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"weatheractivity.app/internal/core/weather"
	errorspkg "weatheractivity.app/pkg/errors"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	appErr, ok := errorspkg.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
		return
	}

	var statusCode int
	var message string

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.ConfigurationError:
		statusCode = http.StatusInternalServerError
		message = appErr.Message
	case errorspkg.ExternalAPIError, errorspkg.MalformedResponseError:
		statusCode = http.StatusBadGateway
		message = appErr.Message
	case errorspkg.DatabaseError:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// handleLookupError reports gateway failures the way weather consumers expect:
// only a bad request is a 400, every other failure is a 500 carrying the
// user-facing message.
func (s *HTTPServerAdapter) handleLookupError(c *gin.Context, err error) {
	appErr, ok := errorspkg.As(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: weather.MsgFetchFailed})
		return
	}

	if errorspkg.IsValidationError(appErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: appErr.Message})
}

// bindingError turns a binding failure into a validation error with a readable message
func bindingError(err error) *errorspkg.AppError {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errorspkg.NewValidationError("Invalid request format")
	}

	fe := verrs[0]
	switch {
	case fe.Tag() == "coordinate" && fe.Field() == "Lat":
		return errorspkg.NewValidationError(fmt.Sprintf("Invalid latitude: %s", strings.TrimSpace(fe.Value().(string))))
	case fe.Tag() == "coordinate" && fe.Field() == "Lon":
		return errorspkg.NewValidationError(fmt.Sprintf("Invalid longitude: %s", strings.TrimSpace(fe.Value().(string))))
	case fe.Tag() == "required":
		return errorspkg.NewValidationError(fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
	default:
		return errorspkg.NewValidationError("Invalid request format")
	}
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")

	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
