package handler

import (
	stdErrors "errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/meeting-lens-team/meeting-lens/errors"
	dto "github.com/meeting-lens-team/meeting-lens/internal/adapter/dto/analysis"
)

// getRequestID tries to read X-Request-ID from the request
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleError centralizes error handling and logging. Failures of any kind
// are flattened into a single-string error body; partial results are never
// written.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			logger.Error("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		msg := appErr.Message
		if appErr.Raw != nil {
			msg = fmt.Sprintf("%s: %v", appErr.Message, appErr.Raw)
		}
		return c.JSON(appErr.HTTPCode, dto.ErrorResponse{Error: msg})
	}

	if logger != nil {
		logger.Error("http.response.error",
			zap.String("request_id", reqID),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
	}
	return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
}
