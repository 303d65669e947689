package rest

import (
	stderrors "errors"
	"strconv"
	"time"

	"extstats/utils/errors"
	"extstats/utils/logger"

	"github.com/labstack/echo/v4"
)

const dayFormat = "2006-01-02"

// HandleError converts errors to HTTP responses. Known application errors
// map to their status code and structured body; anything else becomes an
// opaque 500 so internal details never leak to clients.
func HandleError(c echo.Context, err error, operation string) error {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		appErr = errors.UnknownError("internal server error", err, map[string]interface{}{
			"operation": operation,
		})
	}

	logger.Logger.Error("request failed",
		"operation", operation,
		"error_code", appErr.Code,
		"reason", appErr.Reason(),
		"error", appErr.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"request_id", c.Response().Header().Get("X-Request-ID"),
	)

	return c.JSON(appErr.HTTPStatusCode(), appErr.ToHTTPResponse())
}

// intQueryParam parses an optional integer query parameter, falling back to
// def when absent. A malformed value is reported as a validation error.
func intQueryParam(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.ValidationError(
			name+" must be an integer",
			errors.ReasonInvalidQuery,
			map[string]interface{}{"param": name, "value": raw},
		)
	}
	return value, nil
}

func formatDays(days []time.Time) []string {
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(dayFormat)
	}
	return out
}
