package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const ingestKeyHeader = "X-Ingest-Key"

// IngestKeyMiddleware guards the ingest endpoint. Only the scraper knows
// the shared key; every read endpoint stays public.
type IngestKeyMiddleware struct {
	logger    *slog.Logger
	clientKey string
}

// NewIngestKeyMiddleware constructs the middleware with the configured
// shared key. An empty key denies all ingest requests.
func NewIngestKeyMiddleware(logger *slog.Logger, clientKey string) *IngestKeyMiddleware {
	if clientKey == "" && logger != nil {
		logger.Warn("ingest client key not configured, ingest requests will be denied")
	}

	return &IngestKeyMiddleware{
		logger:    logger,
		clientKey: clientKey,
	}
}

// RequireIngestKey ensures the X-Ingest-Key header matches the shared key.
func (m *IngestKeyMiddleware) RequireIngestKey() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := strings.TrimSpace(c.Request().Header.Get(ingestKeyHeader))

			if key == "" {
				if m.logger != nil {
					m.logger.Warn("ingest auth failed: missing key header",
						"path", c.Request().URL.Path,
						"remote_addr", c.RealIP(),
					)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error":  "Unauthorized",
					"detail": "missing ingest key",
				})
			}

			if m.clientKey == "" ||
				subtle.ConstantTimeCompare([]byte(key), []byte(m.clientKey)) != 1 {
				if m.logger != nil {
					m.logger.Warn("ingest auth failed: invalid key",
						"path", c.Request().URL.Path,
						"remote_addr", c.RealIP(),
					)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]string{
					"error":  "Unauthorized",
					"detail": "invalid ingest key",
				})
			}

			return next(c)
		}
	}
}
