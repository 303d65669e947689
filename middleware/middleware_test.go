package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"extstats/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/trends/growth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var ctxID any
	handler := RequestIDMiddleware()(func(c echo.Context) error {
		ctxID = c.Request().Context().Value(logger.RequestIDKey)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	headerID := rec.Header().Get("X-Request-ID")
	assert.NotEmpty(t, headerID)
	assert.Equal(t, headerID, ctxID)
}

func TestRequestIDMiddleware_PreservesIncomingID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/trends/growth", nil)
	req.Header.Set("X-Request-ID", "incoming-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestIDMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "incoming-id", rec.Header().Get("X-Request-ID"))
}

func TestIngestKeyMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		clientKey  string
		header     string
		wantStatus int
	}{
		{"valid key", "secret", "secret", 0},
		{"missing header", "secret", "", http.StatusUnauthorized},
		{"wrong key", "secret", "wrong", http.StatusUnauthorized},
		{"unconfigured key denies everything", "", "anything", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/v1/ingest", nil)
			if tt.header != "" {
				req.Header.Set("X-Ingest-Key", tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			m := NewIngestKeyMiddleware(nil, tt.clientKey)
			handler := m.RequireIngestKey()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			err := handler(c)
			if tt.wantStatus == 0 {
				assert.NoError(t, err)
				return
			}

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestMetricsMiddleware_PassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/trends/growth", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/trends/growth")

	handler := MetricsMiddleware()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
