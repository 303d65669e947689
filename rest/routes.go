package rest

import (
	"net/http"
	"strings"

	"extstats/config"
	"extstats/di"
	middleware_custom "extstats/middleware"
	"extstats/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	// 1. Request ID middleware first so every later stage can use the id
	e.Use(middleware_custom.RequestIDMiddleware())

	// 2. Recovery middleware early
	e.Use(middleware.Recover())

	// 3. Security headers
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	// 4. CORS middleware; read endpoints are consumed by browser dashboards
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{echo.GET, echo.POST, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, "X-Request-ID"},
		MaxAge:       86400,
	}))

	// 5. Request timeout
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.ReadTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/metrics")
		},
	}))

	// 6. Metrics before logging so duration covers handler work only
	e.Use(middleware_custom.MetricsMiddleware())

	// 7. Logging middleware
	e.Use(middleware_custom.LoggingMiddleware(logger.Logger))

	// 8. Compression middleware last
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.Contains(c.Path(), "/health") ||
				strings.HasPrefix(c.Path(), "/metrics")
		},
	}))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
	})

	registerTrendRoutes(v1, container, cfg)
	registerExtensionRoutes(v1, container, cfg)
	registerIngestRoutes(v1, container, cfg)
}
