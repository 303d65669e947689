package rest

import (
	"net/http"
	"strings"

	"extstats/config"
	"extstats/di"

	"github.com/labstack/echo/v4"
)

// registerTrendRoutes registers the growth ranking and comparison routes.
func registerTrendRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	trends := v1.Group("/trends")
	trends.GET("/growth", handleGrowth(container, cfg))
	trends.GET("/compare", handleCompare(container, cfg))
}

// handleGrowth serves the fastest-growing ranking over a trailing window.
func handleGrowth(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		windowDays, err := intQueryParam(c, "window_days", cfg.Trends.DefaultGrowthWindowDays)
		if err != nil {
			return HandleError(c, err, "growth_ranking")
		}
		limit, err := intQueryParam(c, "limit", cfg.Trends.DefaultGrowthLimit)
		if err != nil {
			return HandleError(c, err, "growth_ranking")
		}

		rows, err := container.RankGrowthUsecase.Execute(ctx, windowDays, limit)
		if err != nil {
			return HandleError(c, err, "growth_ranking")
		}

		return c.JSON(http.StatusOK, GrowthResponse{
			WindowDays: windowDays,
			Rows:       rows,
		})
	}
}

// handleCompare serves aligned install-count series for a comma-separated
// set of extension ids.
func handleCompare(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		windowDays, err := intQueryParam(c, "window_days", cfg.Trends.DefaultCompareWindowDays)
		if err != nil {
			return HandleError(c, err, "compare_series")
		}

		ids := splitIDs(c.QueryParam("ids"))

		result, err := container.CompareSeriesUsecase.Execute(ctx, ids, windowDays)
		if err != nil {
			return HandleError(c, err, "compare_series")
		}

		return c.JSON(http.StatusOK, CompareResponse{
			WindowDays: windowDays,
			Days:       formatDays(result.Days),
			Series:     result.Series,
			Unknown:    result.Unknown,
		})
	}
}

// splitIDs parses the ids query parameter, dropping empty segments so that
// trailing commas do not produce phantom targets.
func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
