package rest

import (
	"net/http"

	"extstats/config"
	"extstats/di"
	"extstats/domain"

	"github.com/labstack/echo/v4"
)

// registerExtensionRoutes registers search and extension detail routes.
func registerExtensionRoutes(v1 *echo.Group, container *di.ApplicationComponents, cfg *config.Config) {
	extensions := v1.Group("/extensions")
	extensions.GET("/search", handleSearch(container, cfg))
	extensions.GET("/:id", handleExtensionDetail(container))
}

// handleSearch serves autocomplete matches over the latest extension state.
func handleSearch(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		query := c.QueryParam("q")
		limit, err := intQueryParam(c, "limit", cfg.Search.DefaultLimit)
		if err != nil {
			return HandleError(c, err, "search_extensions")
		}

		results, err := container.SearchExtensionsUsecase.Execute(ctx, query, limit)
		if err != nil {
			return HandleError(c, err, "search_extensions")
		}
		if results == nil {
			results = []domain.ExtensionSummary{}
		}

		return c.JSON(http.StatusOK, SearchResponse{
			Query:   query,
			Results: results,
		})
	}
}

// handleExtensionDetail serves one extension's latest state plus its own
// recent install-count history.
func handleExtensionDetail(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		detail, err := container.GetExtensionUsecase.Execute(ctx, c.Param("id"))
		if err != nil {
			return HandleError(c, err, "extension_detail")
		}

		history := HistoryResponse{
			Days:     make([]string, 0, len(detail.History)),
			Installs: make([]int64, 0, len(detail.History)),
		}
		for _, s := range detail.History {
			history.Days = append(history.Days, s.Day().Format(dayFormat))
			history.Installs = append(history.Installs, s.InstallCount)
		}

		return c.JSON(http.StatusOK, ExtensionDetailResponse{
			Extension: detail.Latest,
			History:   history,
		})
	}
}
