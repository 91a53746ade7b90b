package search

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
)

func init() {
	api.RegisterModule(RegisterSearchRoutes)
}

func RegisterSearchRoutes(apiGroup *echo.Group, a *app.App) {
	// GET /api/search/designs?q=&size= - ranked by the design index when
	// configured, otherwise the CMS name filter
	apiGroup.GET("/search/designs", func(c echo.Context) error {
		q := strings.TrimSpace(c.QueryParam("q"))
		if q == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "q is required"})
		}
		size := api.QueryInt(c, "size", 20)
		return api.Envelope(c, a.Content.SearchDesigns(c.Request().Context(), q, size))
	})
}
