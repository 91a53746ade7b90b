package interiors

import (
	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
	"glomnidesigns.GO/service/content"
)

func init() {
	api.RegisterModule(RegisterInteriorRoutes)
}

func RegisterInteriorRoutes(apiGroup *echo.Group, a *app.App) {
	// GET /api/interiors?search=&category=&featured=
	apiGroup.GET("/interiors", func(c echo.Context) error {
		q := content.InteriorQuery{
			Search:       c.QueryParam("search"),
			Category:     c.QueryParam("category"),
			FeaturedOnly: api.QueryBool(c, "featured"),
		}
		return api.Envelope(c, a.Content.Interiors(c.Request().Context(), q))
	})

	apiGroup.GET("/interiors/:slug", func(c echo.Context) error {
		return api.Envelope(c, a.Content.Interior(c.Request().Context(), c.Param("slug")))
	})

	apiGroup.GET("/interior-categories", func(c echo.Context) error {
		return api.Envelope(c, a.Content.InteriorCategories(c.Request().Context()))
	})
}
