package categories

import (
	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
	"glomnidesigns.GO/service/content"
)

func init() {
	api.RegisterModule(RegisterCategoryRoutes)
}

func RegisterCategoryRoutes(apiGroup *echo.Group, a *app.App) {
	g := apiGroup.Group("/categories")

	// GET /api/categories?search=&type=
	g.GET("", func(c echo.Context) error {
		q := content.CategoryQuery{Search: c.QueryParam("search"), Type: c.QueryParam("type")}
		return api.Envelope(c, a.Content.Categories(c.Request().Context(), q))
	})

	// GET /api/categories/:slug?search= - category plus its designs
	g.GET("/:slug", func(c echo.Context) error {
		return api.Envelope(c, a.Content.CategoryDetail(c.Request().Context(), c.Param("slug"), c.QueryParam("search")))
	})
}
