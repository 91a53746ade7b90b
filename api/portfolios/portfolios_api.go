package portfolios

import (
	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
)

func init() {
	api.RegisterModule(RegisterPortfolioRoutes)
}

func RegisterPortfolioRoutes(apiGroup *echo.Group, a *app.App) {
	g := apiGroup.Group("/portfolios")

	g.GET("", func(c echo.Context) error {
		return api.Envelope(c, a.Content.Portfolios(c.Request().Context(), c.QueryParam("search")))
	})

	g.GET("/:slug", func(c echo.Context) error {
		return api.Envelope(c, a.Content.Portfolio(c.Request().Context(), c.Param("slug")))
	})
}
