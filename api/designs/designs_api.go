package designs

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
	"glomnidesigns.GO/service/content"
)

func init() {
	api.RegisterModule(RegisterDesignRoutes)
}

func RegisterDesignRoutes(apiGroup *echo.Group, a *app.App) {
	g := apiGroup.Group("/designs")

	// GET /api/designs?search=&category=&page=
	g.GET("", func(c echo.Context) error {
		var q content.DesignQuery
		if err := c.Bind(&q); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return api.Envelope(c, a.Content.Designs(c.Request().Context(), q))
	})

	// GET /api/designs/featured
	g.GET("/featured", func(c echo.Context) error {
		return api.Envelope(c, a.Content.FeaturedDesigns(c.Request().Context()))
	})

	// GET /api/designs/:slug
	g.GET("/:slug", func(c echo.Context) error {
		return api.Envelope(c, a.Content.Design(c.Request().Context(), c.Param("slug")))
	})
}
