package health

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
	"glomnidesigns.GO/config"
)

func init() {
	api.RegisterRoute(RegisterHealthRoutes)
}

// RegisterHealthRoutes mounts GET /health. It reports configuration only
// and never calls the CMS.
func RegisterHealthRoutes(e *echo.Echo, a *app.App) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"status":       "ok",
			"cms":          a.Client.BaseURL(),
			"asset_origin": a.Client.AssetOrigin(),
			"cache":        a.Cache != nil,
			"redis":        config.RedisClient != nil,
			"search":       a.Index.Enabled(),
		})
	})
}
