package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
	snapshotRepo "glomnidesigns.GO/model/repository/snapshot"
)

func init() {
	api.RegisterModule(RegisterAdminRoutes)
}

// RegisterAdminRoutes mounts maintenance endpoints. They are not in the
// auth skipper list, so credentials are required.
func RegisterAdminRoutes(apiGroup *echo.Group, a *app.App) {
	g := apiGroup.Group("/admin")

	// POST /api/admin/cache/purge?tag=designs - empty tag purges everything
	g.POST("/cache/purge", func(c echo.Context) error {
		tag := c.QueryParam("tag")
		n := a.Content.Purge(c.Request().Context(), tag)
		return c.JSON(http.StatusOK, echo.Map{"tag": tag, "purged": n})
	})

	// POST /api/admin/snapshot - mirror every collection into the snapshot table
	g.POST("/snapshot", func(c echo.Context) error {
		svc, err := a.Snapshot()
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		}
		report, err := svc.Sync(c.Request().Context())
		if err != nil {
			a.Log.Warn("snapshot incomplete", zap.Error(err))
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error(), "report": report})
		}
		return c.JSON(http.StatusOK, report)
	})

	// GET /api/admin/snapshot - stored rows per collection
	g.GET("/snapshot", func(c echo.Context) error {
		db, err := a.DB()
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		}
		counts, err := snapshotRepo.NewSnapshotRepository(db).CountByCollection(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"collections": counts})
	})

	// POST /api/admin/index/designs - rebuild the design search index
	g.POST("/index/designs", func(c echo.Context) error {
		if !a.Index.Enabled() {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "elasticsearch not configured"})
		}
		n, err := a.Index.Reindex(c.Request().Context(), a.Client)
		if err != nil {
			return c.JSON(http.StatusBadGateway, echo.Map{"error": err.Error(), "indexed": n})
		}
		return c.JSON(http.StatusOK, echo.Map{"indexed": n, "index": a.Index.IndexName()})
	})
}
