// Package api collects HTTP route modules registered from init() and
// mounts them on an Echo instance with the shared App.
package api

import (
	"sync"

	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/app"
	"glomnidesigns.GO/core/auth"
	"glomnidesigns.GO/core/registry"
)

// ModuleFunc registers routes on the /api group.
type ModuleFunc func(g *echo.Group, a *app.App)

// RouteFunc registers routes on the root Echo instance (health, graphql, custom).
type RouteFunc func(e *echo.Echo, a *app.App)

var mu sync.Mutex

func list[T any](key string) []T {
	if v, ok := registry.GlobalRegistry.GetGlobal(key); ok && v != nil {
		return v.([]T)
	}
	return nil
}

func add[T any](key, what string, fn T) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(key) {
		panic("api/registry: " + what + " locked (register only during init)")
	}
	next := append(append([]T(nil), list[T](key)...), fn)
	registry.GlobalRegistry.SetGlobal(key, next)
}

// RegisterModule registers an /api module. Call from init() in API packages.
func RegisterModule(fn ModuleFunc) { add(registry.KeyRegistryAPI, "API modules", fn) }

// RegisterRoute registers a root-level route module. Call from init().
func RegisterRoute(fn RouteFunc) { add(registry.KeyRegistryRoutes, "routes", fn) }

// RegisterGET is shorthand for a single GET route on root.
func RegisterGET(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *app.App) { e.GET(path, handler) })
}

// RegisterPOST is shorthand for a single POST route on root.
func RegisterPOST(path string, handler echo.HandlerFunc) {
	RegisterRoute(func(e *echo.Echo, _ *app.App) { e.POST(path, handler) })
}

// ApplyModules mounts every /api module on g and locks the module list.
func ApplyModules(g *echo.Group, a *app.App) {
	for _, fn := range list[ModuleFunc](registry.KeyRegistryAPI) {
		fn(g, a)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryAPI)
}

// ApplyRoutes mounts every root-level route module and locks the route list.
func ApplyRoutes(e *echo.Echo, a *app.App) {
	for _, fn := range list[RouteFunc](registry.KeyRegistryRoutes) {
		fn(e, a)
	}
	registry.GlobalRegistry.Lock(registry.KeyRegistryRoutes)
}

// Apply mounts the /api group behind auth.Middleware, then the root routes.
func Apply(e *echo.Echo, a *app.App) {
	apiGroup := e.Group("/api")
	apiGroup.Use(auth.Middleware())
	ApplyModules(apiGroup, a)
	ApplyRoutes(e, a)
}
