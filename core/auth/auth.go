// Package auth guards the /api group. Content reads listed in
// config.GetAuthSkipperPaths are public; everything else needs a key or
// basic credentials depending on AUTH_TYPE.
package auth

import (
	"crypto/subtle"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"glomnidesigns.GO/config"
)

const (
	TypeBasic = "basic"
	TypeKey   = "key"
)

// KeyLookup accepts the key as a bearer token or in X-API-Key.
const KeyLookup = "header:" + echo.HeaderAuthorization + ":Bearer ,header:X-API-Key"

type Config struct {
	Type      string
	APIKey    string
	User      string
	Pass      string
	SkipPaths []string
}

// FromEnv reads AUTH_TYPE, API_KEY, API_USER and API_PASS.
func FromEnv() Config {
	t := os.Getenv("AUTH_TYPE")
	if t != TypeKey {
		t = TypeBasic
	}
	return Config{
		Type:      t,
		APIKey:    os.Getenv("API_KEY"),
		User:      os.Getenv("API_USER"),
		Pass:      os.Getenv("API_PASS"),
		SkipPaths: config.GetAuthSkipperPaths(),
	}
}

// Middleware returns the auth middleware configured from the environment.
func Middleware() echo.MiddlewareFunc {
	return MiddlewareWithConfig(FromEnv())
}

func MiddlewareWithConfig(cfg Config) echo.MiddlewareFunc {
	skipper := Skipper(cfg.SkipPaths)
	if cfg.Type == TypeKey {
		return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
			KeyLookup: KeyLookup,
			Validator: func(key string, c echo.Context) (bool, error) {
				return equal(key, cfg.APIKey), nil
			},
			Skipper: skipper,
		})
	}
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Validator: func(username, password string, c echo.Context) (bool, error) {
			// no short-circuit between the two comparisons
			u, p := equal(username, cfg.User), equal(password, cfg.Pass)
			return u && p, nil
		},
		Realm:   "glomnidesigns",
		Skipper: skipper,
	})
}

// Skipper matches the registered route path, so "/api/designs/:slug"
// covers every slug.
func Skipper(paths []string) middleware.Skipper {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return func(c echo.Context) bool {
		_, ok := set[c.Path()]
		return ok
	}
}

// equal refuses empty credentials so an unset env var never grants access.
func equal(got, want string) bool {
	if want == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
