package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"glomnidesigns.GO/cms"
)

// StatusOf maps an envelope to an HTTP status: 200 on success, 404 for a
// slug that matched nothing, 502 for any upstream failure.
func StatusOf[T any](res cms.Result[T]) int {
	switch {
	case res.Success:
		return http.StatusOK
	case res.IsNotFound():
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// Envelope writes res with the status from StatusOf. Successful envelopes
// carry a weak ETag and answer a matching If-None-Match with 304.
func Envelope[T any](c echo.Context, res cms.Result[T]) error {
	status := StatusOf(res)
	body, err := json.Marshal(res)
	if err != nil {
		return err
	}
	if status == http.StatusOK {
		tag := ETag(body)
		c.Response().Header().Set("ETag", tag)
		if ETagMatch(c.Request().Header.Get("If-None-Match"), tag) {
			return c.NoContent(http.StatusNotModified)
		}
	}
	return c.JSONBlob(status, body)
}

// ETag is a weak validator over a response body.
func ETag(body []byte) string {
	return fmt.Sprintf(`W/"%016x"`, xxhash.Sum64(body))
}

// ETagMatch reports whether an If-None-Match header lists tag. Comparison
// is weak: W/ prefixes are ignored on both sides.
func ETagMatch(header, tag string) bool {
	if header == "" {
		return false
	}
	want := strings.TrimPrefix(tag, "W/")
	for _, part := range strings.Split(header, ",") {
		p := strings.TrimSpace(part)
		if p == "*" || strings.TrimPrefix(p, "W/") == want {
			return true
		}
	}
	return false
}

// QueryInt parses an integer query parameter, returning def when absent
// or malformed.
func QueryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// QueryBool treats "1", "true" and "on" as true.
func QueryBool(c echo.Context, name string) bool {
	switch c.QueryParam(name) {
	case "1", "true", "on":
		return true
	}
	return false
}

// RequestDuration sets X-Request-Duration-ms on every response.
func RequestDuration() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			c.Response().Before(func() {
				c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
			})
			return next(c)
		}
	}
}

// RequestID tags every request with an X-Request-ID (a UUID unless the
// caller sent one) and stores it under "request_id".
func RequestID() echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			c.Set("request_id", id)
		},
	})
}
