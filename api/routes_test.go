package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"glomnidesigns.GO/api"
	_ "glomnidesigns.GO/api/admin"
	_ "glomnidesigns.GO/api/categories"
	_ "glomnidesigns.GO/api/designs"
	_ "glomnidesigns.GO/api/health"
	_ "glomnidesigns.GO/api/interiors"
	_ "glomnidesigns.GO/api/portfolios"
	_ "glomnidesigns.GO/api/search"
	"glomnidesigns.GO/app"
	"glomnidesigns.GO/cms/cmstest"
	"glomnidesigns.GO/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newServer(t *testing.T) (*echo.Echo, *cmstest.Server) {
	t.Helper()
	t.Setenv("ELASTICSEARCH_HOST", "")
	t.Setenv("AUTH_TYPE", "key")
	t.Setenv("API_KEY", "test-key")

	srv := cmstest.NewServer(t)
	srv.Set("designs",
		cmstest.With(cmstest.Design(1, "a", "Modern Loft", "home"), "is_featured", true),
		cmstest.Design(2, "b", "Office Suite", "office"),
	)
	srv.Set("categories",
		cmstest.Category(1, "home", "Home", "home_interior"),
		cmstest.Category(2, "office", "Office", "office_interior"),
	)
	srv.Set("interiors", cmstest.Interior(1, "kitchen", "Kitchen", "residential", true))
	srv.Set("interior-categories", map[string]interface{}{"id": 1, "slug": "residential", "name": "Residential"})
	srv.Set("portfolios", cmstest.Portfolio(1, "villa", "Villa", "Goa"))

	cfg := &config.Config{APIURL: srv.APIURL(), RequestTimeout: config.DefaultRequestTimeout}
	e := echo.New()
	api.Apply(e, app.New(cfg, nil))
	return e, srv
}

func get(t *testing.T, e *echo.Echo, path string) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var env envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec.Code, env
}

func TestDesignsRoutes(t *testing.T) {
	e, _ := newServer(t)

	code, env := get(t, e, "/api/designs?search=loft")
	if code != http.StatusOK || !env.Success {
		t.Fatalf("designs = %d %+v", code, env)
	}
	var page struct {
		Designs struct {
			Items      []struct{ Slug string } `json:"items"`
			TotalItems int                     `json:"total_items"`
		} `json:"designs"`
	}
	_ = json.Unmarshal(env.Data, &page)
	if page.Designs.TotalItems != 1 || page.Designs.Items[0].Slug != "a" {
		t.Errorf("page = %+v", page)
	}

	if code, env = get(t, e, "/api/designs/featured"); code != http.StatusOK {
		t.Errorf("featured = %d %+v", code, env)
	}
	if code, _ = get(t, e, "/api/designs/b"); code != http.StatusOK {
		t.Errorf("design b = %d", code)
	}
	if code, env = get(t, e, "/api/designs/zzz"); code != http.StatusNotFound || env.Error != "Design not found" {
		t.Errorf("missing design = %d %+v", code, env)
	}
	if code, _ = get(t, e, "/api/designs?page=x"); code != http.StatusBadRequest {
		t.Errorf("bad page = %d", code)
	}
}

func TestUpstreamFailureIs502(t *testing.T) {
	e, srv := newServer(t)
	srv.Fail("portfolios", http.StatusInternalServerError)

	code, env := get(t, e, "/api/portfolios")
	if code != http.StatusBadGateway || env.Success || env.Error != "Failed to fetch portfolios" {
		t.Errorf("portfolios = %d %+v", code, env)
	}
	if string(env.Data) != "[]" {
		t.Errorf("data = %s, want []", env.Data)
	}
}

func TestOtherCollections(t *testing.T) {
	e, _ := newServer(t)
	for _, path := range []string{
		"/api/categories?type=office_interior",
		"/api/categories/home",
		"/api/interiors?featured=1",
		"/api/interiors/kitchen",
		"/api/interior-categories",
		"/api/portfolios?search=goa",
		"/api/portfolios/villa",
		"/api/search/designs?q=suite",
	} {
		if code, env := get(t, e, path); code != http.StatusOK || !env.Success {
			t.Errorf("%s = %d %+v", path, code, env)
		}
	}
	if code, _ := get(t, e, "/api/search/designs"); code != http.StatusBadRequest {
		t.Errorf("search without q = %d", code)
	}
}

func TestAdminRequiresAuth(t *testing.T) {
	e, _ := newServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/cache/purge", nil))
	if rec.Code == http.StatusOK {
		t.Fatal("admin route reachable without key")
	}

	req := httptest.NewRequest(http.MethodPost, "/api/admin/cache/purge?tag=designs", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("purge = %d %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/admin/index/designs", nil)
	req.Header.Set("Authorization", "Bearer test-key")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("index without elasticsearch = %d", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	e, srv := newServer(t)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health = %d", rec.Code)
	}
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["status"] != "ok" || body["asset_origin"] != srv.URL {
		t.Errorf("health = %v", body)
	}
}

func TestConditionalGet(t *testing.T) {
	e, _ := newServer(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))
	tag := rec.Header().Get("ETag")
	if rec.Code != http.StatusOK || tag == "" {
		t.Fatalf("first = %d etag %q", rec.Code, tag)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	req.Header.Set("If-None-Match", tag)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotModified {
		t.Errorf("revalidation = %d, want 304", rec.Code)
	}
}
