package graphqlserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"glomnidesigns.GO/cms"
	"glomnidesigns.GO/cms/cmstest"
	gqlregistry "glomnidesigns.GO/graphql/registry"
	"glomnidesigns.GO/service/content"
)

func newTestSchema(t *testing.T) (*cmstest.Server, func(query string, vars map[string]interface{}) (map[string]interface{}, []string)) {
	t.Helper()
	srv := cmstest.NewServer(t)
	srv.Set("designs",
		cmstest.With(cmstest.Design(1, "loft", "Modern Loft", "home"),
			"is_featured", true,
			"featured_image", map[string]interface{}{"id": 9, "url": "/uploads/loft.jpg", "name": "loft.jpg"},
		),
		cmstest.Design(2, "suite", "Office Suite", "office"),
	)
	srv.Set("categories",
		cmstest.Category(1, "home", "Home", "home_interior"),
		cmstest.Category(2, "office", "Office", "office_interior"),
	)
	srv.Set("interiors", cmstest.Interior(1, "kitchen", "Kitchen", "residential", true))
	srv.Set("interior-categories", map[string]interface{}{"id": 1, "slug": "residential", "name": "Residential"})
	srv.Set("portfolios", cmstest.Portfolio(1, "villa", "Villa", "Goa"))

	schema, err := NewSchema(content.New(cms.NewClient(srv.APIURL())))
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	exec := func(query string, vars map[string]interface{}) (map[string]interface{}, []string) {
		resp := schema.Exec(context.Background(), query, "", vars)
		var errs []string
		for _, e := range resp.Errors {
			errs = append(errs, e.Message)
		}
		var data map[string]interface{}
		_ = json.Unmarshal(resp.Data, &data)
		return data, errs
	}
	return srv, exec
}

func TestDesignsQuery(t *testing.T) {
	_, exec := newTestSchema(t)
	data, errs := exec(`query($c: String) {
		designs(category: $c) { totalItems currentPage items { id slug categories { slug } } }
	}`, map[string]interface{}{"c": "home"})
	if len(errs) > 0 {
		t.Fatal(errs)
	}
	page := data["designs"].(map[string]interface{})
	if page["totalItems"].(float64) != 1 || page["currentPage"].(float64) != 1 {
		t.Errorf("page = %v", page)
	}
	item := page["items"].([]interface{})[0].(map[string]interface{})
	if item["slug"] != "loft" || item["id"] != "1" {
		t.Errorf("item = %v", item)
	}
}

func TestDesignImageResolvedAgainstAssetOrigin(t *testing.T) {
	srv, exec := newTestSchema(t)
	data, errs := exec(`{ design(slug: "loft") { imageUrl imageAlt isFeatured } }`, nil)
	if len(errs) > 0 {
		t.Fatal(errs)
	}
	d := data["design"].(map[string]interface{})
	if d["imageUrl"] != srv.URL+"/uploads/loft.jpg" || d["imageAlt"] != "loft.jpg" || d["isFeatured"] != true {
		t.Errorf("design = %v", d)
	}
}

func TestMissingRecordsResolveToNull(t *testing.T) {
	_, exec := newTestSchema(t)
	data, errs := exec(`{ design(slug: "nope") { slug } portfolio(slug: "nope") { slug } }`, nil)
	if len(errs) > 0 {
		t.Fatal(errs)
	}
	if data["design"] != nil || data["portfolio"] != nil {
		t.Errorf("data = %v", data)
	}
}

func TestUpstreamFailureIsError(t *testing.T) {
	srv, exec := newTestSchema(t)
	srv.Fail("portfolios", http.StatusInternalServerError)
	_, errs := exec(`{ portfolios { slug } }`, nil)
	if len(errs) != 1 || errs[0] != "Failed to fetch portfolios" {
		t.Errorf("errors = %v", errs)
	}
}

func TestCollectionsQuery(t *testing.T) {
	_, exec := newTestSchema(t)
	data, errs := exec(`{
		featuredDesigns { slug }
		categories(type: "office_interior") { slug type }
		category(slug: "home") { category { name } designs { slug } }
		interiors(featuredOnly: true) { slug serviceCategory { slug } features }
		interiorCategories { slug }
		portfolios(search: "goa") { slug location }
	}`, nil)
	if len(errs) > 0 {
		t.Fatal(errs)
	}
	checks := map[string]int{
		"featuredDesigns":    1,
		"categories":         1,
		"interiors":          1,
		"interiorCategories": 1,
		"portfolios":         1,
	}
	for field, want := range checks {
		if got := len(data[field].([]interface{})); got != want {
			t.Errorf("%s: %d items, want %d", field, got, want)
		}
	}
	detail := data["category"].(map[string]interface{})
	if len(detail["designs"].([]interface{})) != 1 {
		t.Errorf("category detail = %v", detail)
	}
}

func TestExtension(t *testing.T) {
	gqlregistry.Register("echoArgs", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		return args, nil
	})
	defer gqlregistry.Unregister("echoArgs")

	_, exec := newTestSchema(t)
	data, errs := exec(`{ _extension(name: "echoArgs", args: "{\"a\":1}") }`, nil)
	if len(errs) > 0 {
		t.Fatal(errs)
	}
	if data["_extension"] != `{"a":1}` {
		t.Errorf("_extension = %v", data["_extension"])
	}
}
