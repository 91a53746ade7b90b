package cms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"glomnidesigns.GO/cms/cmstest"
)

func newTestClient(t *testing.T) (*Client, *cmstest.Server) {
	t.Helper()
	srv := cmstest.NewServer(t)
	return NewClient(srv.APIURL()), srv
}

func TestGetAllDesigns_Success(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Set("designs",
		cmstest.Design(1, "a", "Modern Loft", "home"),
		cmstest.Design(2, "b", "Office Suite", "office"),
	)

	res := c.GetAllDesigns(context.Background())
	if !res.Success || res.Error != "" {
		t.Fatalf("unexpected failure: %+v", res)
	}
	if len(res.Data) != 2 {
		t.Fatalf("got %d designs, want 2", len(res.Data))
	}
	d := res.Data[0]
	if d.Slug != "a" || d.Name != "Modern Loft" || d.Location != "Delhi" {
		t.Errorf("decoded design = %+v", d)
	}
	if len(d.Tags) != 2 || d.Tags[0] != "modern" || d.Tags[1] != "cozy" {
		t.Errorf("Tags = %v", d.Tags)
	}
	if !d.InCategory("home") {
		t.Errorf("categories = %+v", d.Categories)
	}

	reqs := srv.Requests("designs")
	if len(reqs) != 1 || reqs[0].Get("populate") != "*" {
		t.Errorf("requests = %v", reqs)
	}
}

func TestGetAllDesigns_NetworkError(t *testing.T) {
	srv := cmstest.NewServer(t)
	c := NewClient(srv.APIURL())
	srv.Close()

	res := c.GetAllDesigns(context.Background())
	if res.Success {
		t.Fatal("want failure")
	}
	if res.Error != "Failed to fetch designs" {
		t.Errorf("Error = %q", res.Error)
	}
	if res.Data == nil || len(res.Data) != 0 {
		t.Errorf("Data = %#v, want empty slice", res.Data)
	}
}

func TestGetAllDesigns_BadStatusAndBody(t *testing.T) {
	c, srv := newTestClient(t)

	srv.Fail("designs", http.StatusInternalServerError)
	if res := c.GetAllDesigns(context.Background()); res.Success || res.Error != "Failed to fetch designs" {
		t.Errorf("500: %+v", res)
	}

	c2, srv2 := newTestClient(t)
	srv2.Raw("designs", `{"data": [`)
	if res := c2.GetAllDesigns(context.Background()); res.Success || len(res.Data) != 0 {
		t.Errorf("malformed: %+v", res)
	}
}

func TestClient_AcceptsBareArrayAndV4(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Raw("categories", `[{"id":1,"slug":"home","name":"Home"}]`)
	srv.Raw("portfolios", `{"data":[{"id":4,"attributes":{"slug":"p","name":"Villa","location":"Goa"}}]}`)

	cats := c.GetAllCategories(context.Background())
	if !cats.Success || len(cats.Data) != 1 || cats.Data[0].Slug != "home" {
		t.Errorf("categories = %+v", cats)
	}
	ps := c.GetAllPortfolios(context.Background())
	if !ps.Success || len(ps.Data) != 1 || ps.Data[0].Location != "Goa" || ps.Data[0].ID != 4 {
		t.Errorf("portfolios = %+v", ps)
	}
}

func TestGetDesignBySlug(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Set("designs", cmstest.Design(1, "a", "Modern Loft"), cmstest.Design(2, "b", "Office Suite"))

	res := c.GetDesignBySlug(context.Background(), "b")
	if !res.Success || res.Data == nil || res.Data.ID != 2 {
		t.Fatalf("res = %+v", res)
	}
	q := srv.Requests("designs")[0]
	if q.Get("filters[slug][$eq]") != "b" || q.Get("populate") != "*" {
		t.Errorf("query = %v", q)
	}

	missing := c.GetDesignBySlug(context.Background(), "zzz")
	if missing.Success || missing.Data != nil || missing.Error != "Design not found" {
		t.Errorf("missing = %+v", missing)
	}

	blank := c.GetDesignBySlug(context.Background(), "  ")
	if blank.Success || blank.Error != "Design not found" {
		t.Errorf("blank = %+v", blank)
	}
	if srv.RequestCount("designs") != 2 {
		t.Errorf("blank slug should not hit the CMS, got %d requests", srv.RequestCount("designs"))
	}
}

func TestGetDesignBySlug_UntrustedFilter(t *testing.T) {
	c, srv := newTestClient(t)
	// CMS ignoring the filter and returning the whole collection
	srv.Raw("designs", `{"data":[{"id":1,"slug":"a"},{"id":2,"slug":"b"},{"id":3,"slug":"c"}]}`)

	res := c.GetDesignBySlug(context.Background(), "c")
	if !res.Success || res.Data.ID != 3 {
		t.Errorf("exact match not preferred: %+v", res.Data)
	}

	res = c.GetDesignBySlug(context.Background(), "x")
	if !res.Success || res.Data.ID != 1 {
		t.Errorf("want first record fallback, got %+v", res.Data)
	}
}

func TestGetDesignBySlug_SingleObject(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Raw("designs", `{"data":{"id":9,"slug":"only"}}`)
	res := c.GetDesignBySlug(context.Background(), "only")
	if !res.Success || res.Data.ID != 9 {
		t.Errorf("res = %+v", res)
	}

	srv.Raw("designs", `{"data":null}`)
	res = c.GetDesignBySlug(context.Background(), "only")
	if res.Success || res.Error != "Design not found" {
		t.Errorf("null data = %+v", res)
	}
}

func TestGetAllDesigns_NullBody(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Raw("designs", `null`)
	res := c.GetAllDesigns(context.Background())
	if res.Success || res.Error != "Failed to fetch designs" || res.Data == nil || len(res.Data) != 0 {
		t.Errorf("null body = %+v", res)
	}
}

func TestGetDesignsByCategory(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Set("designs",
		cmstest.Design(1, "a", "Modern Loft", "home"),
		cmstest.Design(2, "b", "Office Suite", "office"),
		cmstest.Design(3, "c", "Dual Use", "home", "office"),
	)

	res := c.GetDesignsByCategory(context.Background(), "office")
	if !res.Success || len(res.Data) != 2 {
		t.Fatalf("res = %+v", res)
	}
	if res.Data[0].ID != 2 || res.Data[1].ID != 3 {
		t.Errorf("ids = %d,%d", res.Data[0].ID, res.Data[1].ID)
	}
	if q := srv.Requests("designs")[0]; q.Get("filters[categories][slug][$eq]") != "office" {
		t.Errorf("query = %v", q)
	}
}

func TestGetDesignsByCategory_RevalidatesLocally(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Raw("designs", `{"data":[
		{"id":1,"slug":"a","categories":[{"slug":"home"}]},
		{"id":2,"slug":"b","categories":[{"slug":"office"}]},
		{"id":3,"slug":"c"}
	]}`)

	res := c.GetDesignsByCategory(context.Background(), "office")
	if !res.Success || len(res.Data) != 2 {
		t.Fatalf("res = %+v", res)
	}
	if res.Data[0].ID != 2 || res.Data[1].ID != 3 {
		t.Errorf("want the matching design and the unpopulated one, got %+v", res.Data)
	}
}

func TestSearchDesigns(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Set("designs",
		cmstest.Design(1, "a", "Modern Loft", "home"),
		cmstest.Design(2, "b", "Office Suite", "office"),
	)

	res := c.SearchDesigns(context.Background(), "LOFT")
	if !res.Success || len(res.Data) != 1 || res.Data[0].Slug != "a" {
		t.Fatalf("res = %+v", res)
	}
	if q := srv.Requests("designs")[0]; q.Get("filters[name][$containsi]") != "LOFT" {
		t.Errorf("query = %v", q)
	}

	srv.Fail("designs", http.StatusBadGateway)
	if res := c.SearchDesigns(context.Background(), "x"); res.Success || res.Error != "Failed to search designs" {
		t.Errorf("failure = %+v", res)
	}
}

func TestInteriors(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Set("interiors",
		cmstest.Interior(1, "kitchen", "Modular Kitchen", "residential", true),
		cmstest.Interior(2, "cabin", "Office Cabin", "commercial", false),
	)
	srv.Set("interior-categories",
		map[string]interface{}{"id": 1, "name": "Residential", "slug": "residential", "icon": "home"},
	)

	all := c.GetAllInteriors(context.Background())
	if !all.Success || len(all.Data) != 2 {
		t.Fatalf("all = %+v", all)
	}
	k := all.Data[0]
	if k.ServiceCategory == nil || k.ServiceCategory.Slug != "residential" || k.StartingPrice != 1000 {
		t.Errorf("kitchen = %+v", k)
	}
	if len(k.Features) != 2 {
		t.Errorf("features = %v", k.Features)
	}

	byCat := c.GetInteriorsByCategory(context.Background(), "commercial")
	if !byCat.Success || len(byCat.Data) != 1 || byCat.Data[0].Slug != "cabin" {
		t.Errorf("byCategory = %+v", byCat)
	}
	featured := c.GetFeaturedInteriors(context.Background())
	if !featured.Success || len(featured.Data) != 1 || featured.Data[0].Slug != "kitchen" {
		t.Errorf("featured = %+v", featured)
	}
	search := c.SearchInteriors(context.Background(), "cabin")
	if !search.Success || len(search.Data) != 1 {
		t.Errorf("search = %+v", search)
	}
	one := c.GetInteriorBySlug(context.Background(), "kitchen")
	if !one.Success || one.Data.Title != "Modular Kitchen" {
		t.Errorf("bySlug = %+v", one)
	}
	cats := c.GetInteriorCategories(context.Background())
	if !cats.Success || len(cats.Data) != 1 || cats.Data[0].Icon != "home" {
		t.Errorf("categories = %+v", cats)
	}
}

func TestCustomQuery(t *testing.T) {
	c, srv := newTestClient(t)
	srv.Set("categories",
		cmstest.Category(1, "home", "Home", "home_interior"),
		cmstest.Category(2, "office", "Office", "office_interior"),
	)

	res := c.CustomQuery(context.Background(), "categories", map[string]interface{}{"type": "office_interior"})
	if !res.Success || len(res.Data) != 1 || res.Data[0]["slug"] != "office" {
		t.Fatalf("res = %+v", res)
	}
	q := srv.Requests("categories")[0]
	if q.Get("filters[type][$eq]") != "office_interior" || q.Get("populate") != "*" {
		t.Errorf("query = %v", q)
	}

	res = c.CustomQuery(context.Background(), "categories", map[string]interface{}{
		"name": map[string]interface{}{"$containsi": "HOM"},
	}, "image")
	if !res.Success || len(res.Data) != 1 || res.Data[0]["slug"] != "home" {
		t.Errorf("operator form = %+v", res)
	}
	if q := srv.Requests("categories")[1]; q.Get("populate[0]") != "image" {
		t.Errorf("populate = %v", q)
	}

	res = c.CustomQuery(context.Background(), "interior-categories", nil)
	if res.Success || res.Error != "Failed to fetch interior categories" {
		t.Errorf("unknown collection = %+v", res)
	}
}

func TestGetPaginated(t *testing.T) {
	c, srv := newTestClient(t)
	var recs []map[string]interface{}
	for i := 1; i <= 5; i++ {
		recs = append(recs, cmstest.Portfolio(i, "p"+string(rune('0'+i)), "Home", "Pune"))
	}
	srv.Set("portfolios", recs...)

	res := c.GetPaginated(context.Background(), "portfolios", 2, 2, nil)
	if !res.Success || len(res.Data) != 2 {
		t.Fatalf("res = %+v", res)
	}
	if res.Data[0]["id"] != float64(3) {
		t.Errorf("page 2 starts at %v", res.Data[0]["id"])
	}
	pg, ok := res.Meta["pagination"].(map[string]interface{})
	if !ok {
		t.Fatalf("meta = %v", res.Meta)
	}
	if pg["total"] != float64(5) || pg["pageCount"] != float64(3) {
		t.Errorf("pagination = %v", pg)
	}
}

func TestClient_Observer(t *testing.T) {
	var (
		mu     sync.Mutex
		events []Event
	)
	srv := cmstest.NewServer(t)
	srv.Set("designs", cmstest.Design(1, "a", "Loft"))
	srv.Fail("categories", http.StatusServiceUnavailable)
	c := NewClient(srv.APIURL(), WithObserver(func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
	}))

	c.GetAllDesigns(context.Background())
	c.GetAllCategories(context.Background())

	if len(events) != 2 {
		t.Fatalf("got %d events", len(events))
	}
	ok, bad := events[0], events[1]
	if ok.Op != "designs.getAll" || ok.Status != 200 || ok.Count != 1 || ok.Err != nil {
		t.Errorf("ok event = %+v", ok)
	}
	if bad.Op != "categories.getAll" || bad.Status != 503 || bad.Err == nil {
		t.Errorf("failed event = %+v", bad)
	}
	se, isStatus := bad.Err.(*StatusError)
	if !isStatus || se.Code != 503 {
		t.Errorf("Err = %T %v", bad.Err, bad.Err)
	}
}

func TestClient_Timeout(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer slow.Close()

	c := NewClient(slow.URL+"/api", WithTimeout(50*time.Millisecond))
	start := time.Now()
	res := c.GetAllPortfolios(context.Background())
	if res.Success || res.Error != "Failed to fetch portfolios" {
		t.Errorf("res = %+v", res)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("timeout not applied, took %v", elapsed)
	}
}

func TestClient_EnvelopeInvariant(t *testing.T) {
	srv := cmstest.NewServer(t)
	srv.Set("designs", cmstest.Design(1, "a", "Loft", "home"))
	srv.Set("categories", cmstest.Category(1, "home", "Home", "home_interior"))
	srv.Set("interiors", cmstest.Interior(1, "k", "Kitchen", "res", true))
	srv.Set("interior-categories")
	srv.Set("portfolios", cmstest.Portfolio(1, "p", "Villa", "Goa"))

	down := cmstest.NewServer(t)
	down.Close()

	ctx := context.Background()
	for name, base := range map[string]string{"up": srv.APIURL(), "down": down.APIURL()} {
		c := NewClient(base)
		checks := map[string][2]interface{}{
			"GetAllDesigns":         {c.GetAllDesigns(ctx).Success, c.GetAllDesigns(ctx).Error},
			"GetDesignBySlug":       {c.GetDesignBySlug(ctx, "a").Success, c.GetDesignBySlug(ctx, "a").Error},
			"GetDesignsByCategory":  {c.GetDesignsByCategory(ctx, "home").Success, c.GetDesignsByCategory(ctx, "home").Error},
			"SearchDesigns":         {c.SearchDesigns(ctx, "loft").Success, c.SearchDesigns(ctx, "loft").Error},
			"GetFeaturedDesigns":    {c.GetFeaturedDesigns(ctx).Success, c.GetFeaturedDesigns(ctx).Error},
			"GetAllCategories":      {c.GetAllCategories(ctx).Success, c.GetAllCategories(ctx).Error},
			"GetCategoryBySlug":     {c.GetCategoryBySlug(ctx, "home").Success, c.GetCategoryBySlug(ctx, "home").Error},
			"GetAllInteriors":       {c.GetAllInteriors(ctx).Success, c.GetAllInteriors(ctx).Error},
			"GetInteriorBySlug":     {c.GetInteriorBySlug(ctx, "k").Success, c.GetInteriorBySlug(ctx, "k").Error},
			"GetInteriorCategories": {c.GetInteriorCategories(ctx).Success, c.GetInteriorCategories(ctx).Error},
			"GetAllPortfolios":      {c.GetAllPortfolios(ctx).Success, c.GetAllPortfolios(ctx).Error},
			"GetPortfolioBySlug":    {c.GetPortfolioBySlug(ctx, "p").Success, c.GetPortfolioBySlug(ctx, "p").Error},
			"CustomQuery":           {c.CustomQuery(ctx, "designs", nil).Success, c.CustomQuery(ctx, "designs", nil).Error},
			"GetPaginated":          {c.GetPaginated(ctx, "designs", 1, 10, nil).Success, c.GetPaginated(ctx, "designs", 1, 10, nil).Error},
		}
		for op, pair := range checks {
			success, errMsg := pair[0].(bool), pair[1].(string)
			if success == (errMsg != "") {
				t.Errorf("%s/%s: success=%v error=%q", name, op, success, errMsg)
			}
			if name == "down" && success {
				t.Errorf("%s/%s: succeeded against a closed server", name, op)
			}
			if name == "up" && !success {
				t.Errorf("%s/%s: failed: %s", name, op, errMsg)
			}
		}
	}
}

func TestGetAllDesigns_SkipsUndecodableRecord(t *testing.T) {
	var events []Event
	srv := cmstest.NewServer(t)
	c := NewClient(srv.APIURL(), WithObserver(func(ev Event) { events = append(events, ev) }))

	plain := cmstest.Design(1, "a", "Loft")
	plain["area_size"] = 1200
	freeText := cmstest.Design(2, "b", "Suite")
	freeText["area_size"] = "1,200 sq ft"
	broken := cmstest.Design(3, "c", "Villa")
	broken["is_featured"] = "maybe"
	srv.Set("designs", plain, freeText, broken)

	res := c.GetAllDesigns(context.Background())
	if !res.Success || len(res.Data) != 2 {
		t.Fatalf("res = %+v", res)
	}
	if res.Data[0].AreaSize != 1200 || res.Data[1].AreaSize != 1200 {
		t.Errorf("area sizes = %v, %v", res.Data[0].AreaSize, res.Data[1].AreaSize)
	}
	ev := events[0]
	if ev.Err != nil || ev.Count != 2 || ev.Skipped != 1 || ev.SkipErr == nil {
		t.Errorf("event = %+v", ev)
	}

	bySlug := c.GetDesignBySlug(context.Background(), "c")
	if bySlug.Success || bySlug.Error != "Failed to fetch design" {
		t.Errorf("undecodable slug = %+v", bySlug)
	}
}
