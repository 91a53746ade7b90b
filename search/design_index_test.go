package search

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"glomnidesigns.GO/cms"
	"glomnidesigns.GO/cms/cmstest"
	"glomnidesigns.GO/model/entity"
)

// fakeES answers the bulk and search APIs.
type fakeES struct {
	mu   sync.Mutex
	docs map[string]map[string]interface{}
	last map[string]interface{}
}

func (f *fakeES) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Elastic-Product", "Elasticsearch")
	w.Header().Set("Content-Type", "application/json")
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case strings.HasSuffix(r.URL.Path, "/_bulk"):
		sc := bufio.NewScanner(r.Body)
		var items []string
		for sc.Scan() {
			var meta map[string]map[string]string
			_ = json.Unmarshal(sc.Bytes(), &meta)
			if !sc.Scan() {
				break
			}
			var doc map[string]interface{}
			_ = json.Unmarshal(sc.Bytes(), &doc)
			id := meta["index"]["_id"]
			f.docs[id] = doc
			items = append(items, fmt.Sprintf(`{"index":{"_id":%q,"status":201}}`, id))
		}
		fmt.Fprintf(w, `{"took":1,"errors":false,"items":[%s]}`, strings.Join(items, ","))
	case strings.HasSuffix(r.URL.Path, "/_search"):
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &f.last)
		q := f.last["query"].(map[string]interface{})["bool"].(map[string]interface{})["must"].([]interface{})[0].(map[string]interface{})["multi_match"].(map[string]interface{})["query"].(string)
		var hits []string
		for id, doc := range f.docs {
			if strings.Contains(strings.ToLower(doc["name"].(string)), strings.ToLower(q)) {
				hits = append(hits, fmt.Sprintf(`{"_id":%q,"_source":{"slug":%q}}`, id, doc["slug"]))
			}
		}
		fmt.Fprintf(w, `{"hits":{"total":{"value":%d},"hits":[%s]}}`, len(hits), strings.Join(hits, ","))
	default:
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error":"not found"}`)
	}
}

func newIndex(t *testing.T) (*DesignIndex, *fakeES) {
	t.Helper()
	fake := &fakeES{docs: map[string]map[string]interface{}{}}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	idx, err := NewDesignIndex([]string{srv.URL}, "test", nil)
	if err != nil {
		t.Fatal(err)
	}
	return idx, fake
}

func TestBulkBody(t *testing.T) {
	body, n, err := BulkBody("x_designs", []entity.Design{
		{ID: 1, Slug: "loft", Name: "Loft", Tags: entity.Tags{"modern"}},
		{ID: 2},
	})
	if err != nil || n != 1 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	lines := bytes.Split(bytes.TrimSpace(body), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("lines = %q", lines)
	}
	if string(lines[0]) != `{"index":{"_id":"loft","_index":"x_designs"}}` {
		t.Errorf("action = %s", lines[0])
	}
	var doc map[string]interface{}
	_ = json.Unmarshal(lines[1], &doc)
	if doc["name"] != "Loft" || doc["tags"].([]interface{})[0] != "modern" {
		t.Errorf("doc = %v", doc)
	}
}

func TestQueryBody(t *testing.T) {
	body := QueryBody("loft", 0)
	if body["size"] != defaultSearchSize {
		t.Errorf("size = %v", body["size"])
	}
	mm := body["query"].(map[string]interface{})["bool"].(map[string]interface{})["must"].([]map[string]interface{})[0]["multi_match"].(map[string]interface{})
	if mm["query"] != "loft" || mm["fields"].([]string)[0] != "name^3" {
		t.Errorf("multi_match = %v", mm)
	}
}

func TestIndexAndSearch(t *testing.T) {
	idx, fake := newIndex(t)
	ctx := context.Background()

	n, err := idx.IndexDesigns(ctx, []entity.Design{
		{ID: 1, Slug: "loft", Name: "Modern Loft"},
		{ID: 2, Slug: "suite", Name: "Office Suite"},
	})
	if err != nil || n != 2 {
		t.Fatalf("IndexDesigns = %d, %v", n, err)
	}
	if len(fake.docs) != 2 {
		t.Errorf("docs = %v", fake.docs)
	}

	slugs, err := idx.SearchDesigns(ctx, "LOFT", 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(slugs) != 1 || slugs[0] != "loft" {
		t.Errorf("slugs = %v", slugs)
	}
	if fake.last["size"] != float64(5) {
		t.Errorf("size sent = %v", fake.last["size"])
	}
	if idx.IndexName() != "test_designs" {
		t.Errorf("index = %s", idx.IndexName())
	}
}

func TestDisabled(t *testing.T) {
	var idx *DesignIndex
	if idx.Enabled() {
		t.Fatal("nil index reports enabled")
	}
	if _, err := idx.SearchDesigns(context.Background(), "x", 1); err == nil {
		t.Error("want error from disabled index")
	}
	t.Setenv("ELASTICSEARCH_HOST", "")
	if got, err := NewDesignIndexFromEnv(); got != nil || err != nil {
		t.Errorf("from empty env = %v, %v", got, err)
	}
}

func TestReindex(t *testing.T) {
	idx, fake := newIndex(t)
	srv := cmstest.NewServer(t)
	srv.Set("designs", cmstest.Design(1, "loft", "Loft"), cmstest.Design(2, "den", "Den"))

	n, err := idx.Reindex(context.Background(), cms.NewClient(srv.APIURL()))
	if err != nil || n != 2 || len(fake.docs) != 2 {
		t.Fatalf("Reindex = %d, %v (docs %d)", n, err, len(fake.docs))
	}

	srv.Fail("designs", http.StatusBadGateway)
	if _, err := idx.Reindex(context.Background(), cms.NewClient(srv.APIURL())); err == nil {
		t.Error("want error when designs cannot be fetched")
	}
}
