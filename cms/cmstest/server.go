// Package cmstest provides an in-process fake of the CMS REST API that
// understands the filter, populate and pagination parameters the client sends.
// Like Strapi, every list response is paginated: without pagination[...]
// parameters only the first DefaultPageSize records are returned.
package cmstest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// Strapi's page size when none is requested, and its upper bound.
const (
	DefaultPageSize = 25
	MaxPageSize     = 100
)

type Server struct {
	*httptest.Server

	mu          sync.Mutex
	collections map[string][]map[string]interface{}
	failures    map[string]int
	raw         map[string]string
	requests    map[string][]url.Values
}

// NewServer starts a fake CMS. It is closed when the test ends.
func NewServer(t testing.TB) *Server {
	s := &Server{
		collections: make(map[string][]map[string]interface{}),
		failures:    make(map[string]int),
		raw:         make(map[string]string),
		requests:    make(map[string][]url.Values),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// APIURL is the base URL to hand to cms.NewClient.
func (s *Server) APIURL() string { return s.URL + "/api" }

// Set replaces a collection's records.
func (s *Server) Set(collection string, records ...map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = records
}

// Fail makes every request to collection answer with status.
func (s *Server) Fail(collection string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[collection] = status
}

// Raw makes collection answer 200 with body verbatim.
func (s *Server) Raw(collection, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[collection] = body
}

// Requests returns the query parameters of every request made to collection.
func (s *Server) Requests(collection string) []url.Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]url.Values(nil), s.requests[collection]...)
}

// RequestCount is len(Requests(collection)).
func (s *Server) RequestCount(collection string) int {
	return len(s.Requests(collection))
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	collection := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api"), "/")
	query := r.URL.Query()

	s.mu.Lock()
	s.requests[collection] = append(s.requests[collection], query)
	status, failing := s.failures[collection]
	raw, hasRaw := s.raw[collection]
	records, known := s.collections[collection]
	s.mu.Unlock()

	if failing {
		http.Error(w, `{"error":{"status":`+strconv.Itoa(status)+`}}`, status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if hasRaw {
		fmt.Fprint(w, raw)
		return
	}
	if !known {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"data":null,"error":{"status":404,"name":"NotFoundError"}}`)
		return
	}

	matched := make([]map[string]interface{}, 0, len(records))
	for _, rec := range records {
		if matches(rec, query) {
			matched = append(matched, rec)
		}
	}

	page, _ := strconv.Atoi(query.Get("pagination[page]"))
	size, _ := strconv.Atoi(query.Get("pagination[pageSize]"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	total := len(matched)
	start := (page - 1) * size
	end := start + size
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	resp := map[string]interface{}{
		"data": matched[start:end],
		"meta": map[string]interface{}{
			"pagination": map[string]interface{}{
				"page":      page,
				"pageSize":  size,
				"pageCount": (total + size - 1) / size,
				"total":     total,
			},
		},
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// matches applies every filters[...][$op] parameter to rec.
func matches(rec map[string]interface{}, query url.Values) bool {
	for key, values := range query {
		if !strings.HasPrefix(key, "filters[") {
			continue
		}
		segs := strings.Split(strings.TrimSuffix(strings.TrimPrefix(key, "filters["), "]"), "][")
		if len(segs) < 2 {
			continue
		}
		op := segs[len(segs)-1]
		path := segs[:len(segs)-1]
		if !strings.HasPrefix(op, "$") {
			// indexed $in entry: filters[f][$in][0]
			op = segs[len(segs)-2]
			path = segs[:len(segs)-2]
		}
		for _, want := range values {
			if !anyMatch(lookup(rec, path), op, want) {
				return false
			}
		}
	}
	return true
}

func lookup(v interface{}, path []string) []interface{} {
	if len(path) == 0 {
		return []interface{}{v}
	}
	switch t := v.(type) {
	case map[string]interface{}:
		return lookup(t[path[0]], path[1:])
	case []interface{}:
		var out []interface{}
		for _, item := range t {
			out = append(out, lookup(item, path)...)
		}
		return out
	case []map[string]interface{}:
		var out []interface{}
		for _, item := range t {
			out = append(out, lookup(item, path)...)
		}
		return out
	}
	return nil
}

func anyMatch(candidates []interface{}, op, want string) bool {
	for _, c := range candidates {
		got := fmt.Sprint(c)
		switch op {
		case "$eq", "$in":
			if got == want {
				return true
			}
		case "$ne":
			if got != want {
				return true
			}
		case "$contains":
			if strings.Contains(got, want) {
				return true
			}
		case "$containsi":
			if strings.Contains(strings.ToLower(got), strings.ToLower(want)) {
				return true
			}
		case "$notNull":
			if c != nil {
				return true
			}
		}
	}
	return false
}
