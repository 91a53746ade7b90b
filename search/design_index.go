// Package search keeps an elasticsearch index of designs for ranked
// full-text search.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"

	"glomnidesigns.GO/cms"
	"glomnidesigns.GO/model/entity"
)

const defaultSearchSize = 20

type DesignIndex struct {
	client *elasticsearch.Client
	index  string
}

// NewDesignIndexFromEnv returns nil when ELASTICSEARCH_HOST is not set.
func NewDesignIndexFromEnv() (*DesignIndex, error) {
	host := os.Getenv("ELASTICSEARCH_HOST")
	if host == "" {
		return nil, nil
	}
	prefix := os.Getenv("ELASTICSEARCH_INDEX_PREFIX")
	if prefix == "" {
		prefix = "glomni"
	}
	return NewDesignIndex([]string{host}, prefix, nil)
}

// NewDesignIndex connects to addresses; the index is "<prefix>_designs".
// transport may be nil.
func NewDesignIndex(addresses []string, prefix string, transport http.RoundTripper) (*DesignIndex, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: addresses,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}
	return &DesignIndex{client: client, index: prefix + "_designs"}, nil
}

func (x *DesignIndex) Enabled() bool { return x != nil && x.client != nil }

func (x *DesignIndex) IndexName() string { return x.index }

// Document is what gets stored per design.
func Document(d entity.Design) map[string]interface{} {
	return map[string]interface{}{
		"id":          d.ID,
		"slug":        d.Slug,
		"name":        d.Name,
		"description": d.Description,
		"tags":        []string(d.Tags),
		"style":       d.Style,
		"location":    d.Location,
		"price_range": d.PriceRange,
		"categories":  d.CategorySlugs(),
		"is_featured": d.IsFeatured,
	}
}

// BulkBody renders index actions keyed by slug as NDJSON.
func BulkBody(index string, designs []entity.Design) ([]byte, int, error) {
	var buf bytes.Buffer
	n := 0
	for _, d := range designs {
		if d.Slug == "" {
			continue
		}
		meta, err := json.Marshal(map[string]interface{}{
			"index": map[string]interface{}{"_index": index, "_id": d.Slug},
		})
		if err != nil {
			return nil, 0, err
		}
		doc, err := json.Marshal(Document(d))
		if err != nil {
			return nil, 0, err
		}
		buf.Write(meta)
		buf.WriteByte('\n')
		buf.Write(doc)
		buf.WriteByte('\n')
		n++
	}
	return buf.Bytes(), n, nil
}

// IndexDesigns upserts designs and returns how many were sent.
func (x *DesignIndex) IndexDesigns(ctx context.Context, designs []entity.Design) (int, error) {
	if !x.Enabled() {
		return 0, fmt.Errorf("elasticsearch not configured")
	}
	body, n, err := BulkBody(x.index, designs)
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	res, err := x.client.Bulk(
		bytes.NewReader(body),
		x.client.Bulk.WithContext(ctx),
		x.client.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var bulk struct {
		Errors bool `json:"errors"`
		Items  []map[string]struct {
			ID    string          `json:"_id"`
			Error json.RawMessage `json:"error"`
		} `json:"items"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulk); err != nil {
		return 0, err
	}
	if bulk.Errors {
		var failed []string
		for _, item := range bulk.Items {
			for _, r := range item {
				if len(r.Error) > 0 {
					failed = append(failed, r.ID)
				}
			}
		}
		return n - len(failed), fmt.Errorf("elasticsearch bulk: %d documents failed: %s", len(failed), strings.Join(failed, ", "))
	}
	return n, nil
}

// QueryBody is the search request for q.
func QueryBody(q string, size int) map[string]interface{} {
	if size <= 0 {
		size = defaultSearchSize
	}
	return map[string]interface{}{
		"size":    size,
		"_source": []string{"slug"},
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": []map[string]interface{}{
					{
						"multi_match": map[string]interface{}{
							"query":     q,
							"fields":    []string{"name^3", "tags^2", "description", "style", "location"},
							"fuzziness": "AUTO",
						},
					},
				},
			},
		},
	}
}

// SearchDesigns returns matching design slugs, best match first.
func (x *DesignIndex) SearchDesigns(ctx context.Context, q string, size int) ([]string, error) {
	if !x.Enabled() {
		return nil, fmt.Errorf("elasticsearch not configured")
	}
	bodyBytes, _ := json.Marshal(QueryBody(q, size))

	res, err := x.client.Search(
		x.client.Search.WithContext(ctx),
		x.client.Search.WithIndex(x.index),
		x.client.Search.WithBody(bytes.NewReader(bodyBytes)),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch error: %s", res.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				ID     string                 `json:"_id"`
				Source map[string]interface{} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResp); err != nil {
		return nil, err
	}
	slugs := make([]string, 0, len(esResp.Hits.Hits))
	for _, hit := range esResp.Hits.Hits {
		if s, ok := hit.Source["slug"].(string); ok && s != "" {
			slugs = append(slugs, s)
			continue
		}
		slugs = append(slugs, hit.ID)
	}
	return slugs, nil
}

// DesignSource lists every design.
type DesignSource interface {
	GetAllDesigns(ctx context.Context) cms.Result[[]entity.Design]
}

// Reindex loads all designs from src and indexes them.
func (x *DesignIndex) Reindex(ctx context.Context, src DesignSource) (int, error) {
	res := src.GetAllDesigns(ctx)
	if !res.Success {
		return 0, fmt.Errorf("reindex: %s", res.Error)
	}
	return x.IndexDesigns(ctx, res.Data)
}
