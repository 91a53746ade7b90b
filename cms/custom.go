package cms

import (
	"context"
	"strings"
)

// Record is an undecoded CMS record.
type Record = map[string]interface{}

// CustomQuery fetches any endpoint with a nested filter object (see
// Query.Filters). populate defaults to "*".
func (c *Client) CustomQuery(ctx context.Context, endpoint string, filters map[string]interface{}, populate ...string) Result[[]Record] {
	q := NewQuery().Filters(filters).Populate(populate...)
	items, _, err := fetch[Record](ctx, c, "custom."+opName(endpoint), endpoint, q)
	if err != nil {
		return Fail(make([]Record, 0), "Failed to fetch "+endpointLabel(endpoint))
	}
	return OK(items)
}

// GetPaginated is CustomQuery plus pagination[page]/pagination[pageSize];
// the CMS meta block is returned verbatim in Result.Meta.
func (c *Client) GetPaginated(ctx context.Context, endpoint string, page, pageSize int, filters map[string]interface{}) Result[[]Record] {
	q := NewQuery().Filters(filters).Populate().Paginate(page, pageSize)
	items, p, err := fetch[Record](ctx, c, "paginated."+opName(endpoint), endpoint, q)
	if err != nil {
		return Fail(make([]Record, 0), "Failed to fetch "+endpointLabel(endpoint))
	}
	res := OK(items)
	res.Meta = p.Meta
	return res
}

// PageCount reads meta.pagination.pageCount, or 0 when the CMS sent none.
func PageCount(meta map[string]interface{}) int {
	pg, _ := meta["pagination"].(map[string]interface{})
	switch n := pg["pageCount"].(type) {
	case float64:
		return int(n)
	case int:
		return n
	}
	return 0
}

func opName(endpoint string) string {
	return strings.Trim(endpoint, "/")
}

func endpointLabel(endpoint string) string {
	label := strings.ReplaceAll(strings.Trim(endpoint, "/"), "-", " ")
	if label == "" {
		return "content"
	}
	return label
}
