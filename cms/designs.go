package cms

import (
	"context"
	"strings"

	"glomnidesigns.GO/model/entity"
)

const EndpointDesigns = "designs"

func (c *Client) GetAllDesigns(ctx context.Context) Result[[]entity.Design] {
	q := NewQuery().Populate()
	return listResult[entity.Design](ctx, c, "designs.getAll", EndpointDesigns, q, "Failed to fetch designs", nil)
}

func (c *Client) GetDesignBySlug(ctx context.Context, slug string) Result[*entity.Design] {
	return slugResult(ctx, c, "designs.getBySlug", EndpointDesigns, slug,
		"Failed to fetch design", "Design not found",
		func(d entity.Design) string { return d.Slug })
}

// GetDesignsByCategory filters on the categories relation. Designs whose
// categories were not populated are kept as returned.
func (c *Client) GetDesignsByCategory(ctx context.Context, categorySlug string) Result[[]entity.Design] {
	q := NewQuery().Eq(categorySlug, "categories", "slug").Populate()
	return listResult(ctx, c, "designs.getByCategory", EndpointDesigns, q, "Failed to fetch designs by category",
		func(d entity.Design) bool { return len(d.Categories) == 0 || d.InCategory(categorySlug) })
}

func (c *Client) SearchDesigns(ctx context.Context, query string) Result[[]entity.Design] {
	q := NewQuery().ContainsI(query, "name").Populate()
	needle := strings.ToLower(strings.TrimSpace(query))
	return listResult(ctx, c, "designs.search", EndpointDesigns, q, "Failed to search designs",
		func(d entity.Design) bool { return strings.Contains(strings.ToLower(d.Name), needle) })
}

func (c *Client) GetFeaturedDesigns(ctx context.Context) Result[[]entity.Design] {
	q := NewQuery().Eq(true, "is_featured").Populate()
	return listResult(ctx, c, "designs.getFeatured", EndpointDesigns, q, "Failed to fetch featured designs",
		func(d entity.Design) bool { return d.IsFeatured })
}
