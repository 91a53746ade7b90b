package cms

import (
	"context"
	"strings"

	"glomnidesigns.GO/model/entity"
)

const (
	EndpointInteriors          = "interiors"
	EndpointInteriorCategories = "interior-categories"
)

func (c *Client) GetAllInteriors(ctx context.Context) Result[[]entity.Interior] {
	q := NewQuery().Populate()
	return listResult[entity.Interior](ctx, c, "interiors.getAll", EndpointInteriors, q, "Failed to fetch interiors", nil)
}

func (c *Client) GetInteriorBySlug(ctx context.Context, slug string) Result[*entity.Interior] {
	return slugResult(ctx, c, "interiors.getBySlug", EndpointInteriors, slug,
		"Failed to fetch interior", "Interior not found",
		func(i entity.Interior) string { return i.Slug })
}

func (c *Client) GetInteriorsByCategory(ctx context.Context, categorySlug string) Result[[]entity.Interior] {
	q := NewQuery().Eq(categorySlug, "service_category", "slug").Populate()
	return listResult(ctx, c, "interiors.getByCategory", EndpointInteriors, q, "Failed to fetch interiors by category",
		func(i entity.Interior) bool { return i.ServiceCategory == nil || i.ServiceCategory.Slug == categorySlug })
}

func (c *Client) SearchInteriors(ctx context.Context, query string) Result[[]entity.Interior] {
	q := NewQuery().ContainsI(query, "title").Populate()
	needle := strings.ToLower(strings.TrimSpace(query))
	return listResult(ctx, c, "interiors.search", EndpointInteriors, q, "Failed to search interiors",
		func(i entity.Interior) bool { return strings.Contains(strings.ToLower(i.Title), needle) })
}

func (c *Client) GetFeaturedInteriors(ctx context.Context) Result[[]entity.Interior] {
	q := NewQuery().Eq(true, "is_featured").Populate()
	return listResult(ctx, c, "interiors.getFeatured", EndpointInteriors, q, "Failed to fetch featured interiors",
		func(i entity.Interior) bool { return i.IsFeatured })
}

func (c *Client) GetInteriorCategories(ctx context.Context) Result[[]entity.InteriorCategory] {
	q := NewQuery().Populate()
	return listResult[entity.InteriorCategory](ctx, c, "interiorCategories.getAll", EndpointInteriorCategories, q, "Failed to fetch interior categories", nil)
}
