package cms

import (
	"context"

	"glomnidesigns.GO/model/entity"
)

const EndpointCategories = "categories"

func (c *Client) GetAllCategories(ctx context.Context) Result[[]entity.Category] {
	q := NewQuery().Populate()
	return listResult[entity.Category](ctx, c, "categories.getAll", EndpointCategories, q, "Failed to fetch categories", nil)
}

func (c *Client) GetCategoryBySlug(ctx context.Context, slug string) Result[*entity.Category] {
	return slugResult(ctx, c, "categories.getBySlug", EndpointCategories, slug,
		"Failed to fetch category", "Category not found",
		func(cat entity.Category) string { return cat.Slug })
}
