package resolvers

import (
	"context"

	"glomnidesigns.GO/graphql/models"
	"glomnidesigns.GO/service/content"
)

func (r *QueryResolver) Categories(ctx context.Context, args struct {
	Search *string
	Type   *string
}) ([]*models.Category, error) {
	var q content.CategoryQuery
	if args.Search != nil {
		q.Search = *args.Search
	}
	if args.Type != nil {
		q.Type = *args.Type
	}
	cats, _, err := unwrap(r.content.Categories(ctx, q))
	out := make([]*models.Category, 0, len(cats))
	for i := range cats {
		out = append(out, r.category(&cats[i]))
	}
	return out, err
}

// Category returns a category with its designs, or null when the slug is unknown.
func (r *QueryResolver) Category(ctx context.Context, args struct {
	Slug   string
	Search *string
}) (*models.CategoryDetail, error) {
	search := ""
	if args.Search != nil {
		search = *args.Search
	}
	page, ok, err := unwrap(r.content.CategoryDetail(ctx, args.Slug, search))
	if !ok || page.Category == nil {
		return nil, err
	}
	return &models.CategoryDetail{
		Category: r.category(page.Category),
		Designs:  r.designs(page.Designs),
	}, nil
}
