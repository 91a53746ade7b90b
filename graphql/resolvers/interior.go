package resolvers

import (
	"context"

	"glomnidesigns.GO/graphql/models"
	"glomnidesigns.GO/service/content"
)

func (r *QueryResolver) Interiors(ctx context.Context, args struct {
	Search       *string
	Category     *string
	FeaturedOnly *bool
}) ([]*models.Interior, error) {
	var q content.InteriorQuery
	if args.Search != nil {
		q.Search = *args.Search
	}
	if args.Category != nil {
		q.Category = *args.Category
	}
	if args.FeaturedOnly != nil {
		q.FeaturedOnly = *args.FeaturedOnly
	}
	page, _, err := unwrap(r.content.Interiors(ctx, q))
	out := make([]*models.Interior, 0, len(page.Interiors))
	for i := range page.Interiors {
		out = append(out, r.interior(&page.Interiors[i]))
	}
	return out, err
}

func (r *QueryResolver) Interior(ctx context.Context, args struct{ Slug string }) (*models.Interior, error) {
	it, ok, err := unwrap(r.content.Interior(ctx, args.Slug))
	if !ok || it == nil {
		return nil, err
	}
	return r.interior(it), nil
}

func (r *QueryResolver) InteriorCategories(ctx context.Context) ([]*models.InteriorCategory, error) {
	cats, _, err := unwrap(r.content.InteriorCategories(ctx))
	out := make([]*models.InteriorCategory, 0, len(cats))
	for i := range cats {
		out = append(out, r.interiorCategory(&cats[i]))
	}
	return out, err
}
