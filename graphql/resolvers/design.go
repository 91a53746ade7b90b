package resolvers

import (
	"context"

	"glomnidesigns.GO/graphql/models"
	"glomnidesigns.GO/service/content"
)

// Designs returns one page of the designs listing, newest first.
func (r *QueryResolver) Designs(ctx context.Context, args struct {
	Search   *string
	Category *string
	Page     *int32
}) (*models.DesignPage, error) {
	q := content.DesignQuery{Page: defaultInt(args.Page, 1)}
	if args.Search != nil {
		q.Search = *args.Search
	}
	if args.Category != nil {
		q.Category = *args.Category
	}
	page, _, err := unwrap(r.content.Designs(ctx, q))
	return r.designPage(page.Designs), err
}

func (r *QueryResolver) Design(ctx context.Context, args struct{ Slug string }) (*models.Design, error) {
	d, ok, err := unwrap(r.content.Design(ctx, args.Slug))
	if !ok || d == nil {
		return nil, err
	}
	return r.design(d), nil
}

func (r *QueryResolver) FeaturedDesigns(ctx context.Context) ([]*models.Design, error) {
	ds, _, err := unwrap(r.content.FeaturedDesigns(ctx))
	return r.designs(ds), err
}

// SearchDesigns ranks through the search index when one is configured.
func (r *QueryResolver) SearchDesigns(ctx context.Context, args struct {
	Query string
	Size  *int32
}) ([]*models.Design, error) {
	ds, _, err := unwrap(r.content.SearchDesigns(ctx, args.Query, defaultInt(args.Size, 10)))
	return r.designs(ds), err
}
