package resolvers

import (
	"context"

	"glomnidesigns.GO/graphql/models"
)

func (r *QueryResolver) Portfolios(ctx context.Context, args struct{ Search *string }) ([]*models.Portfolio, error) {
	search := ""
	if args.Search != nil {
		search = *args.Search
	}
	ps, _, err := unwrap(r.content.Portfolios(ctx, search))
	out := make([]*models.Portfolio, 0, len(ps))
	for i := range ps {
		out = append(out, r.portfolio(&ps[i]))
	}
	return out, err
}

func (r *QueryResolver) Portfolio(ctx context.Context, args struct{ Slug string }) (*models.Portfolio, error) {
	p, ok, err := unwrap(r.content.Portfolio(ctx, args.Slug))
	if !ok || p == nil {
		return nil, err
	}
	return r.portfolio(p), nil
}
