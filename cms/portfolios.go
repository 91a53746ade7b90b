package cms

import (
	"context"

	"glomnidesigns.GO/model/entity"
)

const EndpointPortfolios = "portfolios"

func (c *Client) GetAllPortfolios(ctx context.Context) Result[[]entity.Portfolio] {
	q := NewQuery().Populate()
	return listResult[entity.Portfolio](ctx, c, "portfolios.getAll", EndpointPortfolios, q, "Failed to fetch portfolios", nil)
}

func (c *Client) GetPortfolioBySlug(ctx context.Context, slug string) Result[*entity.Portfolio] {
	return slugResult(ctx, c, "portfolios.getBySlug", EndpointPortfolios, slug,
		"Failed to fetch portfolio", "Portfolio not found",
		func(p entity.Portfolio) string { return p.Slug })
}
