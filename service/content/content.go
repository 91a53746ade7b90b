// Package content composes CMS fetches with the list rules of each page.
package content

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"glomnidesigns.GO/cms"
	"glomnidesigns.GO/core/cache"
	"glomnidesigns.GO/listing"
	"glomnidesigns.GO/model/entity"
)

// DesignSearcher ranks designs by relevance and returns their slugs.
type DesignSearcher interface {
	SearchDesigns(ctx context.Context, q string, size int) ([]string, error)
}

type Service struct {
	client   *cms.Client
	cache    *EnvelopeCache
	searcher DesignSearcher
	log      *zap.Logger
}

type Option func(*Service)

func WithCache(c *EnvelopeCache) Option {
	return func(s *Service) { s.cache = c }
}

// WithSearcher routes SearchDesigns through a full-text index.
func WithSearcher(ds DesignSearcher) Option {
	return func(s *Service) { s.searcher = ds }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

func New(client *cms.Client, opts ...Option) *Service {
	s := &Service{client: client, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Client() *cms.Client { return s.client }

// Purge drops cached envelopes for a collection tag ("" for all).
func (s *Service) Purge(ctx context.Context, tag string) int {
	n := s.cache.Purge(ctx, tag)
	s.log.Info("content cache purged", zap.String("tag", tag), zap.Int("entries", n))
	return n
}

// cached serves key from the envelope cache or runs fetch and stores a
// successful result under tags.
func cached[T any](ctx context.Context, s *Service, key string, tags []string, fetch func() cms.Result[T]) cms.Result[T] {
	if res, ok := lookup[T](ctx, s.cache, key); ok {
		return res
	}
	res := fetch()
	store(ctx, s.cache, key, res, tags...)
	return res
}

type status struct {
	ok  bool
	err string
}

func statusOf[T any](r cms.Result[T]) status { return status{r.Success, r.Error} }

// firstError returns the error of the first failed envelope.
func firstError(sts ...status) string {
	for _, st := range sts {
		if !st.ok {
			return st.err
		}
	}
	return ""
}

// DesignQuery holds the designs listing parameters.
type DesignQuery struct {
	Search   string `query:"search" json:"search"`
	Category string `query:"category" json:"category"`
	Page     int    `query:"page" json:"page"`
}

type DesignsPage struct {
	Designs    listing.Page[entity.Design] `json:"designs"`
	Categories []entity.Category           `json:"categories"`
	Search     string                      `json:"search"`
	Category   string                      `json:"category"`
}

// Designs fetches designs and categories in parallel, then searches,
// filters by category, sorts newest first and paginates by 16.
func (s *Service) Designs(ctx context.Context, q DesignQuery) cms.Result[DesignsPage] {
	if q.Page < 1 {
		q.Page = 1
	}
	key := cache.Key("designs", q.Search, q.Category, q.Page)
	return cached(ctx, s, key, []string{TagDesigns, TagCategories}, func() cms.Result[DesignsPage] {
		var (
			designs    cms.Result[[]entity.Design]
			categories cms.Result[[]entity.Category]
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			designs = s.client.GetAllDesigns(gctx)
			return nil
		})
		g.Go(func() error {
			categories = s.client.GetAllCategories(gctx)
			return nil
		})
		_ = g.Wait()

		view := listing.NewView(designs.Data, listing.DesignsView)
		view.SetSearch(q.Search)
		view.SetCategory(q.Category)
		view.SetPage(q.Page)
		page := DesignsPage{
			Designs:    view.Result(),
			Categories: categories.Data,
			Search:     view.Search(),
			Category:   view.Category(),
		}
		if msg := firstError(statusOf(designs), statusOf(categories)); msg != "" {
			return cms.Fail(page, msg)
		}
		return cms.OK(page)
	})
}

// CategoryQuery holds the categories listing parameters.
type CategoryQuery struct {
	Search string `query:"search" json:"search"`
	Type   string `query:"type" json:"type"`
}

func (s *Service) Categories(ctx context.Context, q CategoryQuery) cms.Result[[]entity.Category] {
	key := cache.Key("categories", q.Search, q.Type)
	return cached(ctx, s, key, []string{TagCategories}, func() cms.Result[[]entity.Category] {
		res := s.client.GetAllCategories(ctx)
		view := listing.NewView(res.Data, listing.CategoriesView)
		view.SetSearch(q.Search)
		view.SetCategory(q.Type)
		res.Data = view.Filtered()
		return res
	})
}

type CategoryDetailPage struct {
	Category *entity.Category `json:"category"`
	Designs  []entity.Design  `json:"designs"`
	Search   string           `json:"search"`
}

// CategoryDetail fetches a category and its designs in parallel.
func (s *Service) CategoryDetail(ctx context.Context, slug, search string) cms.Result[CategoryDetailPage] {
	key := cache.Key("category-detail", slug, search)
	return cached(ctx, s, key, []string{TagCategories, TagDesigns}, func() cms.Result[CategoryDetailPage] {
		var (
			category cms.Result[*entity.Category]
			designs  cms.Result[[]entity.Design]
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			category = s.client.GetCategoryBySlug(gctx, slug)
			return nil
		})
		g.Go(func() error {
			designs = s.client.GetDesignsByCategory(gctx, slug)
			return nil
		})
		_ = g.Wait()

		page := CategoryDetailPage{
			Category: category.Data,
			Designs:  listing.FilterBySearch(designs.Data, listing.CategoryDetailView.SearchFields, search),
			Search:   search,
		}
		if msg := firstError(statusOf(category), statusOf(designs)); msg != "" {
			if !category.Success {
				page.Designs = []entity.Design{}
			}
			return cms.Fail(page, msg)
		}
		return cms.OK(page)
	})
}

// InteriorQuery holds the interior services parameters.
type InteriorQuery struct {
	Search       string `query:"search" json:"search"`
	Category     string `query:"category" json:"category"`
	FeaturedOnly bool   `query:"featured" json:"featured"`
}

type InteriorsPage struct {
	Interiors  []entity.Interior         `json:"interiors"`
	Categories []entity.InteriorCategory `json:"categories"`
}

func (s *Service) Interiors(ctx context.Context, q InteriorQuery) cms.Result[InteriorsPage] {
	key := cache.Key("interiors", q.Search, q.Category, q.FeaturedOnly)
	return cached(ctx, s, key, []string{TagInteriors, TagInteriorCategories}, func() cms.Result[InteriorsPage] {
		var (
			interiors  cms.Result[[]entity.Interior]
			categories cms.Result[[]entity.InteriorCategory]
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			interiors = s.client.GetAllInteriors(gctx)
			return nil
		})
		g.Go(func() error {
			categories = s.client.GetInteriorCategories(gctx)
			return nil
		})
		_ = g.Wait()

		view := listing.NewView(interiors.Data, listing.InteriorsView)
		view.SetSearch(q.Search)
		view.SetCategory(q.Category)
		view.SetFeaturedOnly(q.FeaturedOnly)
		page := InteriorsPage{Interiors: view.Filtered(), Categories: categories.Data}
		if msg := firstError(statusOf(interiors), statusOf(categories)); msg != "" {
			return cms.Fail(page, msg)
		}
		return cms.OK(page)
	})
}

func (s *Service) InteriorCategories(ctx context.Context) cms.Result[[]entity.InteriorCategory] {
	return cached(ctx, s, "interior-categories", []string{TagInteriorCategories}, func() cms.Result[[]entity.InteriorCategory] {
		return s.client.GetInteriorCategories(ctx)
	})
}

func (s *Service) Portfolios(ctx context.Context, search string) cms.Result[[]entity.Portfolio] {
	key := cache.Key("portfolios", search)
	return cached(ctx, s, key, []string{TagPortfolios}, func() cms.Result[[]entity.Portfolio] {
		res := s.client.GetAllPortfolios(ctx)
		res.Data = listing.FilterBySearch(res.Data, listing.PortfoliosView.SearchFields, search)
		return res
	})
}

func (s *Service) Design(ctx context.Context, slug string) cms.Result[*entity.Design] {
	return cached(ctx, s, cache.Key("design", slug), []string{TagDesigns}, func() cms.Result[*entity.Design] {
		return s.client.GetDesignBySlug(ctx, slug)
	})
}

func (s *Service) FeaturedDesigns(ctx context.Context) cms.Result[[]entity.Design] {
	return cached(ctx, s, "designs|featured", []string{TagDesigns}, func() cms.Result[[]entity.Design] {
		res := s.client.GetFeaturedDesigns(ctx)
		res.Data = listing.SortByBestEffortDate(res.Data, nil)
		return res
	})
}

// SearchDesigns ranks through the search index when one is configured and
// falls back to the CMS name filter when there is none or it fails.
func (s *Service) SearchDesigns(ctx context.Context, q string, size int) cms.Result[[]entity.Design] {
	if s.searcher == nil || strings.TrimSpace(q) == "" {
		return s.client.SearchDesigns(ctx, q)
	}
	slugs, err := s.searcher.SearchDesigns(ctx, q, size)
	if err != nil {
		s.log.Warn("design index unavailable, using cms search", zap.Error(err))
		return s.client.SearchDesigns(ctx, q)
	}
	all := cached(ctx, s, "designs|all", []string{TagDesigns}, func() cms.Result[[]entity.Design] {
		return s.client.GetAllDesigns(ctx)
	})
	if !all.Success {
		return cms.Fail(make([]entity.Design, 0), "Failed to search designs")
	}
	bySlug := make(map[string]entity.Design, len(all.Data))
	for _, d := range all.Data {
		bySlug[d.Slug] = d
	}
	out := make([]entity.Design, 0, len(slugs))
	for _, slug := range slugs {
		if d, ok := bySlug[slug]; ok {
			out = append(out, d)
		}
	}
	return cms.OK(out)
}

func (s *Service) Category(ctx context.Context, slug string) cms.Result[*entity.Category] {
	return cached(ctx, s, cache.Key("category", slug), []string{TagCategories}, func() cms.Result[*entity.Category] {
		return s.client.GetCategoryBySlug(ctx, slug)
	})
}

func (s *Service) Interior(ctx context.Context, slug string) cms.Result[*entity.Interior] {
	return cached(ctx, s, cache.Key("interior", slug), []string{TagInteriors}, func() cms.Result[*entity.Interior] {
		return s.client.GetInteriorBySlug(ctx, slug)
	})
}

func (s *Service) Portfolio(ctx context.Context, slug string) cms.Result[*entity.Portfolio] {
	return cached(ctx, s, cache.Key("portfolio", slug), []string{TagPortfolios}, func() cms.Result[*entity.Portfolio] {
		return s.client.GetPortfolioBySlug(ctx, slug)
	})
}

// Warm loads the default view of every page into the cache. It returns
// an error naming the first page that failed.
func (s *Service) Warm(ctx context.Context) error {
	msg := firstError(
		statusOf(s.Designs(ctx, DesignQuery{Page: 1})),
		statusOf(s.Categories(ctx, CategoryQuery{})),
		statusOf(s.Interiors(ctx, InteriorQuery{})),
		statusOf(s.Portfolios(ctx, "")),
	)
	if msg != "" {
		return errors.New(msg)
	}
	return nil
}
