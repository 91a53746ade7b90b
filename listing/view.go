package listing

import "sync"

// DesignsPageSize is the page size of the designs listing.
const DesignsPageSize = 16

// ViewConfig describes which rules a View applies. Empty fields switch the
// corresponding rule off.
type ViewConfig struct {
	SearchFields  []string
	CategoryField string
	FeaturedField string
	// SortByDate enables the newest-first ordering over DateFields
	// (DefaultDateFields when nil).
	SortByDate bool
	DateFields []string
	PageSize   int
}

// View holds a full collection and the current UI parameters. Every change
// recomputes the visible page from scratch. Changing the search, category
// or featured toggle returns to page 1.
type View[T Record] struct {
	mu  sync.RWMutex
	cfg ViewConfig

	all          []T
	search       string
	category     string
	featuredOnly bool
	page         int

	derived []T
	current Page[T]
}

func NewView[T Record](items []T, cfg ViewConfig) *View[T] {
	v := &View[T]{cfg: cfg, all: clone(items), category: All, page: 1}
	v.recompute()
	return v
}

// SetItems replaces the collection, keeping the filters and the page
// (clamped to the new page count).
func (v *View[T]) SetItems(items []T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.all = clone(items)
	v.recompute()
}

func (v *View[T]) SetSearch(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if q != v.search {
		v.search = q
		v.page = 1
	}
	v.recompute()
}

func (v *View[T]) SetCategory(c string) {
	if c == "" {
		c = All
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if c != v.category {
		v.category = c
		v.page = 1
	}
	v.recompute()
}

func (v *View[T]) SetFeaturedOnly(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if on != v.featuredOnly {
		v.featuredOnly = on
		v.page = 1
	}
	v.recompute()
}

// SetPage moves to page n, clamped to the available pages.
func (v *View[T]) SetPage(n int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.page = n
	v.recompute()
}

// Next advances one page and reports whether it moved.
func (v *View[T]) Next() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current.HasNext {
		return false
	}
	v.page++
	v.recompute()
	return true
}

// Prev goes back one page and reports whether it moved.
func (v *View[T]) Prev() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.current.HasPrev {
		return false
	}
	v.page--
	v.recompute()
	return true
}

// Result is the visible page.
func (v *View[T]) Result() Page[T] {
	v.mu.RLock()
	defer v.mu.RUnlock()
	p := v.current
	p.Items = clone(p.Items)
	return p
}

// Filtered is the full derived list before pagination.
func (v *View[T]) Filtered() []T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return clone(v.derived)
}

func (v *View[T]) Search() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.search
}

func (v *View[T]) Category() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.category
}

func (v *View[T]) recompute() {
	items := v.all
	if len(v.cfg.SearchFields) > 0 {
		items = FilterBySearch(items, v.cfg.SearchFields, v.search)
	}
	if v.cfg.CategoryField != "" {
		items = FilterByField(items, v.cfg.CategoryField, v.category)
	}
	if v.cfg.FeaturedField != "" {
		items = FilterByFlag(items, v.cfg.FeaturedField, v.featuredOnly)
	}
	if v.cfg.SortByDate {
		items = SortByBestEffortDate(items, v.cfg.DateFields)
	}
	v.derived = items
	v.current = Paginate(items, v.page, v.cfg.PageSize)
	v.page = v.current.CurrentPage
}
