package listing

// Page is one page of a derived list.
type Page[T any] struct {
	Items       []T  `json:"items"`
	CurrentPage int  `json:"current_page"`
	PageSize    int  `json:"page_size"`
	TotalItems  int  `json:"total_items"`
	TotalPages  int  `json:"total_pages"`
	HasPrev     bool `json:"has_prev"`
	HasNext     bool `json:"has_next"`
}

// Paginate slices out page (1-based) of size pageSize. TotalPages is
// ceil(len(items)/pageSize) and page is clamped to [1, max(1, TotalPages)].
// A pageSize below 1 puts everything on one page.
func Paginate[T any](items []T, page, pageSize int) Page[T] {
	total := len(items)
	if pageSize < 1 {
		pageSize = total
		if pageSize < 1 {
			pageSize = 1
		}
	}
	pages := (total + pageSize - 1) / pageSize
	page = clampPage(page, pages)

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return Page[T]{
		Items:       clone(items[start:end]),
		CurrentPage: page,
		PageSize:    pageSize,
		TotalItems:  total,
		TotalPages:  pages,
		HasPrev:     page > 1,
		HasNext:     page < pages,
	}
}

func clampPage(page, pages int) int {
	if page > pages {
		page = pages
	}
	if page < 1 {
		page = 1
	}
	return page
}
