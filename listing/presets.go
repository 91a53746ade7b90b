package listing

// Per-page rule sets.
var (
	DesignsView = ViewConfig{
		SearchFields:  []string{"name", "description", "location"},
		CategoryField: "categories.slug",
		SortByDate:    true,
		PageSize:      DesignsPageSize,
	}
	CategoriesView = ViewConfig{
		SearchFields:  []string{"name", "description"},
		CategoryField: "type",
	}
	CategoryDetailView = ViewConfig{
		SearchFields: []string{"name", "description", "location"},
	}
	InteriorsView = ViewConfig{
		SearchFields:  []string{"title", "short_description", "full_description"},
		CategoryField: "service_category.slug",
		FeaturedField: "is_featured",
	}
	PortfoliosView = ViewConfig{
		SearchFields: []string{"name", "location"},
	}
)
