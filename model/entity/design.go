package entity

type Design struct {
	ID             int                    `json:"id" mapstructure:"id"`
	Name           string                 `json:"name" mapstructure:"name"`
	Description    string                 `json:"description" mapstructure:"description"`
	Tags           Tags                   `json:"tags" mapstructure:"tags"`
	FeaturedImage  *Image                 `json:"featured_image,omitempty" mapstructure:"featured_image"`
	Images         []Image                `json:"images,omitempty" mapstructure:"images"`
	PriceRange     string                 `json:"price_range" mapstructure:"price_range"`
	Style          string                 `json:"style" mapstructure:"style"`
	AreaSize       float64                `json:"area_size" mapstructure:"area_size"`
	Location       string                 `json:"location" mapstructure:"location"`
	CompletionTime string                 `json:"completion_time" mapstructure:"completion_time"`
	IsFeatured     bool                   `json:"is_featured" mapstructure:"is_featured"`
	Slug           string                 `json:"slug" mapstructure:"slug"`
	Categories     []CategorySummary      `json:"categories" mapstructure:"categories"`
	Extra          map[string]interface{} `json:"-" mapstructure:",remain"`
}

// CategorySlugs lists the slugs of the design's categories.
func (d Design) CategorySlugs() []string {
	out := make([]string, 0, len(d.Categories))
	for _, c := range d.Categories {
		out = append(out, c.Slug)
	}
	return out
}

// InCategory reports whether the design is linked to the category slug.
func (d Design) InCategory(slug string) bool {
	for _, c := range d.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// Attr exposes named fields to the list helpers. Unknown names fall
// through to the raw CMS attributes (timestamps live there).
func (d Design) Attr(name string) interface{} {
	switch name {
	case "id":
		return d.ID
	case "name":
		return d.Name
	case "description":
		return d.Description
	case "tags":
		return []string(d.Tags)
	case "price_range":
		return d.PriceRange
	case "style":
		return d.Style
	case "area_size":
		return d.AreaSize
	case "location":
		return d.Location
	case "completion_time":
		return d.CompletionTime
	case "is_featured":
		return d.IsFeatured
	case "slug":
		return d.Slug
	case "categories.slug":
		return d.CategorySlugs()
	}
	return d.Extra[name]
}
