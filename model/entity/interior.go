package entity

// ServiceCategory is the relation shape embedded in interior services.
type ServiceCategory struct {
	ID    int    `json:"id" mapstructure:"id"`
	Name  string `json:"name" mapstructure:"name"`
	Slug  string `json:"slug" mapstructure:"slug"`
	Icon  string `json:"icon,omitempty" mapstructure:"icon"`
	Color string `json:"color,omitempty" mapstructure:"color"`
}

type ProcessStep struct {
	Title       string `json:"title" mapstructure:"title"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// Interior is an interior design service offering.
type Interior struct {
	ID               int                    `json:"id" mapstructure:"id"`
	Title            string                 `json:"title" mapstructure:"title"`
	Slug             string                 `json:"slug" mapstructure:"slug"`
	ShortDescription string                 `json:"short_description" mapstructure:"short_description"`
	FullDescription  string                 `json:"full_description" mapstructure:"full_description"`
	FeaturedImage    *Image                 `json:"featured_image,omitempty" mapstructure:"featured_image"`
	GalleryImages    []Image                `json:"gallery_images,omitempty" mapstructure:"gallery_images"`
	ServiceCategory  *ServiceCategory       `json:"service_category,omitempty" mapstructure:"service_category"`
	StartingPrice    float64                `json:"starting_price" mapstructure:"starting_price"`
	PriceRange       string                 `json:"price_range" mapstructure:"price_range"`
	Duration         string                 `json:"duration" mapstructure:"duration"`
	Features         []string               `json:"features" mapstructure:"features"`
	ProcessSteps     []ProcessStep          `json:"process_steps,omitempty" mapstructure:"process_steps"`
	IsFeatured       bool                   `json:"is_featured" mapstructure:"is_featured"`
	IsPopular        bool                   `json:"is_popular" mapstructure:"is_popular"`
	OrderPosition    int                    `json:"order_position" mapstructure:"order_position"`
	Extra            map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (i Interior) Attr(name string) interface{} {
	switch name {
	case "id":
		return i.ID
	case "title":
		return i.Title
	case "slug":
		return i.Slug
	case "short_description":
		return i.ShortDescription
	case "full_description":
		return i.FullDescription
	case "price_range":
		return i.PriceRange
	case "duration":
		return i.Duration
	case "features":
		return i.Features
	case "is_featured":
		return i.IsFeatured
	case "is_popular":
		return i.IsPopular
	case "order_position":
		return i.OrderPosition
	case "service_category.slug":
		if i.ServiceCategory == nil {
			return ""
		}
		return i.ServiceCategory.Slug
	}
	return i.Extra[name]
}

type InteriorCategory struct {
	ID          int                    `json:"id" mapstructure:"id"`
	Name        string                 `json:"name" mapstructure:"name"`
	Slug        string                 `json:"slug" mapstructure:"slug"`
	Description string                 `json:"description" mapstructure:"description"`
	Icon        string                 `json:"icon,omitempty" mapstructure:"icon"`
	Color       string                 `json:"color,omitempty" mapstructure:"color"`
	Extra       map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (c InteriorCategory) Attr(name string) interface{} {
	switch name {
	case "id":
		return c.ID
	case "name":
		return c.Name
	case "slug":
		return c.Slug
	case "description":
		return c.Description
	}
	return c.Extra[name]
}
