package entity

type Portfolio struct {
	ID            int                    `json:"id" mapstructure:"id"`
	Name          string                 `json:"name" mapstructure:"name"`
	Slug          string                 `json:"slug" mapstructure:"slug"`
	Location      string                 `json:"location" mapstructure:"location"`
	Area          string                 `json:"area" mapstructure:"area"`
	FeaturedImage *Image                 `json:"featured_image,omitempty" mapstructure:"featured_image"`
	Images        []Image                `json:"images,omitempty" mapstructure:"images"`
	Extra         map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (p Portfolio) Attr(name string) interface{} {
	switch name {
	case "id":
		return p.ID
	case "name":
		return p.Name
	case "slug":
		return p.Slug
	case "location":
		return p.Location
	case "area":
		return p.Area
	}
	return p.Extra[name]
}
