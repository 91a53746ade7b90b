package entity

// CategorySummary is the relation shape embedded in designs.
type CategorySummary struct {
	ID   int    `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
	Slug string `json:"slug" mapstructure:"slug"`
}

type Category struct {
	ID          int                    `json:"id" mapstructure:"id"`
	Name        string                 `json:"name" mapstructure:"name"`
	Slug        string                 `json:"slug" mapstructure:"slug"`
	Description string                 `json:"description" mapstructure:"description"`
	Image       *Image                 `json:"image,omitempty" mapstructure:"image"`
	Type        string                 `json:"type" mapstructure:"type"`
	Extra       map[string]interface{} `json:"-" mapstructure:",remain"`
}

func (c Category) Attr(name string) interface{} {
	switch name {
	case "id":
		return c.ID
	case "name":
		return c.Name
	case "slug":
		return c.Slug
	case "description":
		return c.Description
	case "type":
		return c.Type
	}
	return c.Extra[name]
}
