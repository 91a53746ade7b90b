package models

import "github.com/graph-gophers/graphql-go"

type ServiceCategory struct {
	ID    graphql.ID `json:"id"`
	Slug  string     `json:"slug"`
	Name  string     `json:"name"`
	Icon  *string    `json:"icon,omitempty"`
	Color *string    `json:"color,omitempty"`
}

type Interior struct {
	ID               graphql.ID       `json:"id"`
	Slug             string           `json:"slug"`
	Title            string           `json:"title"`
	ShortDescription *string          `json:"short_description,omitempty"`
	FullDescription  *string          `json:"full_description,omitempty"`
	ImageURL         *string          `json:"image_url,omitempty"`
	StartingPrice    *float64         `json:"starting_price,omitempty"`
	PriceRange       *string          `json:"price_range,omitempty"`
	Duration         *string          `json:"duration,omitempty"`
	Features         []string         `json:"features"`
	IsFeatured       bool             `json:"is_featured"`
	IsPopular        bool             `json:"is_popular"`
	ServiceCategory  *ServiceCategory `json:"service_category,omitempty"`
}

type InteriorCategory struct {
	ID          graphql.ID `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Icon        *string    `json:"icon,omitempty"`
	Color       *string    `json:"color,omitempty"`
}

type Portfolio struct {
	ID       graphql.ID `json:"id"`
	Slug     string     `json:"slug"`
	Name     string     `json:"name"`
	Location *string    `json:"location,omitempty"`
	Area     *string    `json:"area,omitempty"`
	ImageURL *string    `json:"image_url,omitempty"`
	Images   []*Image   `json:"images"`
}
