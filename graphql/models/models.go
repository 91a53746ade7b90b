package models

import "github.com/graph-gophers/graphql-go"

type Image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Width  *int32 `json:"width,omitempty"`
	Height *int32 `json:"height,omitempty"`
}

type CategorySummary struct {
	ID   graphql.ID `json:"id"`
	Name string     `json:"name"`
	Slug string     `json:"slug"`
}

type Design struct {
	ID             graphql.ID         `json:"id"`
	Slug           string             `json:"slug"`
	Name           string             `json:"name"`
	Description    *string            `json:"description,omitempty"`
	Tags           []string           `json:"tags"`
	Style          *string            `json:"style,omitempty"`
	Location       *string            `json:"location,omitempty"`
	PriceRange     *string            `json:"price_range,omitempty"`
	AreaSize       *float64           `json:"area_size,omitempty"`
	CompletionTime *string            `json:"completion_time,omitempty"`
	IsFeatured     bool               `json:"is_featured"`
	ImageURL       *string            `json:"image_url,omitempty"`
	ImageAlt       *string            `json:"image_alt,omitempty"`
	Images         []*Image           `json:"images"`
	Categories     []*CategorySummary `json:"categories"`
}

// DesignPage is one page of the designs listing.
type DesignPage struct {
	Items       []*Design `json:"items"`
	CurrentPage int32     `json:"current_page"`
	PageSize    int32     `json:"page_size"`
	TotalItems  int32     `json:"total_items"`
	TotalPages  int32     `json:"total_pages"`
	HasPrev     bool      `json:"has_prev"`
	HasNext     bool      `json:"has_next"`
}
