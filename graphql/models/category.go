package models

import "github.com/graph-gophers/graphql-go"

type Category struct {
	ID          graphql.ID `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	Type        *string    `json:"type,omitempty"`
	ImageURL    *string    `json:"image_url,omitempty"`
}

// CategoryDetail is a category with the designs linked to it.
type CategoryDetail struct {
	Category *Category `json:"category"`
	Designs  []*Design `json:"designs"`
}
