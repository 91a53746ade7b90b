package entity

import "strings"

// Image is a CMS media descriptor.
type Image struct {
	ID              int    `json:"id" mapstructure:"id"`
	URL             string `json:"url" mapstructure:"url"`
	AlternativeText string `json:"alternativeText,omitempty" mapstructure:"alternativeText"`
	Name            string `json:"name,omitempty" mapstructure:"name"`
	Width           int    `json:"width,omitempty" mapstructure:"width"`
	Height          int    `json:"height,omitempty" mapstructure:"height"`
}

// ResolveURL returns an absolute URL for the image. Upload paths are
// relative to the CMS asset origin.
func (i *Image) ResolveURL(assetOrigin string) string {
	if i == nil || i.URL == "" {
		return ""
	}
	if strings.HasPrefix(i.URL, "http://") || strings.HasPrefix(i.URL, "https://") || strings.HasPrefix(i.URL, "//") {
		return i.URL
	}
	origin := strings.TrimRight(assetOrigin, "/")
	if strings.HasPrefix(i.URL, "/") {
		return origin + i.URL
	}
	return origin + "/" + i.URL
}

// Alt falls back to the file name when no alternative text was entered.
func (i *Image) Alt() string {
	if i == nil {
		return ""
	}
	if i.AlternativeText != "" {
		return i.AlternativeText
	}
	return i.Name
}
