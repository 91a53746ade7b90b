package resolvers

import (
	"strconv"

	"github.com/graph-gophers/graphql-go"

	"glomnidesigns.GO/graphql/models"
	"glomnidesigns.GO/model/entity"
)

func id(n int) graphql.ID {
	return graphql.ID(strconv.Itoa(n))
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optFloat(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}

func optInt(n int) *int32 {
	if n == 0 {
		return nil
	}
	v := int32(n)
	return &v
}

func (r *QueryResolver) image(img *entity.Image) *models.Image {
	return &models.Image{
		URL:    img.ResolveURL(r.assetOrigin),
		Alt:    img.Alt(),
		Width:  optInt(img.Width),
		Height: optInt(img.Height),
	}
}

func (r *QueryResolver) images(imgs []entity.Image) []*models.Image {
	out := make([]*models.Image, 0, len(imgs))
	for i := range imgs {
		out = append(out, r.image(&imgs[i]))
	}
	return out
}

func (r *QueryResolver) design(d *entity.Design) *models.Design {
	cats := make([]*models.CategorySummary, 0, len(d.Categories))
	for _, c := range d.Categories {
		cats = append(cats, &models.CategorySummary{ID: id(c.ID), Name: c.Name, Slug: c.Slug})
	}
	tags := []string(d.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &models.Design{
		ID:             id(d.ID),
		Slug:           d.Slug,
		Name:           d.Name,
		Description:    optString(d.Description),
		Tags:           tags,
		Style:          optString(d.Style),
		Location:       optString(d.Location),
		PriceRange:     optString(d.PriceRange),
		AreaSize:       optFloat(d.AreaSize),
		CompletionTime: optString(d.CompletionTime),
		IsFeatured:     d.IsFeatured,
		ImageURL:       optString(d.FeaturedImage.ResolveURL(r.assetOrigin)),
		ImageAlt:       optString(d.FeaturedImage.Alt()),
		Images:         r.images(d.Images),
		Categories:     cats,
	}
}

func (r *QueryResolver) designs(ds []entity.Design) []*models.Design {
	out := make([]*models.Design, 0, len(ds))
	for i := range ds {
		out = append(out, r.design(&ds[i]))
	}
	return out
}

func (r *QueryResolver) category(c *entity.Category) *models.Category {
	return &models.Category{
		ID:          id(c.ID),
		Slug:        c.Slug,
		Name:        c.Name,
		Description: optString(c.Description),
		Type:        optString(c.Type),
		ImageURL:    optString(c.Image.ResolveURL(r.assetOrigin)),
	}
}

func (r *QueryResolver) interior(i *entity.Interior) *models.Interior {
	features := i.Features
	if features == nil {
		features = []string{}
	}
	m := &models.Interior{
		ID:               id(i.ID),
		Slug:             i.Slug,
		Title:            i.Title,
		ShortDescription: optString(i.ShortDescription),
		FullDescription:  optString(i.FullDescription),
		ImageURL:         optString(i.FeaturedImage.ResolveURL(r.assetOrigin)),
		StartingPrice:    optFloat(i.StartingPrice),
		PriceRange:       optString(i.PriceRange),
		Duration:         optString(i.Duration),
		Features:         features,
		IsFeatured:       i.IsFeatured,
		IsPopular:        i.IsPopular,
	}
	if sc := i.ServiceCategory; sc != nil {
		m.ServiceCategory = &models.ServiceCategory{
			ID:    id(sc.ID),
			Slug:  sc.Slug,
			Name:  sc.Name,
			Icon:  optString(sc.Icon),
			Color: optString(sc.Color),
		}
	}
	return m
}

func (r *QueryResolver) interiorCategory(c *entity.InteriorCategory) *models.InteriorCategory {
	return &models.InteriorCategory{
		ID:          id(c.ID),
		Slug:        c.Slug,
		Name:        c.Name,
		Description: optString(c.Description),
		Icon:        optString(c.Icon),
		Color:       optString(c.Color),
	}
}

func (r *QueryResolver) portfolio(p *entity.Portfolio) *models.Portfolio {
	return &models.Portfolio{
		ID:       id(p.ID),
		Slug:     p.Slug,
		Name:     p.Name,
		Location: optString(p.Location),
		Area:     optString(p.Area),
		ImageURL: optString(p.FeaturedImage.ResolveURL(r.assetOrigin)),
		Images:   r.images(p.Images),
	}
}
