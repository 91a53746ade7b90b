package resolvers

import (
	"glomnidesigns.GO/graphql/models"
	"glomnidesigns.GO/listing"
	"glomnidesigns.GO/model/entity"
)

func defaultInt(p *int32, def int) int {
	if p != nil && *p > 0 {
		return int(*p)
	}
	return def
}

func (r *QueryResolver) designPage(p listing.Page[entity.Design]) *models.DesignPage {
	return &models.DesignPage{
		Items:       r.designs(p.Items),
		CurrentPage: int32(p.CurrentPage),
		PageSize:    int32(p.PageSize),
		TotalItems:  int32(p.TotalItems),
		TotalPages:  int32(p.TotalPages),
		HasPrev:     p.HasPrev,
		HasNext:     p.HasNext,
	}
}
