package cmstest

// Design builds a design record linked to the given category slugs.
func Design(id int, slug, name string, categorySlugs ...string) map[string]interface{} {
	cats := make([]interface{}, 0, len(categorySlugs))
	for i, c := range categorySlugs {
		cats = append(cats, map[string]interface{}{"id": 100 + i, "name": c, "slug": c})
	}
	return map[string]interface{}{
		"id":          id,
		"slug":        slug,
		"name":        name,
		"description": name + " description",
		"location":    "Delhi",
		"tags":        "modern, cozy",
		"is_featured": false,
		"categories":  cats,
	}
}

// Category builds a category record.
func Category(id int, slug, name, typ string) map[string]interface{} {
	return map[string]interface{}{
		"id":          id,
		"slug":        slug,
		"name":        name,
		"description": name + " ideas",
		"type":        typ,
	}
}

// Interior builds an interior service record in the given service category.
func Interior(id int, slug, title, categorySlug string, featured bool) map[string]interface{} {
	return map[string]interface{}{
		"id":                id,
		"slug":              slug,
		"title":             title,
		"short_description": title + " service",
		"starting_price":    1000 * id,
		"features":          []interface{}{"design", "execution"},
		"is_featured":       featured,
		"service_category": map[string]interface{}{
			"id": 1, "name": categorySlug, "slug": categorySlug, "icon": "home", "color": "#c08",
		},
	}
}

// Portfolio builds a portfolio record.
func Portfolio(id int, slug, name, location string) map[string]interface{} {
	return map[string]interface{}{
		"id":       id,
		"slug":     slug,
		"name":     name,
		"location": location,
		"area":     "1200 sqft",
	}
}

// With returns a copy of rec with extra fields set.
func With(rec map[string]interface{}, kv ...interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(rec)+len(kv)/2)
	for k, v := range rec {
		out[k] = v
	}
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i].(string)] = kv[i+1]
	}
	return out
}
