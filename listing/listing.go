// Package listing derives filtered, sorted and paginated views from a
// collection that is already held in memory. Every function is pure: the
// input slice is never modified and a fresh slice is returned.
package listing

import (
	"fmt"
	"strings"
)

// All is the category value that disables category filtering.
const All = "all"

// Record is anything that can expose named attributes. Relation slugs are
// addressed with a dotted path such as "categories.slug".
type Record interface {
	Attr(name string) interface{}
}

// FilterBySearch keeps records where at least one of fields contains query
// as a case-insensitive substring. A blank query keeps everything.
func FilterBySearch[T Record](items []T, fields []string, query string) []T {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return clone(items)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields {
			if containsFold(it.Attr(f), needle) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// FilterByField keeps records whose field equals value. List attributes
// match when any element equals value. "all" or "" keeps everything.
func FilterByField[T Record](items []T, field, value string) []T {
	if value == "" || value == All {
		return clone(items)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if equalsAny(it.Attr(field), value) {
			out = append(out, it)
		}
	}
	return out
}

// FilterByFlag keeps records whose boolean field is true when enabled.
func FilterByFlag[T Record](items []T, field string, enabled bool) []T {
	if !enabled {
		return clone(items)
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if truthy(it.Attr(field)) {
			out = append(out, it)
		}
	}
	return out
}

func clone[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func containsFold(v interface{}, needle string) bool {
	for _, s := range stringsOf(v) {
		if strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func equalsAny(v interface{}, want string) bool {
	for _, s := range stringsOf(v) {
		if s == want {
			return true
		}
	}
	return false
}

func stringsOf(v interface{}) []string {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []string{t}
	case []string:
		return t
	case fmt.Stringer:
		return []string{t.String()}
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, e := range t {
			out = append(out, stringsOf(e)...)
		}
		return out
	case map[string]interface{}:
		// unflattened relation
		if s, ok := t["slug"].(string); ok {
			return []string{s}
		}
		return nil
	}
	return []string{fmt.Sprint(v)}
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "1"
	case float64:
		return t != 0
	case int:
		return t != 0
	}
	return false
}
