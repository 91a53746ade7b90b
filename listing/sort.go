package listing

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultDateFields are probed in order when sorting by date.
var DefaultDateFields = []string{
	"createdAt", "created_at",
	"updatedAt", "updated_at",
	"publishedAt", "published_at",
	"date", "timestamp",
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// SortByBestEffortDate orders records newest first. The key of a record is
// the first candidate field that parses as a date (Unix milliseconds), or
// its numeric id when none does. Equal keys keep their input order.
func SortByBestEffortDate[T Record](items []T, candidates []string) []T {
	if candidates == nil {
		candidates = DefaultDateFields
	}
	keys := make([]int64, len(items))
	idx := make([]int, len(items))
	for i, it := range items {
		keys[i] = SortKey(it, candidates)
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]] > keys[idx[b]]
	})
	out := make([]T, len(items))
	for i, j := range idx {
		out[i] = items[j]
	}
	return out
}

// SortKey resolves the ordering key used by SortByBestEffortDate.
func SortKey(r Record, candidates []string) int64 {
	for _, f := range candidates {
		if ms, ok := dateMillis(r.Attr(f)); ok {
			return ms
		}
	}
	id, _ := number(r.Attr("id"))
	return int64(id)
}

func dateMillis(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case nil:
		return 0, false
	case time.Time:
		if t.IsZero() {
			return 0, false
		}
		return t.UnixMilli(), true
	case *time.Time:
		if t == nil || t.IsZero() {
			return 0, false
		}
		return t.UnixMilli(), true
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts.UnixMilli(), true
			}
		}
		return 0, false
	}
	// numeric timestamps are epoch milliseconds
	if n, ok := number(v); ok && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return int64(n), true
	}
	return 0, false
}

func number(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case uint:
		return float64(t), true
	case float32:
		return float64(t), true
	case float64:
		return t, true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	}
	return 0, false
}
