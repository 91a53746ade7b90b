package entity

import "strings"

// Tags holds design tags. The CMS stores them either as a comma separated
// string or as a list of strings.
type Tags []string

// ParseTags splits a comma separated tag string, dropping empty entries.
func ParseTags(s string) Tags {
	parts := strings.Split(s, ",")
	out := make(Tags, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (t Tags) String() string {
	return strings.Join(t, ", ")
}
