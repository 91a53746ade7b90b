package cms

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Kind tags the shape of a normalized payload.
type Kind int

const (
	KindList Kind = iota + 1
	KindSingle
)

func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindSingle:
		return "single"
	default:
		return "unknown"
	}
}

// Payload is a CMS response reduced to flat records.
type Payload struct {
	Kind  Kind
	Items []map[string]interface{} // KindList
	Item  map[string]interface{}   // KindSingle, nil when the CMS returned null
	Meta  map[string]interface{}
}

// Records returns the payload as a list regardless of its kind.
func (p Payload) Records() []map[string]interface{} {
	if p.Kind == KindSingle {
		if p.Item == nil {
			return nil
		}
		return []map[string]interface{}{p.Item}
	}
	return p.Items
}

var (
	ErrEmptyBody = errors.New("cms: empty response body")
	ErrNullBody  = errors.New("cms: null response body")
)

// Normalize accepts every response shape the CMS produces:
//
//	{"data": [...]}   list
//	{"data": {...}}   single
//	{"data": null}    single, nil item
//	[...]             list
//	{...}             single
//
// A bare null body has no data member and is rejected.
//
// Strapi v4 records ({id, attributes}) and relation wrappers ({data: ...})
// are flattened.
func Normalize(body []byte) (Payload, error) {
	if len(body) == 0 {
		return Payload{}, ErrEmptyBody
	}
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return Payload{}, fmt.Errorf("cms: decode body: %w", err)
	}

	switch top := raw.(type) {
	case nil:
		return Payload{}, ErrNullBody
	case []interface{}:
		items, err := recordList(top)
		if err != nil {
			return Payload{}, err
		}
		return Payload{Kind: KindList, Items: items}, nil
	case map[string]interface{}:
		data, wrapped := top["data"]
		if !wrapped {
			return Payload{Kind: KindSingle, Item: flattenRecord(top)}, nil
		}
		meta, _ := top["meta"].(map[string]interface{})
		switch d := data.(type) {
		case nil:
			return Payload{Kind: KindSingle, Meta: meta}, nil
		case []interface{}:
			items, err := recordList(d)
			if err != nil {
				return Payload{}, err
			}
			return Payload{Kind: KindList, Items: items, Meta: meta}, nil
		case map[string]interface{}:
			return Payload{Kind: KindSingle, Item: flattenRecord(d), Meta: meta}, nil
		default:
			return Payload{}, fmt.Errorf("cms: unexpected data of type %T", data)
		}
	default:
		return Payload{}, fmt.Errorf("cms: unexpected top-level value of type %T", raw)
	}
}

func recordList(in []interface{}) ([]map[string]interface{}, error) {
	out := make([]map[string]interface{}, 0, len(in))
	for i, v := range in {
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("cms: record %d is %T, not an object", i, v)
		}
		out = append(out, flattenRecord(m))
	}
	return out, nil
}

func flattenRecord(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	attrs, isV4 := m["attributes"].(map[string]interface{})
	_, hasID := m["id"]
	isV4 = isV4 && hasID
	for k, v := range m {
		if isV4 && k == "attributes" {
			continue
		}
		out[k] = flattenValue(v)
	}
	if isV4 {
		for k, v := range attrs {
			if _, exists := out[k]; !exists {
				out[k] = flattenValue(v)
			}
		}
	}
	return out
}

func flattenValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		if isRelationWrapper(t) {
			return flattenValue(t["data"])
		}
		return flattenRecord(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = flattenValue(t[i])
		}
		return out
	}
	return v
}

// isRelationWrapper matches {data: ...} and {data: ..., meta: ...}.
func isRelationWrapper(m map[string]interface{}) bool {
	if _, ok := m["data"]; !ok {
		return false
	}
	for k := range m {
		if k != "data" && k != "meta" {
			return false
		}
	}
	return true
}
