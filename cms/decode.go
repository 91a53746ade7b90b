package cms

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"

	"glomnidesigns.GO/model/entity"
)

var tagsType = reflect.TypeOf(entity.Tags(nil))

// tagsHook accepts tags stored either as "a, b" or as ["a", "b"].
func tagsHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != tagsType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return entity.ParseTags(v), nil
		case []interface{}:
			out := make(entity.Tags, 0, len(v))
			for _, item := range v {
				switch s := item.(type) {
				case nil:
				case string:
					if s != "" {
						out = append(out, s)
					}
				case map[string]interface{}:
					// tag relations: {name: "..."}
					if name, ok := s["name"].(string); ok && name != "" {
						out = append(out, name)
					}
				default:
					out = append(out, fmt.Sprint(s))
				}
			}
			return out, nil
		}
		return data, nil
	}
}

var leadingNumber = regexp.MustCompile(`^[-+]?\d+(\.\d+)?`)

// numberHook reads numeric fields entered as free text ("1,200 sq ft")
// by their leading number. Text without one decodes as zero.
func numberHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		kind := t.Kind()
		isInt := kind >= reflect.Int && kind <= reflect.Int64
		isUint := kind >= reflect.Uint && kind <= reflect.Uint64
		if !isInt && !isUint && kind != reflect.Float32 && kind != reflect.Float64 {
			return data, nil
		}
		n, err := strconv.ParseFloat(leadingNumber.FindString(strings.ReplaceAll(strings.TrimSpace(s), ",", "")), 64)
		switch {
		case err != nil:
			return reflect.Zero(t).Interface(), nil
		case isUint && n < 0:
			return reflect.Zero(t).Interface(), nil
		case isInt || isUint:
			return int64(n), nil
		}
		return n, nil
	}
}

// textHook flattens rich text (block lists or nodes with text/children)
// into plain text when the target field is a string.
func textHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.String {
			return data, nil
		}
		switch v := data.(type) {
		case []interface{}:
			lines := make([]string, 0, len(v))
			for _, block := range v {
				if line := inlineText(block); line != "" {
					lines = append(lines, line)
				}
			}
			return strings.Join(lines, "\n"), nil
		case map[string]interface{}:
			return inlineText(v), nil
		}
		return data, nil
	}
}

func inlineText(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case map[string]interface{}:
		var b strings.Builder
		if s, ok := x["text"].(string); ok {
			b.WriteString(s)
		}
		b.WriteString(inlineText(x["children"]))
		return b.String()
	case []interface{}:
		var b strings.Builder
		for _, child := range x {
			b.WriteString(inlineText(child))
		}
		return b.String()
	}
	return ""
}

var recordDecodeHook = mapstructure.ComposeDecodeHookFunc(
	tagsHook(),
	textHook(),
	numberHook(),
)

// DecodeRecord maps a flat CMS record onto out (a pointer to an entity).
func DecodeRecord(rec map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       recordDecodeHook,
		WeaklyTypedInput: true,
		Result:           out,
		TagName:          "mapstructure",
	})
	if err != nil {
		return err
	}
	return dec.Decode(rec)
}

// decodeRecords decodes every record it can. Records that still fail are
// left out and returned as errors so one bad entry cannot hide the rest.
func decodeRecords[T any](records []map[string]interface{}) ([]T, []error) {
	out := make([]T, 0, len(records))
	var skipped []error
	for i, rec := range records {
		var v T
		if err := DecodeRecord(rec, &v); err != nil {
			skipped = append(skipped, fmt.Errorf("cms: record %d (id %v): %w", i, rec["id"], err))
			continue
		}
		out = append(out, v)
	}
	return out, skipped
}
