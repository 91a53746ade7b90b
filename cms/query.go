package cms

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Operator is a CMS filter operator.
type Operator string

const (
	OpEq        Operator = "$eq"
	OpNe        Operator = "$ne"
	OpContains  Operator = "$contains"
	OpContainsi Operator = "$containsi"
	OpIn        Operator = "$in"
	OpNotNull   Operator = "$notNull"
)

// Query builds the bracketed query string the CMS understands:
// filters[field][$op]=v, populate=*, pagination[page]=n, sort[0]=f.
type Query struct {
	params url.Values
}

func NewQuery() *Query {
	return &Query{params: url.Values{}}
}

// Filter adds filters[path...][op]=value. Slice and array values of any
// element type are written as indexed entries (filters[f][$in][0]=a).
func (q *Query) Filter(op Operator, value interface{}, path ...string) *Query {
	if len(path) == 0 {
		return q
	}
	key := "filters[" + strings.Join(path, "][") + "][" + string(op) + "]"
	rv := indirect(reflect.ValueOf(value))
	if isList(rv) {
		for i := 0; i < rv.Len(); i++ {
			q.params.Add(key+"["+strconv.Itoa(i)+"]", scalar(rv.Index(i)))
		}
		return q
	}
	q.params.Add(key, scalar(rv))
	return q
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isList(v reflect.Value) bool {
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Slice:
		return v.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	}
	return false
}

func scalar(v reflect.Value) string {
	v = indirect(v)
	if !v.IsValid() {
		return ""
	}
	if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
		return string(v.Bytes())
	}
	return fmt.Sprint(v.Interface())
}

func (q *Query) Eq(value interface{}, path ...string) *Query {
	return q.Filter(OpEq, value, path...)
}

func (q *Query) ContainsI(value string, path ...string) *Query {
	return q.Filter(OpContainsi, value, path...)
}

// Filters walks a nested filter object. Keys starting with "$" are
// operators, other keys are path segments. A scalar under a non-operator
// key is an equality filter:
//
//	{"slug": "a"}                          filters[slug][$eq]=a
//	{"name": {"$containsi": "loft"}}       filters[name][$containsi]=loft
//	{"categories": {"slug": {"$eq": "x"}}} filters[categories][slug][$eq]=x
func (q *Query) Filters(filters map[string]interface{}) *Query {
	q.walk(nil, filters)
	return q
}

func (q *Query) walk(path []string, value interface{}) {
	rv := indirect(reflect.ValueOf(value))
	if rv.IsValid() && rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		for _, k := range keys {
			next := append(append([]string(nil), path...), k.String())
			q.walk(next, rv.MapIndex(k).Interface())
		}
		return
	}
	if len(path) == 0 {
		return
	}
	// lists of filter objects, as under $or and $and
	if isList(rv) && hasMaps(rv) {
		for i := 0; i < rv.Len(); i++ {
			q.walk(append(append([]string(nil), path...), strconv.Itoa(i)), rv.Index(i).Interface())
		}
		return
	}
	last := path[len(path)-1]
	if strings.HasPrefix(last, "$") {
		q.Filter(Operator(last), value, path[:len(path)-1]...)
		return
	}
	q.Filter(OpEq, value, path...)
}

func hasMaps(list reflect.Value) bool {
	for i := 0; i < list.Len(); i++ {
		if e := indirect(list.Index(i)); e.IsValid() && e.Kind() == reflect.Map {
			return true
		}
	}
	return false
}

// Populate expands relations. With no fields every relation is expanded.
func (q *Query) Populate(fields ...string) *Query {
	q.params.Del("populate")
	if len(fields) == 0 || (len(fields) == 1 && fields[0] == "*") {
		q.params.Set("populate", "*")
		return q
	}
	for i, f := range fields {
		q.params.Set("populate["+strconv.Itoa(i)+"]", f)
	}
	return q
}

func (q *Query) Paginate(page, pageSize int) *Query {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}
	q.params.Set("pagination[page]", strconv.Itoa(page))
	q.params.Set("pagination[pageSize]", strconv.Itoa(pageSize))
	return q
}

// Sort adds sort fields such as "createdAt:desc".
func (q *Query) Sort(fields ...string) *Query {
	for i, f := range fields {
		q.params.Set("sort["+strconv.Itoa(i)+"]", f)
	}
	return q
}

// Values returns a copy of the underlying parameters.
func (q *Query) Values() url.Values {
	out := url.Values{}
	for k, v := range q.params {
		out[k] = append([]string(nil), v...)
	}
	return out
}

var bracketUnescaper = strings.NewReplacer("%5B", "[", "%5D", "]", "%24", "$")

// Encode renders the query with readable brackets and operators.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return bracketUnescaper.Replace(q.params.Encode())
}
