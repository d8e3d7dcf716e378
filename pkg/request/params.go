package request

import (
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/relvacode/iso8601"
	"github.com/spf13/cast"
	"github.com/yosida95/uritemplate/v3"

	"github.com/apikit/go-apikit/pkg/serialization"
)

// QueryEncoder is implemented by options objects that contribute query
// parameters to a request. The implementation decides the emitted
// parameter name, which allows aliases differing from the field name.
type QueryEncoder interface {
	// QueryParams returns the query parameters as name/value pairs.
	QueryParams() map[string]any
}

// paramValue converts a path or query parameter value to its template
// representation. Slices become RFC 6570 list values and maps associative
// values, everything else is rendered as a string, see stringValue.
func paramValue(v any) (uritemplate.Value, error) {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice:
		rv := reflect.ValueOf(v)
		items := make([]string, rv.Len())
		for i := range rv.Len() {
			s, err := stringValue(rv.Index(i).Interface())
			if err != nil {
				return uritemplate.Value{}, err
			}
			items[i] = s
		}
		return uritemplate.List(items...), nil
	case reflect.Map:
		rv := reflect.ValueOf(v)
		names := make([]string, 0, rv.Len())
		values := make(map[string]reflect.Value, rv.Len())
		for _, key := range rv.MapKeys() {
			name, err := stringValue(key.Interface())
			if err != nil {
				return uritemplate.Value{}, err
			}
			names = append(names, name)
			values[name] = rv.MapIndex(key)
		}
		sort.Strings(names)
		kv := make([]string, 0, 2*len(names))
		for _, name := range names {
			s, err := stringValue(values[name].Interface())
			if err != nil {
				return uritemplate.Value{}, err
			}
			kv = append(kv, name, s)
		}
		return uritemplate.KV(kv...), nil
	default:
		s, err := stringValue(v)
		if err != nil {
			return uritemplate.Value{}, err
		}
		return uritemplate.String(s), nil
	}
}

// stringValue converts a scalar parameter value to its string
// representation. Date and time values are rendered in RFC 3339 form, so
// the template engine never sees a native timestamp format.
func stringValue(v any) (string, error) {
	switch t := v.(type) {
	case time.Time:
		return t.Format(time.RFC3339), nil
	case serialization.Time:
		return t.String(), nil
	case iso8601.Time:
		return t.Format(time.RFC3339), nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf(`cannot cast %T to string: %w`, v, err)
	}
	return s, nil
}

// isEmptyValue reports whether an options object value should be skipped.
// Only nil, empty strings and zero-length slices/maps are empty, a zero
// number or false is a legitimate value.
func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	case reflect.Ptr:
		return rv.IsNil()
	default:
		return false
	}
}
