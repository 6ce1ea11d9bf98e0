package api

import (
	"fmt"
	"math"
	"net/url"
	"reflect"
	"strconv"
)

// Params are query parameters. Values are scalars; nil values are not sent.
type Params map[string]interface{}

// Options carries the optional parts of an endpoint call.
type Options struct {
	Params Params
	Body   interface{}
}

// Clone returns a shallow copy of p, never nil.
func (p Params) Clone() Params {
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// MergeTruthy copies into p only the entries of src whose value is truthy.
// Empty strings, zero numbers, false and nil are dropped, so a legitimate
// 0 or false filter is never sent.
func (p Params) MergeTruthy(src map[string]interface{}) Params {
	for k, v := range src {
		if Truthy(v) {
			p[k] = v
		}
	}
	return p
}

// Values encodes p as url.Values.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p))
	for k, v := range p {
		if isNil(v) {
			continue
		}
		values.Set(k, formatScalar(v))
	}
	return values
}

// Truthy reports whether v would pass a JavaScript-style truthiness check.
func Truthy(v interface{}) bool {
	if isNil(v) {
		return false
	}
	switch x := v.(type) {
	case string:
		return x != ""
	case bool:
		return x
	case float32:
		return x != 0 && !math.IsNaN(float64(x))
	case float64:
		return x != 0 && !math.IsNaN(x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.String:
		return rv.String() != ""
	case reflect.Bool:
		return rv.Bool()
	}
	return true
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func formatScalar(v interface{}) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		return formatScalar(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}
