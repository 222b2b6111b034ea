package dropdown

import (
	"fmt"
	"reflect"
)

// Value is the identity of an option: a string, integer, float or bool.
// A nil Value means "nothing selected".
type Value = any

// Equal reports whether two option values identify the same option.
// Integers and floats compare numerically so that values decoded from
// different sources (YAML ints, JSON floats) still match.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta.Comparable() && tb.Comparable() && a == b {
		return true
	}
	if fa, ok := asFloat(a); ok {
		if fb, ok := asFloat(b); ok {
			return fa == fb
		}
		return false
	}
	if ta == tb && !ta.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return false
}

// Contains reports whether values holds v.
func Contains(values []Value, v Value) bool {
	return indexOf(values, v) >= 0
}

func indexOf(values []Value, v Value) int {
	for i, candidate := range values {
		if Equal(candidate, v) {
			return i
		}
	}
	return -1
}

// Union appends v to values unless it is already present. The input slice is
// never modified.
func Union(values []Value, v Value) []Value {
	out := make([]Value, 0, len(values)+1)
	out = append(out, values...)
	if Contains(values, v) {
		return out
	}
	return append(out, v)
}

// Without returns values minus every occurrence of v.
func Without(values []Value, v Value) []Value {
	out := make([]Value, 0, len(values))
	for _, candidate := range values {
		if !Equal(candidate, v) {
			out = append(out, candidate)
		}
	}
	return out
}

// SameValues reports whether both sets hold the same values in the same order.
func SameValues(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ValueString renders a value for display and identity purposes.
func ValueString(v Value) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func cloneValues(values []Value) []Value {
	if values == nil {
		return nil
	}
	out := make([]Value, len(values))
	copy(out, values)
	return out
}

func asFloat(v Value) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
