// Package classnames composes Semantic-UI class strings from style directives.
//
// Every argument is evaluated in order and its fragments are appended to the
// result, so the position of a directive in the argument list decides where
// its classes land in the output:
//
//	classnames.Name(
//		"ui",
//		classnames.Key("active", open),
//		classnames.ValueKey("attached", "top"),
//		classnames.Width(4, "wide"),
//		"segment",
//	)
//	// "ui active top attached four wide segment"
package classnames

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// Use selects the emission rule applied by a Directive.
type Use int

const (
	// UseKey emits the key when the value is truthy.
	UseKey Use = iota
	// UseValueKey emits "<value> <key>" when the value is truthy and not true.
	UseValueKey
	// UseKeyOrValueKey emits the key for true and "<value> <key>" otherwise.
	UseKeyOrValueKey
	// UseValueKeyOrKey emits "<value> <key>", or the key when the fallback is truthy.
	UseValueKeyOrKey
	// UseMultiple emits "<token> <key>" for each space separated token.
	UseMultiple
	// UseTextAlign emits "justified" or "<value> aligned".
	UseTextAlign
	// UseVerticalAlign emits "<value> aligned".
	UseVerticalAlign
	// UseWidth emits the number word of each width with an optional suffix.
	UseWidth
)

var useNames = map[Use]string{
	UseKey:           "key",
	UseValueKey:      "value-key",
	UseKeyOrValueKey: "key-or-value-key",
	UseValueKeyOrKey: "value-key-or-key",
	UseMultiple:      "multiple",
	UseTextAlign:     "text-align",
	UseVerticalAlign: "vertical-align",
	UseWidth:         "width",
}

func (u Use) String() string {
	if name, ok := useNames[u]; ok {
		return name
	}
	return fmt.Sprintf("use(%d)", int(u))
}

// Directive is one tagged style rule.
type Directive struct {
	Use      Use
	Key      string
	Value    any
	Fallback any
	// Suffix is the width class appended by UseWidth, e.g. "wide column".
	Suffix string
	// Values holds the ordered width specs of a UseWidth directive.
	Values []any
}

// Flag is one entry of an ordered flag mapping.
type Flag struct {
	Key string
	On  bool
}

// Flags is an ordered flag-name to boolean mapping.
type Flags []Flag

// Key emits key when value is truthy.
func Key(key string, value any) Directive {
	return Directive{Use: UseKey, Key: key, Value: value}
}

// ValueKey emits "<value> <key>" when value is truthy and not the boolean true.
func ValueKey(key string, value any) Directive {
	return Directive{Use: UseValueKey, Key: key, Value: value}
}

// KeyOrValueKey emits key for true and "<value> <key>" for any other truthy value.
func KeyOrValueKey(key string, value any) Directive {
	return Directive{Use: UseKeyOrValueKey, Key: key, Value: value}
}

// ValueKeyOrKey emits "<value> <key>" for a truthy non-true value, otherwise
// key when fallback is truthy.
func ValueKeyOrKey(key string, value, fallback any) Directive {
	return Directive{Use: UseValueKeyOrKey, Key: key, Value: value, Fallback: fallback}
}

// Multiple emits "<token> <key>" for every token of a space separated value.
func Multiple(key string, value any) Directive {
	return Directive{Use: UseMultiple, Key: key, Value: value}
}

// TextAlign emits the text alignment class.
func TextAlign(value any) Directive {
	return Directive{Use: UseTextAlign, Value: value}
}

// VerticalAlign emits the vertical alignment class.
func VerticalAlign(value any) Directive {
	return Directive{Use: UseVerticalAlign, Value: value}
}

// Width emits the number word for a single width spec followed by suffix.
func Width(value any, suffix string) Directive {
	return Directive{Use: UseWidth, Values: []any{value}, Suffix: suffix}
}

// Widths emits every width spec in order, each followed by suffix.
func Widths(suffix string, values ...any) Directive {
	return Directive{Use: UseWidth, Values: values, Suffix: suffix}
}

// Name composes the arguments into one space separated class string.
func Name(args ...any) string {
	return strings.Join(Names(args...), " ")
}

// Names composes the arguments into their ordered, non-empty fragments.
func Names(args ...any) []string {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		out = appendArg(out, arg)
	}
	return out
}

func appendArg(out []string, arg any) []string {
	switch v := arg.(type) {
	case nil:
		return out
	case string:
		return appendFragment(out, v)
	case Directive:
		return appendFragment(out, v.emit())
	case *Directive:
		if v == nil {
			return out
		}
		return appendFragment(out, v.emit())
	case Flags:
		for _, flag := range v {
			if flag.On {
				out = appendFragment(out, flag.Key)
			}
		}
		return out
	case map[string]bool:
		keys := make([]string, 0, len(v))
		for key, on := range v {
			if on {
				keys = append(keys, key)
			}
		}
		sort.Strings(keys)
		for _, key := range keys {
			out = appendFragment(out, key)
		}
		return out
	case []string:
		for _, s := range v {
			out = appendFragment(out, s)
		}
		return out
	case []any:
		for _, nested := range v {
			out = appendArg(out, nested)
		}
		return out
	case []Directive:
		for _, d := range v {
			out = appendFragment(out, d.emit())
		}
		return out
	case fmt.Stringer:
		if !Truthy(arg) {
			return out
		}
		return appendFragment(out, v.String())
	default:
		if !Truthy(arg) {
			return out
		}
		return appendFragment(out, fmt.Sprint(arg))
	}
}

func appendFragment(out []string, fragment string) []string {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return out
	}
	return append(out, fragment)
}

func (d Directive) emit() string {
	switch d.Use {
	case UseKey:
		if Truthy(d.Value) {
			return d.Key
		}
	case UseValueKey:
		if Truthy(d.Value) && !isTrue(d.Value) {
			return join(text(d.Value), d.Key)
		}
	case UseKeyOrValueKey:
		if isTrue(d.Value) {
			return d.Key
		}
		if Truthy(d.Value) {
			return join(text(d.Value), d.Key)
		}
	case UseValueKeyOrKey:
		if Truthy(d.Value) && !isTrue(d.Value) {
			return join(text(d.Value), d.Key)
		}
		if Truthy(d.Fallback) {
			return d.Key
		}
	case UseMultiple:
		if Truthy(d.Value) && !isTrue(d.Value) {
			return multiple(text(d.Value), d.Key)
		}
	case UseTextAlign:
		if !Truthy(d.Value) {
			return ""
		}
		value := text(d.Value)
		if value == "justified" {
			return value
		}
		return join(value, "aligned")
	case UseVerticalAlign:
		if Truthy(d.Value) {
			return join(text(d.Value), "aligned")
		}
	case UseWidth:
		values := d.Values
		if len(values) == 0 && d.Value != nil {
			values = []any{d.Value}
		}
		parts := make([]string, 0, len(values))
		for _, value := range values {
			if fragment := width(value, d.Suffix); fragment != "" {
				parts = append(parts, fragment)
			}
		}
		return strings.Join(parts, " ")
	}
	return ""
}

var compoundTokens = strings.NewReplacer("large screen", "large-screen", " vertically", "-vertically")

// multiple joins compound breakpoint tokens before splitting so that
// "large screen" and "mobile vertically" survive as single tokens.
func multiple(value, key string) string {
	joined := compoundTokens.Replace(value)
	tokens := strings.Fields(joined)
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		parts = append(parts, join(strings.Replace(token, "-", " ", 1), key))
	}
	return strings.Join(parts, " ")
}

var numberWords = [...]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
}

// NumberToWord returns the English word for widths 1..16, or "" otherwise.
func NumberToWord(value any) string {
	n, ok := toInt(value)
	if !ok || n < 1 || n >= len(numberWords) {
		return ""
	}
	return numberWords[n]
}

func width(value any, suffix string) string {
	if !Truthy(value) {
		return ""
	}
	if text(value) == "equal" {
		return "equal width"
	}
	word := NumberToWord(value)
	if word == "" {
		return ""
	}
	return join(word, suffix)
}

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	case fmt.Stringer:
		n, err := strconv.Atoi(v.String())
		return n, err == nil
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != float64(int(f)) {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// Truthy reports whether value counts as set: nil, false, "" and numeric
// zero are falsy, everything else is truthy.
func Truthy(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String() != ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return !rv.IsNil()
	}
	return true
}

func isTrue(value any) bool {
	b, ok := value.(bool)
	return ok && b
}

func text(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(value)
}

func join(value, key string) string {
	value = strings.TrimSpace(value)
	if key == "" {
		return value
	}
	if value == "" {
		return key
	}
	return value + " " + key
}
