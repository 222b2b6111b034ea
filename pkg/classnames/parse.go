package classnames

import (
	"fmt"
	"strconv"
	"strings"

	suierrors "github.com/alexisbeaulieu97/suikit/pkg/errors"
)

var usesByName = func() map[string]Use {
	m := make(map[string]Use, len(useNames))
	for use, name := range useNames {
		m[name] = use
	}
	return m
}()

// Parse reads the textual form of a directive, "<use>:<key>=<value>".
//
//	key:active                    -> Key("active", true)
//	value-key:attached=top        -> ValueKey("attached", "top")
//	value-key-or-key:padded=,true -> ValueKeyOrKey("padded", "", true)
//	multiple:only=mobile tablet   -> Multiple("only", "mobile tablet")
//	text-align:center             -> TextAlign("center")
//	width:4=wide column           -> Width(4, "wide column")
//
// Input without a "<use>:" prefix is a literal class.
func Parse(expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, suierrors.NewValidationError("", "directive is empty", nil)
	}

	name, body, found := strings.Cut(expr, ":")
	if !found {
		return expr, nil
	}
	use, ok := usesByName[name]
	if !ok {
		return nil, suierrors.NewValidationError(expr, fmt.Sprintf("unknown directive %q", name), nil)
	}

	left, right, hasValue := strings.Cut(body, "=")
	switch use {
	case UseTextAlign:
		return TextAlign(body), nil
	case UseVerticalAlign:
		return VerticalAlign(body), nil
	case UseWidth:
		return Width(parseScalar(left), right), nil
	}

	if left == "" {
		return nil, suierrors.NewValidationError(expr, "directive key is required", nil)
	}

	switch use {
	case UseKey:
		if !hasValue {
			return Key(left, true), nil
		}
		return Key(left, parseScalar(right)), nil
	case UseValueKey:
		return ValueKey(left, parseScalar(right)), nil
	case UseKeyOrValueKey:
		if !hasValue {
			return KeyOrValueKey(left, true), nil
		}
		return KeyOrValueKey(left, parseScalar(right)), nil
	case UseValueKeyOrKey:
		value, fallback, _ := strings.Cut(right, ",")
		return ValueKeyOrKey(left, parseScalar(value), parseScalar(fallback)), nil
	case UseMultiple:
		return Multiple(left, right), nil
	}

	return nil, suierrors.NewValidationError(expr, fmt.Sprintf("unsupported directive %q", name), nil)
}

// ParseAll parses every expression, stopping at the first failure.
func ParseAll(exprs []string) ([]any, error) {
	args := make([]any, 0, len(exprs))
	for _, expr := range exprs {
		arg, err := Parse(expr)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func parseScalar(raw string) any {
	raw = strings.TrimSpace(raw)
	switch raw {
	case "":
		return ""
	case "true":
		return true
	case "false":
		return false
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return n
	}
	return raw
}
