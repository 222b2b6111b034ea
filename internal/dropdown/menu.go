package dropdown

// DeriveOptions computes the option list that is rendered and navigated:
// selected values are removed in multiple mode, the search query filters the
// rest, and an addition option is synthesized for unmatched free text.
// The catalogue in props is never modified.
func DeriveOptions(props Props, values []Value, query string) []Option {
	props = props.withDefaults()

	filtered := make([]Option, 0, len(props.Options)+1)
	for _, opt := range props.Options {
		if props.Multiple && Contains(values, opt.Value) {
			continue
		}
		filtered = append(filtered, opt)
	}

	searching := props.SearchEnabled() && query != ""
	if searching {
		if props.SearchFunc != nil {
			filtered = append([]Option(nil), props.SearchFunc(filtered, query)...)
		} else {
			filtered = DefaultSearch(filtered, query, props.Deburr)
		}
	}

	if props.AllowAdditions && searching && !hasText(filtered, query) {
		addition := Option{Key: AdditionKey, Value: query, Text: query, Additional: true}
		if props.AdditionPosition == AdditionBottom {
			filtered = append(filtered, addition)
		} else {
			filtered = append([]Option{addition}, filtered...)
		}
	}

	return filtered
}

func hasText(options []Option, text string) bool {
	for _, opt := range options {
		if opt.Text == text {
			return true
		}
	}
	return false
}
