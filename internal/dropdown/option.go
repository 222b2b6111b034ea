package dropdown

// AdditionKey is the key carried by the synthesized addition option.
const AdditionKey = "addition"

// Option is one selectable entry of the catalogue.
type Option struct {
	// Key overrides the option identity; it defaults to the value.
	Key         string
	Value       Value
	Text        string
	Description string
	Disabled    bool
	// Additional marks the option synthesized from free-text search input.
	Additional bool
}

// Identity returns Key when set, otherwise the string form of Value.
func (o Option) Identity() string {
	if o.Key != "" {
		return o.Key
	}
	return ValueString(o.Value)
}

// EnabledIndices returns the indices of options that are not disabled.
func EnabledIndices(options []Option) []int {
	indices := make([]int, 0, len(options))
	for i, opt := range options {
		if !opt.Disabled {
			indices = append(indices, i)
		}
	}
	return indices
}

// IndexOfValue returns the index of the first option carrying value, or -1.
func IndexOfValue(options []Option, value Value) int {
	if value == nil {
		return -1
	}
	for i, opt := range options {
		if Equal(opt.Value, value) {
			return i
		}
	}
	return -1
}

// OptionByValue looks up the option carrying value.
func OptionByValue(options []Option, value Value) (Option, bool) {
	if i := IndexOfValue(options, value); i >= 0 {
		return options[i], true
	}
	return Option{}, false
}

func sameOptions(a, b []Option) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Key != b[i].Key || a[i].Text != b[i].Text || a[i].Description != b[i].Description ||
			a[i].Disabled != b[i].Disabled || a[i].Additional != b[i].Additional || !Equal(a[i].Value, b[i].Value) {
			return false
		}
	}
	return true
}
