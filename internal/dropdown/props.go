package dropdown

// AdditionPosition places the synthesized addition option in the menu.
type AdditionPosition string

const (
	AdditionTop    AdditionPosition = "top"
	AdditionBottom AdditionPosition = "bottom"
)

const (
	defaultAdditionLabel    = "Add "
	defaultNoResultsMessage = "No results found."
	defaultMinCharacters    = 1
)

// SearchFunc is a caller supplied search predicate over the option list.
type SearchFunc func(options []Option, query string) []Option

// Props is the configuration read on every render cycle.
//
// Tri-state flags are pointers: nil selects the documented default.
type Props struct {
	Options []Option

	// Value and Values carry the caller-owned selection for single and
	// multiple mode respectively; DefaultValue and DefaultValues seed a
	// controller-owned selection.
	Value         Value
	Values        []Value
	DefaultValue  Value
	DefaultValues []Value

	Open               bool
	DefaultOpen        bool
	SearchQuery        string
	DefaultSearchQuery string

	Multiple bool
	// Search enables the default case-insensitive substring search.
	Search bool
	// SearchFunc replaces the default search and implies search mode.
	SearchFunc       SearchFunc
	MinCharacters    int
	AllowAdditions   bool
	AdditionPosition AdditionPosition
	AdditionLabel    string
	Deburr           bool

	WrapSelection      *bool // default true
	CloseOnBlur        *bool // default true
	CloseOnEscape      *bool // default true
	CloseOnChange      *bool // default: close for single select only
	SelectOnBlur       *bool // default true
	SelectOnNavigation *bool // default true
	OpenOnFocus        *bool // default true

	Disabled         bool
	LazyLoad         bool
	Clearable        bool
	Placeholder      string
	Text             string
	NoResultsMessage string

	// Presentation flags that only affect the class string.
	Selection bool
	Fluid     bool
	Compact   bool
	Inline    bool
	Scrolling bool
	Basic     bool
	Button    bool
	Error     bool
	Loading   bool
	// Pointing is true or a direction such as "top left".
	Pointing any
}

// Ownership records which stateful fields the caller owns. It is fixed when
// the controller is created.
type Ownership struct {
	Value       bool
	Open        bool
	SearchQuery bool
}

// Bool returns a pointer to v for the tri-state flags of Props.
func Bool(v bool) *bool {
	return &v
}

func flag(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// SearchEnabled reports whether the dropdown is in search mode.
func (p Props) SearchEnabled() bool {
	return p.Search || p.SearchFunc != nil
}

func (p Props) wrapSelection() bool      { return flag(p.WrapSelection, true) }
func (p Props) closeOnBlur() bool        { return flag(p.CloseOnBlur, true) }
func (p Props) closeOnEscape() bool      { return flag(p.CloseOnEscape, true) }
func (p Props) closeOnChange() bool      { return flag(p.CloseOnChange, !p.Multiple) }
func (p Props) selectOnBlur() bool       { return flag(p.SelectOnBlur, true) }
func (p Props) selectOnNavigation() bool { return flag(p.SelectOnNavigation, true) }
func (p Props) openOnFocus() bool        { return flag(p.OpenOnFocus, true) }

func (p Props) withDefaults() Props {
	if p.MinCharacters < 1 {
		p.MinCharacters = defaultMinCharacters
	}
	if p.AdditionPosition != AdditionBottom {
		p.AdditionPosition = AdditionTop
	}
	if p.AdditionLabel == "" {
		p.AdditionLabel = defaultAdditionLabel
	}
	if p.NoResultsMessage == "" {
		p.NoResultsMessage = defaultNoResultsMessage
	}
	return p
}
