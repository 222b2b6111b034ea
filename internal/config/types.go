package config

import (
	"github.com/alexisbeaulieu97/suikit/internal/dropdown"
)

// Config represents one dropdown definition document.
type Config struct {
	Name        string `yaml:"name" validate:"required,identifier"`
	Description string `yaml:"description,omitempty"`
	Placeholder string `yaml:"placeholder,omitempty" validate:"max=200"`
	// NoResultsMessage replaces the default empty-search message.
	NoResultsMessage string `yaml:"no_results_message,omitempty" validate:"max=200"`

	Multiple         bool   `yaml:"multiple,omitempty"`
	Search           bool   `yaml:"search,omitempty"`
	MinCharacters    int    `yaml:"min_characters,omitempty" validate:"omitempty,min=1,max=64"`
	AllowAdditions   bool   `yaml:"allow_additions,omitempty"`
	AdditionPosition string `yaml:"addition_position,omitempty" validate:"omitempty,oneof=top bottom"`
	AdditionLabel    string `yaml:"addition_label,omitempty" validate:"max=40"`
	Deburr           bool   `yaml:"deburr,omitempty"`
	Clearable        bool   `yaml:"clearable,omitempty"`
	LazyLoad         bool   `yaml:"lazy_load,omitempty"`

	Behavior Behavior `yaml:",inline"`
	Style    Style    `yaml:"style,omitempty"`

	Value   any      `yaml:"value,omitempty" validate:"omitempty,scalar"`
	Values  []any    `yaml:"values,omitempty" validate:"omitempty,dive,scalar"`
	Options []Option `yaml:"options" validate:"required,min=1,dive"`
}

// Behavior holds the tri-state interaction flags. Unset flags keep the
// controller defaults.
type Behavior struct {
	WrapSelection      *bool `yaml:"wrap_selection,omitempty"`
	CloseOnBlur        *bool `yaml:"close_on_blur,omitempty"`
	CloseOnEscape      *bool `yaml:"close_on_escape,omitempty"`
	CloseOnChange      *bool `yaml:"close_on_change,omitempty"`
	SelectOnBlur       *bool `yaml:"select_on_blur,omitempty"`
	SelectOnNavigation *bool `yaml:"select_on_navigation,omitempty"`
	OpenOnFocus        *bool `yaml:"open_on_focus,omitempty"`
}

// Style holds presentation flags that only change the class string.
type Style struct {
	Selection bool   `yaml:"selection,omitempty"`
	Fluid     bool   `yaml:"fluid,omitempty"`
	Compact   bool   `yaml:"compact,omitempty"`
	Inline    bool   `yaml:"inline,omitempty"`
	Scrolling bool   `yaml:"scrolling,omitempty"`
	Basic     bool   `yaml:"basic,omitempty"`
	Pointing  string `yaml:"pointing,omitempty" validate:"omitempty,oneof=top left right bottom 'top left' 'top right' 'bottom left' 'bottom right'"`
}

// Option is one catalogue entry.
type Option struct {
	Key         string `yaml:"key,omitempty" validate:"max=64"`
	Value       any    `yaml:"value" validate:"scalar"`
	Text        string `yaml:"text" validate:"required,max=200"`
	Description string `yaml:"description,omitempty"`
	Disabled    bool   `yaml:"disabled,omitempty"`
}

func (o Option) toDropdown() dropdown.Option {
	return dropdown.Option{
		Key:         o.Key,
		Value:       o.Value,
		Text:        o.Text,
		Description: o.Description,
		Disabled:    o.Disabled,
	}
}

// DropdownOptions converts the catalogue.
func (c *Config) DropdownOptions() []dropdown.Option {
	out := make([]dropdown.Option, 0, len(c.Options))
	for _, opt := range c.Options {
		out = append(out, opt.toDropdown())
	}
	return out
}

// Props converts the definition into controller configuration. The
// configured selection seeds a controller-owned value.
func (c *Config) Props() dropdown.Props {
	props := dropdown.Props{
		Options:          c.DropdownOptions(),
		Multiple:         c.Multiple,
		Search:           c.Search,
		MinCharacters:    c.MinCharacters,
		AllowAdditions:   c.AllowAdditions,
		AdditionPosition: dropdown.AdditionPosition(c.AdditionPosition),
		AdditionLabel:    c.AdditionLabel,
		Deburr:           c.Deburr,
		Clearable:        c.Clearable,
		LazyLoad:         c.LazyLoad,
		Placeholder:      c.Placeholder,
		NoResultsMessage: c.NoResultsMessage,

		WrapSelection:      c.Behavior.WrapSelection,
		CloseOnBlur:        c.Behavior.CloseOnBlur,
		CloseOnEscape:      c.Behavior.CloseOnEscape,
		CloseOnChange:      c.Behavior.CloseOnChange,
		SelectOnBlur:       c.Behavior.SelectOnBlur,
		SelectOnNavigation: c.Behavior.SelectOnNavigation,
		OpenOnFocus:        c.Behavior.OpenOnFocus,

		Selection: c.Style.Selection,
		Fluid:     c.Style.Fluid,
		Compact:   c.Style.Compact,
		Inline:    c.Style.Inline,
		Scrolling: c.Style.Scrolling,
		Basic:     c.Style.Basic,
	}
	if c.Style.Pointing != "" {
		props.Pointing = c.Style.Pointing
	}

	if c.Multiple {
		props.DefaultValues = append([]dropdown.Value{}, c.Values...)
	} else {
		props.DefaultValue = c.Value
	}
	return props
}
