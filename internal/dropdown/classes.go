package dropdown

import (
	"github.com/alexisbeaulieu97/suikit/pkg/classnames"
)

// ClassName is the class string of the dropdown root element.
func (c *Controller) ClassName() string {
	p := c.props
	return classnames.Name(
		"ui",
		classnames.Key("active visible", c.state.Open),
		classnames.Key("disabled", p.Disabled),
		classnames.Key("error", p.Error),
		classnames.Key("loading", p.Loading),
		classnames.Key("basic", p.Basic),
		classnames.Key("button", p.Button),
		classnames.Key("clearable", p.Clearable && c.HasValue()),
		classnames.Key("compact", p.Compact),
		classnames.Key("fluid", p.Fluid),
		classnames.Key("inline", p.Inline),
		classnames.Key("multiple", p.Multiple),
		classnames.Key("search", p.SearchEnabled()),
		classnames.Key("selection", p.Selection),
		classnames.Key("scrolling", p.Scrolling),
		classnames.Key("upward", c.state.Upward),
		classnames.KeyOrValueKey("pointing", p.Pointing),
		"dropdown",
	)
}

// MenuClassName is the class string of the menu element.
func (c *Controller) MenuClassName() string {
	return classnames.Name(
		classnames.Key("visible", c.state.Open),
		"menu transition",
	)
}

// ItemClassName is the class string of the derived option at index.
func (c *Controller) ItemClassName(index int, opt Option) string {
	active := false
	if c.props.Multiple {
		active = Contains(c.state.Values, opt.Value)
	} else {
		active = c.state.Value != nil && Equal(c.state.Value, opt.Value)
	}
	return classnames.Name(
		classnames.Key("active", active),
		classnames.Key("disabled", opt.Disabled),
		classnames.Key("selected", index == c.state.SelectedIndex),
		"item",
		classnames.Key("addition", opt.Additional),
	)
}

// LabelClassName is the class string of the label for a selected value.
func (c *Controller) LabelClassName(v Value) string {
	return classnames.Name(
		"ui",
		classnames.Key("active", c.state.ActiveLabel != nil && Equal(c.state.ActiveLabel, v)),
		"label",
	)
}

// TextClassName is the class string of the displayed text.
func (c *Controller) TextClassName() string {
	return classnames.Name(
		classnames.Key("default", c.props.Placeholder != "" && !c.HasValue()),
		"text",
		classnames.Key("filtered", c.props.SearchEnabled() && c.state.SearchQuery != ""),
	)
}

// MessageClassName is the class string of the no-results message.
func MessageClassName() string {
	return classnames.Name("message")
}
