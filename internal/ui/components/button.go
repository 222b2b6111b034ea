package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/suikit/pkg/classnames"
)

// Button represents a Semantic button.
type Button struct {
	BaseComponent
	label    string
	variant  string
	disabled bool
	active   bool
}

// NewButton creates a new button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := applyClasses(b.ComputeStyle(theme), b.ClassName(), theme)
	if b.active {
		style = style.Underline(true)
	}
	return style
}

// ClassName returns the Semantic class string of the button.
func (b *Button) ClassName() string {
	return classnames.Name(
		"ui",
		b.variant,
		classnames.Key("active", b.active),
		classnames.Key("disabled", b.disabled),
		"button",
	)
}

// WithVariant sets the colour or emphasis token, e.g. "primary" or "red".
func (b *Button) WithVariant(variant string) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithActive sets the active/focused state.
func (b *Button) WithActive(active bool) *Button {
	b.active = active
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// IsActive returns true if the button is active.
func (b *Button) IsActive() bool {
	return b.active
}

// PrimaryButton creates a primary button.
func PrimaryButton(label string) *Button {
	return NewButton(label).WithVariant("primary")
}
