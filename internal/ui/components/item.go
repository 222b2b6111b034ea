package components

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	itemMarker      = "›"
	itemBlankMarker = " "
)

// Item is one menu row. The "selected" class token marks the highlighted row.
type Item struct {
	BaseComponent
	text        string
	description string
	className   string
}

// NewItem creates a menu row.
func NewItem(text, className string) *Item {
	return &Item{
		BaseComponent: NewBaseComponent(),
		text:          text,
		className:     className,
	}
}

// View renders the item.
func (i *Item) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the item with the given theme context.
func (i *Item) ViewWithContext(ctx RenderContext) string {
	marker := itemBlankMarker
	if HasClass(i.className, "selected") {
		marker = itemMarker
	}

	text := marker + " " + i.text
	if i.description != "" {
		text += "  " + lipgloss.NewStyle().Faint(true).Render(i.description)
	}

	style := applyClasses(i.ComputeStyle(ctx.Theme), i.className, ctx.Theme)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style.Render(text)
}

// WithDescription adds secondary text after the item text.
func (i *Item) WithDescription(description string) *Item {
	i.description = description
	return i
}

// Text returns the item text.
func (i *Item) Text() string {
	return i.text
}
