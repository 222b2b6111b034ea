package components

import (
	"github.com/charmbracelet/lipgloss"
)

// RemoveGlyph is appended to removable labels.
const RemoveGlyph = "×"

// Label is a multiple-select chip.
type Label struct {
	BaseComponent
	text      string
	className string
	removable bool
}

// NewLabel creates a label with the plain "ui label" classes.
func NewLabel(text string) *Label {
	return &Label{
		BaseComponent: NewBaseComponent(),
		text:          text,
		className:     "ui label",
	}
}

// View renders the label.
func (l *Label) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the label with the given theme context.
func (l *Label) ViewWithContext(ctx RenderContext) string {
	text := l.text
	if l.removable {
		text += " " + RemoveGlyph
	}
	return l.computeStyle(ctx.Theme).Render(text)
}

func (l *Label) computeStyle(theme Theme) lipgloss.Style {
	return applyClasses(l.ComputeStyle(theme), l.className, theme)
}

// WithClassName replaces the class string, e.g. "ui active label".
func (l *Label) WithClassName(className string) *Label {
	l.className = className
	return l
}

// WithRemovable adds the remove glyph.
func (l *Label) WithRemovable(removable bool) *Label {
	l.removable = removable
	return l
}

// WithAppliers applies theme-based style modifiers.
func (l *Label) WithAppliers(appliers ...StyleFunc) *Label {
	l.AddAppliers(appliers...)
	return l
}

// Text returns the label text.
func (l *Label) Text() string {
	return l.text
}

// ClassName returns the label classes.
func (l *Label) ClassName() string {
	return l.className
}
