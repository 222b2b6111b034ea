package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/suikit/internal/dropdown"
)

const (
	iconClosed = "▾"
	iconOpen   = "▴"
	iconClear  = RemoveGlyph
)

// DropdownView renders a dropdown controller: the control line holding the
// labels, text and search input, and the menu below it or, when the
// controller reports an upward layout, above it.
type DropdownView struct {
	BaseComponent
	ctrl  *dropdown.Controller
	input string
	rows  int
}

// NewDropdownView creates a view over ctrl.
func NewDropdownView(ctrl *dropdown.Controller) *DropdownView {
	return &DropdownView{
		BaseComponent: NewBaseComponent(),
		ctrl:          ctrl,
	}
}

// WithSearchInput sets the rendered search input shown in search mode.
func (d *DropdownView) WithSearchInput(view string) *DropdownView {
	d.input = view
	return d
}

// WithRows limits the menu to rows entries; zero shows every entry.
func (d *DropdownView) WithRows(rows int) *DropdownView {
	d.rows = rows
	return d
}

// WithAppliers applies theme-based style modifiers to the control.
func (d *DropdownView) WithAppliers(appliers ...StyleFunc) *DropdownView {
	d.AddAppliers(appliers...)
	return d
}

// View renders the dropdown.
func (d *DropdownView) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the dropdown with the given theme context.
func (d *DropdownView) ViewWithContext(ctx RenderContext) string {
	control := d.ControlView(ctx)
	menu := d.MenuView(ctx)
	if menu == "" {
		return control
	}
	if d.ctrl.State().Upward {
		return lipgloss.JoinVertical(lipgloss.Left, menu, control)
	}
	return lipgloss.JoinVertical(lipgloss.Left, control, menu)
}

// HitKind identifies a clickable region of the control.
type HitKind int

const (
	HitLabel HitKind = iota + 1
	HitIcon
)

// Hit is a clickable region of the control line, in columns from the left
// edge of the rendered control. End is exclusive.
type Hit struct {
	Kind  HitKind
	Value dropdown.Value
	Start int
	End   int
}

type controlPart struct {
	text  string
	kind  HitKind
	value dropdown.Value
}

func (d *DropdownView) controlParts(ctx RenderContext) []controlPart {
	props := d.ctrl.Props()
	state := d.ctrl.State()

	parts := make([]controlPart, 0, 4)
	for _, opt := range d.ctrl.Labels() {
		label := NewLabel(opt.Text).
			WithClassName(d.ctrl.LabelClassName(opt.Value)).
			WithRemovable(true)
		parts = append(parts, controlPart{text: label.ViewWithContext(ctx), kind: HitLabel, value: opt.Value})
	}

	text, _ := d.ctrl.DisplayText()
	if text != "" && (!props.SearchEnabled() || state.SearchQuery == "") {
		textStyle := ClassStyle(d.ctrl.TextClassName(), ctx.Theme)
		parts = append(parts, controlPart{text: textStyle.Render(text)})
	}
	if props.SearchEnabled() && d.input != "" {
		parts = append(parts, controlPart{text: d.input})
	}
	return append(parts, controlPart{text: d.icon(), kind: HitIcon})
}

func (d *DropdownView) controlStyle(ctx RenderContext) lipgloss.Style {
	style := applyClasses(d.ComputeStyle(ctx.Theme), d.ctrl.ClassName(), ctx.Theme)
	if ctx.Width > 0 && d.ctrl.Props().Fluid {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
	}
	return style
}

// ControlView renders the control alone.
func (d *DropdownView) ControlView(ctx RenderContext) string {
	parts := d.controlParts(ctx)
	texts := make([]string, len(parts))
	for i, part := range parts {
		texts[i] = part.text
	}
	return d.controlStyle(ctx).Render(strings.Join(texts, " "))
}

// ControlHits lists the labels and the icon of the control line.
func (d *DropdownView) ControlHits(ctx RenderContext) []Hit {
	style := d.controlStyle(ctx)
	x := style.GetBorderLeftSize() + style.GetPaddingLeft()

	var hits []Hit
	for _, part := range d.controlParts(ctx) {
		width := lipgloss.Width(part.text)
		if part.kind != 0 {
			hits = append(hits, Hit{Kind: part.kind, Value: part.value, Start: x, End: x + width})
		}
		x += width + 1
	}
	return hits
}

func (d *DropdownView) icon() string {
	switch {
	case d.ctrl.Props().Clearable && d.ctrl.HasValue():
		return iconClear
	case d.ctrl.State().Open:
		return iconOpen
	default:
		return iconClosed
	}
}

// MenuView renders the menu, or "" while it is closed.
func (d *DropdownView) MenuView(ctx RenderContext) string {
	props := d.ctrl.Props()
	state := d.ctrl.State()
	if !state.Open {
		return ""
	}

	options := d.ctrl.MenuOptions()
	var lines []string
	if len(options) == 0 {
		if !props.SearchEnabled() {
			return ""
		}
		message := ClassStyle(dropdown.MessageClassName(), ctx.Theme).PaddingLeft(1).PaddingRight(1)
		lines = append(lines, message.Render(props.NoResultsMessage))
	} else {
		start, end := d.window(len(options), state.ScrollTop)
		for i := start; i < end; i++ {
			opt := options[i]
			text := opt.Text
			if opt.Additional {
				text = props.AdditionLabel + text
			}
			item := NewItem(text, d.ctrl.ItemClassName(i, opt)).WithDescription(opt.Description)
			lines = append(lines, item.ViewWithContext(ctx.WithWidth(0)))
		}
	}

	style := ClassStyle(d.ctrl.MenuClassName(), ctx.Theme)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// VisibleRange is the window of menu entries rendered, as indexes into the
// derived option list. End is exclusive.
func (d *DropdownView) VisibleRange() (int, int) {
	return d.window(len(d.ctrl.MenuOptions()), d.ctrl.State().ScrollTop)
}

func (d *DropdownView) window(n, top int) (int, int) {
	rows := d.rows
	if rows <= 0 || rows >= n {
		return 0, n
	}
	if top > n-rows {
		top = n - rows
	}
	if top < 0 {
		top = 0
	}
	return top, top + rows
}
