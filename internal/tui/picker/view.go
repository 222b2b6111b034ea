package picker

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/suikit/internal/ui/components"
)

const defaultTitle = "Select an option"

// View renders the header, the dropdown, the done button and the key help.
// It also records where each region landed for mouse and layout queries.
func (m Model) View() string {
	if m.done {
		return ""
	}

	ctx := components.DefaultContext().WithTheme(m.theme)
	if m.width > 0 {
		ctx = ctx.WithWidth(m.width)
	}

	dv := components.NewDropdownView(m.ctrl).WithRows(m.rows)
	if m.ctrl.Props().SearchEnabled() {
		dv.WithSearchInput(m.host.input.View())
	}
	if m.host.focused {
		dv.WithAppliers(components.BorderColour(components.PalettePrimary))
	}

	header := m.renderHeader()
	control := dv.ControlView(ctx)
	menu := dv.MenuView(ctx)
	button := components.PrimaryButton("Done").WithActive(!m.host.focused).ViewWithContext(ctx)

	g := geometry{
		rendered:      true,
		controlHeight: lipgloss.Height(control),
		buttonHeight:  lipgloss.Height(button),
		hits:          dv.ControlHits(ctx),
	}
	top := lipgloss.Height(header) + 1

	sections := []string{header, ""}
	if menu != "" {
		g.menuHeight = lipgloss.Height(menu)
		g.menuInset = components.ClassStyle(m.ctrl.MenuClassName(), ctx.Theme).GetBorderTopSize()
		if len(m.ctrl.MenuOptions()) > 0 {
			start, end := dv.VisibleRange()
			g.menuStart = start
			g.items = end - start
		}
	}

	switch {
	case menu == "":
		g.controlTop = top
		sections = append(sections, control)
	case m.ctrl.State().Upward:
		g.menuTop = top
		g.controlTop = top + g.menuHeight
		sections = append(sections, menu, control)
	default:
		g.controlTop = top
		g.menuTop = top + g.controlHeight
		sections = append(sections, control, menu)
	}
	g.buttonTop = top + g.controlHeight + g.menuHeight + 1

	sections = append(sections, "", button, "", m.help.View(m.keys))
	m.host.geometry = g

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.title
	if title == "" {
		title = defaultTitle
	}
	header := titleStyle.Render(title)
	if m.description != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, descriptionStyle.Render(m.description))
	}
	return header
}
