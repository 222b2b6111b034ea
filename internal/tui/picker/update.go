package picker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/suikit/internal/dropdown"
	"github.com/alexisbeaulieu97/suikit/internal/ui/components"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, nil
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.host.height = msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.host.armed = false
		m.host.runFrame()

	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)
	}

	if m.done {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.armFrame())
}

// handleKeyPress routes a key to the focused element.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.finish(true)
	case key.Matches(msg, m.keys.Submit):
		return m.finish(false)
	case key.Matches(msg, m.keys.Focus):
		if m.host.focused {
			m.blurDropdown()
		} else {
			m.focusDropdown()
		}
		return nil
	}

	if !m.host.focused {
		switch {
		case key.Matches(msg, m.keys.Select):
			return m.finish(false)
		case key.Matches(msg, m.keys.Close):
			return m.finish(true)
		}
		return nil
	}
	return m.handleDropdownKey(msg)
}

// handleDropdownKey delivers a key the way a browser would: keydown on the
// control, then the document listeners, then the search input.
func (m *Model) handleDropdownKey(msg tea.KeyMsg) tea.Cmd {
	wasOpen := m.ctrl.State().Open
	k, mapped := m.controlKey(msg)

	if mapped && k == dropdown.KeyEscape && !wasOpen {
		return m.finish(true)
	}

	if mapped {
		listeners := m.host.keyListeners()
		m.ctrl.Dispatch(dropdown.KeyDown{Key: k})
		m.host.fireKey(listeners, k)
	}

	var cmd tea.Cmd
	if m.host.search && (!mapped || k == dropdown.KeyBackspace || k == dropdown.KeySpace) {
		before := m.host.input.Value()
		m.host.input, cmd = m.host.input.Update(msg)
		if after := m.host.input.Value(); after != before {
			m.ctrl.Dispatch(dropdown.SearchChange{Query: after})
		}
	}
	m.syncInput()

	if mapped && k == dropdown.KeyEnter && wasOpen && m.committedSingle() {
		return m.finish(false)
	}
	return cmd
}

func (m *Model) controlKey(msg tea.KeyMsg) (dropdown.Key, bool) {
	switch {
	case key.Matches(msg, m.keys.Up):
		return dropdown.KeyArrowUp, true
	case key.Matches(msg, m.keys.Down):
		return dropdown.KeyArrowDown, true
	case key.Matches(msg, m.keys.Select):
		return dropdown.KeyEnter, true
	case key.Matches(msg, m.keys.Close):
		return dropdown.KeyEscape, true
	}
	switch msg.Type {
	case tea.KeySpace:
		return dropdown.KeySpace, true
	case tea.KeyBackspace:
		return dropdown.KeyBackspace, true
	}
	return "", false
}

// committedSingle reports a single select that closed on a value.
func (m *Model) committedSingle() bool {
	return !m.ctrl.Props().Multiple && !m.ctrl.State().Open && m.ctrl.HasValue()
}

// handleMouse maps a left press onto the regions of the last frame.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return nil
	}

	g := m.host.geometry
	switch {
	case g.inControl(msg.Y):
		m.pressControl(msg.X)
	case g.inMenu(msg.Y):
		if index, ok := g.itemAt(msg.Y); ok {
			m.pressItem(index)
			if m.committedSingle() {
				return m.finish(false)
			}
		}
	case g.inButton(msg.Y):
		m.pressOutside()
		return m.finish(false)
	default:
		m.pressOutside()
	}
	return nil
}

// pressControl replays mousedown, focus, mouseup and click on the control.
func (m *Model) pressControl(x int) {
	m.ctrl.Dispatch(dropdown.MouseDown{})
	if !m.host.focused {
		m.focusDropdown()
	}
	m.ctrl.Dispatch(dropdown.MouseUp{})

	hit, ok := m.host.geometry.hitAt(x)
	switch {
	case !ok:
		m.ctrl.Dispatch(dropdown.Click{})
	case hit.Kind == components.HitIcon:
		m.ctrl.Dispatch(dropdown.IconClick{})
	case hit.Kind == components.HitLabel && x >= hit.End-removeZone:
		m.ctrl.Dispatch(dropdown.LabelRemove{Value: hit.Value})
	default:
		m.ctrl.Dispatch(dropdown.LabelClick{Value: hit.Value})
	}
	m.syncInput()
}

// removeZone is how many trailing label cells act as the remove icon.
const removeZone = 3

func (m *Model) pressItem(index int) {
	m.ctrl.Dispatch(dropdown.MouseDown{})
	m.ctrl.Dispatch(dropdown.MouseUp{})
	m.ctrl.Dispatch(dropdown.ItemClick{Index: index})
	m.syncInput()
}

func (m *Model) pressOutside() {
	if m.host.focused {
		m.blurDropdown()
	}
	m.host.fireOutsideClick()
}
