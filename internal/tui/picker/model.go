// Package picker hosts a dropdown controller in a Bubble Tea program.
package picker

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/suikit/internal/dropdown"
	"github.com/alexisbeaulieu97/suikit/internal/logger"
	"github.com/alexisbeaulieu97/suikit/internal/ui/components"
)

const (
	defaultRows   = 8
	frameInterval = 16 * time.Millisecond
)

// frameMsg runs the deferred layout jobs of the controller.
type frameMsg struct{}

// Options configures a picker.
type Options struct {
	Title       string
	Description string
	// Rows limits how many menu entries are visible at once.
	Rows   int
	Theme  *components.Theme
	Logger *logger.Logger
}

// Result is what the user picked.
type Result struct {
	Multiple  bool
	Value     dropdown.Value
	Values    []dropdown.Value
	Additions []dropdown.Value
	Cancelled bool
}

// Model is the Bubble Tea model of the picker.
type Model struct {
	ctrl *dropdown.Controller
	host *host
	keys keyMap
	help help.Model

	title       string
	description string
	rows        int
	theme       components.Theme

	width  int
	height int

	done      bool
	cancelled bool
}

// New creates a picker over a dropdown configured by props. The dropdown
// starts focused and owns all of its state.
func New(props dropdown.Props, opts Options) Model {
	h := newHost(opts.Logger)

	m := Model{
		host:        h,
		keys:        defaultKeyMap(),
		help:        help.New(),
		title:       opts.Title,
		description: opts.Description,
		rows:        opts.Rows,
		theme:       components.DefaultTheme(),
	}
	if m.rows <= 0 {
		m.rows = defaultRows
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	}

	m.ctrl = dropdown.New(props, dropdown.Ownership{}, h.ports(), h.handlers(), opts.Logger)
	m.focusDropdown()
	return m
}

// Init starts the cursor blink and the first frame.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.armFrame())
}

// Controller exposes the hosted controller.
func (m Model) Controller() *dropdown.Controller {
	return m.ctrl
}

// Done reports whether the picker has finished.
func (m Model) Done() bool {
	return m.done
}

// Notifications returns every notification emitted so far, in order.
func (m Model) Notifications() []dropdown.Notification {
	return append([]dropdown.Notification(nil), m.host.history...)
}

// Result returns the current selection. It is final once Done reports true.
func (m Model) Result() Result {
	state := m.ctrl.State()
	res := Result{
		Multiple:  m.ctrl.Props().Multiple,
		Cancelled: m.cancelled,
	}
	if res.Multiple {
		res.Values = state.Values
		if res.Values == nil {
			res.Values = []dropdown.Value{}
		}
	} else {
		res.Value = state.Value
	}
	for _, n := range m.host.history {
		if n.Kind == dropdown.NotifyAddItem {
			res.Additions = append(res.Additions, n.Value)
		}
	}
	return res
}

func (m *Model) focusDropdown() {
	if m.ctrl.Props().SearchEnabled() {
		m.host.FocusSearch()
	} else {
		m.host.FocusControl()
	}
	m.ctrl.Dispatch(dropdown.Focus{})
	m.syncInput()
}

func (m *Model) blurDropdown() {
	m.host.BlurControl()
	m.ctrl.Dispatch(dropdown.Blur{})
	m.syncInput()
}

// syncInput mirrors the controller's query into the text input, since the
// controller clears it after a selection.
func (m *Model) syncInput() {
	if q := m.ctrl.State().SearchQuery; m.host.input.Value() != q {
		m.host.input.SetValue(q)
	}
}

func (m *Model) finish(cancelled bool) tea.Cmd {
	m.done = true
	m.cancelled = cancelled
	m.ctrl.Dispatch(dropdown.Unmount{})
	m.host.log.Debug("picker finished", "cancelled", cancelled)
	return tea.Quit
}

// armFrame schedules one frame tick while layout jobs are waiting.
func (m Model) armFrame() tea.Cmd {
	if !m.host.framePending() || m.host.armed {
		return nil
	}
	m.host.armed = true
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}
