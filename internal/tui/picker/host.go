package picker

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/alexisbeaulieu97/suikit/internal/dropdown"
	"github.com/alexisbeaulieu97/suikit/internal/logger"
	"github.com/alexisbeaulieu97/suikit/internal/ui/components"
)

// host is the terminal side of the dropdown ports. The Bubble Tea model
// copies itself on every update, so everything the controller holds on to
// lives here behind a pointer.
type host struct {
	log *logger.Logger

	nextID  int
	outside []*subscription[func()]
	keys    []*subscription[func(dropdown.Key)]
	jobs    []*subscription[func()]
	armed   bool

	focused bool
	search  bool
	input   textinput.Model

	height   int
	geometry geometry

	history []dropdown.Notification
}

type subscription[T any] struct {
	id     int
	fn     T
	active bool
}

// geometry is where the last frame put things, in screen cells.
type geometry struct {
	rendered      bool
	controlTop    int
	controlHeight int
	menuTop       int
	menuHeight    int
	menuInset     int
	menuStart     int
	items         int
	buttonTop     int
	buttonHeight  int
	hits          []components.Hit
}

func newHost(log *logger.Logger) *host {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 200
	return &host{log: log, input: input}
}

func (h *host) ports() dropdown.Ports {
	return dropdown.Ports{Events: h, Scheduler: h, Layout: h, Focus: h}
}

func (h *host) handlers() dropdown.Handlers {
	return dropdown.Handlers{
		OnChange:       h.record,
		OnOpen:         h.record,
		OnClose:        h.record,
		OnSearchChange: h.record,
		OnAddItem:      h.record,
		OnFocus:        h.record,
		OnBlur:         h.record,
		OnLabelClick:   h.record,
		OnLabelRemove:  h.record,
	}
}

func (h *host) record(n dropdown.Notification) {
	h.log.Debug("dropdown notification",
		"kind", n.Kind.String(),
		"value", dropdown.ValueString(n.Value),
		"values", len(n.Values),
		"query", n.Query,
	)
	h.history = append(h.history, n)
}

func add[T any](h *host, list *[]*subscription[T], fn T) func() {
	h.nextID++
	sub := &subscription[T]{id: h.nextID, fn: fn, active: true}
	*list = append(*list, sub)
	return func() {
		sub.active = false
		*list = prune(*list)
	}
}

func prune[T any](list []*subscription[T]) []*subscription[T] {
	kept := list[:0]
	for _, sub := range list {
		if sub.active {
			kept = append(kept, sub)
		}
	}
	return kept
}

// OnOutsideClick implements dropdown.EventSource.
func (h *host) OnOutsideClick(fn func()) func() {
	return add(h, &h.outside, fn)
}

// OnKeyDown implements dropdown.EventSource.
func (h *host) OnKeyDown(fn func(dropdown.Key)) func() {
	return add(h, &h.keys, fn)
}

// Schedule implements dropdown.Scheduler. Jobs run on the next frame tick.
func (h *host) Schedule(fn func()) func() {
	return add(h, &h.jobs, fn)
}

func (h *host) framePending() bool {
	return len(h.jobs) > 0
}

func (h *host) runFrame() {
	jobs := h.jobs
	h.jobs = nil
	for _, job := range jobs {
		if job.active {
			job.active = false
			job.fn()
		}
	}
}

// fireKey delivers a document key press to the listeners registered before
// the press. Listeners cancelled on the way are skipped.
func (h *host) fireKey(listeners []*subscription[func(dropdown.Key)], k dropdown.Key) {
	for _, sub := range listeners {
		if sub.active {
			sub.fn(k)
		}
	}
}

func (h *host) fireOutsideClick() {
	listeners := append([]*subscription[func()](nil), h.outside...)
	for _, sub := range listeners {
		if sub.active {
			sub.fn()
		}
	}
}

func (h *host) keyListeners() []*subscription[func(dropdown.Key)] {
	return append([]*subscription[func(dropdown.Key)](nil), h.keys...)
}

// Measure implements dropdown.Layout.
func (h *host) Measure() (dropdown.Metrics, bool) {
	g := h.geometry
	if !g.rendered || h.height <= 0 || g.menuHeight == 0 {
		return dropdown.Metrics{}, false
	}
	return dropdown.Metrics{
		ControlTop:     g.controlTop,
		ControlHeight:  g.controlHeight,
		MenuHeight:     g.menuHeight,
		ViewportHeight: h.height,
		MenuRows:       g.items,
	}, true
}

// HasFocus implements dropdown.Focuser.
func (h *host) HasFocus() bool {
	return h.focused
}

// FocusSearch implements dropdown.Focuser.
func (h *host) FocusSearch() {
	h.focused = true
	h.search = true
	h.input.Focus()
}

// FocusControl implements dropdown.Focuser.
func (h *host) FocusControl() {
	h.focused = true
	h.search = false
	h.input.Blur()
}

// BlurControl implements dropdown.Focuser. Focus moves on to the done button.
func (h *host) BlurControl() {
	h.focused = false
	h.search = false
	h.input.Blur()
}

func (g geometry) inControl(y int) bool {
	return g.rendered && y >= g.controlTop && y < g.controlTop+g.controlHeight
}

func (g geometry) inMenu(y int) bool {
	return g.rendered && g.menuHeight > 0 && y >= g.menuTop && y < g.menuTop+g.menuHeight
}

func (g geometry) inButton(y int) bool {
	return g.rendered && y >= g.buttonTop && y < g.buttonTop+g.buttonHeight
}

// itemAt maps a menu row to an index of the derived option list.
func (g geometry) itemAt(y int) (int, bool) {
	row := y - g.menuTop - g.menuInset
	if row < 0 || row >= g.items {
		return 0, false
	}
	return g.menuStart + row, true
}

func (g geometry) hitAt(x int) (components.Hit, bool) {
	for _, hit := range g.hits {
		if x >= hit.Start && x < hit.End {
			return hit, true
		}
	}
	return components.Hit{}, false
}
