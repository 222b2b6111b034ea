package dropdown

// EventSource delivers document-level events. Subscriptions are held only
// while the menu is open; the returned func cancels the subscription.
type EventSource interface {
	OnOutsideClick(fn func()) (cancel func())
	OnKeyDown(fn func(Key)) (cancel func())
}

// Scheduler runs fn on the next paint frame. The returned func cancels it.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

// Metrics is the measured geometry of the control and its menu, in rows.
type Metrics struct {
	ControlTop     int
	ControlHeight  int
	MenuHeight     int
	ViewportHeight int
	// MenuRows is how many items the menu shows at once.
	MenuRows int
}

// Upward reports whether the menu should open above the control: it does
// not fit below and there is more room above.
func Upward(m Metrics) bool {
	below := m.ViewportHeight - m.ControlTop - m.ControlHeight - m.MenuHeight
	above := m.ControlTop - m.MenuHeight
	return below < 0 && above > below
}

// Layout measures the rendered dropdown. ok is false when nothing is rendered.
type Layout interface {
	Measure() (m Metrics, ok bool)
}

// Focuser exposes the focus state of the host view.
type Focuser interface {
	HasFocus() bool
	FocusSearch()
	FocusControl()
	BlurControl()
}

// Ports bundles the capabilities the controller needs from its host. Every
// port is optional.
type Ports struct {
	Events    EventSource
	Scheduler Scheduler
	Layout    Layout
	Focus     Focuser
}

// frame is a single-slot next-frame job. Requests made while a job is
// pending are dropped.
type frame struct {
	scheduler Scheduler
	cancel    func()
	pending   bool
}

func (f *frame) request(job func()) {
	if f.scheduler == nil {
		job()
		return
	}
	if f.pending {
		return
	}
	f.pending = true
	f.cancel = f.scheduler.Schedule(func() {
		if !f.pending {
			return
		}
		f.pending = false
		f.cancel = nil
		job()
	})
}

func (f *frame) stop() {
	if !f.pending {
		return
	}
	f.pending = false
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
}
