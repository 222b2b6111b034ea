package dropdown

type fakeEvents struct {
	outside func()
	key     func(Key)
	subs    int
}

func (f *fakeEvents) OnOutsideClick(fn func()) func() {
	f.outside = fn
	f.subs++
	return func() {
		f.outside = nil
		f.subs--
	}
}

func (f *fakeEvents) OnKeyDown(fn func(Key)) func() {
	f.key = fn
	f.subs++
	return func() {
		f.key = nil
		f.subs--
	}
}

func (f *fakeEvents) press(k Key) {
	if f.key != nil {
		f.key(k)
	}
}

func (f *fakeEvents) clickOutside() {
	if f.outside != nil {
		f.outside()
	}
}

type fakeScheduler struct {
	jobs      []func()
	cancelled int
}

func (f *fakeScheduler) Schedule(fn func()) func() {
	f.jobs = append(f.jobs, fn)
	i := len(f.jobs) - 1
	return func() {
		if f.jobs[i] != nil {
			f.jobs[i] = nil
			f.cancelled++
		}
	}
}

func (f *fakeScheduler) pending() int {
	n := 0
	for _, job := range f.jobs {
		if job != nil {
			n++
		}
	}
	return n
}

func (f *fakeScheduler) flush() {
	jobs := f.jobs
	f.jobs = nil
	for _, job := range jobs {
		if job != nil {
			job()
		}
	}
}

type fakeLayout struct {
	metrics Metrics
	calls   int
}

func (f *fakeLayout) Measure() (Metrics, bool) {
	f.calls++
	return f.metrics, true
}

type fakeFocus struct {
	focused     bool
	searchFocus int
	blurs       int
}

func (f *fakeFocus) HasFocus() bool { return f.focused }
func (f *fakeFocus) FocusSearch()   { f.searchFocus++; f.focused = true }
func (f *fakeFocus) FocusControl()  { f.focused = true }
func (f *fakeFocus) BlurControl()   { f.blurs++; f.focused = false }

func kinds(notes []Notification) []NotificationKind {
	out := make([]NotificationKind, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.Kind)
	}
	return out
}

func only(notes []Notification, kind NotificationKind) []Notification {
	var out []Notification
	for _, n := range notes {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

func fruit() []Option {
	return []Option{
		{Value: 1, Text: "Apple"},
		{Value: 2, Text: "Banana"},
		{Value: 3, Text: "Cherry"},
		{Value: 4, Text: "Date"},
	}
}
