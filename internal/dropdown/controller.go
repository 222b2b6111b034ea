package dropdown

import (
	"unicode/utf8"

	"github.com/alexisbeaulieu97/suikit/internal/logger"
	suierrors "github.com/alexisbeaulieu97/suikit/pkg/errors"
)

// State is the transient interaction state owned by one controller.
type State struct {
	Open        bool
	Focus       bool
	SearchQuery string
	// SelectedIndex indexes the derived option list; -1 when unset.
	SelectedIndex int
	Value         Value
	Values        []Value
	IsMouseDown   bool
	Upward        bool
	ActiveLabel   Value
	ScrollTop     int
}

func (s State) clone() State {
	s.Values = cloneValues(s.Values)
	return s
}

// Controller drives one dropdown. It is not safe for concurrent use; all
// calls are expected from the host's event loop.
type Controller struct {
	props    Props
	owned    Ownership
	state    State
	ports    Ports
	handlers Handlers
	log      *logger.Logger

	frame       frame
	unsubscribe []func()
	mounted     bool

	depth   int
	emitted []Notification
	later   []func() []Notification
}

// New mounts a controller. Fields listed in owned are read from props on
// every Receive; the rest start from the Default* props.
func New(props Props, owned Ownership, ports Ports, handlers Handlers, log *logger.Logger) *Controller {
	c := &Controller{
		owned:    owned,
		ports:    ports,
		handlers: handlers,
		log:      log,
		mounted:  true,
	}
	c.frame.scheduler = ports.Scheduler
	c.props = c.normalize(props)

	c.state.SelectedIndex = -1
	if owned.Value {
		c.state.Value = c.props.Value
		c.state.Values = cloneValues(c.props.Values)
	} else {
		c.state.Value = c.props.DefaultValue
		c.state.Values = cloneValues(c.props.DefaultValues)
	}
	if owned.Open {
		c.state.Open = c.props.Open
	} else {
		c.state.Open = c.props.DefaultOpen
	}
	if owned.SearchQuery {
		c.state.SearchQuery = c.props.SearchQuery
	} else {
		c.state.SearchQuery = c.props.DefaultSearchQuery
	}
	c.state.SelectedIndex = c.deriveIndex(c.state.Value, c.state.Values, c.state.SearchQuery)

	if c.state.Open {
		c.onOpened()
	}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state.clone()
}

// Props returns the configuration of the current cycle, defaults applied.
func (c *Controller) Props() Props {
	return c.props
}

// Ownership returns the ownership flags fixed at construction.
func (c *Controller) Ownership() Ownership {
	return c.owned
}

// Mounted reports whether the controller has not been unmounted.
func (c *Controller) Mounted() bool {
	return c.mounted
}

// FramePending reports whether a deferred layout job is outstanding.
func (c *Controller) FramePending() bool {
	return c.frame.pending
}

// Dispatch applies one interaction and returns the notifications it produced
// in emission order. Each notification has already been passed to Handlers.
// Calls made from inside a handler are queued until the current one finishes.
func (c *Controller) Dispatch(ev Event) []Notification {
	if c.depth > 0 {
		c.later = append(c.later, func() []Notification { return c.Dispatch(ev) })
		return nil
	}
	return c.run(func() { c.handle(ev) })
}

// Receive starts a new render cycle with fresh configuration.
func (c *Controller) Receive(props Props) []Notification {
	if c.depth > 0 {
		c.later = append(c.later, func() []Notification { return c.Receive(props) })
		return nil
	}
	return c.run(func() {
		prevOptions := c.props.Options
		prevValue, prevValues := c.state.Value, c.state.Values
		prevQuery := c.state.SearchQuery

		c.props = c.normalize(props)
		if c.owned.Value {
			c.state.Value = c.props.Value
			c.state.Values = cloneValues(c.props.Values)
		}
		if c.owned.Open {
			c.state.Open = c.props.Open
		}
		if c.owned.SearchQuery {
			c.state.SearchQuery = c.props.SearchQuery
		}

		valueChanged := !Equal(prevValue, c.state.Value) || !SameValues(prevValues, c.state.Values)
		if c.state.SearchQuery != prevQuery {
			c.state.SelectedIndex = c.queryIndex(c.state.SearchQuery)
			c.state.ScrollTop = 0
			c.requestRelayout()
		} else if valueChanged || !sameOptions(prevOptions, c.props.Options) {
			c.state.SelectedIndex = c.deriveIndex(c.state.Value, c.state.Values, c.state.SearchQuery)
			c.requestRelayout()
		}
	})
}

// Open opens the menu.
func (c *Controller) Open() []Notification {
	return c.Dispatch(OpenMenu{})
}

// Close closes the menu.
func (c *Controller) Close() []Notification {
	return c.Dispatch(CloseMenu{})
}

// MenuOptions returns the derived option list for rendering. With LazyLoad
// and a closed menu nothing is computed.
func (c *Controller) MenuOptions() []Option {
	if c.props.LazyLoad && !c.state.Open {
		return nil
	}
	return c.menuOptions()
}

// SelectedOption returns the highlighted entry of the derived list.
func (c *Controller) SelectedOption() (Option, bool) {
	options := c.menuOptions()
	i := c.state.SelectedIndex
	if i < 0 || i >= len(options) {
		return Option{}, false
	}
	return options[i], true
}

// HasValue reports whether anything is selected.
func (c *Controller) HasValue() bool {
	if c.props.Multiple {
		return len(c.state.Values) > 0
	}
	return c.state.Value != nil && c.state.Value != ""
}

// DisplayText returns the text shown in the control and whether it is the
// placeholder. While a single select is open it follows the highlighted entry.
func (c *Controller) DisplayText() (string, bool) {
	if c.props.Text != "" {
		return c.props.Text, false
	}
	if c.state.Open && !c.props.Multiple {
		if opt, ok := c.SelectedOption(); ok {
			return opt.Text, false
		}
	}
	if !c.props.Multiple && c.HasValue() {
		if opt, ok := OptionByValue(c.props.Options, c.state.Value); ok {
			return opt.Text, false
		}
		return ValueString(c.state.Value), false
	}
	if !c.HasValue() && c.props.Placeholder != "" {
		return c.props.Placeholder, true
	}
	return "", false
}

// Labels returns one option per selected value in selection order. Values
// missing from the catalogue, such as committed additions, get a bare option.
func (c *Controller) Labels() []Option {
	if !c.props.Multiple {
		return nil
	}
	labels := make([]Option, 0, len(c.state.Values))
	for _, v := range c.state.Values {
		if opt, ok := OptionByValue(c.props.Options, v); ok {
			labels = append(labels, opt)
			continue
		}
		labels = append(labels, Option{Value: v, Text: ValueString(v)})
	}
	return labels
}

func (c *Controller) run(apply func()) []Notification {
	c.depth++
	if c.depth == 1 {
		c.emitted = nil
	}
	prev := c.state
	apply()
	c.settle(prev)
	c.depth--
	if c.depth > 0 {
		return nil
	}

	notes := c.emitted
	c.emitted = nil
	for len(c.later) > 0 {
		next := c.later[0]
		c.later = c.later[1:]
		notes = append(notes, next()...)
	}
	return notes
}

func (c *Controller) emit(n Notification) {
	c.emitted = append(c.emitted, n)
	c.handlers.deliver(n)
}

// settle reacts to open and focus transitions until the state is stable.
func (c *Controller) settle(prev State) {
	for i := 0; i < 4; i++ {
		cur := c.state

		switch {
		case !prev.Open && cur.Open:
			c.onOpened()
		case prev.Open && !cur.Open:
			c.onClosed()
		}

		switch {
		case !prev.Focus && cur.Focus:
			if !cur.IsMouseDown && c.props.openOnFocus() && c.openableOnFocus() {
				c.open()
			}
		case prev.Focus && !cur.Focus:
			if !cur.IsMouseDown && c.props.closeOnBlur() {
				c.close()
			}
		}

		if c.state.Open == cur.Open && c.state.Focus == cur.Focus {
			return
		}
		prev = cur
	}
}

func (c *Controller) openableOnFocus() bool {
	if !c.props.SearchEnabled() {
		return true
	}
	return c.props.MinCharacters == 1 && !c.state.Open
}

func (c *Controller) handle(ev Event) {
	if !c.mounted {
		return
	}
	if c.props.Disabled {
		switch ev.(type) {
		case Click, IconClick, Focus, KeyDown, SearchChange, ItemClick, LabelRemove, OpenMenu:
			return
		}
	}

	switch e := ev.(type) {
	case Click:
		c.handleClick()
	case IconClick:
		c.handleIconClick()
	case Focus:
		c.handleFocus()
	case Blur:
		c.handleBlur()
	case MouseDown:
		c.state.IsMouseDown = true
	case MouseUp:
		c.state.IsMouseDown = false
	case KeyDown:
		c.handleKeyDown(e.Key)
	case SearchChange:
		c.handleSearchChange(e.Query)
	case ItemClick:
		c.handleItemClick(e.Index)
	case LabelClick:
		c.state.ActiveLabel = e.Value
		c.emit(Notification{Kind: NotifyLabelClick, Value: e.Value})
	case LabelRemove:
		c.handleLabelRemove(e.Value)
	case OpenMenu:
		c.open()
	case CloseMenu:
		c.close()
	case Unmount:
		c.unmount()
	}
}

func (c *Controller) handleClick() {
	if !c.props.SearchEnabled() {
		c.toggle()
		return
	}
	if c.state.Open {
		c.focusSearch()
		return
	}
	if utf8.RuneCountInString(c.state.SearchQuery) >= c.props.MinCharacters || c.props.MinCharacters == 1 {
		c.open()
		return
	}
	c.focusSearch()
}

func (c *Controller) handleIconClick() {
	if c.props.Clearable && c.HasValue() {
		c.clearValue()
		return
	}
	c.toggle()
}

func (c *Controller) handleFocus() {
	if c.state.Focus {
		return
	}
	c.emit(Notification{Kind: NotifyFocus})
	c.state.Focus = true
}

func (c *Controller) handleBlur() {
	// A press inside the control moves focus around without leaving it.
	if c.state.IsMouseDown {
		return
	}
	c.emit(Notification{Kind: NotifyBlur})
	value, values := c.state.Value, c.state.Values
	if c.props.selectOnBlur() && !c.props.Multiple {
		value, values = c.makeSelectedItemActive(c.state.SelectedIndex)
		if c.props.closeOnBlur() {
			c.close()
		}
	}
	c.state.Focus = false
	c.clearSearchQuery()

	// The index was taken from the filtered list and must follow the
	// committed option into the list the cleared query derives.
	c.state.SelectedIndex = SelectedIndexFor(
		DeriveOptions(c.props, values, c.state.SearchQuery),
		c.props.Multiple,
		-1,
		value,
	)
	c.requestRelayout()
}

// handleKeyDown handles keys that reach the control itself. Keys pressed
// while the menu is open arrive through the document subscription.
func (c *Controller) handleKeyDown(k Key) {
	switch k {
	case KeyBackspace:
		c.removeItemOnBackspace()
	case KeyArrowDown, KeyArrowUp:
		if c.state.Focus && !c.state.Open {
			c.open()
			return
		}
	case KeySpace:
		if c.state.Focus && !c.state.Open && !c.props.SearchEnabled() {
			c.open()
			return
		}
	}
	if c.ports.Events == nil && c.state.Open {
		c.handleOpenKey(k)
	}
}

func (c *Controller) handleOpenKey(k Key) {
	c.closeOnEscape(k)
	c.moveSelectionOnKeyDown(k)
	c.selectItemOnEnter(k)
}

func (c *Controller) closeOnEscape(k Key) {
	if k != KeyEscape || !c.props.closeOnEscape() {
		return
	}
	c.close()
}

func (c *Controller) moveSelectionOnKeyDown(k Key) {
	if !c.state.Open {
		return
	}
	offset := 0
	switch k {
	case KeyArrowDown:
		offset = 1
	case KeyArrowUp:
		offset = -1
	default:
		return
	}

	next := IndexAfterMove(c.menuOptions(), c.state.SelectedIndex, offset, c.props.wrapSelection())
	if next == c.state.SelectedIndex {
		return
	}
	if !c.props.Multiple && c.props.selectOnNavigation() {
		c.makeSelectedItemActive(next)
	}
	c.state.SelectedIndex = next
	c.requestRelayout()
}

func (c *Controller) selectItemOnEnter(k Key) {
	if !c.state.Open {
		return
	}
	search := c.props.SearchEnabled()
	if k != KeyEnter && (search || k != KeySpace) {
		return
	}
	if search && len(c.menuOptions()) == 0 {
		return
	}

	value, values := c.makeSelectedItemActive(c.state.SelectedIndex)
	c.state.SelectedIndex = SelectedIndexFor(
		DeriveOptions(c.props, values, ""),
		c.props.Multiple,
		c.state.SelectedIndex,
		value,
	)
	c.requestRelayout()

	if c.props.closeOnChange() {
		c.close()
	}
	c.clearSearchQuery()
	if search {
		c.focusSearch()
	}
}

func (c *Controller) removeItemOnBackspace() {
	if !c.props.Multiple || !c.props.SearchEnabled() || c.state.SearchQuery != "" || len(c.state.Values) == 0 {
		return
	}
	next := cloneValues(c.state.Values[:len(c.state.Values)-1])
	c.setValues(next)
	c.state.SelectedIndex = c.deriveIndex(nil, next, c.state.SearchQuery)
	c.emit(Notification{Kind: NotifyChange, Values: cloneValues(next)})
}

func (c *Controller) handleSearchChange(query string) {
	c.emit(Notification{Kind: NotifySearchChange, Query: query})
	c.setSearchQuery(query)

	enabled := EnabledIndices(DeriveOptions(c.props, c.state.Values, query))
	c.state.SelectedIndex = -1
	if len(enabled) > 0 {
		c.state.SelectedIndex = enabled[0]
	}
	c.state.ScrollTop = 0

	size := utf8.RuneCountInString(query)
	minimum := c.props.MinCharacters
	if !c.state.Open && size >= minimum {
		c.open()
		return
	}
	if c.state.Open && minimum != 1 && size < minimum {
		c.close()
	}
}

func (c *Controller) handleItemClick(index int) {
	options := c.menuOptions()
	if index < 0 || index >= len(options) {
		return
	}
	item := options[index]
	if item.Disabled {
		return
	}

	if c.props.Multiple {
		next := Union(c.state.Values, item.Value)
		if len(next) != len(c.state.Values) {
			c.setValues(next)
			c.state.SelectedIndex = c.deriveIndex(nil, next, "")
			c.emit(Notification{Kind: NotifyChange, Values: cloneValues(next)})
		}
	} else if !Equal(item.Value, c.state.Value) {
		c.setValue(item.Value)
		c.state.SelectedIndex = c.deriveIndex(item.Value, nil, "")
		c.emit(Notification{Kind: NotifyChange, Value: item.Value})
	}

	c.clearSearchQuery()
	if c.props.SearchEnabled() {
		c.focusSearch()
	} else if c.ports.Focus != nil {
		c.ports.Focus.FocusControl()
	}
	if c.props.closeOnChange() {
		c.close()
	}
	if item.Additional {
		c.emit(Notification{Kind: NotifyAddItem, Value: item.Value})
	}
}

func (c *Controller) handleLabelRemove(v Value) {
	if !c.props.Multiple {
		return
	}
	next := Without(c.state.Values, v)
	if len(next) == len(c.state.Values) {
		return
	}
	c.setValues(next)
	c.state.SelectedIndex = c.deriveIndex(nil, next, c.state.SearchQuery)
	c.emit(Notification{Kind: NotifyLabelRemove, Value: v})
	c.emit(Notification{Kind: NotifyChange, Values: cloneValues(next)})
}

// makeSelectedItemActive commits the option at index and returns the
// resulting selection. Nothing happens for a closed menu, a disabled or
// valueless option, or an option that is already selected.
func (c *Controller) makeSelectedItemActive(index int) (Value, []Value) {
	value, values := c.state.Value, c.state.Values
	options := c.menuOptions()
	if index < 0 || index >= len(options) {
		return value, values
	}
	item := options[index]
	if item.Value == nil || !c.state.Open || item.Disabled {
		return value, values
	}

	if c.props.Multiple {
		next := Union(values, item.Value)
		if len(next) == len(values) {
			return value, values
		}
		c.setValues(next)
		c.emit(Notification{Kind: NotifyChange, Values: cloneValues(next)})
		if item.Additional {
			c.emit(Notification{Kind: NotifyAddItem, Value: item.Value})
		}
		return value, next
	}

	if Equal(item.Value, value) {
		return value, values
	}
	c.setValue(item.Value)
	c.emit(Notification{Kind: NotifyChange, Value: item.Value})
	if item.Additional {
		c.emit(Notification{Kind: NotifyAddItem, Value: item.Value})
	}
	return item.Value, values
}

func (c *Controller) clearValue() {
	if c.props.Multiple {
		next := []Value{}
		c.setValues(next)
		c.state.SelectedIndex = c.deriveIndex(nil, next, c.state.SearchQuery)
		c.emit(Notification{Kind: NotifyChange, Values: []Value{}})
		return
	}
	c.setValue(nil)
	c.state.SelectedIndex = c.deriveIndex(nil, nil, c.state.SearchQuery)
	c.emit(Notification{Kind: NotifyChange})
}

func (c *Controller) clearSearchQuery() {
	if c.state.SearchQuery == "" {
		return
	}
	// A caller-owned query can only be cleared by the caller.
	if c.owned.SearchQuery {
		c.emit(Notification{Kind: NotifySearchChange, Query: ""})
		return
	}
	c.state.SearchQuery = ""
}

func (c *Controller) toggle() {
	if c.state.Open {
		c.close()
		return
	}
	c.open()
}

func (c *Controller) open() {
	if c.props.Disabled || c.state.Open {
		return
	}
	if c.props.SearchEnabled() {
		c.focusSearch()
	}
	c.emit(Notification{Kind: NotifyOpen})
	c.setOpen(true)
	c.requestRelayout()
}

// close fires the close notification before the state changes, then brings
// the focus flag back in line with the host, since a control that blurred
// itself after a selection must not read as a user blur later on.
func (c *Controller) close() {
	if !c.state.Open {
		return
	}
	c.emit(Notification{Kind: NotifyClose})
	c.setOpen(false)

	if f := c.ports.Focus; f != nil {
		if !c.props.SearchEnabled() {
			f.BlurControl()
		}
		c.state.Focus = f.HasFocus()
	}
}

func (c *Controller) onOpened() {
	c.log.Debug("dropdown menu opened", "options", len(c.menuOptions()), "query", c.state.SearchQuery)
	if src := c.ports.Events; src != nil && len(c.unsubscribe) == 0 {
		c.unsubscribe = append(c.unsubscribe,
			src.OnOutsideClick(c.handleOutsideClick),
			src.OnKeyDown(c.handleDocumentKey),
		)
	}
	c.requestRelayout()
}

func (c *Controller) onClosed() {
	c.log.Debug("dropdown menu closed")
	c.detach()
}

func (c *Controller) detach() {
	for _, cancel := range c.unsubscribe {
		if cancel != nil {
			cancel()
		}
	}
	c.unsubscribe = nil
	c.frame.stop()
}

func (c *Controller) unmount() {
	c.detach()
	c.mounted = false
}

func (c *Controller) handleOutsideClick() {
	if c.depth > 0 {
		c.later = append(c.later, func() []Notification { c.handleOutsideClick(); return nil })
		return
	}
	c.run(func() {
		if !c.mounted || !c.props.closeOnBlur() {
			return
		}
		c.close()
	})
}

func (c *Controller) handleDocumentKey(k Key) {
	if c.depth > 0 {
		c.later = append(c.later, func() []Notification { c.handleDocumentKey(k); return nil })
		return
	}
	c.run(func() {
		if !c.mounted {
			return
		}
		c.handleOpenKey(k)
	})
}

func (c *Controller) requestRelayout() {
	if !c.state.Open {
		return
	}
	c.frame.request(c.relayout)
}

// relayout recomputes the viewport-relative layout: the open direction and
// the scroll offset that keeps the highlighted entry visible.
func (c *Controller) relayout() {
	if !c.mounted || !c.state.Open || c.ports.Layout == nil {
		return
	}
	m, ok := c.ports.Layout.Measure()
	if !ok {
		return
	}
	c.state.Upward = Upward(m)
	c.state.ScrollTop = ScrollIntoView(c.state.ScrollTop, c.state.SelectedIndex, m.MenuRows)
}

func (c *Controller) focusSearch() {
	if c.ports.Focus != nil {
		c.ports.Focus.FocusSearch()
	}
}

func (c *Controller) menuOptions() []Option {
	return DeriveOptions(c.props, c.state.Values, c.state.SearchQuery)
}

func (c *Controller) deriveIndex(value Value, values []Value, query string) int {
	options := DeriveOptions(c.props, values, query)
	return SelectedIndexFor(options, c.props.Multiple, c.state.SelectedIndex, value)
}

// queryIndex is the highlighted index under a query the caller just
// changed: the first enabled match while filtering, the committed option
// once the query is empty again.
func (c *Controller) queryIndex(query string) int {
	options := DeriveOptions(c.props, c.state.Values, query)
	if query == "" {
		return SelectedIndexFor(options, c.props.Multiple, -1, c.state.Value)
	}
	if enabled := EnabledIndices(options); len(enabled) > 0 {
		return enabled[0]
	}
	return -1
}

func (c *Controller) setValue(v Value) {
	if !c.owned.Value {
		c.state.Value = v
	}
}

func (c *Controller) setValues(values []Value) {
	if !c.owned.Value {
		c.state.Values = cloneValues(values)
	}
}

func (c *Controller) setOpen(open bool) {
	if !c.owned.Open {
		c.state.Open = open
	}
}

func (c *Controller) setSearchQuery(query string) {
	if !c.owned.SearchQuery {
		c.state.SearchQuery = query
	}
}

// normalize applies defaults and enforces the value/multiple contract. A
// mismatch is reported and coerced, never fatal.
func (c *Controller) normalize(p Props) Props {
	p = p.withDefaults()
	if p.Multiple {
		if p.Value != nil {
			c.warnUsage("value", "multiple dropdown expects Values, got a single Value")
			if p.Values == nil {
				p.Values = []Value{p.Value}
			}
			p.Value = nil
		}
		if p.DefaultValue != nil {
			c.warnUsage("default_value", "multiple dropdown expects DefaultValues, got a single DefaultValue")
			if p.DefaultValues == nil {
				p.DefaultValues = []Value{p.DefaultValue}
			}
			p.DefaultValue = nil
		}
		return p
	}

	if p.Values != nil {
		c.warnUsage("values", "single dropdown expects Value, got Values")
		if p.Value == nil && len(p.Values) > 0 {
			p.Value = p.Values[0]
		}
		p.Values = nil
	}
	if p.DefaultValues != nil {
		c.warnUsage("default_values", "single dropdown expects DefaultValue, got DefaultValues")
		if p.DefaultValue == nil && len(p.DefaultValues) > 0 {
			p.DefaultValue = p.DefaultValues[0]
		}
		p.DefaultValues = nil
	}
	return p
}

func (c *Controller) warnUsage(field, message string) {
	err := suierrors.NewUsageError("dropdown", message)
	c.log.Warn("dropdown value does not match multiple mode", "field", field, "error", err.Error())
}
