package dropdown

// Key names the keyboard keys the controller reacts to.
type Key string

const (
	KeyEnter     Key = "Enter"
	KeyEscape    Key = "Escape"
	KeyArrowUp   Key = "ArrowUp"
	KeyArrowDown Key = "ArrowDown"
	KeySpace     Key = "Space"
	KeyBackspace Key = "Backspace"
	KeyTab       Key = "Tab"
)

// Event is an interaction delivered to Controller.Dispatch.
type Event interface {
	isEvent()
}

type (
	// Click is a pointer click on the control.
	Click struct{}
	// IconClick is a click on the dropdown or clear icon.
	IconClick struct{}
	// Focus reports the control gained keyboard focus.
	Focus struct{}
	// Blur reports focus left the control.
	Blur struct{}
	// MouseDown starts a press inside the control.
	MouseDown struct{}
	// MouseUp ends a press started inside the control.
	MouseUp struct{}
	// KeyDown is a key pressed while the control has focus.
	KeyDown struct{ Key Key }
	// SearchChange carries the new text of the search input.
	SearchChange struct{ Query string }
	// ItemClick is a click on the menu entry at Index of the derived list.
	ItemClick struct{ Index int }
	// LabelClick is a click on a multiple-select label.
	LabelClick struct{ Value Value }
	// LabelRemove is a click on the remove icon of a label.
	LabelRemove struct{ Value Value }
	// OpenMenu requests the menu to open.
	OpenMenu struct{}
	// CloseMenu requests the menu to close.
	CloseMenu struct{}
	// Unmount tears the controller down.
	Unmount struct{}
)

func (Click) isEvent()        {}
func (IconClick) isEvent()    {}
func (Focus) isEvent()        {}
func (Blur) isEvent()         {}
func (MouseDown) isEvent()    {}
func (MouseUp) isEvent()      {}
func (KeyDown) isEvent()      {}
func (SearchChange) isEvent() {}
func (ItemClick) isEvent()    {}
func (LabelClick) isEvent()   {}
func (LabelRemove) isEvent()  {}
func (OpenMenu) isEvent()     {}
func (CloseMenu) isEvent()    {}
func (Unmount) isEvent()      {}

// NotificationKind identifies what a Notification reports.
type NotificationKind int

const (
	NotifyChange NotificationKind = iota
	NotifyOpen
	NotifyClose
	NotifySearchChange
	NotifyAddItem
	NotifyFocus
	NotifyBlur
	NotifyLabelClick
	NotifyLabelRemove
)

func (k NotificationKind) String() string {
	switch k {
	case NotifyChange:
		return "change"
	case NotifyOpen:
		return "open"
	case NotifyClose:
		return "close"
	case NotifySearchChange:
		return "search-change"
	case NotifyAddItem:
		return "add-item"
	case NotifyFocus:
		return "focus"
	case NotifyBlur:
		return "blur"
	case NotifyLabelClick:
		return "label-click"
	case NotifyLabelRemove:
		return "label-remove"
	default:
		return "unknown"
	}
}

// Notification is one outgoing event for the caller.
type Notification struct {
	Kind NotificationKind
	// Value is the new single value on change, the added value on add-item,
	// and the label value on label events.
	Value Value
	// Values is the new selection on change in multiple mode.
	Values []Value
	// Query is the new search text on search-change.
	Query string
}

// Handlers are the optional notification callbacks. A nil handler is skipped.
type Handlers struct {
	OnChange       func(Notification)
	OnOpen         func(Notification)
	OnClose        func(Notification)
	OnSearchChange func(Notification)
	OnAddItem      func(Notification)
	OnFocus        func(Notification)
	OnBlur         func(Notification)
	OnLabelClick   func(Notification)
	OnLabelRemove  func(Notification)
}

func (h Handlers) deliver(n Notification) {
	var fn func(Notification)
	switch n.Kind {
	case NotifyChange:
		fn = h.OnChange
	case NotifyOpen:
		fn = h.OnOpen
	case NotifyClose:
		fn = h.OnClose
	case NotifySearchChange:
		fn = h.OnSearchChange
	case NotifyAddItem:
		fn = h.OnAddItem
	case NotifyFocus:
		fn = h.OnFocus
	case NotifyBlur:
		fn = h.OnBlur
	case NotifyLabelClick:
		fn = h.OnLabelClick
	case NotifyLabelRemove:
		fn = h.OnLabelRemove
	}
	if fn != nil {
		fn(n)
	}
}
