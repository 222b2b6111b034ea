package dropdown

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/suikit/internal/logger"
)

func TestArrowDownThenEnterCommitsOnce(t *testing.T) {
	t.Parallel()

	changes := 0
	c := New(Props{
		Options:      []Option{{Value: 1, Text: "A"}, {Value: 2, Text: "B"}},
		DefaultValue: 1,
		DefaultOpen:  true,
	}, Ownership{}, Ports{}, Handlers{OnChange: func(Notification) { changes++ }}, nil)

	var notes []Notification
	notes = append(notes, c.Dispatch(KeyDown{Key: KeyArrowDown})...)
	notes = append(notes, c.Dispatch(KeyDown{Key: KeyEnter})...)

	got := only(notes, NotifyChange)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Value)
	assert.Equal(t, 1, changes)
	assert.Equal(t, 2, c.State().Value)
	assert.False(t, c.State().Open)
}

func TestAdditionFiresChangeThenAddItem(t *testing.T) {
	t.Parallel()

	c := New(Props{
		Options:        fruit(),
		Multiple:       true,
		Search:         true,
		AllowAdditions: true,
	}, Ownership{}, Ports{}, Handlers{}, nil)

	notes := c.Dispatch(SearchChange{Query: "NewTag"})
	assert.Equal(t, []NotificationKind{NotifySearchChange, NotifyOpen}, kinds(notes))

	options := c.MenuOptions()
	require.Len(t, options, 1)
	assert.Equal(t, Option{Key: AdditionKey, Value: "NewTag", Text: "NewTag", Additional: true}, options[0])
	assert.Equal(t, 0, c.State().SelectedIndex)

	notes = c.Dispatch(KeyDown{Key: KeyEnter})
	assert.Equal(t, []NotificationKind{NotifyChange, NotifyAddItem}, kinds(notes))
	assert.Equal(t, []Value{"NewTag"}, notes[0].Values)
	assert.Equal(t, "NewTag", notes[1].Value)

	state := c.State()
	assert.Equal(t, []Value{"NewTag"}, state.Values)
	assert.Empty(t, state.SearchQuery)
	assert.True(t, state.Open, "multiple select stays open after a change")
	assert.Equal(t, "NewTag", c.Labels()[0].Text)
}

func TestItemClickAddition(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Search: true, AllowAdditions: true}, Ownership{}, Ports{}, Handlers{}, nil)
	c.Dispatch(SearchChange{Query: "Fig"})

	notes := c.Dispatch(ItemClick{Index: 0})
	assert.Equal(t, []NotificationKind{NotifyChange, NotifyClose, NotifyAddItem}, kinds(notes))
	assert.Equal(t, "Fig", c.State().Value)

	text, placeholder := c.DisplayText()
	assert.Equal(t, "Fig", text)
	assert.False(t, placeholder)
}

func TestMinCharactersThreshold(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Search: true, MinCharacters: 3}, Ownership{}, Ports{}, Handlers{}, nil)

	assert.Empty(t, c.Dispatch(Click{}), "click below the threshold only focuses the input")

	assert.Equal(t, []NotificationKind{NotifySearchChange}, kinds(c.Dispatch(SearchChange{Query: "ab"})))
	assert.False(t, c.State().Open)

	assert.Equal(t, []NotificationKind{NotifySearchChange, NotifyOpen}, kinds(c.Dispatch(SearchChange{Query: "abc"})))
	assert.True(t, c.State().Open)

	assert.Equal(t, []NotificationKind{NotifySearchChange, NotifyClose}, kinds(c.Dispatch(SearchChange{Query: "ab"})))
	assert.False(t, c.State().Open)
}

func TestMinCharactersOneNeverClosesOnDelete(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Search: true}, Ownership{}, Ports{}, Handlers{}, nil)

	c.Dispatch(SearchChange{Query: "a"})
	require.True(t, c.State().Open)

	notes := c.Dispatch(SearchChange{Query: ""})
	assert.Equal(t, []NotificationKind{NotifySearchChange}, kinds(notes))
	assert.True(t, c.State().Open)
}

func TestSearchChangeHighlightsFirstEnabledMatch(t *testing.T) {
	t.Parallel()

	options := fruit()
	options[1].Disabled = true
	c := New(Props{Options: options, Search: true, DefaultOpen: true}, Ownership{}, Ports{}, Handlers{}, nil)

	c.Dispatch(SearchChange{Query: "an"})
	_, ok := c.SelectedOption()
	assert.False(t, ok, "a disabled match is never highlighted")
	assert.Equal(t, -1, c.State().SelectedIndex)

	c.Dispatch(SearchChange{Query: "e"})
	opt, ok := c.SelectedOption()
	require.True(t, ok)
	assert.Equal(t, "Apple", opt.Text)
}

func TestNavigationOnAllDisabledIsNoop(t *testing.T) {
	t.Parallel()

	c := New(Props{
		Options:     []Option{{Value: 1, Text: "A", Disabled: true}, {Value: 2, Text: "B", Disabled: true}},
		DefaultOpen: true,
	}, Ownership{}, Ports{}, Handlers{}, nil)

	assert.Equal(t, -1, c.State().SelectedIndex)
	for _, k := range []Key{KeyArrowDown, KeyArrowUp, KeyArrowDown} {
		assert.Empty(t, c.Dispatch(KeyDown{Key: k}))
		assert.Equal(t, -1, c.State().SelectedIndex)
	}
}

func TestWrapRoundTrip(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), DefaultOpen: true, SelectOnNavigation: Bool(false)}, Ownership{}, Ports{}, Handlers{}, nil)
	start := c.State().SelectedIndex
	require.Equal(t, 0, start)

	for range fruit() {
		assert.Empty(t, c.Dispatch(KeyDown{Key: KeyArrowDown}))
	}
	assert.Equal(t, start, c.State().SelectedIndex)

	c.Dispatch(KeyDown{Key: KeyArrowUp})
	assert.Equal(t, 3, c.State().SelectedIndex)
}

func TestNavigationWithoutWrapClamps(t *testing.T) {
	t.Parallel()

	c := New(Props{
		Options:            fruit(),
		DefaultOpen:        true,
		WrapSelection:      Bool(false),
		SelectOnNavigation: Bool(false),
	}, Ownership{}, Ports{}, Handlers{}, nil)

	c.Dispatch(KeyDown{Key: KeyArrowUp})
	assert.Equal(t, 0, c.State().SelectedIndex)
}

func TestCommittingSameValueIsSilent(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), DefaultValue: 1, DefaultOpen: true}, Ownership{}, Ports{}, Handlers{}, nil)

	notes := c.Dispatch(ItemClick{Index: 0})
	assert.Empty(t, only(notes, NotifyChange))
	assert.Equal(t, []NotificationKind{NotifyClose}, kinds(notes))
}

func TestItemClickIgnoresDisabled(t *testing.T) {
	t.Parallel()

	options := fruit()
	options[2].Disabled = true
	c := New(Props{Options: options, DefaultOpen: true}, Ownership{}, Ports{}, Handlers{}, nil)

	assert.Empty(t, c.Dispatch(ItemClick{Index: 2}))
	assert.Empty(t, c.Dispatch(ItemClick{Index: 99}))
	assert.True(t, c.State().Open)
}

func TestCallerOwnedValue(t *testing.T) {
	t.Parallel()

	props := Props{Options: fruit(), Value: 1, DefaultOpen: true}
	c := New(props, Ownership{Value: true}, Ports{}, Handlers{}, nil)

	notes := c.Dispatch(ItemClick{Index: 1})
	require.Len(t, only(notes, NotifyChange), 1)
	assert.Equal(t, 2, only(notes, NotifyChange)[0].Value)
	assert.Equal(t, 1, c.State().Value, "controller never originates a caller-owned value")

	props.Value = 2
	assert.Empty(t, c.Receive(props))
	assert.Equal(t, 2, c.State().Value)
	assert.Equal(t, 1, c.State().SelectedIndex)
}

func TestCallerOwnedOpen(t *testing.T) {
	t.Parallel()

	props := Props{Options: fruit()}
	c := New(props, Ownership{Open: true}, Ports{}, Handlers{}, nil)

	assert.Equal(t, []NotificationKind{NotifyOpen}, kinds(c.Dispatch(Click{})))
	assert.False(t, c.State().Open)

	props.Open = true
	c.Receive(props)
	assert.True(t, c.State().Open)

	assert.Equal(t, []NotificationKind{NotifyClose}, kinds(c.Dispatch(Click{})))
	assert.True(t, c.State().Open)
}

func TestCallerOwnedSearchQueryIsClearedByNotification(t *testing.T) {
	t.Parallel()

	props := Props{Options: fruit(), Search: true, SearchQuery: "ap", DefaultOpen: true}
	c := New(props, Ownership{SearchQuery: true}, Ports{}, Handlers{}, nil)
	require.Equal(t, "ap", c.State().SearchQuery)

	notes := c.Dispatch(ItemClick{Index: 0})
	cleared := only(notes, NotifySearchChange)
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Query)
	assert.Equal(t, "ap", c.State().SearchQuery)
}

func TestReceiveFromHandlerIsQueued(t *testing.T) {
	t.Parallel()

	props := Props{Options: fruit(), Value: 1}
	var c *Controller
	c = New(props, Ownership{Value: true}, Ports{}, Handlers{
		OnChange: func(n Notification) {
			next := props
			next.Value = n.Value
			assert.Nil(t, c.Receive(next))
			assert.Equal(t, 1, c.State().Value, "update applies after the current dispatch")
		},
	}, nil)

	c.Open()
	notes := c.Dispatch(ItemClick{Index: 2})
	assert.Equal(t, []NotificationKind{NotifyChange, NotifyClose}, kinds(notes))
	assert.Equal(t, 3, c.State().Value)
	assert.Equal(t, 2, c.State().SelectedIndex)
}

func TestFocusOpensUnlessMouseDown(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit()}, Ownership{}, Ports{}, Handlers{}, nil)
	c.Dispatch(MouseDown{})
	assert.Equal(t, []NotificationKind{NotifyFocus}, kinds(c.Dispatch(Focus{})))
	assert.False(t, c.State().Open)

	assert.Empty(t, c.Dispatch(Blur{}), "blur during a press is ignored")
	c.Dispatch(MouseUp{})

	assert.Equal(t, []NotificationKind{NotifyBlur}, kinds(c.Dispatch(Blur{})))
	assert.Equal(t, []NotificationKind{NotifyFocus, NotifyOpen}, kinds(c.Dispatch(Focus{})))
}

func TestFocusInSearchModeRespectsMinCharacters(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Search: true, MinCharacters: 2}, Ownership{}, Ports{}, Handlers{}, nil)
	assert.Equal(t, []NotificationKind{NotifyFocus}, kinds(c.Dispatch(Focus{})))
	assert.False(t, c.State().Open)
}

func TestBlurCommitsHighlightedEntry(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), SelectOnNavigation: Bool(false)}, Ownership{}, Ports{}, Handlers{}, nil)
	c.Dispatch(Focus{})
	require.True(t, c.State().Open)

	assert.Empty(t, c.Dispatch(KeyDown{Key: KeyArrowDown}))

	notes := c.Dispatch(Blur{})
	assert.Equal(t, []NotificationKind{NotifyBlur, NotifyChange, NotifyClose}, kinds(notes))
	assert.Equal(t, 2, notes[1].Value)
	assert.False(t, c.State().Focus)
}

func TestCloseResyncsFocus(t *testing.T) {
	t.Parallel()

	focus := &fakeFocus{focused: true}
	c := New(Props{Options: fruit()}, Ownership{}, Ports{Focus: focus}, Handlers{}, nil)

	assert.Equal(t, []NotificationKind{NotifyFocus, NotifyOpen}, kinds(c.Dispatch(Focus{})))
	assert.Equal(t, []NotificationKind{NotifyClose}, kinds(c.Dispatch(KeyDown{Key: KeyEscape})))

	assert.Equal(t, 1, focus.blurs)
	assert.False(t, c.State().Focus)
	assert.Equal(t, []NotificationKind{NotifyBlur}, kinds(c.Dispatch(Blur{})), "a later blur does not close again")
}

func TestOpenOnArrow(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), OpenOnFocus: Bool(false)}, Ownership{}, Ports{}, Handlers{}, nil)
	assert.Empty(t, c.Dispatch(KeyDown{Key: KeyArrowDown}), "arrows need focus")

	c.Dispatch(Focus{})
	assert.Equal(t, []NotificationKind{NotifyOpen}, kinds(c.Dispatch(KeyDown{Key: KeyArrowDown})))
	assert.Equal(t, 0, c.State().SelectedIndex, "the opening key does not move")
}

func TestOpenOnSpaceOutsideSearch(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), OpenOnFocus: Bool(false)}, Ownership{}, Ports{}, Handlers{}, nil)
	c.Dispatch(Focus{})
	assert.Equal(t, []NotificationKind{NotifyOpen}, kinds(c.Dispatch(KeyDown{Key: KeySpace})))

	notes := c.Dispatch(KeyDown{Key: KeySpace})
	assert.Equal(t, []NotificationKind{NotifyChange, NotifyClose}, kinds(notes))
	assert.Equal(t, 1, notes[0].Value)
}

func TestDocumentSubscriptions(t *testing.T) {
	t.Parallel()

	events := &fakeEvents{}
	var closes, changes int
	c := New(Props{Options: fruit()}, Ownership{}, Ports{Events: events}, Handlers{
		OnClose:  func(Notification) { closes++ },
		OnChange: func(Notification) { changes++ },
	}, nil)
	assert.Zero(t, events.subs)

	c.Dispatch(Click{})
	assert.Equal(t, 2, events.subs)

	assert.Empty(t, c.Dispatch(KeyDown{Key: KeyArrowDown}), "open menu keys come from the document")

	events.press(KeyArrowDown)
	assert.Equal(t, 1, changes)
	assert.Equal(t, 1, c.State().SelectedIndex)

	events.clickOutside()
	assert.Equal(t, 1, closes)
	assert.False(t, c.State().Open)
	assert.Zero(t, events.subs)
}

func TestOutsideClickHonoursCloseOnBlur(t *testing.T) {
	t.Parallel()

	events := &fakeEvents{}
	c := New(Props{Options: fruit(), DefaultOpen: true, CloseOnBlur: Bool(false)}, Ownership{}, Ports{Events: events}, Handlers{}, nil)
	require.Equal(t, 2, events.subs, "mounting open subscribes immediately")

	events.clickOutside()
	assert.True(t, c.State().Open)
}

func TestEscapeHonoursCloseOnEscape(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), DefaultOpen: true, CloseOnEscape: Bool(false)}, Ownership{}, Ports{}, Handlers{}, nil)
	assert.Empty(t, c.Dispatch(KeyDown{Key: KeyEscape}))
	assert.True(t, c.State().Open)
}

func TestFrameIsSingleSlot(t *testing.T) {
	t.Parallel()

	sched := &fakeScheduler{}
	layout := &fakeLayout{metrics: Metrics{ControlTop: 20, ControlHeight: 1, MenuHeight: 8, ViewportHeight: 24, MenuRows: 2}}
	c := New(Props{Options: fruit(), SelectOnNavigation: Bool(false)}, Ownership{}, Ports{Scheduler: sched, Layout: layout}, Handlers{}, nil)

	c.Dispatch(Click{})
	c.Dispatch(KeyDown{Key: KeyArrowDown})
	c.Dispatch(KeyDown{Key: KeyArrowDown})
	assert.Equal(t, 1, sched.pending())
	assert.True(t, c.FramePending())
	assert.Zero(t, layout.calls)

	sched.flush()
	assert.Equal(t, 1, layout.calls)
	assert.False(t, c.FramePending())
	assert.True(t, c.State().Upward)
	assert.Equal(t, 1, c.State().ScrollTop)

	c.Dispatch(KeyDown{Key: KeyArrowDown})
	require.Equal(t, 1, sched.pending())
	c.Close()
	assert.Equal(t, 1, sched.cancelled)
	assert.False(t, c.FramePending())
}

func TestUnmountDetachesEverything(t *testing.T) {
	t.Parallel()

	events := &fakeEvents{}
	sched := &fakeScheduler{}
	c := New(Props{Options: fruit()}, Ownership{}, Ports{Events: events, Scheduler: sched}, Handlers{}, nil)
	c.Dispatch(Click{})
	require.Equal(t, 2, events.subs)
	require.Equal(t, 1, sched.pending())

	c.Dispatch(Unmount{})
	assert.Zero(t, events.subs)
	assert.Equal(t, 1, sched.cancelled)
	assert.False(t, c.Mounted())
	assert.Empty(t, c.Dispatch(Click{}))
}

func TestBackspaceRemovesLastValue(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Multiple: true, Search: true, DefaultValues: []Value{1, 2}}, Ownership{}, Ports{}, Handlers{}, nil)

	notes := c.Dispatch(KeyDown{Key: KeyBackspace})
	assert.Equal(t, []NotificationKind{NotifyChange}, kinds(notes))
	assert.Equal(t, []Value{1}, notes[0].Values)

	c.Dispatch(SearchChange{Query: "x"})
	assert.Empty(t, only(c.Dispatch(KeyDown{Key: KeyBackspace}), NotifyChange))
	assert.Equal(t, []Value{1}, c.State().Values)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Multiple: true, DefaultValues: []Value{1, 2}}, Ownership{}, Ports{}, Handlers{}, nil)

	assert.Equal(t, []NotificationKind{NotifyLabelClick}, kinds(c.Dispatch(LabelClick{Value: 2})))
	assert.Equal(t, 2, c.State().ActiveLabel)

	notes := c.Dispatch(LabelRemove{Value: 1})
	assert.Equal(t, []NotificationKind{NotifyLabelRemove, NotifyChange}, kinds(notes))
	assert.Equal(t, []Value{2}, notes[1].Values)
	assert.Empty(t, c.Dispatch(LabelRemove{Value: 1}))
}

func TestMultipleKeepsCursorNearCommittedEntry(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Multiple: true, DefaultOpen: true}, Ownership{}, Ports{}, Handlers{}, nil)
	c.Dispatch(KeyDown{Key: KeyArrowDown})
	c.Dispatch(KeyDown{Key: KeyEnter})

	assert.Equal(t, []Value{2}, c.State().Values)
	assert.True(t, c.State().Open)
	opt, ok := c.SelectedOption()
	require.True(t, ok)
	assert.Equal(t, "Cherry", opt.Text)
	for _, o := range c.MenuOptions() {
		assert.NotEqual(t, 2, o.Value)
	}
}

func TestIconClickClears(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), DefaultValue: 2, Clearable: true, Placeholder: "Pick"}, Ownership{}, Ports{}, Handlers{}, nil)

	notes := c.Dispatch(IconClick{})
	assert.Equal(t, []NotificationKind{NotifyChange}, kinds(notes))
	assert.Nil(t, notes[0].Value)
	assert.False(t, c.HasValue())

	text, placeholder := c.DisplayText()
	assert.Equal(t, "Pick", text)
	assert.True(t, placeholder)

	assert.Equal(t, []NotificationKind{NotifyOpen}, kinds(c.Dispatch(IconClick{})))
}

func TestDisabledIgnoresInteraction(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Disabled: true}, Ownership{}, Ports{}, Handlers{}, nil)
	assert.Empty(t, c.Dispatch(Click{}))
	assert.Empty(t, c.Open())
	assert.Empty(t, c.Dispatch(Focus{}))
	assert.False(t, c.State().Open)
}

func TestLazyLoad(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), LazyLoad: true}, Ownership{}, Ports{}, Handlers{}, nil)
	assert.Nil(t, c.MenuOptions())
	c.Open()
	assert.Len(t, c.MenuOptions(), 4)
}

func TestDisplayText(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), DefaultValue: 2, SelectOnNavigation: Bool(false)}, Ownership{}, Ports{}, Handlers{}, nil)
	text, _ := c.DisplayText()
	assert.Equal(t, "Banana", text)

	c.Open()
	c.Dispatch(KeyDown{Key: KeyArrowDown})
	text, _ = c.DisplayText()
	assert.Equal(t, "Cherry", text, "open single select previews the highlighted entry")

	c.Receive(Props{Options: fruit(), Text: "Custom"})
	text, _ = c.DisplayText()
	assert.Equal(t, "Custom", text)
}

func TestValueModeMismatchIsCoerced(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Writer: &buf, Level: "warn"})
	require.NoError(t, err)

	multi := New(Props{Options: fruit(), Multiple: true, DefaultValue: 1}, Ownership{}, Ports{}, Handlers{}, log)
	assert.Equal(t, []Value{1}, multi.State().Values)
	assert.Nil(t, multi.State().Value)
	assert.Contains(t, buf.String(), "dropdown value does not match multiple mode")

	single := New(Props{Options: fruit(), Values: []Value{3, 4}}, Ownership{Value: true}, Ports{}, Handlers{}, log)
	assert.Equal(t, 3, single.State().Value)
	assert.Nil(t, single.State().Values)
}

func TestBlurCommitFollowsValueOutOfFilteredList(t *testing.T) {
	t.Parallel()

	c := New(Props{Options: fruit(), Search: true}, Ownership{}, Ports{}, Handlers{}, nil)
	c.Dispatch(Focus{})
	c.Dispatch(SearchChange{Query: "cher"})
	require.Len(t, c.MenuOptions(), 1)

	notes := c.Dispatch(Blur{})
	require.Len(t, only(notes, NotifyChange), 1)
	state := c.State()
	assert.Equal(t, 3, state.Value)
	assert.Empty(t, state.SearchQuery)
	assert.Equal(t, 2, state.SelectedIndex, "index points at Cherry in the full list")

	c.Dispatch(Focus{})
	c.Dispatch(Click{})
	require.True(t, c.State().Open)

	highlighted, ok := c.SelectedOption()
	require.True(t, ok)
	assert.Equal(t, "Cherry", highlighted.Text)
	text, _ := c.DisplayText()
	assert.Equal(t, "Cherry", text)

	notes = c.Dispatch(KeyDown{Key: KeyEnter})
	assert.Empty(t, only(notes, NotifyChange), "re-committing the same option is silent")
	assert.Equal(t, 3, c.State().Value)
}

func TestCallerOwnedQueryRederivesIndex(t *testing.T) {
	t.Parallel()

	props := Props{Options: fruit(), Search: true, DefaultOpen: true}
	c := New(props, Ownership{SearchQuery: true}, Ports{}, Handlers{}, nil)
	c.Dispatch(KeyDown{Key: KeyArrowDown})
	c.Dispatch(KeyDown{Key: KeyArrowDown})
	require.Equal(t, 2, c.State().SelectedIndex)
	require.Equal(t, 3, c.State().Value)

	props.SearchQuery = "apple"
	c.Receive(props)
	require.Len(t, c.MenuOptions(), 1)
	assert.Equal(t, 0, c.State().SelectedIndex)
	assert.Zero(t, c.State().ScrollTop)
	highlighted, ok := c.SelectedOption()
	require.True(t, ok)
	assert.Equal(t, "Apple", highlighted.Text)

	props.SearchQuery = "zzz"
	c.Receive(props)
	assert.Equal(t, -1, c.State().SelectedIndex)

	props.SearchQuery = ""
	c.Receive(props)
	assert.Equal(t, 2, c.State().SelectedIndex, "a cleared query returns to the committed option")
}

func TestCloseOnChangeOverride(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		multiple bool
		flag     *bool
		wantOpen bool
	}{
		{name: "multiple closes when set", multiple: true, flag: Bool(true), wantOpen: false},
		{name: "multiple stays open by default", multiple: true, wantOpen: true},
		{name: "single stays open when turned off", multiple: false, flag: Bool(false), wantOpen: true},
		{name: "single closes by default", multiple: false, wantOpen: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name+" on enter", func(t *testing.T) {
			t.Parallel()

			c := New(Props{
				Options:            fruit(),
				Multiple:           tt.multiple,
				CloseOnChange:      tt.flag,
				SelectOnNavigation: Bool(false),
				DefaultOpen:        true,
			}, Ownership{}, Ports{}, Handlers{}, nil)
			c.Dispatch(KeyDown{Key: KeyArrowDown})

			notes := c.Dispatch(KeyDown{Key: KeyEnter})
			require.Len(t, only(notes, NotifyChange), 1)
			assert.Equal(t, tt.wantOpen, c.State().Open)
			assert.Equal(t, !tt.wantOpen, len(only(notes, NotifyClose)) == 1)
		})

		t.Run(tt.name+" on item click", func(t *testing.T) {
			t.Parallel()

			c := New(Props{
				Options:       fruit(),
				Multiple:      tt.multiple,
				CloseOnChange: tt.flag,
				DefaultOpen:   true,
			}, Ownership{}, Ports{}, Handlers{}, nil)

			notes := c.Dispatch(ItemClick{Index: 1})
			require.Len(t, only(notes, NotifyChange), 1)
			assert.Equal(t, tt.wantOpen, c.State().Open)
		})
	}
}

func TestMultipleNavigationNeverCommits(t *testing.T) {
	t.Parallel()

	c := New(Props{
		Options:            fruit(),
		Multiple:           true,
		SelectOnNavigation: Bool(true),
		DefaultOpen:        true,
	}, Ownership{}, Ports{}, Handlers{}, nil)

	assert.Empty(t, c.Dispatch(KeyDown{Key: KeyArrowDown}))
	assert.Empty(t, c.Dispatch(KeyDown{Key: KeyArrowDown}))
	assert.Equal(t, 2, c.State().SelectedIndex)
	assert.Empty(t, c.State().Values)
}
