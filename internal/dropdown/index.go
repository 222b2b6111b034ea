package dropdown

// SelectedIndexFor re-derives the highlighted index after the selection or
// the option list changed. prev is the previous index, -1 when unset.
func SelectedIndexFor(options []Option, multiple bool, prev int, value Value) int {
	enabled := EnabledIndices(options)
	if len(enabled) == 0 {
		return -1
	}
	first, last := enabled[0], enabled[len(enabled)-1]

	next := -1
	switch {
	case !multiple:
		if active := IndexOfValue(options, value); active >= 0 && !options[active].Disabled {
			next = active
		}
	case prev >= 0:
		// Committed options leave the list, so keep the cursor near where it was.
		for _, i := range enabled {
			if i >= prev {
				next = i
				break
			}
		}
		if prev >= len(options)-1 {
			next = last
		}
	}

	if next < 0 {
		next = first
	}
	return next
}

// IndexAfterMove moves start by offset, skipping disabled options. At either
// end it wraps when wrap is set and stays put otherwise. A list without any
// enabled option leaves start unchanged.
func IndexAfterMove(options []Option, start, offset int, wrap bool) int {
	if len(options) == 0 || offset == 0 || len(EnabledIndices(options)) == 0 {
		return start
	}
	last := len(options) - 1
	next := start
	for range options {
		candidate := next + offset
		switch {
		case candidate > last:
			if !wrap {
				return start
			}
			candidate = 0
		case candidate < 0:
			if !wrap {
				return start
			}
			candidate = last
		}
		next = candidate
		if !options[next].Disabled {
			return next
		}
	}
	return start
}

// ScrollIntoView returns the first visible row that keeps index inside a
// window of rows lines starting at top.
func ScrollIntoView(top, index, rows int) int {
	if rows <= 0 || index < 0 {
		return top
	}
	if index < top {
		return index
	}
	if index >= top+rows {
		return index - rows + 1
	}
	return top
}
