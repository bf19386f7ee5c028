package views

// Layout records which screen rows the last render put things on, so the
// host can classify pointer presses
type Layout struct {
	TriggerRow int
	MenuTop    int // first menu row, -1 when closed
	MenuBottom int // last menu row, inclusive
	Options    map[int]int
	Offset     int // index of the first option in the window
}

// InTrigger reports whether row is the trigger
func (l Layout) InTrigger(row int) bool {
	return row == l.TriggerRow
}

// InMenu reports whether row lies on the menu surface
func (l Layout) InMenu(row int) bool {
	return l.MenuTop >= 0 && row >= l.MenuTop && row <= l.MenuBottom
}

// OptionAt returns the visible option index rendered on row
func (l Layout) OptionAt(row int) (int, bool) {
	i, ok := l.Options[row]
	return i, ok
}

// ScrollOffset returns the window start that keeps focus visible. The
// window only moves when focus leaves it.
func ScrollOffset(offset, focus, count, size int) int {
	if size <= 0 || count <= size {
		return 0
	}
	if focus >= 0 {
		if focus < offset {
			offset = focus
		} else if focus >= offset+size {
			offset = focus - size + 1
		}
	}
	if offset > count-size {
		offset = count - size
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}
