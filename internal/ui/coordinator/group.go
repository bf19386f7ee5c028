package coordinator

// Group is owned by a parent that lays out several dropdowns side by side.
// At most one member is open at a time: opening one dismisses the others.
type Group struct {
	members []*Dropdown
}

// NewGroup creates an empty group
func NewGroup() *Group {
	return &Group{}
}

// OpenMember returns the member that is currently open, or nil
func (g *Group) OpenMember() *Dropdown {
	for _, m := range g.members {
		if m.IsOpen() {
			return m
		}
	}
	return nil
}

// Len returns the number of members
func (g *Group) Len() int {
	return len(g.members)
}

// DismissAll closes every member
func (g *Group) DismissAll() {
	for _, m := range g.snapshot() {
		m.Dismiss()
	}
}

func (g *Group) add(d *Dropdown) func() {
	g.members = append(g.members, d)
	return func() {
		for i, m := range g.members {
			if m == d {
				g.members = append(g.members[:i:i], g.members[i+1:]...)
				return
			}
		}
	}
}

func (g *Group) opened(d *Dropdown) {
	for _, m := range g.snapshot() {
		if m != d {
			m.Dismiss()
		}
	}
}

func (g *Group) snapshot() []*Dropdown {
	return append([]*Dropdown(nil), g.members...)
}
