package viewmodels

import (
	"strconv"

	"selectkit/internal/domain"
)

// Source is the read side of a dropdown that a view model is built from
type Source interface {
	ID() string
	IsOpen() bool
	IsDisabled() bool
	Mode() domain.Mode
	IsSearchable() bool
	SearchFocused() bool
	SearchTerm() string
	Visible() []domain.OptionRecord
	FocusIndex() int
	Value() domain.Selection
	Summary() string
}

// OptionView is one visible option with its render-time flags
type OptionView struct {
	Option   domain.OptionRecord
	ID       string
	Selected bool
	Focused  bool
}

// ViewModel is a plain snapshot of a dropdown, safe to hand to any renderer
type ViewModel struct {
	ID               string
	TriggerID        string
	ListboxID        string
	IsOpen           bool
	Disabled         bool
	Mode             domain.Mode
	Searchable       bool
	SearchFocused    bool
	SearchTerm       string
	VisibleOptions   []OptionView
	FocusIndex       int
	Selection        domain.Selection
	Summary          string
	Empty            bool   // open with nothing to show: render "no results"
	ActiveDescendant string // id of the focused option, "" when none
}

// Build creates a ViewModel from src
func Build(src Source) ViewModel {
	id := src.ID()
	visible := src.Visible()
	focus := src.FocusIndex()
	sel := src.Value()

	vm := ViewModel{
		ID:             id,
		TriggerID:      id + "-trigger",
		ListboxID:      id + "-listbox",
		IsOpen:         src.IsOpen(),
		Disabled:       src.IsDisabled(),
		Mode:           src.Mode(),
		Searchable:     src.IsSearchable(),
		SearchFocused:  src.SearchFocused(),
		SearchTerm:     src.SearchTerm(),
		VisibleOptions: make([]OptionView, len(visible)),
		FocusIndex:     focus,
		Selection:      sel,
		Summary:        src.Summary(),
	}
	for i, opt := range visible {
		vm.VisibleOptions[i] = OptionView{
			Option:   opt,
			ID:       OptionID(id, i),
			Selected: sel.Contains(opt.Value),
			Focused:  i == focus,
		}
	}
	vm.Empty = vm.IsOpen && len(visible) == 0
	if vm.IsOpen && focus >= 0 && focus < len(visible) {
		vm.ActiveDescendant = OptionID(id, focus)
	}
	return vm
}

// OptionID returns the element id of the visible option at index
func OptionID(widgetID string, index int) string {
	return widgetID + "-option-" + strconv.Itoa(index)
}

// SelectedCount returns how many visible options are selected
func (vm ViewModel) SelectedCount() int {
	n := 0
	for _, o := range vm.VisibleOptions {
		if o.Selected {
			n++
		}
	}
	return n
}
