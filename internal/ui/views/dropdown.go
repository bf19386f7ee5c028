package views

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"selectkit/internal/domain"
	"selectkit/internal/ui/viewmodels"
)

// RenderState contains everything besides the view model needed for a frame
type RenderState struct {
	Width      int
	MaxVisible int
	Offset     int    // previous scroll offset
	SearchView string // rendered search field
	HelpView   string // rendered help, "" to hide
	Status     string
}

// Renderer draws a dropdown as plain terminal lines, one row per line
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Render produces the frame and the layout it was drawn with
func (r *Renderer) Render(vm viewmodels.ViewModel, state RenderState) (string, Layout) {
	width := state.Width
	if width <= 0 {
		width = 40
	}

	var lines []string
	layout := Layout{TriggerRow: 0, MenuTop: -1, MenuBottom: -1, Options: map[int]int{}}

	lines = append(lines, r.renderTrigger(vm, width))

	if vm.IsOpen {
		layout.MenuTop = len(lines)

		if vm.Searchable {
			lines = append(lines, r.styles.Search.Render("/ ")+state.SearchView)
		}

		if vm.Empty {
			lines = append(lines, r.styles.NoResults.Render("  no results"))
		} else {
			size := state.MaxVisible
			if size <= 0 {
				size = len(vm.VisibleOptions)
			}
			offset := ScrollOffset(state.Offset, vm.FocusIndex, len(vm.VisibleOptions), size)
			end := offset + size
			if end > len(vm.VisibleOptions) {
				end = len(vm.VisibleOptions)
			}
			layout.Offset = offset

			if offset > 0 {
				lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", offset)))
			}
			for i := offset; i < end; i++ {
				layout.Options[len(lines)] = i
				lines = append(lines, r.renderOption(vm, vm.VisibleOptions[i], width))
			}
			if rest := len(vm.VisibleOptions) - end; rest > 0 {
				lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", rest)))
			}
		}
		layout.MenuBottom = len(lines) - 1
	}

	if state.Status != "" {
		lines = append(lines, r.styles.StatusWarning.Render(truncate(state.Status, width)))
	}
	if state.HelpView != "" {
		lines = append(lines, "", r.styles.Help.Render(state.HelpView))
	}
	return strings.Join(lines, "\n"), layout
}

func (r *Renderer) renderTrigger(vm viewmodels.ViewModel, width int) string {
	arrow := "▾"
	if vm.IsOpen {
		arrow = "▴"
	}
	text := truncate(vm.Summary, width-4)
	if pad := width - 4 - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}

	style := r.styles.Trigger
	switch {
	case vm.Disabled:
		style = r.styles.Disabled
	case vm.Selection.IsEmpty():
		style = r.styles.Placeholder
	case vm.IsOpen:
		style = r.styles.TriggerOpen
	}
	return style.Render("[ " + text + " " + arrow + "]")
}

func (r *Renderer) renderOption(vm viewmodels.ViewModel, o viewmodels.OptionView, width int) string {
	cursor := "  "
	if o.Focused {
		cursor = "› "
	}

	marker := "  "
	if vm.Mode == domain.Multiple {
		marker = "[ ] "
		if o.Selected {
			marker = "[x] "
		}
	} else if o.Selected {
		marker = "● "
	}

	room := width - runewidth.StringWidth(cursor+marker)
	label := truncate(o.Option.Label, room)
	hint := ""
	if s, ok := o.Option.Decoration.(string); ok && s != "" {
		if left := room - runewidth.StringWidth(label) - 1; left > 2 {
			hint = " " + r.styles.Hint.Render(truncate(s, left))
		}
	}

	style := r.styles.Option
	switch {
	case o.Option.Disabled:
		style = r.styles.OptionOff
	case o.Selected:
		style = r.styles.Selected
	}
	if o.Focused {
		style = style.Inherit(r.styles.Focused)
	}
	return cursor + style.Render(marker+label) + hint
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
