package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/ui/input/modes"
	"selectkit/internal/ui/input/types"
)

// Handler turns key messages into dropdown actions
type Handler struct {
	keys      KeyMap
	modes     map[types.Mode]types.ModeHandler
	textInput *textinput.Model // search field text
}

// New creates a handler with the given bindings
func New(keys KeyMap) *Handler {
	ti := textinput.New()
	ti.Prompt = "" // Prompt is handled in the UI layer
	ti.Placeholder = "type to filter"

	mk := modes.Keys{
		Up: keys.Up, Down: keys.Down, Home: keys.Home, End: keys.End,
		Select: keys.Select, Toggle: keys.Toggle,
		Dismiss: keys.Dismiss, Tab: keys.Tab,
		Clear: keys.Clear, Confirm: keys.Confirm,
		Help: keys.Help, Quit: keys.Quit,
	}
	return &Handler{
		keys:      keys,
		textInput: &ti,
		modes: map[types.Mode]types.ModeHandler{
			types.ModeClosed: modes.NewClosedMode(mk),
			types.ModeList:   modes.NewListMode(mk),
			types.ModeSearch: modes.NewSearchMode(mk),
		},
	}
}

// HandleKey processes a key for the mode implied by ctx
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	mode := types.ModeFor(ctx)
	handler := h.modes[mode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed || !ctx.IsSearchable() {
		return actions, nil
	}

	// Unhandled keys in a searchable dropdown edit the search text
	if !h.textInput.Focused() {
		h.textInput.Focus()
	}
	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		actions = append(actions, types.UpdateTextAction{Text: after})
	}
	return actions, cmd
}

// SyncText makes the search field show term, e.g. after the dropdown reset it
func (h *Handler) SyncText(term string, focused bool) {
	if h.textInput.Value() != term {
		h.textInput.SetValue(term)
	}
	if focused && !h.textInput.Focused() {
		h.textInput.Focus()
	} else if !focused && h.textInput.Focused() {
		h.textInput.Blur()
	}
}

// TextInput returns the search field model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Keys returns the bindings
func (h *Handler) Keys() KeyMap {
	return h.keys
}
