package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"selectkit/internal/config"
	"selectkit/internal/domain"
	"selectkit/internal/eventbus"
	"selectkit/internal/ui/coordinator"
	"selectkit/internal/ui/input"
	inputtypes "selectkit/internal/ui/input/types"
	"selectkit/internal/ui/views"
)

// statusTimeout is how long a diagnostic stays on the status line
const statusTimeout = 3 * time.Second

// Result is what the session ended with
type Result struct {
	Value     domain.Selection
	Labels    []string
	Cancelled bool
}

// Model hosts one dropdown in a terminal. It plays the role of the
// environment: every key and pointer press is published on the environment
// bus before the dropdown sees it.
type Model struct {
	env      eventbus.EventBus
	config   *config.Config
	dropdown *coordinator.Dropdown

	// UI-specific state
	width        int
	height       int
	help         help.Model
	renderer     *views.Renderer
	inputHandler *input.Handler
	layout       views.Layout
	offset       int
	status       string
	statusDirty  bool

	value  domain.Selection // last value reported by the dropdown
	result *Result
}

// NewModel creates a new UI model from cfg
func NewModel(env eventbus.EventBus, cfg *config.Config) (*Model, error) {
	props, err := PropsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if env == nil {
		env = eventbus.New()
	}

	m := &Model{
		env:          env,
		config:       cfg,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(input.DefaultKeyMap()),
		layout:       views.Layout{MenuTop: -1, MenuBottom: -1},
	}

	m.dropdown = coordinator.New(coordinator.Config{
		Environment: env,
		HitTester:   coordinator.HitTestFunc(m.hitTest),
		OnChange:    m.onChange,
		Warn:        m.warn,
		ID:          "selectkit",
	}, props)
	m.value = m.dropdown.Value()
	return m, nil
}

// PropsFromConfig converts a loaded config into dropdown props
func PropsFromConfig(cfg *config.Config) (coordinator.Props, error) {
	mode, err := cfg.SelectionMode()
	if err != nil {
		return coordinator.Props{}, err
	}
	options, err := cfg.Catalog()
	if err != nil {
		return coordinator.Props{}, err
	}
	value, err := cfg.InitialValue()
	if err != nil {
		return coordinator.Props{}, err
	}
	return coordinator.Props{
		Options:     options,
		Value:       value,
		Mode:        mode,
		Searchable:  cfg.Searchable,
		Placeholder: cfg.Placeholder,
		// picking the current value again still ends a single-choice session
		EmitOnReselect: mode == domain.Single,
	}, nil
}

// Dropdown returns the hosted dropdown
func (m *Model) Dropdown() *coordinator.Dropdown {
	return m.dropdown
}

// Result returns how the session ended, or nil while it is still running
func (m *Model) Result() *Result {
	return m.result
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.result != nil {
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmds = append(cmds, m.handleKey(msg))

	case tea.MouseMsg:
		m.handleMouse(msg)

	case PropsMsg:
		m.dropdown.SetProps(msg.Props)

	case clearStatusMsg:
		m.status = ""
	}

	m.inputHandler.SyncText(m.dropdown.SearchTerm(), m.dropdown.SearchFocused())

	if m.statusDirty {
		m.statusDirty = false
		cmds = append(cmds, tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} }))
	}
	if m.result != nil {
		m.dropdown.Close()
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Decide against the state the key was pressed in; the environment
	// listeners below may close the menu before the actions run.
	ctx := inputContext{
		open:       m.dropdown.IsOpen(),
		searchable: m.dropdown.IsSearchable(),
	}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	m.env.Publish(domain.KeyDownEvent{Code: keyCode(msg)})

	for _, action := range actions {
		m.processAction(action)
	}
	return cmd
}

func (m *Model) processAction(action inputtypes.Action) {
	log.Printf("processAction: %T", action)
	switch a := action.(type) {
	case inputtypes.KeyAction:
		m.dropdown.KeyDown(a.Code)
	case inputtypes.UpdateTextAction:
		m.dropdown.ChangeSearch(a.Text)
	case inputtypes.ClearAction:
		m.dropdown.ClearSelection()
	case inputtypes.ToggleHelpAction:
		m.help.ShowAll = !m.help.ShowAll
	case inputtypes.ConfirmAction:
		m.finish(false)
	case inputtypes.QuitAction:
		m.finish(true)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if i, ok := m.layout.OptionAt(msg.Y); ok {
			m.dropdown.HoverOption(i)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.env.Publish(domain.PointerDownEvent{At: domain.Point{X: msg.X, Y: msg.Y}})

		if m.layout.InTrigger(msg.Y) {
			m.dropdown.ActivateTrigger()
		} else if i, ok := m.layout.OptionAt(msg.Y); ok {
			m.dropdown.ActivateOption(i)
		}
	}
}

// hitTest classifies a press by the rows of the last frame
func (m *Model) hitTest(region coordinator.Region, ev domain.PointerDownEvent) bool {
	switch region {
	case coordinator.RegionTrigger:
		return m.layout.InTrigger(ev.At.Y)
	case coordinator.RegionMenu:
		return m.layout.InMenu(ev.At.Y)
	}
	return false
}

func (m *Model) onChange(sel domain.Selection) {
	m.value = sel
	log.Printf("value changed: %s", sel)
	if sel.Mode() == domain.Single && !sel.IsEmpty() {
		m.finish(false)
	}
}

func (m *Model) warn(format string, args ...any) {
	log.Printf(format, args...)
	m.setStatus(fmt.Sprintf(format, args...))
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusDirty = true
}

func (m *Model) finish(cancelled bool) {
	if m.result != nil {
		return
	}
	r := &Result{Value: m.value, Cancelled: cancelled}
	for _, k := range m.value.Keys() {
		label := m.dropdown.Catalog.Label(k)
		if label == "" {
			label = k.String()
		}
		r.Labels = append(r.Labels, label)
	}
	m.result = r
}

// View renders the UI
func (m *Model) View() string {
	if m.result != nil {
		return ""
	}

	width := m.config.UISettings.Width
	if m.width > 0 && (width <= 0 || width > m.width) {
		width = m.width
	}

	state := views.RenderState{
		Width:      width,
		MaxVisible: m.maxVisible(),
		Offset:     m.offset,
		SearchView: m.inputHandler.TextInput().View(),
		Status:     m.status,
	}
	if m.config.UISettings.ShowHelp {
		state.HelpView = m.help.View(m.inputHandler.Keys())
	}

	out, layout := m.renderer.Render(m.dropdown.ViewModel(), state)
	m.layout = layout
	m.offset = layout.Offset
	return out
}

// maxVisible caps the window so the frame fits the terminal
func (m *Model) maxVisible() int {
	n := m.config.UISettings.MaxVisible
	if m.height > 0 {
		// trigger, search, two scroll hints, status, help
		if room := m.height - 8; room > 0 && room < n {
			n = room
		}
	}
	return n
}

// inputContext is the dropdown state a key press is interpreted against
type inputContext struct {
	open, searchable bool
}

func (c inputContext) IsOpen() bool       { return c.open }
func (c inputContext) IsSearchable() bool { return c.searchable }

// keyCode translates a terminal key into an environment key code
func keyCode(msg tea.KeyMsg) domain.KeyCode {
	switch msg.Type {
	case tea.KeyEnter:
		return domain.KeyEnter
	case tea.KeySpace:
		return domain.KeySpace
	case tea.KeyEsc:
		return domain.KeyEscape
	case tea.KeyTab:
		return domain.KeyTab
	case tea.KeyUp:
		return domain.KeyUp
	case tea.KeyDown:
		return domain.KeyDown
	case tea.KeyHome:
		return domain.KeyHome
	case tea.KeyEnd:
		return domain.KeyEnd
	}
	return domain.KeyUnknown
}
