package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Trigger       lipgloss.Style
	TriggerOpen   lipgloss.Style
	Placeholder   lipgloss.Style
	Disabled      lipgloss.Style
	Search        lipgloss.Style
	Option        lipgloss.Style
	Focused       lipgloss.Style
	Selected      lipgloss.Style
	OptionOff     lipgloss.Style
	Hint          lipgloss.Style
	NoResults     lipgloss.Style
	Scroll        lipgloss.Style
	Help          lipgloss.Style
	Status        lipgloss.Style
	StatusWarning lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Trigger:     lipgloss.NewStyle().Bold(true),
		TriggerOpen: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Disabled:    lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Search:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Option:      lipgloss.NewStyle(),
		Focused: lipgloss.NewStyle().
			Background(lipgloss.Color("238")).
			Bold(true),
		Selected:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		OptionOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Hint:          lipgloss.NewStyle().Faint(true).Italic(true),
		NoResults:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Scroll:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Help:          lipgloss.NewStyle().Faint(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
