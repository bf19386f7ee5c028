package ui

import (
	"selectkit/internal/ui/coordinator"
)

// PropsMsg carries a host refresh, e.g. after the config file was reloaded
type PropsMsg struct {
	Props coordinator.Props
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}
