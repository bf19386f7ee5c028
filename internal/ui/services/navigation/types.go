package navigation

// State holds all navigation-related state
type State struct {
	Focus int // index into the visible options, -1 when nothing is focused
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionHome Direction = "home"
	DirectionEnd  Direction = "end"
)

// Event types for navigation changes
type FocusMovedEvent struct {
	OldIndex int
	NewIndex int
}
