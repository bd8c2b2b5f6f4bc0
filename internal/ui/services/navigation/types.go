package navigation

// State holds all viewport-related state
type State struct {
	Cursor int // selected row within the visible window
	Offset int // index of the first visible row of the filtered list
	Height int // visible rows available for the list
	Total  int // length of the filtered list
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Event types for viewport changes
type CursorMovedEvent struct {
	OldCursor int
	NewCursor int
}

type ViewportChangedEvent struct {
	Offset int
	Height int
}
