package navigation

import (
	"coco/internal/ui/services/events"
)

// PromptRows is the number of terminal rows reserved for the query prompt
const PromptRows = 1

// Service handles cursor and scroll offset arithmetic. All computations use
// signed ints and are floored explicitly, so tiny terminals and empty lists
// never produce negative positions.
type Service struct {
	state *State
	bus   *events.Bus
}

// NewService creates a new navigation service
func NewService(bus *events.Bus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// GetCursor returns the cursor row within the window
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns the index of the first visible row
func (s *Service) GetViewportOffset() int {
	return s.state.Offset
}

// GetViewportHeight returns the number of rows available for the list
func (s *Service) GetViewportHeight() int {
	return s.state.Height
}

// GetTotal returns the length of the filtered list
func (s *Service) GetTotal() int {
	return s.state.Total
}

// SetViewportHeight updates the window from the terminal height
func (s *Service) SetViewportHeight(terminalRows int) {
	s.state.Height = max(0, terminalRows-PromptRows)
	s.clamp()
}

// SetTotal updates the length of the filtered list
func (s *Service) SetTotal(n int) {
	s.state.Total = max(0, n)
	s.clamp()
}

// VisibleRows returns how many list rows are drawn
func (s *Service) VisibleRows() int {
	return max(0, min(s.state.Total-s.state.Offset, s.state.Height))
}

// Selected returns the index into the filtered list under the cursor, or -1
// when the list is empty.
func (s *Service) Selected() int {
	if s.state.Total == 0 {
		return -1
	}
	return min(s.state.Offset+s.state.Cursor, s.state.Total-1)
}

// Navigate moves the cursor one row in a direction
func (s *Service) Navigate(direction Direction) {
	oldCursor, oldOffset := s.state.Cursor, s.state.Offset

	switch direction {
	case DirectionUp:
		s.moveUp()
	case DirectionDown:
		s.moveDown()
	}

	s.publish(oldCursor, oldOffset)
}

// Reset snaps the view back to the top of the list
func (s *Service) Reset() {
	oldCursor, oldOffset := s.state.Cursor, s.state.Offset
	s.state.Cursor = 0
	s.state.Offset = 0
	s.publish(oldCursor, oldOffset)
}

// Internal navigation methods
func (s *Service) moveUp() {
	if s.state.Cursor == 0 {
		s.state.Offset = max(0, s.state.Offset-1)
		return
	}
	s.state.Cursor--
}

func (s *Service) moveDown() {
	n, h := s.state.Total, s.state.Height
	if n == 0 {
		return
	}
	if s.state.Cursor == h-1 {
		s.state.Offset = min(s.state.Offset+1, max(0, n-h))
		return
	}
	s.state.Cursor = min(s.state.Cursor+1, max(0, s.VisibleRows()-1))
}

// clamp restores the invariants after the list or the window changed size,
// keeping the selected item on screen when it still exists.
func (s *Service) clamp() {
	n, h := s.state.Total, s.state.Height
	if n == 0 {
		s.state.Cursor = 0
		s.state.Offset = 0
		return
	}

	selected := min(s.state.Offset+s.state.Cursor, n-1)
	maxOffset := max(0, n-h)

	offset := min(s.state.Offset, maxOffset)
	if selected < offset {
		offset = selected
	}
	if h > 0 && selected >= offset+h {
		offset = selected - h + 1
	}
	s.state.Offset = max(0, min(offset, maxOffset))

	rows := s.VisibleRows()
	s.state.Cursor = max(0, min(selected-s.state.Offset, rows-1))
}

func (s *Service) publish(oldCursor, oldOffset int) {
	if oldCursor != s.state.Cursor {
		s.bus.Publish(CursorMovedEvent{
			OldCursor: oldCursor,
			NewCursor: s.state.Cursor,
		})
	}
	if oldOffset != s.state.Offset {
		s.bus.Publish(ViewportChangedEvent{
			Offset: s.state.Offset,
			Height: s.state.Height,
		})
	}
}
