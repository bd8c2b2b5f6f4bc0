package state

import (
	"coco/internal/domain"
	"coco/internal/ui/services/filter"
)

// Session contains the data of one selection session. The query text and
// the cursor/offset pair live in the query and navigation services.
type Session struct {
	Dataset    *domain.Dataset // candidate lines, never mutated
	View       filter.View     // lines matching the last valid query
	PatternErr error           // set while the query does not compile
	Status     domain.Status   // state machine position
}

// NewSession creates a session showing every line of the dataset
func NewSession(ds *domain.Dataset) *Session {
	return &Session{
		Dataset: ds,
		View:    filter.All(ds),
		Status:  domain.StatusContinue,
	}
}

// Total returns the number of lines in the filtered view
func (s *Session) Total() int {
	return len(s.View)
}

// Line returns the dataset line at position i of the filtered view
func (s *Session) Line(i int) string {
	return s.Dataset.Line(s.View[i])
}

// Lines returns up to count lines of the filtered view starting at from
func (s *Session) Lines(from, count int) []string {
	if from < 0 || from >= len(s.View) || count <= 0 {
		return nil
	}
	end := min(len(s.View), from+count)
	out := make([]string, 0, end-from)
	for i := from; i < end; i++ {
		out = append(out, s.Line(i))
	}
	return out
}
