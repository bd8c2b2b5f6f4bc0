package filter

import (
	"time"

	"coco/internal/domain"
	"coco/internal/ui/services/events"
)

// Service computes filtered views of a dataset
type Service struct {
	compile Compiler
	bus     *events.Bus
}

// NewService creates a filter service using the given compiler
func NewService(compile Compiler, bus *events.Bus) *Service {
	if compile == nil {
		compile = compileRE2
	}
	return &Service{
		compile: compile,
		bus:     bus,
	}
}

// All returns the identity view of the dataset
func All(ds *domain.Dataset) View {
	view := make(View, ds.Len())
	for i := range view {
		view[i] = i
	}
	return view
}

// Apply returns the lines of ds that contain a match for query, in dataset
// order. An empty query matches everything. If the query does not compile,
// Apply returns a nil view and a *PatternError; callers keep their previous
// view.
func (s *Service) Apply(ds *domain.Dataset, query string) (View, error) {
	start := time.Now()
	if query == "" {
		view := All(ds)
		s.bus.Publish(AppliedEvent{Query: query, Matches: len(view), Elapsed: time.Since(start)})
		return view, nil
	}

	m, err := s.compile(query)
	if err != nil {
		perr := &PatternError{Pattern: query, Err: err}
		s.bus.Publish(PatternRejectedEvent{Query: query, Err: perr})
		return nil, perr
	}

	view := make(View, 0, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		if m.MatchString(ds.Line(i)) {
			view = append(view, i)
		}
	}

	elapsed := time.Since(start)
	s.bus.Publish(AppliedEvent{Query: query, Matches: len(view), Elapsed: elapsed})
	return view, nil
}
