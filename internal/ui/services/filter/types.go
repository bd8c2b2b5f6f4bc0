package filter

import (
	"fmt"
	"time"
)

// View is the filtered list: ordered indices into the dataset
type View []int

// PatternError reports a query that is not a valid regular expression.
// It is recoverable: the previous view stays on screen.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// Event types
type AppliedEvent struct {
	Query   string
	Matches int
	Elapsed time.Duration
}

type PatternRejectedEvent struct {
	Query string
	Err   error
}
