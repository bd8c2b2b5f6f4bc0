package domain

// Dataset is the fixed, ordered set of candidate lines for a session.
// It is never mutated after construction.
type Dataset struct {
	lines []string
}

// NewDataset creates a dataset holding a private copy of lines
func NewDataset(lines []string) *Dataset {
	owned := make([]string, len(lines))
	copy(owned, lines)
	return &Dataset{lines: owned}
}

// Len returns the number of lines in the dataset
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.lines)
}

// Line returns the line at index i
func (d *Dataset) Line(i int) string {
	return d.lines[i]
}

// Selection is the result handed back when a session ends
type Selection struct {
	Selected bool
	Line     string // exact dataset line, only meaningful when Selected
}

// Status is the state of the selection state machine
type Status int

const (
	StatusContinue Status = iota
	StatusSelected
	StatusEscaped
)

// Terminal reports whether the session ends in this status
func (s Status) Terminal() bool {
	return s == StatusSelected || s == StatusEscaped
}

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusSelected:
		return "selected"
	case StatusEscaped:
		return "escaped"
	default:
		return "unknown"
	}
}
