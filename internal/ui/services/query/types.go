package query

// State holds the query buffer. Buf always holds valid UTF-8.
type State struct {
	Buf []byte
}

// Edit operations reported in ChangedEvent
const (
	OpSet    = "set"
	OpAppend = "append"
	OpRemove = "remove"
)

// ChangedEvent is published after every edit of the query
type ChangedEvent struct {
	Query string
	Op    string
}
