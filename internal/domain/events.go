package domain

import "fmt"

// EventType represents the kind of input event fed to a session
type EventType int

// Event types
const (
	EventUnknown EventType = iota
	EventEnter
	EventEscape
	EventUp
	EventDown
	EventBackspace
	EventCharacter
)

func (t EventType) String() string {
	switch t {
	case EventEnter:
		return "Enter"
	case EventEscape:
		return "Escape"
	case EventUp:
		return "Up"
	case EventDown:
		return "Down"
	case EventBackspace:
		return "Backspace"
	case EventCharacter:
		return "Character"
	default:
		return "Unknown"
	}
}

// Event is one decoded key press. Char is only set for EventCharacter.
type Event struct {
	kind EventType
	Char rune
}

// Type returns the kind of the event
func (e Event) Type() EventType { return e.kind }

func (e Event) String() string {
	if e.kind == EventCharacter {
		return fmt.Sprintf("Character(%q)", e.Char)
	}
	return e.kind.String()
}

// Key creates a payload-free event of the given type. Character events
// need a rune, so Key(EventCharacter) yields an unknown event.
func Key(t EventType) Event {
	if t == EventCharacter {
		return Event{kind: EventUnknown}
	}
	return Event{kind: t}
}

// Character creates a character input event
func Character(r rune) Event {
	return Event{kind: EventCharacter, Char: r}
}
