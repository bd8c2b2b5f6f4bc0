package input

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"coco/internal/domain"
)

// KeyMap holds the bindings for the non-character events
type KeyMap struct {
	Enter     key.Binding
	Escape    key.Binding
	Up        key.Binding
	Down      key.Binding
	Backspace key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Enter: key.NewBinding(
			key.WithKeys("enter", "ctrl+j"),
			key.WithHelp("enter", "select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "ctrl+c", "ctrl+g"),
			key.WithHelp("esc", "cancel"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "down"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("backspace", "delete char"),
		),
	}
}

// Translate converts a key message into session events. Typed text is
// checked first, so a printable key never triggers a binding. A message
// carrying several runes (fast typing, paste) yields one event per rune.
func (k KeyMap) Translate(msg tea.KeyMsg) []domain.Event {
	switch {
	case msg.Type == tea.KeyRunes && !msg.Alt:
		evs := make([]domain.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			evs = append(evs, domain.Character(r))
		}
		return evs
	case msg.Type == tea.KeySpace && !msg.Alt:
		return []domain.Event{domain.Character(' ')}
	case key.Matches(msg, k.Enter):
		return []domain.Event{domain.Key(domain.EventEnter)}
	case key.Matches(msg, k.Escape):
		return []domain.Event{domain.Key(domain.EventEscape)}
	case key.Matches(msg, k.Up):
		return []domain.Event{domain.Key(domain.EventUp)}
	case key.Matches(msg, k.Down):
		return []domain.Event{domain.Key(domain.EventDown)}
	case key.Matches(msg, k.Backspace):
		return []domain.Event{domain.Key(domain.EventBackspace)}
	default:
		return []domain.Event{domain.Key(domain.EventUnknown)}
	}
}
