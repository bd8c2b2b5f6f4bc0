package query

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"coco/internal/ui/services/events"
)

// ErrMalformedInput is returned when input would put an invalid or partial
// character into the query. It is fatal for the session.
var ErrMalformedInput = errors.New("malformed character sequence")

// Service edits the query one whole character at a time
type Service struct {
	state *State
	bus   *events.Bus
}

// NewService creates a new query service with an empty buffer
func NewService(bus *events.Bus) *Service {
	return &Service{
		state: &State{},
		bus:   bus,
	}
}

// Value returns the current query
func (s *Service) Value() string {
	return string(s.state.Buf)
}

// Len returns the number of characters in the query
func (s *Service) Len() int {
	return utf8.RuneCount(s.state.Buf)
}

// IsEmpty reports whether the query is empty
func (s *Service) IsEmpty() bool {
	return len(s.state.Buf) == 0
}

// Set replaces the whole query
func (s *Service) Set(value string) error {
	if err := validate(value); err != nil {
		return err
	}
	s.state.Buf = append(s.state.Buf[:0], value...)
	s.bus.Publish(ChangedEvent{Query: value, Op: OpSet})
	return nil
}

// Append adds one character to the end of the query
func (s *Service) Append(r rune) error {
	return s.AppendRunes([]rune{r})
}

// AppendRunes adds several characters. Nothing is appended unless every
// rune is valid.
func (s *Service) AppendRunes(runes []rune) error {
	for _, r := range runes {
		if r == utf8.RuneError || !utf8.ValidRune(r) {
			return fmt.Errorf("%w: invalid character %U", ErrMalformedInput, r)
		}
	}
	for _, r := range runes {
		s.state.Buf = utf8.AppendRune(s.state.Buf, r)
	}
	s.bus.Publish(ChangedEvent{Query: s.Value(), Op: OpAppend})
	return nil
}

// RemoveLast deletes the last character. It returns false if the query was
// already empty.
func (s *Service) RemoveLast() bool {
	if len(s.state.Buf) == 0 {
		return false
	}
	_, size := utf8.DecodeLastRune(s.state.Buf)
	s.state.Buf = s.state.Buf[:len(s.state.Buf)-size]
	s.bus.Publish(ChangedEvent{Query: s.Value(), Op: OpRemove})
	return true
}

// validate reports the first byte offset that does not start a valid
// character, distinguishing a stray continuation byte from a truncated
// multi-byte sequence.
func validate(value string) error {
	for i := 0; i < len(value); {
		r, size := utf8.DecodeRuneInString(value[i:])
		if r == utf8.RuneError && size <= 1 {
			b := value[i]
			switch {
			case b&0xC0 == 0x80:
				return fmt.Errorf("%w: continuation byte %#02x without lead byte at offset %d", ErrMalformedInput, b, i)
			case b >= 0xC2 && b <= 0xF4:
				return fmt.Errorf("%w: truncated sequence starting with %#02x at offset %d", ErrMalformedInput, b, i)
			default:
				return fmt.Errorf("%w: invalid byte %#02x at offset %d", ErrMalformedInput, b, i)
			}
		}
		i += size
	}
	return nil
}
