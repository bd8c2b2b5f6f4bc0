package input

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"coco/internal/domain"
	"coco/internal/ui/services/filter"
	"coco/internal/ui/services/navigation"
	"coco/internal/ui/services/query"
	"coco/internal/ui/state"
)

// Handler is the session state machine. It applies one event at a time to
// the query, filter and navigation services.
type Handler struct {
	session *state.Session
	query   *query.Service
	filter  *filter.Service
	nav     *navigation.Service
	keys    KeyMap
}

// New creates a handler over a session and its services
func New(session *state.Session, q *query.Service, f *filter.Service, nav *navigation.Service, keys KeyMap) *Handler {
	h := &Handler{
		session: session,
		query:   q,
		filter:  f,
		nav:     nav,
		keys:    keys,
	}
	h.nav.SetTotal(session.Total())
	return h
}

// SetInitialQuery seeds the query before the first event and filters the
// dataset with it
func (h *Handler) SetInitialQuery(value string) error {
	if err := h.query.Set(value); err != nil {
		return err
	}
	h.refilter()
	return nil
}

// HandleKey translates a key message and dispatches the resulting events,
// stopping at the first terminal status
func (h *Handler) HandleKey(msg tea.KeyMsg) (domain.Status, error) {
	status := h.session.Status
	for _, ev := range h.keys.Translate(msg) {
		var err error
		status, err = h.Dispatch(ev)
		if err != nil {
			return status, err
		}
		if status.Terminal() {
			break
		}
	}
	return status, nil
}

// Dispatch applies a single event. Terminal states absorb further events.
// The only error is query.ErrMalformedInput, which ends the session.
func (h *Handler) Dispatch(ev domain.Event) (domain.Status, error) {
	if h.session.Status.Terminal() {
		return h.session.Status, nil
	}

	switch ev.Type() {
	case domain.EventEnter:
		if h.session.Total() > 0 {
			h.session.Status = domain.StatusSelected
		} else {
			h.session.Status = domain.StatusEscaped
		}

	case domain.EventEscape:
		h.session.Status = domain.StatusEscaped

	case domain.EventUp:
		h.nav.Navigate(navigation.DirectionUp)

	case domain.EventDown:
		h.nav.Navigate(navigation.DirectionDown)

	case domain.EventBackspace:
		if h.query.RemoveLast() {
			h.refilter()
		}

	case domain.EventCharacter:
		if err := h.query.Append(ev.Char); err != nil {
			return h.session.Status, err
		}
		h.refilter()

	case domain.EventUnknown:
		// ignored
	}

	if h.session.Status.Terminal() {
		slog.Debug("session finished", "status", h.session.Status, "query", h.query.Value())
	}
	return h.session.Status, nil
}

// Resize updates the viewport from the terminal height
func (h *Handler) Resize(terminalRows int) {
	h.nav.SetViewportHeight(terminalRows)
}

// Result returns the selection once the session is over
func (h *Handler) Result() domain.Selection {
	if h.session.Status != domain.StatusSelected {
		return domain.Selection{}
	}
	idx := h.nav.Selected()
	if idx < 0 {
		return domain.Selection{}
	}
	return domain.Selection{Selected: true, Line: h.session.Line(idx)}
}

// Query returns the current query text
func (h *Handler) Query() string {
	return h.query.Value()
}

// Session returns the session data
func (h *Handler) Session() *state.Session {
	return h.session
}

// Navigator returns the viewport service
func (h *Handler) Navigator() *navigation.Service {
	return h.nav
}

// VisibleLines returns the lines currently drawn in the window
func (h *Handler) VisibleLines() []string {
	return h.session.Lines(h.nav.GetViewportOffset(), h.nav.VisibleRows())
}

// refilter recomputes the view from the full dataset. An invalid pattern
// keeps the previous view and records the error. Every edit snaps the
// viewport back to the top.
func (h *Handler) refilter() {
	view, err := h.filter.Apply(h.session.Dataset, h.query.Value())
	if err != nil {
		h.session.PatternErr = err
	} else {
		h.session.View = view
		h.session.PatternErr = nil
	}
	h.nav.SetTotal(h.session.Total())
	h.nav.Reset()
}
