package ui

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"coco/internal/config"
	"coco/internal/domain"
	"coco/internal/ui/input"
	"coco/internal/ui/services/events"
	"coco/internal/ui/services/filter"
	"coco/internal/ui/services/navigation"
	"coco/internal/ui/services/query"
	"coco/internal/ui/state"
	"coco/internal/ui/views"
)

// Model is the Bubble Tea model of one selection session
type Model struct {
	handler  *input.Handler
	renderer *views.Renderer
	prompt   string

	width int
	err   error // fatal input error, ends the session
}

// Option configures a Model
type Option func(*Model)

// WithSize sets the terminal size used before the first WindowSizeMsg
func WithSize(width, height int) Option {
	return func(m *Model) {
		m.width = width
		m.handler.Resize(height)
	}
}

// NewModel creates a new UI model over a dataset
func NewModel(cfg *config.Config, ds *domain.Dataset, opts ...Option) (*Model, error) {
	compile, err := filter.CompilerFor(filter.Engine(cfg.RegexEngine))
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	subscribeLogging(bus)

	handler := input.New(
		state.NewSession(ds),
		query.NewService(bus),
		filter.NewService(compile, bus),
		navigation.NewService(bus),
		input.DefaultKeyMap(),
	)

	m := &Model{
		handler:  handler,
		renderer: views.NewRenderer(views.NewStyles(cfg.Style)),
		prompt:   cfg.Prompt,
	}
	for _, opt := range opts {
		opt(m)
	}

	if cfg.Query != "" {
		if err := handler.SetInitialQuery(cfg.Query); err != nil {
			return nil, fmt.Errorf("invalid initial query: %w", err)
		}
	}

	slog.Debug("selector ready", "lines", ds.Len(), "engine", cfg.RegexEngine)
	return m, nil
}

// subscribeLogging traces service events at debug level
func subscribeLogging(bus *events.Bus) {
	events.On(bus, func(e query.ChangedEvent) {
		slog.Debug("query changed", "query", e.Query, "op", e.Op)
	})
	events.On(bus, func(e filter.AppliedEvent) {
		slog.Debug("filter applied", "query", e.Query, "matches", e.Matches, "elapsed", e.Elapsed)
	})
	events.On(bus, func(e filter.PatternRejectedEvent) {
		slog.Debug("pattern rejected", "query", e.Query, "error", e.Err)
	})
	events.On(bus, func(e navigation.ViewportChangedEvent) {
		slog.Debug("viewport changed", "offset", e.Offset, "height", e.Height)
	})
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.handler.Resize(msg.Height)

	case tea.KeyMsg:
		status, err := m.handler.HandleKey(msg)
		if err != nil {
			slog.Error("input rejected", "error", err)
			m.err = err
			return m, tea.Quit
		}
		if status.Terminal() {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the UI
func (m *Model) View() string {
	if m.done() {
		return ""
	}

	session := m.handler.Session()
	return m.renderer.Render(views.ViewState{
		Width:      m.width,
		Prompt:     m.prompt,
		Query:      m.handler.Query(),
		PatternErr: session.PatternErr,
		Rows:       m.handler.VisibleLines(),
		Cursor:     m.handler.Navigator().GetCursor(),
	})
}

func (m *Model) done() bool {
	return m.err != nil || m.handler.Session().Status.Terminal()
}

// Result returns the outcome of the session
func (m *Model) Result() (domain.Selection, error) {
	if m.err != nil {
		return domain.Selection{}, m.err
	}
	return m.handler.Result(), nil
}

// Run drives the model in a Bubble Tea program until the session ends
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) (domain.Selection, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(m, opts...)

	final, err := p.Run()
	if err != nil {
		return domain.Selection{}, fmt.Errorf("failed to run selector: %w", err)
	}

	fm, ok := final.(*Model)
	if !ok {
		return domain.Selection{}, fmt.Errorf("unexpected model type %T", final)
	}
	return fm.Result()
}
