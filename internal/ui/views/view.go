package views

import (
	"errors"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"coco/internal/ui/services/filter"
)

// tabWidth is the number of spaces a tab expands to
const tabWidth = 4

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int      // terminal columns, 0 when unknown
	Prompt     string   // text before the query
	Query      string   // current query
	PatternErr error    // set while the query does not compile
	Rows       []string // visible window of the filtered list
	Cursor     int      // highlighted row within Rows
}

// Renderer draws the prompt line and the visible window
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render produces the complete view: one prompt row followed by the
// visible rows, the cursor row highlighted.
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}
	content.WriteString(r.renderPrompt(state))

	for i, line := range state.Rows {
		content.WriteString("\n")
		line = r.fit(line, state.Width)
		if i == state.Cursor {
			// pad so the highlight spans the whole row
			if state.Width > 0 {
				line += strings.Repeat(" ", max(0, state.Width-runewidth.StringWidth(line)))
			}
			content.WriteString(r.styles.Cursor.Render(line))
		} else {
			content.WriteString(r.styles.Line.Render(line))
		}
	}

	return content.String()
}

func (r *Renderer) renderPrompt(state ViewState) string {
	line := r.styles.Prompt.Render(state.Prompt) + r.styles.Query.Render(expandTabs(state.Query))
	if state.PatternErr != nil {
		line += " " + r.styles.Invalid.Render("["+describe(state.PatternErr)+"]")
	}
	if state.Width > 0 {
		line = ansi.Truncate(line, state.Width, "")
	}
	return line
}

// fit expands tabs and cuts a line to the terminal width
func (r *Renderer) fit(line string, width int) string {
	line = expandTabs(line)
	if width > 0 {
		line = runewidth.Truncate(line, width, "")
	}
	return line
}

// describe shortens a pattern error for the prompt line
func describe(err error) string {
	var perr *filter.PatternError
	if errors.As(err, &perr) && perr.Err != nil {
		return "invalid pattern: " + perr.Err.Error()
	}
	return err.Error()
}

func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
