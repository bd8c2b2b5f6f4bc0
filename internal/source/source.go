package source

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"coco/internal/domain"
)

// DefaultMaxLines is the default cap on buffered input lines
const DefaultMaxLines = 4096

// StdinName labels lines read from standard input in error messages
const StdinName = "<stdin>"

// ErrMalformedLine is returned for an input line that is not valid UTF-8
var ErrMalformedLine = errors.New("malformed UTF-8 in input line")

// Loader reads candidate lines from files or standard input
type Loader struct {
	maxLines int
	stdin    io.Reader
	open     func(name string) (io.ReadCloser, error)
}

// NewLoader creates a loader that keeps at most maxLines lines
func NewLoader(maxLines int, stdin io.Reader) *Loader {
	if maxLines <= 0 {
		maxLines = DefaultMaxLines
	}
	return &Loader{
		maxLines: maxLines,
		stdin:    stdin,
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// Load reads every path in order, or standard input when no paths are given,
// and returns the lines as a dataset. Reading stops once the cap is reached.
func (l *Loader) Load(paths []string) (*domain.Dataset, error) {
	lines := make([]string, 0, min(l.maxLines, 1024))

	if len(paths) == 0 {
		var err error
		lines, err = l.readLines(StdinName, l.stdin, lines)
		if err != nil {
			return nil, err
		}
		slog.Debug("input loaded", "source", StdinName, "lines", len(lines))
		return domain.NewDataset(lines), nil
	}

	for _, path := range paths {
		if len(lines) >= l.maxLines {
			slog.Debug("line cap reached, skipping", "path", path, "max", l.maxLines)
			break
		}
		var err error
		lines, err = l.readFile(path, lines)
		if err != nil {
			return nil, err
		}
	}
	slog.Debug("input loaded", "files", len(paths), "lines", len(lines))
	return domain.NewDataset(lines), nil
}

func (l *Loader) readFile(path string, lines []string) ([]string, error) {
	f, err := l.open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()
	return l.readLines(path, f, lines)
}

// readLines appends cleaned lines from r until EOF or the cap
func (l *Loader) readLines(name string, r io.Reader, lines []string) ([]string, error) {
	br := bufio.NewReader(r)
	for lineNo := 1; len(lines) < l.maxLines; lineNo++ {
		raw, err := br.ReadString('\n')
		if raw == "" && err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}

		line, cerr := cleanLine(raw)
		if cerr != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNo, cerr)
		}
		lines = append(lines, line)

		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return nil, fmt.Errorf("failed to read %s: %w", name, err)
		}
	}
	return lines, nil
}

// cleanLine drops the line terminator and terminal escape sequences
func cleanLine(raw string) (string, error) {
	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	if !utf8.ValidString(line) {
		return "", fmt.Errorf("%w at byte %d", ErrMalformedLine, invalidOffset(line))
	}
	return ansi.Strip(line), nil
}

func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}
