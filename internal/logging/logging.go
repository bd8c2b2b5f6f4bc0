package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// EnvLogFile names the environment variable used when no log file flag is set
const EnvLogFile = "COCO_LOG"

// Setup installs the default slog logger. The terminal belongs to the
// selector while it runs, so logs only go to a file; with no path they are
// discarded. The returned close function must be called on exit.
func Setup(path string, debug bool) (*slog.Logger, func() error, error) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger, closeFn, nil
}
