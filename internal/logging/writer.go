package logging

import (
	"log/slog"
	"strings"
)

// Writer forwards subprocess output (pip, createdb, the app initializer) to slog.
type Writer struct {
	logger *slog.Logger
	tool   string
}

// NewWriter constructs a Writer bound to the provided logger.
// The tool name is attached to every forwarded line.
func NewWriter(logger *slog.Logger, tool string) *Writer {
	return &Writer{logger: logger, tool: tool}
}

// Write logs the given bytes line by line at debug level.
func (w *Writer) Write(p []byte) (int, error) {
	if w.logger != nil {
		for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
			if line != "" {
				w.logger.Debug("tool output", "tool", w.tool, "line", line)
			}
		}
	}
	return len(p), nil
}
