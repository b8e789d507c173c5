// Package logging configures the global slog logger for ftb.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Options controls how the global logger is configured.
type Options struct {
	// Debug lowers the level from Info to Debug.
	Debug bool
	// JSON selects the JSON handler instead of the text handler.
	JSON bool
}

// Setup installs the global slog logger. Output goes to w, or os.Stderr when
// w is nil; stdout stays reserved for formatted document output.
func Setup(opts Options, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts.Debug {
		level = slog.LevelDebug
	}
	hopts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(w, hopts)
	} else {
		handler = slog.NewTextHandler(w, hopts)
	}
	slog.SetDefault(slog.New(handler))
}
