// Package logging configures structured logging sinks for the module.
//
// The logger itself is log/slog; this package owns only sink acquisition:
// building a handler for a writer and installing it as the process-wide
// default for a bounded scope.
package logging

import (
	"fmt"
	"io"
	"log/slog"
)

// ValidFormats defines the allowed handler formats.
var ValidFormats = []string{"text", "json"}

// Options holds sink configuration.
type Options struct {
	Verbose bool
	Format  string // "text" | "json"
}

// New builds a logger whose handler writes to w.
//
// Verbose lowers the level from info to debug. An empty Format defaults
// to "text"; anything outside ValidFormats is an error.
func New(w io.Writer, opts Options) (*slog.Logger, error) {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}

	format := opts.Format
	if format == "" {
		format = "text"
	}

	var handler slog.Handler
	switch format {
	case "text":
		handler = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		return nil, fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
	}

	return slog.New(handler), nil
}

// Setup installs a logger writing to w as the process-wide default.
//
// The returned restore function reinstates the previous default logger,
// scoping the acquisition to the caller's lifetime. Call it exactly once
// per acquisition.
func Setup(w io.Writer, opts Options) (func(), error) {
	logger, err := New(w, opts)
	if err != nil {
		return nil, err
	}

	prev := slog.Default()
	slog.SetDefault(logger)
	return func() { slog.SetDefault(prev) }, nil
}
