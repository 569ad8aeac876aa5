// Package logging builds the CLI's slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
)

const DefaultLevel = "info"

var levels = map[string]slog.Level{
	"debug":      slog.LevelDebug,
	DefaultLevel: slog.LevelInfo,
	"warn":       slog.LevelWarn,
	"error":      slog.LevelError,
}

// ValidLevels returns valid strings for choosing a log level, default level
// first.
func ValidLevels() []string {
	keys := make([]string, 0, len(levels))
	for key := range levels {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if a == DefaultLevel {
			return -1
		}
		if b == DefaultLevel {
			return 1
		}
		return strings.Compare(a, b)
	})
	return keys
}

type Options struct {
	// The log level of the logger. Empty selects DefaultLevel.
	Level string
	// Where records are written. Defaults to stderr.
	Writer io.Writer
}

// New constructs a text logger. An unknown level is an error.
func New(opts Options) (*slog.Logger, error) {
	name := strings.ToLower(strings.TrimSpace(opts.Level))
	if name == "" {
		name = DefaultLevel
	}
	level, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("logging: invalid level %q (valid: %s)", opts.Level, strings.Join(ValidLevels(), ", "))
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

