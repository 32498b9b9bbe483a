// Package cli implements the wordtrie command-line interface.
//
// Commands load a themed word list, build a trie from it and then complete
// prefixes, export the trie as a graph, run an interactive shell or serve the
// trie over HTTP. The CLI is built using cobra and logs via charmbracelet/log.
//
// # Commands
//
//   - words: print the word list for a theme
//   - complete: print completions for one or more prefixes
//   - graph: export the trie as DOT, JSON, SVG or PNG
//   - shell: interactive autocomplete
//   - serve: HTTP API
//   - cache, config, completion: housekeeping
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Status lines
// go to stderr so stdout carries only command output.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time.
// Example output: "word list ready (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
