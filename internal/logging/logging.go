// Package logging configures the CLI's structured logger on top of
// charmbracelet/log. All log output goes to stderr so that stdout stays
// reserved for the messages a user is meant to read.
//
// Setup must run before New: child loggers copy the default logger's level and
// formatter when they are created.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the global logging defaults. Call once from the root
// command's PersistentPreRun. If both verbose and quiet are set, quiet wins.
func Setup(verbose, quiet bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.ErrorLevel
	}

	log.SetLevel(level)
	log.SetOutput(os.Stderr)
	log.SetFormatter(log.TextFormatter)
	log.SetReportTimestamp(false)
}

// New creates a logger with the given component prefix.
func New(component string) *log.Logger {
	return log.WithPrefix(component)
}

// Discard returns a logger that drops everything. Handy as a default for
// structs whose Logger field was left nil.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
