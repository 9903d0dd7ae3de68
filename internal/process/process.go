package process

import (
	"context"
	"fmt"
)

// ExitCodeNameNotFound is the ExitCodeName reported when the executable
// itself could not be located on the search path.
const ExitCodeNameNotFound = "ENOENT"

// ExitCodeNameBadDir is the ExitCodeName reported when the working directory
// does not exist, so the command was never started.
const ExitCodeNameBadDir = "ENOTDIR"

// Runner spawns a single external command and waits for it to finish.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts Options) (*Result, error)
}

// RunnerFunc adapts an ordinary function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args []string, opts Options) (*Result, error)

// Run calls f.
func (f RunnerFunc) Run(ctx context.Context, name string, args []string, opts Options) (*Result, error) {
	return f(ctx, name, args, opts)
}

// Options control how a command is spawned.
type Options struct {
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Inherit streams the child's stdout/stderr to the parent's instead of
	// capturing stdout. Used for long-running, user-visible commands.
	Inherit bool
}

// Result is what a successful command produced.
type Result struct {
	Stdout string
}

// Error describes a command that could not be started or exited non-zero.
type Error struct {
	Command      string
	Args         []string
	ExitCode     int
	ExitCodeName string
	Stderr       string
	Err          error
}

func (e *Error) Error() string {
	if e.ExitCodeName != "" {
		return fmt.Sprintf("%s: %s (exit code %d)", e.Command, e.ExitCodeName, e.ExitCode)
	}
	return fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports whether the executable was missing.
func (e *Error) NotFound() bool {
	return e.ExitCodeName == ExitCodeNameNotFound
}
