package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr receive inherited output; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args. Captured stdout is returned with surrounding
// whitespace trimmed, which is what callers parsing one-line git output want.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string, opts Options) (*Result, error) {
	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err != nil || !info.IsDir() {
			if err == nil {
				err = fmt.Errorf("%s is not a directory", opts.Dir)
			}
			return nil, &Error{Command: name, Args: args, ExitCode: -1, ExitCodeName: ExitCodeNameBadDir, Err: err}
		}
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir

	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	if opts.Inherit {
		cmd.Stdout = stdout
		cmd.Stderr = stderr
	} else {
		cmd.Stdout = &stdoutBuf
		cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)
	}

	if err := cmd.Run(); err != nil {
		return nil, classify(name, args, err, stderrBuf.String())
	}
	return &Result{Stdout: strings.TrimSpace(stdoutBuf.String())}, nil
}

// classify turns an exec error into a *Error with an exit code and a
// symbolic name where one applies.
func classify(name string, args []string, err error, stderr string) *Error {
	pe := &Error{Command: name, Args: args, ExitCode: -1, Stderr: stderr, Err: err}

	var (
		exitErr *exec.ExitError
		pathErr *fs.PathError
	)
	switch {
	case errors.As(err, &exitErr):
		pe.ExitCode = exitErr.ExitCode()
	case errors.Is(err, exec.ErrNotFound):
		pe.ExitCodeName = ExitCodeNameNotFound
	case errors.As(err, &pathErr) && pathErr.Op == "chdir":
		pe.ExitCodeName = ExitCodeNameBadDir
	case errors.Is(err, fs.ErrNotExist):
		// The working directory was checked before starting, so a missing
		// path here is the executable itself.
		pe.ExitCodeName = ExitCodeNameNotFound
	case errors.Is(err, fs.ErrPermission):
		pe.ExitCodeName = "EACCES"
	default:
		var errno syscall.Errno
		if errors.As(err, &errno) {
			pe.ExitCodeName = errnoName(errno)
		}
	}
	return pe
}

func errnoName(errno syscall.Errno) string {
	switch errno {
	case syscall.ENOENT:
		return ExitCodeNameNotFound
	case syscall.EACCES:
		return "EACCES"
	default:
		return strings.ToUpper(errno.Error())
	}
}
