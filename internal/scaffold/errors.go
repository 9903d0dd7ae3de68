package scaffold

import (
	"errors"
	"fmt"

	"github.com/starterkit-dev/typescript-starter/internal/process"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

// InstallFailedMessage is the only thing users see when installation fails.
const InstallFailedMessage = "Installation failed. You'll need to install manually."

// GitNotInstalledError means the git executable could not be found.
type GitNotInstalledError struct {
	Err error
}

func (e *GitNotInstalledError) Error() string {
	return "Git is not installed on your PATH. Please install Git and try again. For more information, visit: https://git-scm.com/book/en/v2/Getting-Started-Installing-Git"
}

func (e *GitNotInstalledError) Unwrap() error { return e.Err }

// CloneFailedError means "git clone" exited non-zero.
type CloneFailedError struct {
	Repo         string
	Branch       string
	ExitCode     int
	ExitCodeName string
	Err          error
}

func (e *CloneFailedError) Error() string {
	return fmt.Sprintf("Git clone failed (%s at %s, exit code %d).", e.Repo, e.Branch, e.ExitCode)
}

func (e *CloneFailedError) Unwrap() error { return e.Err }

// RevParseFailedError means the clone finished but produced no usable
// repository: "git rev-parse HEAD" exited non-zero inside it.
type RevParseFailedError struct {
	Dir          string
	ExitCode     int
	ExitCodeName string
	Err          error
}

func (e *RevParseFailedError) Error() string {
	return fmt.Sprintf("Git rev-parse failed in %s (exit code %d).", e.Dir, e.ExitCode)
}

func (e *RevParseFailedError) Unwrap() error { return e.Err }

// CommitFailedError carries the exit status of the git step that failed
// while creating the initial commit, unchanged.
type CommitFailedError struct {
	Step         string
	ExitCode     int
	ExitCodeName string
	Err          error
}

func (e *CommitFailedError) Error() string {
	if e.ExitCodeName != "" {
		return fmt.Sprintf("git %s failed: %s (exit code %d)", e.Step, e.ExitCodeName, e.ExitCode)
	}
	return fmt.Sprintf("git %s failed with exit code %d", e.Step, e.ExitCode)
}

func (e *CommitFailedError) Unwrap() error { return e.Err }

// InstallFailedError means the package manager exited non-zero. The project
// itself was still created.
type InstallFailedError struct {
	Runner starter.Runner
	Err    error
}

func (e *InstallFailedError) Error() string { return InstallFailedMessage }

func (e *InstallFailedError) Unwrap() error { return e.Err }

// exitStatus pulls the exit code and name out of a runner error.
func exitStatus(err error) (int, string) {
	var pe *process.Error
	if errors.As(err, &pe) {
		return pe.ExitCode, pe.ExitCodeName
	}
	return -1, ""
}
