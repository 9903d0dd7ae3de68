package scaffold

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/starterkit-dev/typescript-starter/internal/process"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

// DefaultBranch asks Clone to check out the remote's default branch.
const DefaultBranch = "."

// CloneResult describes a freshly cloned template.
type CloneResult struct {
	CommitHash    string
	GitHistoryDir string
}

// Clone shallow-clones repo into workDir/dir and verifies the result with
// "git rev-parse HEAD". A failed clone may leave a partial directory behind;
// removing it is up to the caller.
func Clone(ctx context.Context, runner process.Runner, repo starter.RepoInfo, workDir, dir string) (*CloneResult, error) {
	projectDir := filepath.Join(workDir, dir)

	args := []string{"clone", "--depth=1"}
	if repo.Branch != DefaultBranch {
		args = append(args, "--branch="+repo.Branch)
	}
	args = append(args, repo.Repo, dir)

	if _, err := runner.Run(ctx, "git", args, process.Options{Dir: workDir, Inherit: true}); err != nil {
		var pe *process.Error
		if errors.As(err, &pe) && pe.NotFound() {
			return nil, &GitNotInstalledError{Err: err}
		}
		code, name := exitStatus(err)
		return nil, &CloneFailedError{Repo: repo.Repo, Branch: repo.Branch, ExitCode: code, ExitCodeName: name, Err: err}
	}

	res, err := runner.Run(ctx, "git", []string{"rev-parse", "HEAD"}, process.Options{Dir: projectDir})
	if err != nil {
		code, name := exitStatus(err)
		return nil, &RevParseFailedError{Dir: projectDir, ExitCode: code, ExitCodeName: name, Err: err}
	}

	return &CloneResult{
		CommitHash:    res.Stdout,
		GitHistoryDir: filepath.Join(projectDir, ".git"),
	}, nil
}
