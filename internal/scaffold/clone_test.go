package scaffold

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starterkit-dev/typescript-starter/internal/process"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

var testRepo = starter.RepoInfo{Repo: "https://github.com/bitjson/typescript-starter.git", Branch: "v2.1.0"}

func TestClone_Success(t *testing.T) {
	runner := &fakeRunner{handle: func(c call) (*process.Result, error) {
		if c.Args[0] == "rev-parse" {
			return &process.Result{Stdout: "abc123"}, nil
		}
		return &process.Result{}, nil
	}}

	res, err := Clone(context.Background(), runner, testRepo, "/work", "my-lib")
	require.NoError(t, err)
	assert.Equal(t, "abc123", res.CommitHash)
	assert.Equal(t, filepath.Join("/work", "my-lib", ".git"), res.GitHistoryDir)

	require.Len(t, runner.calls, 2)
	assert.Equal(t, []string{"clone", "--depth=1", "--branch=v2.1.0", testRepo.Repo, "my-lib"}, runner.calls[0].Args)
	assert.Equal(t, "/work", runner.calls[0].Dir)
	assert.Equal(t, []string{"rev-parse", "HEAD"}, runner.calls[1].Args)
	assert.Equal(t, filepath.Join("/work", "my-lib"), runner.calls[1].Dir)
}

func TestClone_DefaultBranchOmitsFlag(t *testing.T) {
	runner := &fakeRunner{}
	repo := starter.RepoInfo{Repo: "/tmp/template", Branch: DefaultBranch}

	_, err := Clone(context.Background(), runner, repo, "/work", "my-lib")
	require.NoError(t, err)
	assert.Equal(t, []string{"clone", "--depth=1", "/tmp/template", "my-lib"}, runner.calls[0].Args)
}

func TestClone_GitNotInstalled(t *testing.T) {
	runner := &fakeRunner{handle: func(c call) (*process.Result, error) {
		return nil, &process.Error{Command: c.Name, ExitCode: -2, ExitCodeName: process.ExitCodeNameNotFound}
	}}

	_, err := Clone(context.Background(), runner, testRepo, "/work", "my-lib")
	var target *GitNotInstalledError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Len(t, runner.calls, 1)
}

func TestClone_CloneFailed(t *testing.T) {
	runner := &fakeRunner{handle: func(c call) (*process.Result, error) {
		return nil, &process.Error{Command: c.Name, ExitCode: 128}
	}}

	_, err := Clone(context.Background(), runner, testRepo, "/work", "my-lib")
	var target *CloneFailedError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Equal(t, 128, target.ExitCode)
	assert.Equal(t, "v2.1.0", target.Branch)
	assert.Len(t, runner.calls, 1)
}

func TestClone_RevParseFailed(t *testing.T) {
	runner := &fakeRunner{handle: func(c call) (*process.Result, error) {
		if c.Args[0] == "rev-parse" {
			return nil, &process.Error{Command: c.Name, ExitCode: 128}
		}
		return &process.Result{}, nil
	}}

	_, err := Clone(context.Background(), runner, testRepo, "/work", "my-lib")
	var target *RevParseFailedError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Equal(t, 128, target.ExitCode)

	var cloneErr *CloneFailedError
	assert.False(t, errors.As(err, &cloneErr))
}

func TestClone_MissingWorkDirIsCloneFailure(t *testing.T) {
	workDir := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := Clone(context.Background(), &process.ExecRunner{}, testRepo, workDir, "my-lib")

	var gitErr *GitNotInstalledError
	assert.False(t, errors.As(err, &gitErr), "got %v", err)
	var target *CloneFailedError
	require.True(t, errors.As(err, &target), "got %v", err)
	assert.Equal(t, process.ExitCodeNameBadDir, target.ExitCodeName)
}
