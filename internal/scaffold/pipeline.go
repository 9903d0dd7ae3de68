package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/starterkit-dev/typescript-starter/internal/identity"
	"github.com/starterkit-dev/typescript-starter/internal/logging"
	"github.com/starterkit-dev/typescript-starter/internal/process"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

// ErrTargetExists is returned when the project directory is already present.
var ErrTargetExists = errors.New("target directory already exists")

// Resolver produces the final configuration. *starter.Resolver satisfies it.
type Resolver interface {
	Resolve(ctx context.Context, given starter.Partial, env starter.LookupEnv) (starter.Config, error)
}

// Outcome describes a created project.
type Outcome struct {
	Config     starter.Config
	ProjectDir string
	CommitHash string
	Author     Author
	Installed  bool
}

// Pipeline runs the fixed sequence of steps that turns a resolved Config
// into a project on disk. Steps run one after the other and the first
// failure stops the run; nothing is retried or rolled back.
type Pipeline struct {
	Runner  process.Runner
	Fetcher identity.UsernameFetcher
	// WorkDir is where the project directory is created.
	WorkDir string
	Logger  *log.Logger
}

// Create resolves the configuration with r and runs the pipeline for it.
func (p *Pipeline) Create(ctx context.Context, r Resolver, given starter.Partial, env starter.LookupEnv) (*Outcome, error) {
	cfg, err := r.Resolve(ctx, given, env)
	if err != nil {
		return nil, err
	}
	return p.Run(ctx, cfg)
}

// Run creates the project described by cfg. When installation fails the
// returned Outcome is still populated, since the project exists.
func (p *Pipeline) Run(ctx context.Context, cfg starter.Config) (*Outcome, error) {
	logger := p.logger()
	dir := baseName(cfg.ProjectName)
	projectDir := filepath.Join(p.WorkDir, dir)

	if _, err := os.Stat(projectDir); err == nil {
		return nil, fmt.Errorf("%s: %w", projectDir, ErrTargetExists)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("checking %s: %w", projectDir, err)
	}

	logger.Info("cloning template", "repo", cfg.Repo.Repo, "branch", cfg.Repo.Branch)
	cloned, err := Clone(ctx, p.Runner, cfg.Repo, p.WorkDir, dir)
	if err != nil {
		return nil, err
	}
	logger.Debug("cloned", "commit", cloned.CommitHash)

	user := identity.UserInfo(ctx, p.Runner)
	username := identity.GithubUsername(ctx, p.Fetcher, user.GitEmail)
	author := AuthorFrom(user, username)
	logger.Debug("resolved author", "name", author.Name, "email", author.Email, "username", author.Username)

	logger.Info("customizing project", "dir", projectDir)
	if err := Customize(projectDir, cloned.GitHistoryDir, cfg, author); err != nil {
		return nil, fmt.Errorf("customizing project: %w", err)
	}

	logger.Info("creating initial commit")
	if err := InitialCommit(ctx, p.Runner, cfg.ProjectName, cloned.CommitHash, projectDir); err != nil {
		return nil, err
	}

	out := &Outcome{
		Config:     cfg,
		ProjectDir: projectDir,
		CommitHash: cloned.CommitHash,
		Author:     author,
	}

	if !cfg.Features.Install {
		logger.Info("skipping dependency installation")
		return out, nil
	}

	logger.Info("installing dependencies", "runner", cfg.Runner)
	if err := Install(ctx, p.Runner, cfg.Runner, projectDir); err != nil {
		return out, err
	}
	out.Installed = true
	return out, nil
}

func (p *Pipeline) logger() *log.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return logging.Discard()
}
