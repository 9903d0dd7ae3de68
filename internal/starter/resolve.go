package starter

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
)

// VersionChecker fails when the running CLI must not be used.
// *updater.Checker satisfies it.
type VersionChecker interface {
	Check(ctx context.Context, current string) error
}

// Prompter asks the user for whatever the partial input leaves unset. The
// returned Partial may carry answers for any field; fields already set on
// the input take precedence when merged.
type Prompter interface {
	Prompt(ctx context.Context, given Partial) (Partial, error)
}

// Resolver produces the Config for one run.
type Resolver struct {
	Checker VersionChecker
	// Prompter is nil when the session cannot prompt.
	Prompter Prompter
	// Version is the running CLI's version.
	Version string
	// Defaults falls back to BuiltinDefaults when left zero.
	Defaults Defaults
	Logger   *log.Logger
}

// ResolveArgs parses args (without the program name) and resolves them.
func (r *Resolver) ResolveArgs(ctx context.Context, args []string, env LookupEnv) (Config, error) {
	given, err := ParseArgs(args)
	if err != nil {
		return Config{}, err
	}
	return r.Resolve(ctx, given, env)
}

// Resolve checks the CLI version, fills gaps in given by prompting when
// possible, and applies defaults so every field of the result is concrete.
func (r *Resolver) Resolve(ctx context.Context, given Partial, env LookupEnv) (Config, error) {
	if err := r.Checker.Check(ctx, r.Version); err != nil {
		return Config{}, err
	}

	if given.ProjectName != "" {
		if err := ValidateName(given.ProjectName); err != nil {
			return Config{}, err
		}
	}

	merged := given
	if given.ProjectName == "" {
		if r.Prompter == nil {
			return Config{}, &MissingInputError{Field: "project name"}
		}
		r.debug("prompting for missing input")
		answers, err := r.Prompter.Prompt(ctx, given)
		if err != nil {
			return Config{}, fmt.Errorf("prompting for project settings: %w", err)
		}
		merged = given.Merge(answers)
		if merged.ProjectName == "" {
			return Config{}, &MissingInputError{Field: "project name"}
		}
		if err := ValidateName(merged.ProjectName); err != nil {
			return Config{}, err
		}
	}

	defaults := r.Defaults
	if defaults == (Defaults{}) {
		defaults = BuiltinDefaults()
	}
	description, runner, features := defaults.Apply(merged)
	cfg := Config{
		ProjectName:    merged.ProjectName,
		Description:    description,
		Repo:           RepoInfoFor(r.Version, env),
		Runner:         runner,
		StarterVersion: r.Version,
		Features:       features,
	}
	r.debug("resolved config", "project", cfg.ProjectName, "runner", cfg.Runner, "repo", cfg.Repo.Repo, "branch", cfg.Repo.Branch)
	return cfg, nil
}

func (r *Resolver) debug(msg string, kv ...interface{}) {
	if r.Logger != nil {
		r.Logger.Debug(msg, kv...)
	}
}
