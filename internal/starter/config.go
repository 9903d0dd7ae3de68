package starter

import (
	"fmt"
	"strings"
)

// Runner is the package manager used to install dependencies.
type Runner int

const (
	RunnerNpm Runner = iota
	RunnerYarn
)

func (r Runner) String() string {
	switch r {
	case RunnerYarn:
		return "yarn"
	default:
		return "npm"
	}
}

// ParseRunner parses "npm" or "yarn".
func ParseRunner(s string) (Runner, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "npm":
		return RunnerNpm, nil
	case "yarn":
		return RunnerYarn, nil
	default:
		return RunnerNpm, fmt.Errorf("unknown runner %q: must be %q or %q", s, "npm", "yarn")
	}
}

// RepoInfo locates the template to clone.
type RepoInfo struct {
	Repo   string
	Branch string
}

// Features are the optional parts of the template. Every field is concrete;
// there is no unset state once a Config exists.
type Features struct {
	DOM          bool
	Node         bool
	Strict       bool
	Travis       bool
	AppVeyor     bool
	CircleCI     bool
	CSpell       bool
	EditorConfig bool
	Functional   bool
	Install      bool
	VSCode       bool
}

// Get returns the value of one feature flag.
func (f Features) Get(flag Flag) bool {
	switch flag {
	case FlagDOM:
		return f.DOM
	case FlagNode:
		return f.Node
	case FlagStrict:
		return f.Strict
	case FlagTravis:
		return f.Travis
	case FlagAppVeyor:
		return f.AppVeyor
	case FlagCircleCI:
		return f.CircleCI
	case FlagCSpell:
		return f.CSpell
	case FlagEditorConfig:
		return f.EditorConfig
	case FlagFunctional:
		return f.Functional
	case FlagInstall:
		return f.Install
	case FlagVSCode:
		return f.VSCode
	}
	return false
}

// With returns a copy of f with one flag changed.
func (f Features) With(flag Flag, v bool) Features {
	switch flag {
	case FlagDOM:
		f.DOM = v
	case FlagNode:
		f.Node = v
	case FlagStrict:
		f.Strict = v
	case FlagTravis:
		f.Travis = v
	case FlagAppVeyor:
		f.AppVeyor = v
	case FlagCircleCI:
		f.CircleCI = v
	case FlagCSpell:
		f.CSpell = v
	case FlagEditorConfig:
		f.EditorConfig = v
	case FlagFunctional:
		f.Functional = v
	case FlagInstall:
		f.Install = v
	case FlagVSCode:
		f.VSCode = v
	}
	return f
}

// Config is the fully resolved set of choices for one run. It is passed by
// value and never modified after resolution.
type Config struct {
	ProjectName    string
	Description    string
	Repo           RepoInfo
	Runner         Runner
	StarterVersion string
	Features       Features
}
