package starter

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// Flag names a boolean feature toggle.
type Flag string

const (
	FlagDOM          Flag = "dom"
	FlagNode         Flag = "node"
	FlagStrict       Flag = "strict"
	FlagTravis       Flag = "travis"
	FlagAppVeyor     Flag = "appveyor"
	FlagCircleCI     Flag = "circleci"
	FlagCSpell       Flag = "cspell"
	FlagEditorConfig Flag = "editorconfig"
	FlagFunctional   Flag = "functional"
	FlagInstall      Flag = "install"
	FlagVSCode       Flag = "vscode"
)

// AllFlags lists every feature flag in help order.
var AllFlags = []Flag{
	FlagAppVeyor, FlagCircleCI, FlagCSpell, FlagDOM, FlagEditorConfig,
	FlagFunctional, FlagInstall, FlagNode, FlagStrict, FlagTravis, FlagVSCode,
}

var flagUsage = map[Flag][2]string{
	FlagAppVeyor:     {"include AppVeyor for Windows CI", "don't include AppVeyor"},
	FlagCircleCI:     {"include CircleCI", "don't include CircleCI"},
	FlagCSpell:       {"include cspell spell checking", "don't include cspell"},
	FlagDOM:          {"include DOM type definitions", "don't include DOM type definitions"},
	FlagEditorConfig: {"include .editorconfig", "don't include .editorconfig"},
	FlagFunctional:   {"enable eslint-plugin-functional", "don't enable eslint-plugin-functional"},
	FlagInstall:      {"install dependencies after creating the project", "skip yarn/npm install"},
	FlagNode:         {"include node.js type definitions", "don't include node.js type definitions"},
	FlagStrict:       {"enable stricter type-checking", "don't enable stricter type-checking"},
	FlagTravis:       {"include Travis CI configuration", "don't include Travis CI"},
	FlagVSCode:       {"include VS Code debugging config", "don't include VS Code debugging config"},
}

// Partial is input that may leave any field unset. Flags holds only the
// toggles that were given explicitly.
type Partial struct {
	ProjectName string
	Description *string
	Runner      *Runner
	Flags       map[Flag]bool
}

// Merge returns p with every unset field taken from fallback.
func (p Partial) Merge(fallback Partial) Partial {
	out := Partial{
		ProjectName: p.ProjectName,
		Description: p.Description,
		Runner:      p.Runner,
		Flags:       make(map[Flag]bool, len(AllFlags)),
	}
	if out.ProjectName == "" {
		out.ProjectName = fallback.ProjectName
	}
	if out.Description == nil {
		out.Description = fallback.Description
	}
	if out.Runner == nil {
		out.Runner = fallback.Runner
	}
	for k, v := range fallback.Flags {
		out.Flags[k] = v
	}
	for k, v := range p.Flags {
		out.Flags[k] = v
	}
	return out
}

// Has reports whether flag was set explicitly.
func (p Partial) Has(flag Flag) bool {
	_, ok := p.Flags[flag]
	return ok
}

// FlagValues holds the pflag bindings registered by BindFlags.
type FlagValues struct {
	fs          *pflag.FlagSet
	description string
	yarn        bool
	npm         bool
	on          map[Flag]*bool
	off         map[Flag]*bool
}

// BindFlags registers the scaffolding flags on fs. Every feature gets a
// positive form and a "--no-" form.
func BindFlags(fs *pflag.FlagSet) *FlagValues {
	v := &FlagValues{
		fs:  fs,
		on:  make(map[Flag]*bool, len(AllFlags)),
		off: make(map[Flag]*bool, len(AllFlags)),
	}
	fs.StringVarP(&v.description, "description", "d", "", "package.json description")
	fs.BoolVar(&v.yarn, "yarn", false, "use yarn (default: npm)")
	fs.BoolVar(&v.npm, "npm", false, "use npm")

	for _, flag := range AllFlags {
		usage := flagUsage[flag]
		v.on[flag] = fs.Bool(string(flag), false, usage[0])
		v.off[flag] = fs.Bool("no-"+string(flag), false, usage[1])
	}
	return v
}

// Partial builds a Partial from the parsed flags and the positional args.
// Only flags the user actually passed end up set.
func (v *FlagValues) Partial(args []string) (Partial, error) {
	p := Partial{Flags: make(map[Flag]bool)}

	if len(args) > 1 {
		return p, fmt.Errorf("expected at most one project name, got %d arguments", len(args))
	}
	if len(args) == 1 {
		p.ProjectName = args[0]
	}

	if v.fs.Changed("description") {
		d := v.description
		p.Description = &d
	}

	if v.fs.Changed("yarn") && v.fs.Changed("npm") && v.yarn && v.npm {
		return p, fmt.Errorf("--yarn and --npm are mutually exclusive")
	}
	switch {
	case v.fs.Changed("yarn"):
		r := RunnerNpm
		if v.yarn {
			r = RunnerYarn
		}
		p.Runner = &r
	case v.fs.Changed("npm"):
		r := RunnerYarn
		if v.npm {
			r = RunnerNpm
		}
		p.Runner = &r
	}

	for _, flag := range AllFlags {
		name := string(flag)
		onSet, offSet := v.fs.Changed(name), v.fs.Changed("no-"+name)
		switch {
		case onSet && offSet:
			return p, fmt.Errorf("--%s and --no-%s are mutually exclusive", name, name)
		case onSet:
			p.Flags[flag] = *v.on[flag]
		case offSet:
			p.Flags[flag] = !*v.off[flag]
		}
	}
	return p, nil
}

// ParseArgs parses command-line arguments (without the program name) into a
// Partial.
func ParseArgs(args []string) (Partial, error) {
	fs := pflag.NewFlagSet("typescript-starter", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	values := BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Partial{}, fmt.Errorf("parsing arguments: %w", err)
	}
	return values.Partial(fs.Args())
}
