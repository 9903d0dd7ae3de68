package starter

import (
	"fmt"
	"sort"
	"strconv"
)

// DefaultDescription is used when no description was given anywhere.
const DefaultDescription = "a typescript-starter project"

// Defaults fill whatever neither flags nor prompts supplied.
type Defaults struct {
	Description string
	Runner      Runner
	Features    Features
}

// BuiltinDefaults returns the values the CLI uses out of the box.
func BuiltinDefaults() Defaults {
	return Defaults{
		Description: DefaultDescription,
		Runner:      RunnerNpm,
		Features: Features{
			CircleCI:     true,
			CSpell:       true,
			EditorConfig: true,
			Functional:   true,
			Install:      true,
			VSCode:       true,
		},
	}
}

// Overlay applies user-configured defaults, keyed by flag name plus
// "runner" and "description". Unknown keys and unparsable values are errors
// so typos in the config file surface immediately.
func (d Defaults) Overlay(raw map[string]string) (Defaults, error) {
	known := make(map[Flag]bool, len(AllFlags))
	for _, f := range AllFlags {
		known[f] = true
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		switch key {
		case "description":
			d.Description = value
		case "runner":
			r, err := ParseRunner(value)
			if err != nil {
				return d, fmt.Errorf("default %q: %w", key, err)
			}
			d.Runner = r
		default:
			if !known[Flag(key)] {
				return d, fmt.Errorf("unknown default %q", key)
			}
			b, err := strconv.ParseBool(value)
			if err != nil {
				return d, fmt.Errorf("default %q: %w", key, err)
			}
			d.Features = d.Features.With(Flag(key), b)
		}
	}
	return d, nil
}

// Apply resolves p into concrete values, falling back to d for every
// unset field.
func (d Defaults) Apply(p Partial) (description string, runner Runner, features Features) {
	description = d.Description
	if p.Description != nil {
		description = *p.Description
	}
	runner = d.Runner
	if p.Runner != nil {
		runner = *p.Runner
	}
	features = d.Features
	for _, flag := range AllFlags {
		if v, ok := p.Flags[flag]; ok {
			features = features.With(flag, v)
		}
	}
	return description, runner, features
}
