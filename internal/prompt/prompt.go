package prompt

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

// ErrAborted is returned when the user cancels the prompt.
var ErrAborted = errors.New("prompt aborted")

// ErrNotInteractive is returned when prompting without a terminal.
var ErrNotInteractive = errors.New("interactive prompts require a terminal; pass the project name as an argument")

// Type definition choices.
const (
	definitionsNone = "none"
	definitionsNode = "node"
	definitionsDOM  = "dom"
	definitionsBoth = "both"
)

// Flags offered in the extras multi-select, in display order.
var extraFlags = []starter.Flag{
	starter.FlagStrict,
	starter.FlagFunctional,
	starter.FlagCSpell,
	starter.FlagEditorConfig,
	starter.FlagVSCode,
	starter.FlagCircleCI,
	starter.FlagTravis,
	starter.FlagAppVeyor,
	starter.FlagInstall,
}

var extraLabels = map[starter.Flag]string{
	starter.FlagStrict:       "Enable stricter type-checking",
	starter.FlagFunctional:   "Enable eslint-plugin-functional",
	starter.FlagCSpell:       "Include cspell",
	starter.FlagEditorConfig: "Include .editorconfig",
	starter.FlagVSCode:       "Include VS Code debugging config",
	starter.FlagCircleCI:     "Include CircleCI config",
	starter.FlagTravis:       "Include Travis CI config",
	starter.FlagAppVeyor:     "Include Appveyor (Windows-based CI) config",
	starter.FlagInstall:      "Install dependencies now",
}

var runFormFunc = func(ctx context.Context, form *huh.Form) error { return form.RunWithContext(ctx) }

// HuhPrompter implements starter.Prompter with charmbracelet/huh.
type HuhPrompter struct {
	// Defaults preselect the initial answers.
	Defaults starter.Defaults

	isTerminal func() bool
}

// NewHuhPrompter creates a prompter seeded with defaults.
func NewHuhPrompter(defaults starter.Defaults) *HuhPrompter {
	return &HuhPrompter{Defaults: defaults, isTerminal: IsInteractive}
}

// answers are the values bound to the form fields.
type answers struct {
	Name        string
	Description string
	Runner      string
	Definitions string
	Extras      []string

	asked   map[string]bool
	offered []starter.Flag
}

// Prompt asks only for what given leaves unset and returns the answers as a
// Partial. Merging with given is up to the caller.
func (p *HuhPrompter) Prompt(ctx context.Context, given starter.Partial) (starter.Partial, error) {
	checker := p.isTerminal
	if checker == nil {
		checker = IsInteractive
	}
	if !checker() {
		return starter.Partial{}, ErrNotInteractive
	}

	a := newAnswers(given, p.Defaults)
	form := buildForm(a)
	if form == nil {
		return starter.Partial{}, nil
	}
	form.WithProgramOptions(tea.WithOutput(os.Stderr))

	if err := runFormFunc(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return starter.Partial{}, ErrAborted
		}
		return starter.Partial{}, fmt.Errorf("running prompt: %w", err)
	}
	return a.partial()
}

func newAnswers(given starter.Partial, d starter.Defaults) *answers {
	a := &answers{
		asked:       make(map[string]bool),
		Description: d.Description,
		Runner:      d.Runner.String(),
		Definitions: definitionsFor(d.Features.Node, d.Features.DOM),
	}
	a.asked["name"] = given.ProjectName == ""
	a.asked["description"] = given.Description == nil
	a.asked["runner"] = given.Runner == nil
	a.asked["definitions"] = !given.Has(starter.FlagNode) && !given.Has(starter.FlagDOM)

	for _, f := range extraFlags {
		if given.Has(f) {
			continue
		}
		a.offered = append(a.offered, f)
		if d.Features.Get(f) {
			a.Extras = append(a.Extras, string(f))
		}
	}
	return a
}

func definitionsFor(node, dom bool) string {
	switch {
	case node && dom:
		return definitionsBoth
	case node:
		return definitionsNode
	case dom:
		return definitionsDOM
	default:
		return definitionsNone
	}
}

func buildForm(a *answers) *huh.Form {
	var fields []huh.Field

	if a.asked["name"] {
		fields = append(fields, huh.NewInput().
			Title("Enter the new package name:").
			Value(&a.Name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("a name is required")
				}
				return starter.ValidateName(strings.TrimSpace(s))
			}))
	}
	if a.asked["runner"] {
		fields = append(fields, huh.NewSelect[string]().
			Title("Will this project use npm or yarn?").
			Options(huh.NewOption("npm", "npm"), huh.NewOption("yarn", "yarn")).
			Value(&a.Runner))
	}
	if a.asked["description"] {
		fields = append(fields, huh.NewInput().
			Title("Enter the package description:").
			Value(&a.Description))
	}
	if a.asked["definitions"] {
		fields = append(fields, huh.NewSelect[string]().
			Title("Which global type definitions do you want to include?").
			Options(
				huh.NewOption("None: the library won't use any globals or modules from Node.js or the DOM", definitionsNone),
				huh.NewOption("Node.js: parts of the library require access to Node.js globals or built-in modules", definitionsNode),
				huh.NewOption("DOM: parts of the library require access to the Document Object Model (DOM)", definitionsDOM),
				huh.NewOption("Both Node.js and DOM: some parts of the library require Node.js, other parts require DOM access", definitionsBoth),
			).
			Value(&a.Definitions))
	}
	if len(a.offered) > 0 {
		opts := make([]huh.Option[string], len(a.offered))
		for i, f := range a.offered {
			opts[i] = huh.NewOption(extraLabels[f], string(f))
		}
		fields = append(fields, huh.NewMultiSelect[string]().
			Title("More fun stuff:").
			Options(opts...).
			Value(&a.Extras))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...))
}

// partial converts the answers for the asked fields into a Partial.
func (a *answers) partial() (starter.Partial, error) {
	out := starter.Partial{Flags: make(map[starter.Flag]bool)}

	if a.asked["name"] {
		out.ProjectName = strings.TrimSpace(a.Name)
	}
	if a.asked["description"] {
		desc := a.Description
		out.Description = &desc
	}
	if a.asked["runner"] {
		r, err := starter.ParseRunner(a.Runner)
		if err != nil {
			return starter.Partial{}, err
		}
		out.Runner = &r
	}
	if a.asked["definitions"] {
		out.Flags[starter.FlagNode] = a.Definitions == definitionsNode || a.Definitions == definitionsBoth
		out.Flags[starter.FlagDOM] = a.Definitions == definitionsDOM || a.Definitions == definitionsBoth
	}

	chosen := make(map[string]bool, len(a.Extras))
	for _, e := range a.Extras {
		chosen[e] = true
	}
	for _, f := range a.offered {
		out.Flags[f] = chosen[string(f)]
	}
	return out, nil
}
