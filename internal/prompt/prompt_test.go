package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

func withRunForm(t *testing.T, fn func(context.Context, *huh.Form) error) {
	t.Helper()
	orig := runFormFunc
	runFormFunc = fn
	t.Cleanup(func() { runFormFunc = orig })
}

func interactive() bool { return true }

func TestPrompt_RequiresTerminal(t *testing.T) {
	p := &HuhPrompter{Defaults: starter.BuiltinDefaults(), isTerminal: func() bool { return false }}
	_, err := p.Prompt(context.Background(), starter.Partial{})
	assert.ErrorIs(t, err, ErrNotInteractive)
}

func TestPrompt_AcceptingDefaults(t *testing.T) {
	withRunForm(t, func(context.Context, *huh.Form) error { return nil })
	p := &HuhPrompter{Defaults: starter.BuiltinDefaults(), isTerminal: interactive}

	got, err := p.Prompt(context.Background(), starter.Partial{})
	require.NoError(t, err)

	require.NotNil(t, got.Description)
	assert.Equal(t, starter.DefaultDescription, *got.Description)
	require.NotNil(t, got.Runner)
	assert.Equal(t, starter.RunnerNpm, *got.Runner)
	assert.Equal(t, map[starter.Flag]bool{
		starter.FlagNode:         false,
		starter.FlagDOM:          false,
		starter.FlagStrict:       false,
		starter.FlagFunctional:   true,
		starter.FlagCSpell:       true,
		starter.FlagEditorConfig: true,
		starter.FlagVSCode:       true,
		starter.FlagCircleCI:     true,
		starter.FlagTravis:       false,
		starter.FlagAppVeyor:     false,
		starter.FlagInstall:      true,
	}, got.Flags)
}

func TestPrompt_Aborted(t *testing.T) {
	withRunForm(t, func(context.Context, *huh.Form) error { return huh.ErrUserAborted })
	p := &HuhPrompter{Defaults: starter.BuiltinDefaults(), isTerminal: interactive}

	_, err := p.Prompt(context.Background(), starter.Partial{})
	assert.ErrorIs(t, err, ErrAborted)
}

func TestPrompt_FormError(t *testing.T) {
	boom := errors.New("boom")
	withRunForm(t, func(context.Context, *huh.Form) error { return boom })
	p := &HuhPrompter{Defaults: starter.BuiltinDefaults(), isTerminal: interactive}

	_, err := p.Prompt(context.Background(), starter.Partial{})
	assert.ErrorIs(t, err, boom)
}

func TestPrompt_NothingToAsk(t *testing.T) {
	called := false
	withRunForm(t, func(context.Context, *huh.Form) error {
		called = true
		return nil
	})

	desc := "x"
	runner := starter.RunnerYarn
	given := starter.Partial{ProjectName: "lib", Description: &desc, Runner: &runner, Flags: map[starter.Flag]bool{}}
	for _, f := range starter.AllFlags {
		given.Flags[f] = false
	}

	p := &HuhPrompter{Defaults: starter.BuiltinDefaults(), isTerminal: interactive}
	got, err := p.Prompt(context.Background(), given)
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, starter.Partial{}, got)
}

func TestAnswers_OnlyAskedFieldsReturned(t *testing.T) {
	desc := "given"
	given := starter.Partial{
		Description: &desc,
		Flags:       map[starter.Flag]bool{starter.FlagDOM: true, starter.FlagTravis: false},
	}

	a := newAnswers(given, starter.BuiltinDefaults())
	a.Name = "  my-lib "
	a.Runner = "yarn"
	a.Extras = []string{string(starter.FlagStrict)}

	got, err := a.partial()
	require.NoError(t, err)

	assert.Equal(t, "my-lib", got.ProjectName)
	assert.Nil(t, got.Description)
	require.NotNil(t, got.Runner)
	assert.Equal(t, starter.RunnerYarn, *got.Runner)
	assert.False(t, got.Has(starter.FlagDOM))
	assert.False(t, got.Has(starter.FlagNode))
	assert.False(t, got.Has(starter.FlagTravis))
	assert.True(t, got.Flags[starter.FlagStrict])
	assert.False(t, got.Flags[starter.FlagCSpell])

	merged := given.Merge(got)
	assert.Equal(t, "given", *merged.Description)
	assert.True(t, merged.Flags[starter.FlagDOM])
}

func TestAnswers_Definitions(t *testing.T) {
	tests := []struct {
		choice    string
		node, dom bool
	}{
		{definitionsNone, false, false},
		{definitionsNode, true, false},
		{definitionsDOM, false, true},
		{definitionsBoth, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			a := newAnswers(starter.Partial{ProjectName: "lib"}, starter.BuiltinDefaults())
			a.Definitions = tt.choice
			got, err := a.partial()
			require.NoError(t, err)
			assert.Equal(t, tt.node, got.Flags[starter.FlagNode])
			assert.Equal(t, tt.dom, got.Flags[starter.FlagDOM])
			assert.Equal(t, tt.choice, definitionsFor(tt.node, tt.dom))
		})
	}
}

func TestBuildForm_SkipsGivenFields(t *testing.T) {
	a := newAnswers(starter.Partial{}, starter.BuiltinDefaults())
	assert.NotNil(t, buildForm(a))

	a.asked = map[string]bool{}
	a.offered = nil
	assert.Nil(t, buildForm(a))
}
