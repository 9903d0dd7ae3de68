package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/starterkit-dev/typescript-starter/internal/branding"
	"github.com/starterkit-dev/typescript-starter/internal/identity"
	"github.com/starterkit-dev/typescript-starter/internal/logging"
	"github.com/starterkit-dev/typescript-starter/internal/process"
	"github.com/starterkit-dev/typescript-starter/internal/prompt"
	"github.com/starterkit-dev/typescript-starter/internal/registry"
	"github.com/starterkit-dev/typescript-starter/internal/scaffold"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
	"github.com/starterkit-dev/typescript-starter/internal/updater"
)

// isInteractive is swapped in tests.
var isInteractive = prompt.IsInteractive

func runCreate(cmd *cobra.Command, args []string) error {
	store, err := loadConfig()
	if err != nil {
		return err
	}

	defaults, err := starter.BuiltinDefaults().Overlay(store.Defaults())
	if err != nil {
		return fmt.Errorf("config file %s: %w", store.Path(), err)
	}

	given, err := starterFlags.Partial(args)
	if err != nil {
		return err
	}

	resolver := &starter.Resolver{
		Checker: &updater.Checker{
			Fetcher:     registry.NewClient(registry.WithBaseURL(store.Registry())),
			PackageName: branding.PackageName(),
			Logger:      logging.New("updater"),
		},
		Version:  buildVersion,
		Defaults: defaults,
		Logger:   logging.New("starter"),
	}
	if isInteractive() {
		resolver.Prompter = prompt.NewHuhPrompter(defaults)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	pipeline := &scaffold.Pipeline{
		Runner:  &process.ExecRunner{},
		Fetcher: identity.NewGitHubFetcher(store.GitHubAPI()),
		WorkDir: workDir,
		Logger:  logging.New("scaffold"),
	}

	out, err := pipeline.Create(cmd.Context(), resolver, given, os.LookupEnv)
	var installErr *scaffold.InstallFailedError
	if errors.As(err, &installErr) && out != nil {
		printCreated(cmd.OutOrStdout(), out)
		return err
	}
	if err != nil {
		return err
	}

	printCreated(cmd.OutOrStdout(), out)
	return nil
}
