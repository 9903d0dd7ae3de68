package scaffold

import (
	"context"

	"github.com/starterkit-dev/typescript-starter/internal/process"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

// InstallCommand returns the command line that installs dependencies with r.
func InstallCommand(r starter.Runner) (string, []string) {
	if r == starter.RunnerYarn {
		return "yarn", nil
	}
	return "npm", []string{"install"}
}

// Install runs the package manager in projectDir.
func Install(ctx context.Context, runner process.Runner, r starter.Runner, projectDir string) error {
	name, args := InstallCommand(r)
	if _, err := runner.Run(ctx, name, args, process.Options{Dir: projectDir, Inherit: true}); err != nil {
		return &InstallFailedError{Runner: r, Err: err}
	}
	return nil
}
