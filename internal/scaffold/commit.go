package scaffold

import (
	"context"
	"fmt"

	"github.com/starterkit-dev/typescript-starter/internal/branding"
	"github.com/starterkit-dev/typescript-starter/internal/process"
)

// CommitMessage is the initial commit message for projectName. templateHash
// is the template revision it was created from and may be empty.
func CommitMessage(projectName, templateHash string) string {
	source := branding.TemplateRepo()
	if templateHash != "" {
		source += "@" + templateHash
	}
	return fmt.Sprintf("Initial commit\n\nCreated %s with %s", projectName, source)
}

// InitialCommit initializes a fresh repository in projectDir and commits the
// whole tree. Failures keep git's exit code and name as-is.
func InitialCommit(ctx context.Context, runner process.Runner, projectName, templateHash, projectDir string) error {
	steps := []struct {
		name string
		args []string
	}{
		{"init", []string{"init"}},
		{"add", []string{"add", "-A"}},
		{"commit", []string{"commit", "-m", CommitMessage(projectName, templateHash)}},
	}

	opts := process.Options{Dir: projectDir, Inherit: true}
	for _, step := range steps {
		if _, err := runner.Run(ctx, "git", step.args, opts); err != nil {
			code, name := exitStatus(err)
			return &CommitFailedError{Step: step.name, ExitCode: code, ExitCodeName: name, Err: err}
		}
	}
	return nil
}
