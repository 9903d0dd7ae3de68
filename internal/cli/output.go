package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/starterkit-dev/typescript-starter/internal/scaffold"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
	"github.com/starterkit-dev/typescript-starter/internal/updater"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	hintColor    = color.New(color.FgYellow)
	commandColor = color.New(color.FgCyan)
)

// printCreated reports a created project and the commands to start working
// on it.
func printCreated(w io.Writer, out *scaffold.Outcome) {
	successColor.Fprintf(w, "\nCreated %s\n", out.Config.ProjectName)
	fmt.Fprintf(w, "  %s\n\n", out.ProjectDir)

	fmt.Fprintln(w, "Next steps:")
	commandColor.Fprintf(w, "  cd %s\n", filepath.Base(out.ProjectDir))
	if !out.Installed {
		name, args := scaffold.InstallCommand(out.Config.Runner)
		commandColor.Fprintf(w, "  %s\n", strings.TrimSpace(name+" "+strings.Join(args, " ")))
	}
	commandColor.Fprintf(w, "  %s\n", runCommand(out.Config.Runner, "watch:build"))
}

func runCommand(r starter.Runner, script string) string {
	if r == starter.RunnerYarn {
		return "yarn " + script
	}
	return "npm run " + script
}

// printError writes err with a hint for the failures users can act on.
func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "Error: ")
	fmt.Fprintln(w, err.Error())

	if hint := hintFor(err); hint != "" {
		hintColor.Fprintln(w, hint)
	}
}

func hintFor(err error) string {
	var (
		installErr *scaffold.InstallFailedError
		cloneErr   *scaffold.CloneFailedError
		lookupErr  *updater.LookupError
		nameErr    *starter.InvalidNameError
		missingErr *starter.MissingInputError
	)
	switch {
	case errors.As(err, &installErr):
		return "The project was still created. Run the install command above inside it."
	case updater.IsOutdated(err):
		return "Update the CLI before creating a project."
	case errors.As(err, &cloneErr):
		return fmt.Sprintf("Check that %s exists and has a %q branch.", cloneErr.Repo, cloneErr.Branch)
	case errors.As(err, &lookupErr):
		return "Check your network connection and the registry setting (config get registry)."
	case errors.As(err, &nameErr), errors.As(err, &missingErr):
		return "Run with --help for usage."
	case errors.Is(err, scaffold.ErrTargetExists):
		return "Choose another name or remove the existing directory."
	}
	return ""
}
