// Package cli defines the Cobra command tree for the typescript-starter CLI.
// The root command creates a project; subcommands print version information
// and manage the user config file. Commands only parse flags, format output
// and wire collaborators together. The work itself lives in internal packages.
package cli
