// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. They name both the CLI itself and the template
// repository it scaffolds from.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	PackageName     string `yaml:"package_name"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	TemplateRepo    string `yaml:"template_repo"`
	TemplateRepoURL string `yaml:"template_repo_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "typescript-starter",
			DisplayName:     "TypeScript Starter",
			Description:     "Quickly create and configure a new library or Node.js project",
			PackageName:     "typescript-starter",
			HomeDir:         ".typescript-starter",
			EnvPrefix:       "TYPESCRIPT_STARTER",
			TemplateRepo:    "bitjson/typescript-starter",
			TemplateRepoURL: "https://github.com/bitjson/typescript-starter.git",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "typescript-starter").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// PackageName returns the npm package name the tool is published under.
// The version check looks this name up on the registry.
func PackageName() string { load(); return defaults.PackageName }

// HomeDir returns the dot-directory name under $HOME.
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TYPESCRIPT_STARTER").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// TemplateRepo returns the "owner/repo" slug of the canonical template.
func TemplateRepo() string { load(); return defaults.TemplateRepo }

// TemplateRepoURL returns the canonical git URL of the template repository.
func TemplateRepoURL() string { load(); return defaults.TemplateRepoURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("repo_url") → "TYPESCRIPT_STARTER_REPO_URL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
