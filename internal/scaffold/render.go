package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

//go:embed templates
var templateFS embed.FS

// TemplateData holds all variables available to the embedded templates.
type TemplateData struct {
	ProjectName    string
	Title          string // e.g. "My Library" for "my-library"
	Description    string
	Username       string
	Author         string
	Homepage       string
	InstallCommand string
	RunPrefix      string
	Features       starter.Features
	Year           int
}

// NewTemplateData derives template variables from the config and author.
func NewTemplateData(cfg starter.Config, author Author) *TemplateData {
	name, args := InstallCommand(cfg.Runner)
	runPrefix := "npm run"
	if cfg.Runner == starter.RunnerYarn {
		runPrefix = "yarn"
	}

	return &TemplateData{
		ProjectName:    cfg.ProjectName,
		Title:          titleFor(cfg.ProjectName),
		Description:    cfg.Description,
		Username:       author.Username,
		Author:         author.Name,
		Homepage:       fmt.Sprintf("https://github.com/%s/%s", author.Username, baseName(cfg.ProjectName)),
		InstallCommand: strings.TrimSpace(name + " " + strings.Join(args, " ")),
		RunPrefix:      runPrefix,
		Features:       cfg.Features,
		Year:           time.Now().Year(),
	}
}

// titleFor turns "@scope/my-library" into "My Library".
func titleFor(projectName string) string {
	words := strings.NewReplacer("-", " ", "_", " ", ".", " ").Replace(baseName(projectName))
	return cases.Title(language.English).String(words)
}

// baseName strips an npm scope.
func baseName(projectName string) string {
	if i := strings.LastIndex(projectName, "/"); i >= 0 {
		return projectName[i+1:]
	}
	return projectName
}

// renderTemplates executes every embedded template into projectDir,
// overwriting files the template repository shipped. Returns the written
// file names.
func renderTemplates(projectDir string, data *TemplateData) ([]string, error) {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	var written []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplBytes, err := fs.ReadFile(templateFS, "templates/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", entry.Name(), err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		if err := os.WriteFile(filepath.Join(projectDir, outName), buf.Bytes(), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outName, err)
		}
		written = append(written, outName)
	}
	return written, nil
}
