package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/starterkit-dev/typescript-starter/internal/branding"
	"github.com/starterkit-dev/typescript-starter/internal/identity"
	"github.com/starterkit-dev/typescript-starter/internal/starter"
)

// Identity of the template's own author, replaced with the new project's.
const (
	templateAuthorName  = "Jason Dreyzehner"
	templateAuthorEmail = "jason@dreyzehner.com"
)

// Author is who the generated project is attributed to.
type Author struct {
	Name     string
	Email    string
	Username string
}

// AuthorFrom combines git identity and GitHub username.
func AuthorFrom(u identity.User, username string) Author {
	return Author{Name: u.GitName, Email: u.GitEmail, Username: username}
}

// Files removed when the matching feature is disabled.
var featureFiles = map[starter.Flag][]string{
	starter.FlagTravis:       {".travis.yml"},
	starter.FlagAppVeyor:     {"appveyor.yml"},
	starter.FlagCircleCI:     {".circleci"},
	starter.FlagCSpell:       {".cspell.json"},
	starter.FlagEditorConfig: {".editorconfig"},
	starter.FlagVSCode:       {".vscode"},
}

// Files whose template identity strings are rewritten.
var identityGlobs = []string{"*.md", "LICENSE", "src/**/*.ts", ".github/**/*"}

var strictOptions = []string{
	"strict",
	"noUnusedLocals",
	"noUnusedParameters",
	"noImplicitReturns",
	"noFallthroughCasesInSwitch",
}

// Customize turns a freshly cloned template into the user's project. It drops
// the template's git history, rewrites package.json and tsconfig.json for
// the chosen features, removes files for disabled features, replaces the
// template author's identity and renders the README.
func Customize(projectDir, gitHistoryDir string, cfg starter.Config, author Author) error {
	if gitHistoryDir != "" {
		if err := os.RemoveAll(gitHistoryDir); err != nil {
			return fmt.Errorf("removing template history: %w", err)
		}
	}
	if err := rewritePackageJSON(projectDir, cfg, author); err != nil {
		return err
	}
	if err := editTSConfig(projectDir, cfg.Features); err != nil {
		return err
	}
	if err := editESLintConfig(projectDir, cfg.Features); err != nil {
		return err
	}
	if err := removeDisabledFeatures(projectDir, cfg.Features); err != nil {
		return err
	}
	if err := rewriteIdentity(projectDir, cfg.ProjectName, author); err != nil {
		return err
	}
	if _, err := renderTemplates(projectDir, NewTemplateData(cfg, author)); err != nil {
		return err
	}
	return nil
}

func rewritePackageJSON(projectDir string, cfg starter.Config, author Author) error {
	path := filepath.Join(projectDir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading package.json: %w", err)
	}

	doc, err := parseJSONDoc(data)
	if err != nil {
		return fmt.Errorf("package.json: %w", err)
	}

	repoPath := author.Username + "/" + baseName(cfg.ProjectName)
	doc.setString("name", cfg.ProjectName)
	doc.setString("version", "1.0.0")
	doc.setString("description", cfg.Description)
	doc.setString("author", fmt.Sprintf("%s <%s>", author.Name, author.Email))
	doc.setString("homepage", "https://github.com/"+repoPath)
	doc.setString("type", "git", "repository")
	doc.setString("url", "https://github.com/"+repoPath+".git", "repository")
	doc.setString("url", "https://github.com/"+repoPath+"/issues", "bugs")

	if !cfg.Features.CSpell {
		doc.delete("test:spelling", "scripts")
		doc.delete("cspell", "devDependencies")
	}
	if !cfg.Features.Functional {
		doc.delete("eslint-plugin-functional", "devDependencies")
	}
	if cfg.Runner == starter.RunnerYarn {
		doc.mapStrings(func(s string) string {
			return strings.ReplaceAll(s, "npm run ", "yarn ")
		}, "scripts")
	}

	out, err := doc.Marshal()
	if err != nil {
		return fmt.Errorf("encoding package.json: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing package.json: %w", err)
	}
	return nil
}

var (
	libPattern   = regexp.MustCompile(`"lib"\s*:\s*\[([^\]]*)\]`)
	typesPattern = regexp.MustCompile(`"types"\s*:\s*\[([^\]]*)\]`)
)

func editTSConfig(projectDir string, f starter.Features) error {
	path := filepath.Join(projectDir, "tsconfig.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading tsconfig.json: %w", err)
	}

	content := string(data)
	if f.Strict {
		for _, opt := range strictOptions {
			re := regexp.MustCompile(`//\s*("` + opt + `"\s*:\s*true)`)
			content = re.ReplaceAllString(content, "$1")
		}
	}
	content = toggleArrayEntry(content, libPattern, "dom", f.DOM)
	content = toggleArrayEntry(content, typesPattern, "node", f.Node)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing tsconfig.json: %w", err)
	}
	return nil
}

// toggleArrayEntry adds or removes a quoted entry in the first JSON array
// matched by pattern. Formatting of the other entries is kept.
func toggleArrayEntry(content string, pattern *regexp.Regexp, entry string, want bool) string {
	loc := pattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return content
	}
	inner := content[loc[2]:loc[3]]

	var items []string
	for _, item := range strings.Split(inner, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if strings.EqualFold(strings.Trim(item, `"`), entry) {
			continue
		}
		items = append(items, item)
	}
	if want {
		items = append(items, `"`+entry+`"`)
	}
	return content[:loc[2]] + strings.Join(items, ", ") + content[loc[3]:]
}

var functionalESLint = regexp.MustCompile(`\s*"(?:plugin:)?functional(?:/[a-z-]+)?"\s*,|,\s*"(?:plugin:)?functional(?:/[a-z-]+)?"`)

func editESLintConfig(projectDir string, f starter.Features) error {
	if f.Functional {
		return nil
	}
	path := filepath.Join(projectDir, ".eslintrc.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading .eslintrc.json: %w", err)
	}
	content := functionalESLint.ReplaceAllString(string(data), "")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing .eslintrc.json: %w", err)
	}
	return nil
}

func removeDisabledFeatures(projectDir string, f starter.Features) error {
	for _, flag := range starter.AllFlags {
		if f.Get(flag) {
			continue
		}
		for _, name := range featureFiles[flag] {
			if err := os.RemoveAll(filepath.Join(projectDir, name)); err != nil {
				return fmt.Errorf("removing %s: %w", name, err)
			}
		}
	}
	return nil
}

func rewriteIdentity(projectDir, projectName string, author Author) error {
	replacer := strings.NewReplacer(
		branding.TemplateRepo(), author.Username+"/"+baseName(projectName),
		branding.PackageName(), projectName,
		templateAuthorName, author.Name,
		templateAuthorEmail, author.Email,
	)

	fsys := os.DirFS(projectDir)
	seen := make(map[string]bool)
	for _, pattern := range identityGlobs {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return fmt.Errorf("matching %s: %w", pattern, err)
		}
		for _, rel := range matches {
			if seen[rel] {
				continue
			}
			seen[rel] = true

			path := filepath.Join(projectDir, filepath.FromSlash(rel))
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", rel, err)
			}
			updated := replacer.Replace(string(data))
			if updated == string(data) {
				continue
			}
			if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", rel, err)
			}
		}
	}
	return nil
}
