//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir     string // HOME with its own git identity
	TemplateDir string // local git repository standing in for the template
	WorkDir     string // where projects get created
}

// setupTestEnv creates isolated temp directories and points git at a private
// global config so no user settings leak into the run.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}

	env := &testEnv{
		HomeDir:     t.TempDir(),
		TemplateDir: t.TempDir(),
		WorkDir:     t.TempDir(),
	}

	gitconfig := filepath.Join(env.HomeDir, ".gitconfig")
	writeFile(t, gitconfig, "[user]\n\tname = Grace Hopper\n\temail = grace@example.com\n[init]\n\tdefaultBranch = master\n")
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("GIT_CONFIG_GLOBAL", gitconfig)
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")

	return env
}

// setupTemplate creates a git repository shaped like the typescript-starter
// template and commits it. Returns the commit hash.
func setupTemplate(t *testing.T, dir string) string {
	t.Helper()

	files := map[string]string{
		"package.json": `{
  "name": "typescript-starter",
  "version": "2.1.0",
  "description": "A typescript starter",
  "repository": "https://github.com/bitjson/typescript-starter",
  "scripts": {
    "build": "tsc",
    "test:spelling": "cspell src",
    "version": "npm run build"
  },
  "devDependencies": {
    "cspell": "^4.1.0",
    "eslint-plugin-functional": "^3.0.2"
  }
}
`,
		"tsconfig.json":  "{\n  \"compilerOptions\": {\n    // \"strict\": true,\n    \"lib\": [\"es2017\"],\n    \"types\": []\n  }\n}\n",
		".eslintrc.json": "{\n  \"plugins\": [\"eslint-comments\", \"functional\"]\n}\n",
		"README.md":      "# typescript-starter\n",
		"LICENSE":        "Copyright (c) Jason Dreyzehner\n",
		"src/index.ts":   "export const x = 1;\n",
		".travis.yml":    "language: node_js\n",
		".cspell.json":   "{}\n",
		".vscode/a.json": "{}\n",
	}
	for name, content := range files {
		writeFile(t, filepath.Join(dir, filepath.FromSlash(name)), content)
	}

	git(t, dir, "init")
	git(t, dir, "add", "-A")
	git(t, dir, "commit", "-m", "template")
	return git(t, dir, "rev-parse", "HEAD")
}

func git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, stderr.String())
	}
	return strings.TrimSpace(out.String())
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent, stat err = %v", path, err)
	}
}
