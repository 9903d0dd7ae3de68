package scaffold

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/starterkit-dev/typescript-starter/internal/process"
)

type call struct {
	Name string
	Args []string
	Dir  string
}

func (c call) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// fakeRunner records every call and answers through handle. A nil handle
// succeeds with empty output.
type fakeRunner struct {
	calls  []call
	handle func(c call) (*process.Result, error)
}

func (f *fakeRunner) Run(_ context.Context, name string, args []string, opts process.Options) (*process.Result, error) {
	c := call{Name: name, Args: args, Dir: opts.Dir}
	f.calls = append(f.calls, c)
	if f.handle == nil {
		return &process.Result{}, nil
	}
	return f.handle(c)
}

func (f *fakeRunner) commands() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.String()
	}
	return out
}

const templatePackageJSON = `{
  "name": "typescript-starter",
  "version": "2.1.0",
  "description": "A typescript starter for building javascript libraries and projects",
  "main": "build/main/index.js",
  "repository": "https://github.com/bitjson/typescript-starter",
  "license": "MIT",
  "keywords": [],
  "scripts": {
    "build": "run-p build:*",
    "fix": "run-s fix:*",
    "test": "run-s build test:*",
    "test:spelling": "cspell \"{README.md,.github/*.md,src/**/*.ts}\"",
    "watch:build": "tsc -p tsconfig.json -w",
    "reset-hard": "git clean -dfx && git reset --hard && npm i",
    "prepare-release": "run-s reset-hard test cov:check doc:html version doc:publish",
    "version": "npm run build"
  },
  "engines": {
    "node": ">=10"
  },
  "devDependencies": {
    "cspell": "^4.1.0",
    "eslint": "^7.8.0",
    "eslint-plugin-functional": "^3.0.2",
    "typescript": "^4.0.2"
  },
  "ava": {
    "failFast": true,
    "timeout": "60s"
  }
}
`

const templateTSConfig = `{
  "compilerOptions": {
    "target": "es2017",
    "outDir": "build/main",
    "rootDir": "src",

    // "strict": true /* Enable all strict type-checking options. */,
    // "noUnusedLocals": true /* Report errors on unused locals. */,
    // "noUnusedParameters": true /* Report errors on unused parameters. */,
    // "noImplicitReturns": true /* Report error when not all code paths in function return a value. */,
    // "noFallthroughCasesInSwitch": true /* Report errors for fallthrough cases in switch statement. */,

    "lib": ["es2017"],
    "types": [],
    "typeRoots": ["node_modules/@types", "src/types"]
  }
}
`

const templateESLint = `{
  "root": true,
  "parser": "@typescript-eslint/parser",
  "plugins": ["@typescript-eslint", "eslint-comments", "functional"],
  "extends": [
    "eslint:recommended",
    "plugin:eslint-comments/recommended",
    "plugin:functional/lite",
    "prettier"
  ]
}
`

// writeTemplate lays out a minimal copy of the template repository in dir.
func writeTemplate(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"package.json":            templatePackageJSON,
		"tsconfig.json":           templateTSConfig,
		".eslintrc.json":          templateESLint,
		"README.md":               "# typescript-starter\n",
		"LICENSE":                 "Copyright (c) 2017 Jason Dreyzehner <jason@dreyzehner.com>\n",
		"src/index.ts":            "export * from './lib/number';\n",
		"src/lib/number.ts":       "// https://github.com/bitjson/typescript-starter\nexport const double = (n: number) => n * 2;\n",
		".travis.yml":             "language: node_js\n",
		"appveyor.yml":            "version: '{build}'\n",
		".circleci/config.yml":    "version: 2\n",
		".cspell.json":            "{}\n",
		".editorconfig":           "root = true\n",
		".vscode/settings.json":   "{}\n",
		".git/HEAD":               "ref: refs/heads/master\n",
		".github/CONTRIBUTING.md": "See bitjson/typescript-starter issues.\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
