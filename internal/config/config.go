package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/starterkit-dev/typescript-starter/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Well-known keys.
const (
	KeyRegistry  = "registry"
	KeyGitHubAPI = "github_api"
	// KeyDefaultsPrefix prefixes default answers, e.g. "defaults.yarn".
	KeyDefaultsPrefix = "defaults."
)

// Built-in endpoint values used when the config file and env leave them unset.
const (
	DefaultRegistry  = "https://registry.npmjs.org"
	DefaultGitHubAPI = "https://api.github.com"
)

// Dir returns the path to the config directory (~/.typescript-starter/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Store is a viper-backed view of one config file.
type Store struct {
	v    *viper.Viper
	path string
}

// Load reads the config file at path (missing files are fine) and binds
// environment variables under the branding prefix, so TYPESCRIPT_STARTER_REGISTRY
// overrides the "registry" key.
func Load(path string) (*Store, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyRegistry, DefaultRegistry)
	v.SetDefault(KeyGitHubAPI, DefaultGitHubAPI)

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	return &Store{v: v, path: path}, nil
}

// Path returns the file this store reads from and writes to.
func (s *Store) Path() string { return s.path }

// Get returns a config value by key. Returns empty string if not set.
func (s *Store) Get(key string) string {
	return s.v.GetString(key)
}

// Registry returns the npm registry base URL without a trailing slash.
func (s *Store) Registry() string {
	return strings.TrimRight(s.v.GetString(KeyRegistry), "/")
}

// GitHubAPI returns the GitHub API base URL without a trailing slash.
func (s *Store) GitHubAPI() string {
	return strings.TrimRight(s.v.GetString(KeyGitHubAPI), "/")
}

// Defaults returns the raw "defaults.*" entries from the file. Callers decide
// how to interpret each key; unknown keys are returned as-is.
func (s *Store) Defaults() map[string]string {
	out := make(map[string]string)
	for _, key := range s.v.AllKeys() {
		if !strings.HasPrefix(key, KeyDefaultsPrefix) {
			continue
		}
		out[strings.TrimPrefix(key, KeyDefaultsPrefix)] = s.v.GetString(key)
	}
	return out
}

// Set writes a config key-value pair and saves the config file.
func (s *Store) Set(key, value string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	s.v.Set(key, value)

	if err := s.v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
