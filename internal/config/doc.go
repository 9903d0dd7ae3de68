// Package config manages user-level settings stored at
// ~/.typescript-starter/config.yaml. Besides the npm registry and GitHub API
// endpoints, the file may carry default answers ("defaults.runner",
// "defaults.strict", ...) that apply whenever neither a flag nor an
// interactive answer supplies a value.
package config
