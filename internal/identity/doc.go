// Package identity works out who is creating the project: the git author
// name and email from local git config, and the GitHub username behind that
// email. Identity is cosmetic metadata for the generated project, so every
// lookup degrades to a fixed placeholder instead of failing the run.
package identity
