// Package registry reads package documents from an npm-compatible registry.
// The version check uses it to learn the latest published release of the CLI.
// Documents are validated against an embedded JSON schema so that a missing
// package and a malformed "dist-tags.latest" are reported as distinct failures.
package registry
