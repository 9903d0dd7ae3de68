// Package updater gates every run on the CLI being up to date. It asks the
// npm registry for the latest published release and refuses to continue when
// the running binary is older. The template branch for a release is derived
// here too, so the cloned template always matches the running version.
package updater
