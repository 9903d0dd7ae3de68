package updater

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/starterkit-dev/typescript-starter/internal/registry"
)

// LatestVersionFetcher returns the latest published version of a package.
// *registry.Client satisfies it.
type LatestVersionFetcher interface {
	LatestVersion(ctx context.Context, packageName string) (string, error)
}

// LookupError means the registry could not tell us the latest version.
type LookupError struct {
	Package string
	Err     error
}

func (e *LookupError) Error() string {
	switch {
	case errors.Is(e.Err, registry.ErrPackageNotFound):
		return fmt.Sprintf("Package %q could not be found on the registry: %v", e.Package, e.Err)
	case errors.Is(e.Err, registry.ErrMissingLatest):
		return fmt.Sprintf("Package %q has no usable latest version on the registry: %v", e.Package, e.Err)
	default:
		return fmt.Sprintf("Could not look up package %q on the registry: %v", e.Package, e.Err)
	}
}

func (e *LookupError) Unwrap() error { return e.Err }

// OutdatedError means a newer release than the running one is published.
type OutdatedError struct {
	Package string
	Current string
	Latest  string
}

func (e *OutdatedError) Error() string {
	return fmt.Sprintf("Your version of %s is outdated (%s < %s). Consider using 'npx %s@latest' or reinstalling the latest release.",
		e.Package, e.Current, e.Latest, e.Package)
}

// IsOutdated reports whether err is an *OutdatedError.
func IsOutdated(err error) bool {
	var oe *OutdatedError
	return errors.As(err, &oe)
}

// Checker compares the running version against the registry.
type Checker struct {
	Fetcher     LatestVersionFetcher
	PackageName string
	Logger      *log.Logger
}

// IsDev reports whether version denotes an unreleased development build.
func IsDev(version string) bool {
	v := strings.TrimSpace(version)
	return v == "" || v == "dev" || strings.HasSuffix(v, "-dev")
}

// Check fails with *LookupError if the registry cannot provide a latest
// version, and with *OutdatedError if current is older than it. Development
// builds still require a successful lookup but skip the comparison.
func (c *Checker) Check(ctx context.Context, current string) error {
	latest, err := c.Fetcher.LatestVersion(ctx, c.PackageName)
	if err != nil {
		return &LookupError{Package: c.PackageName, Err: err}
	}

	if IsDev(current) {
		if c.Logger != nil {
			c.Logger.Debug("development build, skipping version comparison", "latest", latest)
		}
		return nil
	}

	outdated, err := IsUpdateAvailable(current, latest)
	if err != nil {
		return fmt.Errorf("comparing versions: %w", err)
	}
	if outdated {
		return &OutdatedError{Package: c.PackageName, Current: current, Latest: latest}
	}

	if c.Logger != nil {
		c.Logger.Debug("version is current", "current", current, "latest", latest)
	}
	return nil
}
