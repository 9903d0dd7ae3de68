package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

var (
	// ErrPackageNotFound is returned when the registry has no such package.
	ErrPackageNotFound = errors.New("package not found")
	// ErrMissingLatest is returned when the package exists but its document
	// carries no usable "dist-tags.latest" version.
	ErrMissingLatest = errors.New("registry document has no valid latest version")
)

// Package is the subset of a registry document the CLI cares about.
type Package struct {
	Name     string                     `json:"name"`
	DistTags map[string]string          `json:"dist-tags"`
	Versions map[string]json.RawMessage `json:"versions"`
}

// Latest returns the "latest" dist-tag.
func (p *Package) Latest() string {
	return p.DistTags["latest"]
}

// Client talks to an npm-compatible registry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithBaseURL points the client at a different registry or mirror.
func WithBaseURL(base string) Option {
	return func(cl *Client) {
		if base != "" {
			cl.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// NewClient creates a registry client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPackage retrieves and validates the registry document for name.
func (c *Client) FetchPackage(ctx context.Context, name string) (*Package, error) {
	// Scoped names keep their "@" but escape the slash, as the npm CLI does.
	endpoint := c.baseURL + "/" + url.PathEscape(name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "typescript-starter")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%s: %w", name, ErrPackageNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("registry returned status %d for %s", resp.StatusCode, name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	issues, err := validateDocument(body)
	if err != nil {
		return nil, err
	}
	if len(issues) > 0 {
		if touchesLatest(issues) {
			return nil, fmt.Errorf("%s: %w (%s)", name, ErrMissingLatest, issues[0])
		}
		return nil, fmt.Errorf("%s: invalid registry document: %s", name, issues[0])
	}

	var pkg Package
	if err := json.Unmarshal(body, &pkg); err != nil {
		return nil, fmt.Errorf("parsing registry document: %w", err)
	}
	return &pkg, nil
}

// LatestVersion returns the "latest" dist-tag for name.
func (c *Client) LatestVersion(ctx context.Context, name string) (string, error) {
	pkg, err := c.FetchPackage(ctx, name)
	if err != nil {
		return "", err
	}
	return pkg.Latest(), nil
}
