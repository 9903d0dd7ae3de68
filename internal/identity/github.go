package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// ErrUserNotFound is returned when no GitHub account matches an email.
var ErrUserNotFound = errors.New("no GitHub user found for email")

// UsernameFetcher maps an email address to a GitHub username.
type UsernameFetcher interface {
	FetchUsername(ctx context.Context, email string) (string, error)
}

// UsernameFetcherFunc adapts a function to UsernameFetcher.
type UsernameFetcherFunc func(ctx context.Context, email string) (string, error)

// FetchUsername calls f.
func (f UsernameFetcherFunc) FetchUsername(ctx context.Context, email string) (string, error) {
	return f(ctx, email)
}

// GithubUsername returns the GitHub username for email. The placeholder email
// short-circuits without calling fetcher; any fetch failure yields the
// placeholder username.
func GithubUsername(ctx context.Context, fetcher UsernameFetcher, email string) string {
	return lookupUsername(ctx, fetcher, email).Or(PlaceholderUsername)
}

func lookupUsername(ctx context.Context, fetcher UsernameFetcher, email string) Lookup {
	if email == PlaceholderEmail || fetcher == nil {
		return Placeholder()
	}
	name, err := fetcher.FetchUsername(ctx, email)
	if err != nil {
		return Placeholder()
	}
	return Found(name)
}

// GitHubFetcher looks usernames up through the GitHub user search API.
type GitHubFetcher struct {
	BaseURL    string
	HTTPClient *http.Client
	// Token is sent as a bearer token when set; defaults to $GITHUB_TOKEN.
	Token string
}

// NewGitHubFetcher returns a fetcher against baseURL (the public API when empty).
func NewGitHubFetcher(baseURL string) *GitHubFetcher {
	if baseURL == "" {
		baseURL = "https://api.github.com"
	}
	return &GitHubFetcher{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: http.DefaultClient,
		Token:      os.Getenv("GITHUB_TOKEN"),
	}
}

type searchUsersResponse struct {
	TotalCount int `json:"total_count"`
	Items      []struct {
		Login string `json:"login"`
	} `json:"items"`
}

// FetchUsername returns the login of the first account whose public email
// matches.
func (g *GitHubFetcher) FetchUsername(ctx context.Context, email string) (string, error) {
	endpoint := fmt.Sprintf("%s/search/users?q=%s", g.BaseURL, url.QueryEscape(email+" in:email"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "typescript-starter")
	if g.Token != "" {
		req.Header.Set("Authorization", "Bearer "+g.Token)
	}

	client := g.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("searching GitHub users: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		return "", fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var result searchUsersResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("parsing search response: %w", err)
	}
	if len(result.Items) == 0 || result.Items[0].Login == "" {
		return "", ErrUserNotFound
	}
	return result.Items[0].Login, nil
}
