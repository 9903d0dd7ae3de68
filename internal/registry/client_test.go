package registry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLatestVersion(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"name": "typescript-starter",
		"dist-tags": {"latest": "2.0.0", "next": "3.0.0-beta.1"},
		"versions": {"1.0.0": {}, "2.0.0": {}}
	}`)

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	latest, err := c.LatestVersion(context.Background(), "typescript-starter")
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", latest)
}

func TestFetchPackage_Versions(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{
		"name": "typescript-starter",
		"dist-tags": {"latest": "2.0.0"},
		"versions": {"1.0.0": {}, "2.0.0": {}}
	}`)

	c := NewClient(WithBaseURL(srv.URL+"/"), WithHTTPClient(srv.Client()))
	pkg, err := c.FetchPackage(context.Background(), "typescript-starter")
	require.NoError(t, err)
	assert.Len(t, pkg.Versions, 2)
	assert.Equal(t, "typescript-starter", pkg.Name)
}

func TestFetchPackage_NotFound(t *testing.T) {
	srv := newTestServer(t, http.StatusNotFound, `{"error":"Not found"}`)

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	_, err := c.LatestVersion(context.Background(), "typescript-starter")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPackageNotFound))
	assert.False(t, errors.Is(err, ErrMissingLatest))
}

func TestFetchPackage_MissingLatest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no dist-tags", `{"name": "typescript-starter", "versions": {}}`},
		{"no latest tag", `{"name": "typescript-starter", "dist-tags": {"next": "1.0.0"}}`},
		{"malformed latest", `{"name": "typescript-starter", "dist-tags": {"latest": "soon"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, tt.body)
			c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
			_, err := c.LatestVersion(context.Background(), "typescript-starter")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingLatest), "got %v", err)
		})
	}
}

func TestFetchPackage_ServerError(t *testing.T) {
	srv := newTestServer(t, http.StatusBadGateway, ``)
	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	_, err := c.LatestVersion(context.Background(), "typescript-starter")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestFetchPackage_ScopedName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"name": "@scope/pkg", "dist-tags": {"latest": "1.2.3"}}`))
	}))
	defer srv.Close()

	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	latest, err := c.LatestVersion(context.Background(), "@scope/pkg")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", latest)
	assert.Equal(t, "/@scope%2Fpkg", gotPath)
}
