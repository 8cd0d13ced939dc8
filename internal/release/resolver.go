package release

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/harehare/mq-task/internal/config"
)

// ErrVersionResolution is returned when the latest release tag cannot be
// determined from the releases API.
var ErrVersionResolution = errors.New("version resolution failed")

// Release is the subset of the GitHub release payload the installer needs.
type Release struct {
	TagName   string `json:"tag_name"`
	HTMLURL   string `json:"html_url"`
	Published string `json:"published_at"`
}

// Resolver queries the GitHub releases API for the repository named in the
// configuration. Every run re-resolves "latest"; there is no caching and no
// version pinning.
type Resolver struct {
	cfg        *config.Config
	httpClient *http.Client
	apiBase    string
	userAgent  string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API base URL (useful for testing).
func WithAPIBase(base string) Option {
	return func(r *Resolver) {
		r.apiBase = strings.TrimRight(base, "/")
	}
}

// NewResolver creates a Resolver for the configured repository.
func NewResolver(cfg *config.Config, opts ...Option) *Resolver {
	r := &Resolver{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.HTTPTimeout},
		apiBase:    cfg.APIBaseURL,
		userAgent:  cfg.CommandName + "-installer",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveLatest fetches the latest release and returns its tag, e.g. "v1.2.0".
// A tag that does not parse as a semantic version is a resolution failure.
func (r *Resolver) ResolveLatest(ctx context.Context) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", r.apiBase, r.cfg.Repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: creating request: %v", ErrVersionResolution, err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", r.userAgent)

	// Support optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: fetching release: %v", ErrVersionResolution, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w: no releases found for %s", ErrVersionResolution, r.cfg.Repo)
	case resp.StatusCode == http.StatusForbidden:
		return "", fmt.Errorf("%w: GitHub API rate limit exceeded, set GITHUB_TOKEN for higher limits", ErrVersionResolution)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: GitHub API returned status %d", ErrVersionResolution, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response body: %v", ErrVersionResolution, err)
	}

	var rel Release
	if err := json.Unmarshal(body, &rel); err != nil {
		return "", fmt.Errorf("%w: parsing release JSON: %v", ErrVersionResolution, err)
	}

	tag := strings.TrimSpace(rel.TagName)
	if tag == "" {
		return "", fmt.Errorf("%w: release has no tag", ErrVersionResolution)
	}
	if _, err := semver.NewVersion(strings.TrimPrefix(tag, "v")); err != nil {
		return "", fmt.Errorf("%w: tag %q is not a semantic version: %v", ErrVersionResolution, tag, err)
	}

	return tag, nil
}
