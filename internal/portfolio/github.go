package portfolio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"folioshell/internal/logger"
)

// DefaultGitHubAPI is the public GitHub REST endpoint.
const DefaultGitHubAPI = "https://api.github.com"

// GitHubProfile holds the public counters of a GitHub account.
type GitHubProfile struct {
	Login       string
	Name        string
	PublicRepos int64
	PublicGists int64
	Followers   int64
	Following   int64
	HTMLURL     string
}

// GitHubClient reads public user profiles from the GitHub REST API.
type GitHubClient struct {
	BaseURL string
	Client  *http.Client
}

// NewGitHubClient creates a client for baseURL, or the public API when baseURL is empty.
func NewGitHubClient(baseURL string, timeout time.Duration) *GitHubClient {
	if baseURL == "" {
		baseURL = DefaultGitHubAPI
	}
	return &GitHubClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: timeout},
	}
}

// Profile fetches /users/<user>.
func (c *GitHubClient) Profile(ctx context.Context, user string) (*GitHubProfile, error) {
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, fmt.Errorf("github user is empty")
	}

	endpoint := c.BaseURL + "/users/" + url.PathEscape(user)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	logger.Debug("GitHub profile request", "url", endpoint)
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("github returned invalid JSON")
	}

	doc := gjson.ParseBytes(body)
	return &GitHubProfile{
		Login:       doc.Get("login").String(),
		Name:        doc.Get("name").String(),
		PublicRepos: doc.Get("public_repos").Int(),
		PublicGists: doc.Get("public_gists").Int(),
		Followers:   doc.Get("followers").Int(),
		Following:   doc.Get("following").Int(),
		HTMLURL:     doc.Get("html_url").String(),
	}, nil
}
