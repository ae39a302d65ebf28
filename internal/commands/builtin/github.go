package builtin

import (
	"context"
	"fmt"

	"folioshell/internal/logger"
	"folioshell/internal/portfolio"
	"folioshell/pkg/foliotypes"
)

// GitHubCommand fetches live GitHub counters. It runs off the input path.
// When the lookup fails it falls back to the cached stats.
type GitHubCommand struct {
	Client *portfolio.GitHubClient
	User   string
}

// Name returns the command name "github" for registration and lookup.
func (c *GitHubCommand) Name() string {
	return "github"
}

// Description returns a brief description of what the github command does.
func (c *GitHubCommand) Description() string {
	return "Show my GitHub stats"
}

// Usage returns the syntax for the github command.
func (c *GitHubCommand) Usage() string {
	return "github"
}

// Async marks the command as performing network I/O.
func (c *GitHubCommand) Async() bool {
	return true
}

// Execute fetches the profile of the configured user.
func (c *GitHubCommand) Execute(ctx context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	user := c.User
	if user == "" {
		user = env.Portfolio().GitHubUser()
	}

	if c.Client == nil {
		return c.fallback(env, user, "live lookup disabled"), nil
	}

	profile, err := c.Client.Profile(ctx, user)
	if err != nil {
		logger.Debug("GitHub lookup failed", "user", user, "error", err)
		return c.fallback(env, user, "GitHub unavailable"), nil
	}

	text := fmt.Sprintf("GitHub: %s\n\nPublic repos  %d\nFollowers     %d\nFollowing     %d\nPublic gists  %d",
		profile.Login, profile.PublicRepos, profile.Followers, profile.Following, profile.PublicGists)
	if profile.HTMLURL != "" {
		text += "\n\n" + profile.HTMLURL
	}
	return foliotypes.Typed(text), nil
}

func (c *GitHubCommand) fallback(env foliotypes.Env, user, reason string) foliotypes.Output {
	text := fmt.Sprintf("GitHub: %s (%s, showing cached stats)\n\n%s",
		user, reason, formatStats(env.Portfolio().Stats()))
	return foliotypes.Typed(text)
}
