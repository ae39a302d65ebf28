// Package builtin provides the portfolio commands available in every terminal session.
package builtin

import (
	"fmt"

	"folioshell/internal/commands"
	"folioshell/internal/portfolio"
	"folioshell/pkg/foliotypes"
)

// Options carries the collaborators some builtin commands need.
type Options struct {
	// GitHub fetches live profile counters; nil disables the live lookup.
	GitHub *portfolio.GitHubClient
	// GitHubUser overrides the login read from the portfolio document.
	GitHubUser string
	// Pick returns a random index below n for joke, quote and matrix; nil uses math/rand.
	Pick func(n int) int
}

// All returns a fresh instance of every builtin command.
func All(opts Options) []foliotypes.Command {
	return []foliotypes.Command{
		&HelpCommand{},
		&AboutCommand{},
		&SkillsCommand{},
		&ProjectsCommand{},
		&ServicesCommand{},
		&ExperienceCommand{},
		&EducationCommand{},
		&ContactCommand{},
		&SocialCommand{},
		&StatsCommand{},
		&ResumeCommand{},
		&GitHubCommand{Client: opts.GitHub, User: opts.GitHubUser},
		&InfoCommand{},
		&JSONCommand{},
		&ReloadCommand{},
		&WhoamiCommand{},
		&LsCommand{},
		&CatCommand{},
		&PwdCommand{},
		&DateCommand{},
		&EchoCommand{},
		&HistoryCommand{},
		&ClearCommand{},
		&ThemeCommand{},
		&JokeCommand{Pick: opts.Pick},
		&QuoteCommand{Pick: opts.Pick},
		&WeatherCommand{},
		&MatrixCommand{Pick: opts.Pick},
		&BannerCommand{},
		&VersionCommand{},
		&ExitCommand{},
	}
}

// Register installs every builtin command into r.
func Register(r *commands.Registry, opts Options) error {
	for _, cmd := range All(opts) {
		if err := r.Register(cmd); err != nil {
			return fmt.Errorf("failed to register %s command: %w", cmd.Name(), err)
		}
	}
	return nil
}
