package builtin

import (
	"context"
	"strings"

	"folioshell/internal/portfolio"
	"folioshell/pkg/foliotypes"
)

// ReloadCommand re-fetches the portfolio document. It runs off the input path.
type ReloadCommand struct{}

// Name returns the command name "reload" for registration and lookup.
func (c *ReloadCommand) Name() string {
	return "reload"
}

// Description returns a brief description of what the reload command does.
func (c *ReloadCommand) Description() string {
	return "Reload portfolio data"
}

// Usage returns the syntax for the reload command.
func (c *ReloadCommand) Usage() string {
	return "reload"
}

// Async marks the command as performing I/O.
func (c *ReloadCommand) Async() bool {
	return true
}

// Execute reloads and reports the status.
func (c *ReloadCommand) Execute(ctx context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	status := env.Reload(ctx)
	class := foliotypes.ClassInfo
	if strings.HasPrefix(status, portfolio.ReloadOK) {
		class = foliotypes.ClassSuccess
	}
	return foliotypes.Output{Text: status, Class: class}, nil
}
