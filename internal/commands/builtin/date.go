package builtin

import (
	"context"
	"time"

	"folioshell/pkg/foliotypes"
)

// DateCommand prints the current date and time.
type DateCommand struct{}

// Name returns the command name "date" for registration and lookup.
func (c *DateCommand) Name() string {
	return "date"
}

// Description returns a brief description of what the date command does.
func (c *DateCommand) Description() string {
	return "Show the current date and time"
}

// Usage returns the syntax for the date command.
func (c *DateCommand) Usage() string {
	return "date"
}

// Execute formats the session clock as RFC 1123.
func (c *DateCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Text(env.Now().Format(time.RFC1123)), nil
}
