package builtin

import (
	"context"

	"folioshell/pkg/foliotypes"
)

// WhoamiCommand prints the author's name and title.
type WhoamiCommand struct{}

// Name returns the command name "whoami" for registration and lookup.
func (c *WhoamiCommand) Name() string {
	return "whoami"
}

// Description returns a brief description of what the whoami command does.
func (c *WhoamiCommand) Description() string {
	return "Who am I?"
}

// Usage returns the syntax for the whoami command.
func (c *WhoamiCommand) Usage() string {
	return "whoami"
}

// Execute prints name and title.
func (c *WhoamiCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()
	return foliotypes.Text(p.Name() + "\n" + p.Title()), nil
}
