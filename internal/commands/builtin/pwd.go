package builtin

import (
	"context"

	"folioshell/pkg/foliotypes"
)

// PwdCommand prints the fake working directory.
type PwdCommand struct{}

// Name returns the command name "pwd" for registration and lookup.
func (c *PwdCommand) Name() string {
	return "pwd"
}

// Description returns a brief description of what the pwd command does.
func (c *PwdCommand) Description() string {
	return "Print working directory"
}

// Usage returns the syntax for the pwd command.
func (c *PwdCommand) Usage() string {
	return "pwd"
}

// Execute prints /home/<owner>/portfolio.
func (c *PwdCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Text("/home/" + owner(env.Portfolio()) + "/portfolio"), nil
}
