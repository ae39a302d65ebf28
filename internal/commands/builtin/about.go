package builtin

import (
	"context"

	"folioshell/pkg/foliotypes"
)

// AboutCommand prints the author's bio as markdown.
type AboutCommand struct{}

// Name returns the command name "about" for registration and lookup.
func (c *AboutCommand) Name() string {
	return "about"
}

// Description returns a brief description of what the about command does.
func (c *AboutCommand) Description() string {
	return "Learn more about me"
}

// Usage returns the syntax for the about command.
func (c *AboutCommand) Usage() string {
	return "about"
}

// Execute returns the bio. Markdown output is never typed so styled front ends can render it whole.
func (c *AboutCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Output{
		Text:  env.Portfolio().Bio(),
		Class: foliotypes.ClassMarkdown,
	}, nil
}
