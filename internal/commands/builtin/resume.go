package builtin

import (
	"context"

	"folioshell/pkg/foliotypes"
)

// ResumeCommand points at the downloadable resume.
type ResumeCommand struct{}

// Name returns the command name "resume" for registration and lookup.
func (c *ResumeCommand) Name() string {
	return "resume"
}

// Description returns a brief description of what the resume command does.
func (c *ResumeCommand) Description() string {
	return "Get my resume"
}

// Usage returns the syntax for the resume command.
func (c *ResumeCommand) Usage() string {
	return "resume"
}

// Execute prints the resume link.
func (c *ResumeCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Output{
		Text:  "Resume: " + env.Portfolio().ResumeURL(),
		Class: foliotypes.ClassSuccess,
	}, nil
}
