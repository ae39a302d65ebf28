package builtin

import (
	"context"

	"folioshell/pkg/foliotypes"
)

// ClearCommand empties the transcript.
type ClearCommand struct{}

// Name returns the command name "clear" for registration and lookup.
func (c *ClearCommand) Name() string {
	return "clear"
}

// Description returns a brief description of what the clear command does.
func (c *ClearCommand) Description() string {
	return "Clear the terminal"
}

// Usage returns the syntax for the clear command.
func (c *ClearCommand) Usage() string {
	return "clear"
}

// Execute requests a transcript clear.
func (c *ClearCommand) Execute(_ context.Context, _ []string, _ foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Output{Action: foliotypes.ActionClear}, nil
}
