package builtin

import (
	"context"

	"folioshell/pkg/foliotypes"
)

// ExitCommand ends the session. The front end decides how to shut down.
type ExitCommand struct{}

// Name returns the command name "exit" for registration and lookup.
func (c *ExitCommand) Name() string {
	return "exit"
}

// Description returns a brief description of what the exit command does.
func (c *ExitCommand) Description() string {
	return "Exit the terminal"
}

// Usage returns the syntax for the exit command.
func (c *ExitCommand) Usage() string {
	return "exit"
}

// Execute requests the session to end.
func (c *ExitCommand) Execute(_ context.Context, _ []string, _ foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Output{
		Text:   "Goodbye!",
		Class:  foliotypes.ClassInfo,
		Action: foliotypes.ActionQuit,
	}, nil
}
