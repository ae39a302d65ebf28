package builtin

import (
	"context"
	"strings"

	"folioshell/pkg/foliotypes"
)

// EchoCommand implements the echo command for outputting text.
type EchoCommand struct{}

// Name returns the command name "echo" for registration and lookup.
func (c *EchoCommand) Name() string {
	return "echo"
}

// Description returns a brief description of what the echo command does.
func (c *EchoCommand) Description() string {
	return "Print text"
}

// Usage returns the syntax for the echo command.
func (c *EchoCommand) Usage() string {
	return "echo <text>"
}

// Execute joins the arguments with single spaces. Arguments come from splitting on single
// spaces, so runs of spaces survive the round trip.
func (c *EchoCommand) Execute(_ context.Context, args []string, _ foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Text(strings.Join(args, " ")), nil
}
