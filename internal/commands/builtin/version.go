package builtin

import (
	"context"

	"folioshell/internal/version"
	"folioshell/pkg/foliotypes"
)

// VersionCommand prints the build version.
type VersionCommand struct{}

// Name returns the command name "version" for registration and lookup.
func (c *VersionCommand) Name() string {
	return "version"
}

// Description returns a brief description of what the version command does.
func (c *VersionCommand) Description() string {
	return "Show version information"
}

// Usage returns the syntax for the version command.
func (c *VersionCommand) Usage() string {
	return "version"
}

// Execute returns the formatted version string.
func (c *VersionCommand) Execute(_ context.Context, _ []string, _ foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Text(version.Current().Short()), nil
}
