package builtin

import (
	"context"
	"strings"

	"folioshell/internal/data/embedded"
	"folioshell/pkg/foliotypes"
)

// BannerCommand prints the ASCII art banner.
type BannerCommand struct{}

// Name returns the command name "banner" for registration and lookup.
func (c *BannerCommand) Name() string {
	return "banner"
}

// Description returns a brief description of what the banner command does.
func (c *BannerCommand) Description() string {
	return "Show the welcome banner"
}

// Usage returns the syntax for the banner command.
func (c *BannerCommand) Usage() string {
	return "banner"
}

// Execute returns the banner as an ascii-art line.
func (c *BannerCommand) Execute(_ context.Context, _ []string, _ foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Output{
		Text:  strings.TrimRight(embedded.Banner, "\n"),
		Class: foliotypes.ClassASCII,
	}, nil
}
