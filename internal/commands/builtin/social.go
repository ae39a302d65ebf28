package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// SocialCommand lists social profile links.
type SocialCommand struct{}

// Name returns the command name "social" for registration and lookup.
func (c *SocialCommand) Name() string {
	return "social"
}

// Description returns a brief description of what the social command does.
func (c *SocialCommand) Description() string {
	return "Find me on the web"
}

// Usage returns the syntax for the social command.
func (c *SocialCommand) Usage() string {
	return "social"
}

// Execute prints one platform per line.
func (c *SocialCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	links := env.Portfolio().Social()
	if len(links) == 0 {
		return foliotypes.Output{Text: "No social profiles listed.", Class: foliotypes.ClassInfo}, nil
	}

	names := make([]string, len(links))
	for i, l := range links {
		names[i] = titleCase(l.Name)
	}
	width := columnWidth(names)

	var sb strings.Builder
	for i, l := range links {
		fmt.Fprintf(&sb, "%-*s  %s\n", width, names[i], l.URL)
	}
	return foliotypes.Typed(strings.TrimRight(sb.String(), "\n")), nil
}
