package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// ServicesCommand lists the services on offer.
type ServicesCommand struct{}

// Name returns the command name "services" for registration and lookup.
func (c *ServicesCommand) Name() string {
	return "services"
}

// Description returns a brief description of what the services command does.
func (c *ServicesCommand) Description() string {
	return "Services I offer"
}

// Usage returns the syntax for the services command.
func (c *ServicesCommand) Usage() string {
	return "services"
}

// Execute prints each service with its price range and features.
func (c *ServicesCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	services := env.Portfolio().Services()
	if len(services) == 0 {
		return foliotypes.Output{Text: "No services listed.", Class: foliotypes.ClassInfo}, nil
	}

	var sb strings.Builder
	for i, s := range services {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s\n", s.Title)
		if s.Description != "" {
			fmt.Fprintf(&sb, "  %s\n", s.Description)
		}
		if s.PriceRange != "" {
			fmt.Fprintf(&sb, "  Price range: %s\n", s.PriceRange)
		}
		if len(s.Features) > 0 {
			sb.WriteString("  Features:\n")
			for _, f := range s.Features {
				fmt.Fprintf(&sb, "    • %s\n", f)
			}
		}
	}
	return foliotypes.Typed(strings.TrimRight(sb.String(), "\n")), nil
}
