package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// ExperienceCommand prints the work history followed by the portfolio stats.
type ExperienceCommand struct{}

// Name returns the command name "experience" for registration and lookup.
func (c *ExperienceCommand) Name() string {
	return "experience"
}

// Description returns a brief description of what the experience command does.
func (c *ExperienceCommand) Description() string {
	return "Where I have worked"
}

// Usage returns the syntax for the experience command.
func (c *ExperienceCommand) Usage() string {
	return "experience"
}

// Execute prints one block per position.
func (c *ExperienceCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()
	var sb strings.Builder
	for _, e := range p.Experience() {
		sb.WriteString(e.Title)
		if e.Company != "" {
			fmt.Fprintf(&sb, " @ %s", e.Company)
		}
		sb.WriteString("\n")
		if e.Period != "" {
			fmt.Fprintf(&sb, "  %s\n", e.Period)
		}
		if e.Description != "" {
			fmt.Fprintf(&sb, "  %s\n", e.Description)
		}
		for _, a := range e.Achievements {
			fmt.Fprintf(&sb, "  • %s\n", a)
		}
		sb.WriteString("\n")
	}
	if sb.Len() == 0 {
		sb.WriteString("No experience listed.\n\n")
	}

	if stats := p.Stats(); len(stats) > 0 {
		sb.WriteString("Statistics\n")
		sb.WriteString(formatStats(stats))
	}
	return foliotypes.Typed(strings.TrimRight(sb.String(), "\n")), nil
}
