package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// StatsCommand prints the metrics of the portfolio document.
type StatsCommand struct{}

// Name returns the command name "stats" for registration and lookup.
func (c *StatsCommand) Name() string {
	return "stats"
}

// Description returns a brief description of what the stats command does.
func (c *StatsCommand) Description() string {
	return "Show some numbers"
}

// Usage returns the syntax for the stats command.
func (c *StatsCommand) Usage() string {
	return "stats"
}

// Execute prints one metric per line.
func (c *StatsCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Typed(formatStats(env.Portfolio().Stats())), nil
}

func formatStats(stats []foliotypes.Stat) string {
	if len(stats) == 0 {
		return "No stats available."
	}

	labels := make([]string, len(stats))
	for i, s := range stats {
		labels[i] = titleCase(strings.ReplaceAll(s.Name, "_", " "))
	}
	width := columnWidth(labels)

	var sb strings.Builder
	for i, s := range stats {
		fmt.Fprintf(&sb, "%-*s  %s\n", width, labels[i], s.Value)
	}
	return strings.TrimRight(sb.String(), "\n")
}
