package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// HistoryCommand prints the numbered command history.
type HistoryCommand struct{}

// Name returns the command name "history" for registration and lookup.
func (c *HistoryCommand) Name() string {
	return "history"
}

// Description returns a brief description of what the history command does.
func (c *HistoryCommand) Description() string {
	return "Show command history"
}

// Usage returns the syntax for the history command.
func (c *HistoryCommand) Usage() string {
	return "history"
}

// Execute lists entries oldest first.
func (c *HistoryCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	entries := env.History()
	if len(entries) == 0 {
		return foliotypes.Output{Text: "History is empty.", Class: foliotypes.ClassInfo}, nil
	}

	width := len(fmt.Sprint(len(entries)))
	var sb strings.Builder
	for i, entry := range entries {
		fmt.Fprintf(&sb, "%*d  %s\n", width, i+1, entry)
	}
	return foliotypes.Text(strings.TrimRight(sb.String(), "\n")), nil
}
