package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// JSONCommand prints sections of the loaded portfolio document as indented JSON.
type JSONCommand struct{}

// Name returns the command name "json" for registration and lookup.
func (c *JSONCommand) Name() string {
	return "json"
}

// Description returns a brief description of what the json command does.
func (c *JSONCommand) Description() string {
	return "View raw portfolio data"
}

// Usage returns the syntax for the json command.
func (c *JSONCommand) Usage() string {
	return "json [section]"
}

// Execute prints one top-level section, or lists the sections when none is named.
func (c *JSONCommand) Execute(_ context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()
	if !p.Loaded() {
		return foliotypes.Output{
			Text:  `Portfolio data not loaded. Use "reload" to load data.`,
			Class: foliotypes.ClassInfo,
		}, nil
	}

	available := strings.Join(p.Sections(), ", ")
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return foliotypes.Text(fmt.Sprintf("Available sections: %s\n%s", available, usage(c.Usage()))), nil
	}

	raw, ok := p.Section(name)
	if !ok {
		return foliotypes.Output{
			Text:  fmt.Sprintf("Section not found. Available: %s", available),
			Class: foliotypes.ClassError,
		}, nil
	}
	return foliotypes.Text(fmt.Sprintf("Section: %s\n%s", name, raw)), nil
}
