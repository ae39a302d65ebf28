package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// ThemeCommand lists or switches color themes.
type ThemeCommand struct{}

// Name returns the command name "theme" for registration and lookup.
func (c *ThemeCommand) Name() string {
	return "theme"
}

// Description returns a brief description of what the theme command does.
func (c *ThemeCommand) Description() string {
	return "List or change the color theme"
}

// Usage returns the syntax for the theme command.
func (c *ThemeCommand) Usage() string {
	return "theme [name]"
}

// Execute switches to the named theme. Without a name it lists themes; an unknown name yields
// the usage line.
func (c *ThemeCommand) Execute(_ context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error) {
	themes := env.Themes()
	names := themes.Names()

	if len(args) == 0 || args[0] == "" {
		var sb strings.Builder
		fmt.Fprintf(&sb, "Current theme: %s\nAvailable themes:\n", themes.Current())
		for _, name := range names {
			marker := " "
			if name == themes.Current() {
				marker = "*"
			}
			fmt.Fprintf(&sb, "  %s %s\n", marker, name)
		}
		sb.WriteString(usage(c.Usage()))
		return foliotypes.Text(sb.String()), nil
	}

	if err := themes.Set(args[0]); err != nil {
		return foliotypes.Output{
			Text:  usage(fmt.Sprintf("theme [%s]", strings.Join(names, "|"))),
			Class: foliotypes.ClassInfo,
		}, nil
	}
	return foliotypes.Output{
		Text:  fmt.Sprintf("Theme changed to %s.", themes.Current()),
		Class: foliotypes.ClassSuccess,
	}, nil
}
