package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// HelpCommand implements the help command for displaying available commands and usage information.
// It lists all registered commands with their descriptions, sorted by name.
type HelpCommand struct{}

// Name returns the command name "help" for registration and lookup.
func (c *HelpCommand) Name() string {
	return "help"
}

// Description returns a brief description of what the help command does.
func (c *HelpCommand) Description() string {
	return "Show available commands"
}

// Usage returns the syntax for the help command.
func (c *HelpCommand) Usage() string {
	return "help [command]"
}

// Execute lists every command, or the details of one command when an argument is given.
func (c *HelpCommand) Execute(_ context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error) {
	all := env.Commands()

	if len(args) > 0 && args[0] != "" {
		return c.showCommandHelp(strings.ToLower(args[0]), all), nil
	}
	return c.showAllCommands(all), nil
}

// showCommandHelp displays name, usage and description of one command.
func (c *HelpCommand) showCommandHelp(name string, all []foliotypes.Command) foliotypes.Output {
	for _, cmd := range all {
		if strings.EqualFold(cmd.Name(), name) {
			text := fmt.Sprintf("Command:     %s\nUsage:       %s\nDescription: %s",
				strings.ToLower(cmd.Name()), cmd.Usage(), cmd.Description())
			return foliotypes.Text(text)
		}
	}
	return foliotypes.Output{
		Text:  fmt.Sprintf("No help for '%s'. Type 'help' for available commands.", name),
		Class: foliotypes.ClassError,
	}
}

// showAllCommands lists every registered command with its description.
func (c *HelpCommand) showAllCommands(all []foliotypes.Command) foliotypes.Output {
	names := make([]string, len(all))
	for i, cmd := range all {
		names[i] = strings.ToLower(cmd.Name())
	}
	width := columnWidth(names)

	var sb strings.Builder
	sb.WriteString("Available commands:\n")
	for i, cmd := range all {
		fmt.Fprintf(&sb, "  %-*s  %s\n", width, names[i], cmd.Description())
	}
	sb.WriteString("\nType 'help <command>' for details. Use Tab to complete, Up/Down for history.")
	return foliotypes.Typed(sb.String())
}
