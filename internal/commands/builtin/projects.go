package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// ProjectsCommand lists portfolio projects, optionally filtered by category or status.
type ProjectsCommand struct{}

// Name returns the command name "projects" for registration and lookup.
func (c *ProjectsCommand) Name() string {
	return "projects"
}

// Description returns a brief description of what the projects command does.
func (c *ProjectsCommand) Description() string {
	return "Show my projects"
}

// Usage returns the syntax for the projects command.
func (c *ProjectsCommand) Usage() string {
	return "projects [category]"
}

// Execute prints the projects. The joined arguments filter by category or status; a filter
// matching nothing yields the usage line.
func (c *ProjectsCommand) Execute(_ context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()

	filter := strings.TrimSpace(strings.Join(args, " "))
	projects := p.Projects(filter)
	if len(projects) == 0 {
		if filter == "" {
			return foliotypes.Output{Text: "No projects yet.", Class: foliotypes.ClassInfo}, nil
		}
		return foliotypes.Output{
			Text:  usage(fmt.Sprintf("projects [%s]", strings.Join(p.ProjectFilters(), "|"))),
			Class: foliotypes.ClassInfo,
		}, nil
	}

	var sb strings.Builder
	for i, proj := range projects {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s", proj.Title)
		if proj.Status != "" {
			fmt.Fprintf(&sb, " [%s]", proj.Status)
		}
		sb.WriteString("\n")
		if proj.Description != "" {
			fmt.Fprintf(&sb, "  %s\n", proj.Description)
		}
		if len(proj.Technologies) > 0 {
			fmt.Fprintf(&sb, "  Tech: %s\n", strings.Join(proj.Technologies, ", "))
		}
		if proj.GitHub != "" {
			fmt.Fprintf(&sb, "  Code: %s\n", proj.GitHub)
		}
		if proj.Demo != "" {
			fmt.Fprintf(&sb, "  Demo: %s\n", proj.Demo)
		}
	}
	return foliotypes.Typed(strings.TrimRight(sb.String(), "\n")), nil
}
