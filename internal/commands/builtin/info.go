package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// InfoCommand reports where the portfolio data comes from and what it contains.
type InfoCommand struct{}

// Name returns the command name "info" for registration and lookup.
func (c *InfoCommand) Name() string {
	return "info"
}

// Description returns a brief description of what the info command does.
func (c *InfoCommand) Description() string {
	return "Show portfolio data status"
}

// Usage returns the syntax for the info command.
func (c *InfoCommand) Usage() string {
	return "info"
}

// Execute prints the data source, section counts and settings. Without a loaded document it
// only reports the source and points at reload.
func (c *InfoCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Data source: %s\n", env.DataSource())
	if !p.Loaded() {
		sb.WriteString("Status:      not loaded, showing built-in content\n\nUse 'reload' to load portfolio data.")
		return foliotypes.Text(sb.String()), nil
	}
	sb.WriteString("Status:      loaded\n\n")

	counts := []struct {
		label string
		n     int
		unit  string
	}{
		{"Skills", len(p.SkillCategories()), "categories"},
		{"Projects", len(p.Projects("")), "items"},
		{"Services", len(p.Services()), "items"},
		{"Experience", len(p.Experience()), "items"},
		{"Education", len(p.Education()), "items"},
		{"Certifications", len(p.Certifications()), "items"},
		{"Social links", len(p.Social()), "platforms"},
		{"Stats", len(p.Stats()), "metrics"},
	}
	labels := make([]string, len(counts))
	for i, row := range counts {
		labels[i] = row.label
	}
	width := columnWidth(labels)

	sb.WriteString("Sections\n")
	for _, row := range counts {
		fmt.Fprintf(&sb, "  %-*s  %d %s\n", width, row.label, row.n, row.unit)
	}

	s := p.Settings()
	sb.WriteString("\nSettings\n")
	fmt.Fprintf(&sb, "  Theme        %s\n", s.Theme)
	fmt.Fprintf(&sb, "  Animations   %s\n", onOff(s.Animations, "enabled", "disabled"))
	fmt.Fprintf(&sb, "  Terminal     %s\n", onOff(s.Terminal, "enabled", "disabled"))
	fmt.Fprintf(&sb, "  Maintenance  %s\n", onOff(s.Maintenance, "on", "off"))
	sb.WriteString("\nUse 'json [section]' to view raw data.")
	return foliotypes.Text(sb.String()), nil
}
