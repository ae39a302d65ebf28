package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/internal/portfolio"
	"folioshell/pkg/foliotypes"
)

// SkillsCommand lists skills by category with level bars.
type SkillsCommand struct{}

// Name returns the command name "skills" for registration and lookup.
func (c *SkillsCommand) Name() string {
	return "skills"
}

// Description returns a brief description of what the skills command does.
func (c *SkillsCommand) Description() string {
	return "List my technical skills"
}

// Usage returns the syntax for the skills command.
func (c *SkillsCommand) Usage() string {
	return "skills [category]"
}

// Execute prints every category, or only the one the arguments name. Arguments are joined so
// multi-word categories work, and a partial name picks the first category containing it. An
// unknown category yields the usage line listing valid categories.
func (c *SkillsCommand) Execute(_ context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()
	categories := p.SkillCategories()

	if query := strings.TrimSpace(strings.Join(args, " ")); query != "" {
		if cat, ok := portfolio.MatchCategory(categories, query); ok {
			return foliotypes.Typed(formatSkills([]string{cat}, p)), nil
		}
		return foliotypes.Output{
			Text:  usage(fmt.Sprintf("skills [%s]", strings.Join(categories, "|"))),
			Class: foliotypes.ClassInfo,
		}, nil
	}

	return foliotypes.Typed(formatSkills(categories, p)), nil
}

func formatSkills(categories []string, p foliotypes.Portfolio) string {
	var sb strings.Builder
	for i, cat := range categories {
		if i > 0 {
			sb.WriteString("\n")
		}
		skills := p.Skills(cat)
		names := make([]string, len(skills))
		for j, s := range skills {
			names[j] = s.Name
		}
		width := columnWidth(names)

		fmt.Fprintf(&sb, "%s\n", titleCase(cat))
		for _, s := range skills {
			fmt.Fprintf(&sb, "  %-*s  %s", width, s.Name, levelBar(s.Level))
			if s.Experience != "" {
				fmt.Fprintf(&sb, "  (%s)", s.Experience)
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
