package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// CatCommand prints one of the fake files shown by ls.
type CatCommand struct{}

// Name returns the command name "cat" for registration and lookup.
func (c *CatCommand) Name() string {
	return "cat"
}

// Description returns a brief description of what the cat command does.
func (c *CatCommand) Description() string {
	return "Display file contents"
}

// Usage returns the syntax for the cat command.
func (c *CatCommand) Usage() string {
	return "cat [filename]"
}

// Execute prints the named file. File names match case-insensitively.
func (c *CatCommand) Execute(_ context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error) {
	if len(args) == 0 || args[0] == "" {
		return foliotypes.Output{Text: usage(c.Usage()), Class: foliotypes.ClassInfo}, nil
	}

	p := env.Portfolio()
	var text string
	switch strings.ToLower(args[0]) {
	case "readme.md":
		text = "Welcome to my portfolio! Built in Go and lots of coffee ☕"
	case "skills.txt":
		text = skillsSummary(p)
	case "contact.txt":
		text = fmt.Sprintf("Email: %s\nPhone: %s", p.Email(), p.Phone())
	case "portfolio.json":
		if p.Loaded() {
			text = fmt.Sprintf("Portfolio data loaded! %d sections available.", len(p.Sections()))
		} else {
			text = `Portfolio data not loaded. Use "reload" to load it.`
		}
	default:
		return foliotypes.Output{
			Text:  fmt.Sprintf("cat: %s: No such file or directory", args[0]),
			Class: foliotypes.ClassError,
		}, nil
	}
	return foliotypes.Text(text), nil
}

// skillsSummary lists every skill name on one line.
func skillsSummary(p foliotypes.Portfolio) string {
	var names []string
	for _, cat := range p.SkillCategories() {
		for _, s := range p.Skills(cat) {
			names = append(names, s.Name)
		}
	}
	return strings.Join(names, ", ")
}
