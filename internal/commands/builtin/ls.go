package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// LsCommand prints a fake long listing of the portfolio home directory.
type LsCommand struct{}

// Name returns the command name "ls" for registration and lookup.
func (c *LsCommand) Name() string {
	return "ls"
}

// Description returns a brief description of what the ls command does.
func (c *LsCommand) Description() string {
	return "List directory contents"
}

// Usage returns the syntax for the ls command.
func (c *LsCommand) Usage() string {
	return "ls"
}

type listing struct {
	mode  string
	links int
	size  int
	name  string
}

// Execute prints the listing. portfolio.json reports the loaded document size, 0 when none.
func (c *LsCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()
	user := owner(p)
	stamp := env.Now().Format("Jan _2 15:04")

	entries := []listing{
		{"drwxr-xr-x", 2, 4096, "about/"},
		{"drwxr-xr-x", 3, 4096, "projects/"},
		{"drwxr-xr-x", 2, 4096, "skills/"},
		{"drwxr-xr-x", 2, 4096, "contact/"},
		{"drwxr-xr-x", 2, 4096, "assets/"},
		{"-rw-r--r--", 1, p.Size(), "portfolio.json"},
		{"-rw-r--r--", 1, 2048, "resume.pdf"},
		{"-rw-r--r--", 1, 1024, "README.md"},
		{"-rwxr-xr-x", 1, 512, "terminal"},
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "total %d\n", len(entries)-1)
	for _, e := range entries {
		fmt.Fprintf(&sb, "%s  %d %s %s %5d %s %s\n", e.mode, e.links, user, user, e.size, stamp, e.name)
	}
	return foliotypes.Text(strings.TrimRight(sb.String(), "\n")), nil
}
