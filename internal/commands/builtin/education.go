package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// EducationCommand prints degrees and certifications.
type EducationCommand struct{}

// Name returns the command name "education" for registration and lookup.
func (c *EducationCommand) Name() string {
	return "education"
}

// Description returns a brief description of what the education command does.
func (c *EducationCommand) Description() string {
	return "Education and certifications"
}

// Usage returns the syntax for the education command.
func (c *EducationCommand) Usage() string {
	return "education"
}

// Execute prints each degree followed by the certification list.
func (c *EducationCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()
	education := p.Education()
	certs := p.Certifications()
	if len(education) == 0 && len(certs) == 0 {
		return foliotypes.Output{Text: "No education listed.", Class: foliotypes.ClassInfo}, nil
	}

	var sb strings.Builder
	for _, e := range education {
		fmt.Fprintf(&sb, "%s\n", e.Degree)
		if e.Institution != "" {
			fmt.Fprintf(&sb, "  %s\n", e.Institution)
		}
		switch {
		case e.Period != "" && e.Status != "":
			fmt.Fprintf(&sb, "  %s (%s)\n", e.Period, e.Status)
		case e.Period != "":
			fmt.Fprintf(&sb, "  %s\n", e.Period)
		case e.Status != "":
			fmt.Fprintf(&sb, "  %s\n", e.Status)
		}
		if e.Focus != "" {
			fmt.Fprintf(&sb, "  Focus: %s\n", e.Focus)
		}
		sb.WriteString("\n")
	}

	if len(certs) > 0 {
		sb.WriteString("Certifications\n")
		for _, cert := range certs {
			details := strings.Join(nonEmpty(cert.Issuer, cert.Date), ", ")
			if details == "" {
				fmt.Fprintf(&sb, "  • %s\n", cert.Name)
				continue
			}
			fmt.Fprintf(&sb, "  • %s (%s)\n", cert.Name, details)
		}
	}
	return foliotypes.Typed(strings.TrimRight(sb.String(), "\n")), nil
}
