package builtin

import (
	"context"
	"fmt"
	"strings"

	"folioshell/pkg/foliotypes"
)

// ContactCommand prints how to reach the author.
type ContactCommand struct{}

// Name returns the command name "contact" for registration and lookup.
func (c *ContactCommand) Name() string {
	return "contact"
}

// Description returns a brief description of what the contact command does.
func (c *ContactCommand) Description() string {
	return "Get my contact information"
}

// Usage returns the syntax for the contact command.
func (c *ContactCommand) Usage() string {
	return "contact"
}

// Execute prints the personal contact fields.
func (c *ContactCommand) Execute(_ context.Context, _ []string, env foliotypes.Env) (foliotypes.Output, error) {
	p := env.Portfolio()
	var sb strings.Builder
	fmt.Fprintf(&sb, "Email:        %s\n", p.Email())
	if phone := p.Phone(); phone != "" {
		fmt.Fprintf(&sb, "Phone:        %s\n", phone)
	}
	fmt.Fprintf(&sb, "Website:      %s\n", p.Website())
	fmt.Fprintf(&sb, "Location:     %s\n", p.Location())
	fmt.Fprintf(&sb, "Timezone:     %s\n", p.Timezone())
	fmt.Fprintf(&sb, "Availability: %s\n", p.Availability())
	sb.WriteString("\nType 'social' for profiles elsewhere.")
	return foliotypes.Typed(sb.String()), nil
}
