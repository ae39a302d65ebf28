package builtin

import (
	"context"

	"folioshell/pkg/foliotypes"
)

var quotes = []string{
	`"Talk is cheap. Show me the code." - Linus Torvalds`,
	`"Any fool can write code that a computer can understand. Good programmers write code that humans can understand." - Martin Fowler`,
	`"First, solve the problem. Then, write the code." - John Johnson`,
	`"Programming isn't about what you know; it's about what you can figure out." - Chris Pine`,
	`"The only way to learn a new programming language is by writing programs in it." - Dennis Ritchie`,
	`"Sometimes it pays to stay in bed on Monday, rather than spending the rest of the week debugging Monday's code." - Dan Salomon`,
}

// QuoteCommand prints a random programming quote.
type QuoteCommand struct {
	// Pick returns a random index below n; nil uses math/rand.
	Pick func(n int) int
}

// Name returns the command name "quote" for registration and lookup.
func (c *QuoteCommand) Name() string {
	return "quote"
}

// Description returns a brief description of what the quote command does.
func (c *QuoteCommand) Description() string {
	return "Show an inspirational quote"
}

// Usage returns the syntax for the quote command.
func (c *QuoteCommand) Usage() string {
	return "quote"
}

// Execute prints one quote.
func (c *QuoteCommand) Execute(_ context.Context, _ []string, _ foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Typed(quotes[pick(c.Pick, len(quotes))]), nil
}
