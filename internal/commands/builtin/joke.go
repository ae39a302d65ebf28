package builtin

import (
	"context"

	"folioshell/pkg/foliotypes"
)

var jokes = []string{
	"Why do programmers prefer dark mode?\nBecause light attracts bugs! 🐛",
	"Why do Python programmers wear glasses?\nBecause they can't C! 👓",
	"How many programmers does it take to change a light bulb?\nNone. It's a hardware problem! 💡",
	"Why did the programmer quit their job?\nBecause they didn't get arrays! 📊",
	"What's a programmer's favorite hangout place?\nThe Foo Bar! 🍺",
	"Why do programmers always mix up Halloween and Christmas?\nBecause Oct 31 == Dec 25! 🎃",
	"!false\nIt's funny because it's true! 😄",
}

// JokeCommand tells a random programming joke.
type JokeCommand struct {
	// Pick returns a random index below n; nil uses math/rand.
	Pick func(n int) int
}

// Name returns the command name "joke" for registration and lookup.
func (c *JokeCommand) Name() string {
	return "joke"
}

// Description returns a brief description of what the joke command does.
func (c *JokeCommand) Description() string {
	return "Tell a programming joke"
}

// Usage returns the syntax for the joke command.
func (c *JokeCommand) Usage() string {
	return "joke"
}

// Execute prints one joke.
func (c *JokeCommand) Execute(_ context.Context, _ []string, _ foliotypes.Env) (foliotypes.Output, error) {
	return foliotypes.Typed(jokes[pick(c.Pick, len(jokes))]), nil
}
