// Package foliotypes defines the shared types of folioshell: the command contract, rendered
// output, transcript line classes and the read-only portfolio view handed to commands.
package foliotypes

import (
	"context"
	"time"
)

// Command defines the interface that all terminal commands implement.
// Commands compute output only; they never write to the transcript themselves.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Execute(ctx context.Context, args []string, env Env) (Output, error)
}

// AsyncCommand is implemented by commands that perform I/O. Their execution is handed to the
// front end as a task instead of running on the input path.
type AsyncCommand interface {
	Command
	Async() bool
}

// IsAsync reports whether cmd asks to run off the input path.
func IsAsync(cmd Command) bool {
	ac, ok := cmd.(AsyncCommand)
	return ok && ac.Async()
}

// Action is a side effect a command requests from the terminal in addition to its text.
type Action int

const (
	// ActionNone requests nothing beyond printing the output text.
	ActionNone Action = iota
	// ActionClear empties the transcript.
	ActionClear
	// ActionQuit ends the session.
	ActionQuit
)

// Output is what a command produces.
type Output struct {
	Text   string
	Class  LineClass
	Typed  bool // reveal through the typing animator
	Action Action
}

// Text returns a plain normal-class output.
func Text(s string) Output {
	return Output{Text: s, Class: ClassNormal}
}

// Typed returns a normal-class output revealed character by character.
func Typed(s string) Output {
	return Output{Text: s, Class: ClassNormal, Typed: true}
}

// Env is the read-mostly view of the session a command executes against.
type Env interface {
	Portfolio() Portfolio
	Commands() []Command
	History() []string
	Themes() ThemeSwitcher
	Reload(ctx context.Context) string
	Now() time.Time
	Prompt() string
	// DataSource describes where the portfolio document comes from and whether it loaded.
	DataSource() string
}

// ThemeSwitcher lists and switches the active color theme.
type ThemeSwitcher interface {
	Names() []string
	Current() string
	Set(name string) error
}
