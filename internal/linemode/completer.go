package linemode

import (
	"strings"

	"github.com/chzyer/readline"

	"folioshell/internal/commands"
)

// Completer implements readline.AutoCompleter over the command registry. Only the command
// name, the first word of the line, is completed.
type Completer struct {
	registry *commands.Registry
}

var _ readline.AutoCompleter = (*Completer)(nil)

// NewCompleter creates a completer for registry.
func NewCompleter(registry *commands.Registry) *Completer {
	return &Completer{registry: registry}
}

// Do implements readline.AutoCompleter. It returns the suffixes that complete the word before
// the cursor, and the length of that word. Nothing is offered before the first character.
func (c *Completer) Do(line []rune, pos int) (newLine [][]rune, offset int) {
	if pos > len(line) {
		pos = len(line)
	}
	word := string(line[:pos])
	if word == "" || strings.ContainsRune(word, ' ') {
		return nil, 0
	}

	var suggestions [][]rune
	for _, name := range c.registry.Complete(word) {
		suggestions = append(suggestions, []rune(name[len(word):]))
	}
	return suggestions, len([]rune(word))
}
