// Package commands provides the command registry of a terminal session and the easter-egg
// phrase table consulted before it.
package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"folioshell/pkg/foliotypes"
)

// Registry maps lower-cased command names to commands.
// Registering a name that already exists replaces the previous command.
type Registry struct {
	mu       sync.RWMutex
	commands map[string]foliotypes.Command
}

// NewRegistry creates a new command registry with an empty command map.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]foliotypes.Command),
	}
}

// Register adds cmd under its lower-cased name, overwriting any existing entry.
// Returns an error only if the name is empty.
func (r *Registry) Register(cmd foliotypes.Command) error {
	name := normalizeName(cmd.Name())
	if name == "" {
		return fmt.Errorf("command name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[name] = cmd
	return nil
}

// Unregister removes a command from the registry by name.
// It does not error if the command doesn't exist.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.commands, normalizeName(name))
}

// Resolve looks a command up by name, ignoring case.
// An unknown name is not an error here; callers report it.
func (r *Registry) Resolve(name string) (foliotypes.Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, exists := r.commands[normalizeName(name)]
	return cmd, exists
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns every registered command sorted by name.
func (r *Registry) All() []foliotypes.Command {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	cmds := make([]foliotypes.Command, 0, len(names))
	for _, name := range names {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

// Complete returns the sorted names that start with prefix, ignoring case.
func (r *Registry) Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)

	var matches []string
	for _, name := range r.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
