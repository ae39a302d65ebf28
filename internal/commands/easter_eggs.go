package commands

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"folioshell/pkg/foliotypes"
)

// Egg produces an easter egg response. p is the portfolio at the time of the match.
type Egg func(p foliotypes.Portfolio) foliotypes.Output

// EasterEggs maps whole input phrases to canned responses. A phrase matches the entire raw
// input (trimmed, case-insensitive) and takes priority over command lookup. The owner's first
// name is an implicit phrase answered by the name egg.
type EasterEggs struct {
	mu      sync.RWMutex
	phrases map[string]Egg
	name    Egg
}

// NewEasterEggs creates an empty phrase table.
func NewEasterEggs() *EasterEggs {
	return &EasterEggs{phrases: make(map[string]Egg)}
}

// DefaultEasterEggs returns the built-in phrase table.
func DefaultEasterEggs() *EasterEggs {
	e := NewEasterEggs()
	e.Add("sudo", foliotypes.Output{
		Text:  "Nice try! But you don't have sudo privileges here 😄",
		Class: foliotypes.ClassError,
	})
	e.Add("rm -rf /", foliotypes.Output{
		Text:  "Whoa! Let's not destroy everything! 🔥",
		Class: foliotypes.ClassError,
	})
	e.Add("hack", foliotypes.Output{Text: "I'm in! Just kidding... 🤖", Class: foliotypes.ClassASCII})
	e.Add("coffee", foliotypes.Output{Text: "☕ Here's your virtual coffee! *brewing sounds*", Class: foliotypes.ClassSuccess})
	e.Add("hello world", foliotypes.Output{Text: "Hello, fellow developer! 👋", Class: foliotypes.ClassSuccess})
	e.Add("42", foliotypes.Output{Text: "The answer to life, universe, and everything! 🌌", Class: foliotypes.ClassInfo})
	e.Add("ping", foliotypes.Output{Text: "Pong! 🏓", Class: foliotypes.ClassNormal})
	e.Add("vim", foliotypes.Output{Text: "Type :q to exit... just kidding, you're stuck forever! 😈", Class: foliotypes.ClassInfo})
	e.Add("emacs", foliotypes.Output{Text: "A great operating system, lacking only a decent editor 😏", Class: foliotypes.ClassInfo})
	e.AddFunc("python", pythonEgg)
	e.name = nameEgg
	return e
}

// pythonEgg reports the Python skill level from a loaded document.
func pythonEgg(p foliotypes.Portfolio) foliotypes.Output {
	if p != nil && p.Loaded() {
		for _, cat := range p.SkillCategories() {
			for _, s := range p.Skills(cat) {
				if strings.EqualFold(s.Name, "python") {
					return foliotypes.Output{
						Text:  fmt.Sprintf("My favorite! Python level: %d%%", s.Level),
						Class: foliotypes.ClassSuccess,
					}
				}
			}
		}
	}
	return foliotypes.Output{Text: "My favorite language! 🐍", Class: foliotypes.ClassSuccess}
}

// nameEgg answers the owner's first name with the tagline of a loaded document.
func nameEgg(p foliotypes.Portfolio) foliotypes.Output {
	if p.Loaded() {
		return foliotypes.Output{Text: p.Tagline(), Class: foliotypes.ClassSuccess}
	}
	return foliotypes.Output{Text: "That's me! 👋", Class: foliotypes.ClassSuccess}
}

// Add registers a fixed response, replacing an existing phrase.
func (e *EasterEggs) Add(phrase string, out foliotypes.Output) {
	e.AddFunc(phrase, func(foliotypes.Portfolio) foliotypes.Output { return out })
}

// AddFunc registers a response computed at match time, replacing an existing phrase.
func (e *EasterEggs) AddFunc(phrase string, egg Egg) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.phrases[normalizePhrase(phrase)] = egg
}

// Match looks up the entire raw input. p may be nil, in which case the name egg never matches.
func (e *EasterEggs) Match(input string, p foliotypes.Portfolio) (foliotypes.Output, bool) {
	key := normalizePhrase(input)

	e.mu.RLock()
	egg, ok := e.phrases[key]
	name := e.name
	e.mu.RUnlock()

	if ok {
		return egg(p), true
	}
	if name != nil && p != nil && key != "" && key == firstName(p.Name()) {
		return name(p), true
	}
	return foliotypes.Output{}, false
}

// Phrases returns the registered phrases, sorted.
func (e *EasterEggs) Phrases() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]string, 0, len(e.phrases))
	for p := range e.phrases {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

func normalizePhrase(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(fields[0])
}
