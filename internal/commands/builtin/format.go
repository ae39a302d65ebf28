package builtin

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"folioshell/pkg/foliotypes"
)

const levelBarWidth = 20

// levelBar renders a 0-100 level as a fixed-width bar followed by the percentage.
func levelBar(level int) string {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	filled := level * levelBarWidth / 100
	return fmt.Sprintf("%s%s %3d%%",
		strings.Repeat("█", filled),
		strings.Repeat("░", levelBarWidth-filled),
		level)
}

// columnWidth returns the width of the longest key.
func columnWidth(keys []string) int {
	width := 0
	for _, k := range keys {
		if n := len([]rune(k)); n > width {
			width = n
		}
	}
	return width
}

// titleCase upper-cases the first letter of s.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}

// usage formats the message printed for an invalid argument.
func usage(syntax string) string {
	return "Usage: " + syntax
}

// nonEmpty drops blank values.
func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func onOff(v bool, on, off string) string {
	if v {
		return on
	}
	return off
}

// owner is the lower-cased first name, used as the fake unix user.
func owner(p foliotypes.Portfolio) string {
	fields := strings.Fields(p.Name())
	if len(fields) == 0 {
		return "guest"
	}
	return strings.ToLower(fields[0])
}

// pick returns a random index below n.
func pick(fn func(n int) int, n int) int {
	if fn == nil {
		return rand.IntN(n)
	}
	return fn(n)
}
