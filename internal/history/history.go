// Package history implements the bounded command history of a terminal session together with
// the Up/Down navigation cursor.
package history

import "sync"

// DefaultSize is the history bound used when none is configured.
const DefaultSize = 50

// Buffer is an ordered, bounded sequence of submitted command lines, oldest first.
type Buffer struct {
	mu      sync.RWMutex
	entries []string
	max     int

	// cursor ranges over [0, len(entries)]; len(entries) means "past the end"
	cursor int
	draft  string
}

// New creates a buffer holding at most max entries.
func New(max int) *Buffer {
	if max <= 0 {
		max = DefaultSize
	}
	return &Buffer{
		entries: make([]string, 0, max),
		max:     max,
	}
}

// Add appends cmd, evicting the oldest entry when full. A line identical to the most recent
// entry is not appended again. The cursor is reset past the end.
func (b *Buffer) Add(cmd string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	defer b.resetLocked()

	if n := len(b.entries); n > 0 && b.entries[n-1] == cmd {
		return
	}

	if len(b.entries) >= b.max {
		copy(b.entries, b.entries[1:])
		b.entries = b.entries[:len(b.entries)-1]
	}
	b.entries = append(b.entries, cmd)
}

// Entries returns a copy of the history, oldest first.
func (b *Buffer) Entries() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	result := make([]string, len(b.entries))
	copy(result, b.entries)
	return result
}

// Len returns the number of retained entries.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// Max returns the configured bound.
func (b *Buffer) Max() int {
	return b.max
}

// Cursor returns the current navigation index.
func (b *Buffer) Cursor() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursor
}

// ResetCursor moves the cursor one past the newest entry and forgets the saved draft.
func (b *Buffer) ResetCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.resetLocked()
}

func (b *Buffer) resetLocked() {
	b.cursor = len(b.entries)
	b.draft = ""
}

// Previous moves the cursor one entry back, clamped at the oldest entry, and returns the line
// to display. current is the input buffer; it is remembered as the draft when navigation
// starts from past the end so that Next can restore it verbatim.
func (b *Buffer) Previous(current string) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cursor >= len(b.entries) {
		b.cursor = len(b.entries)
		b.draft = current
	}
	if b.cursor > 0 {
		b.cursor--
	}
	return b.lineLocked()
}

// Next moves the cursor one entry forward, clamped at past the end, and returns the line to
// display. Past the end it returns the saved draft.
func (b *Buffer) Next() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.cursor < len(b.entries) {
		b.cursor++
	}
	return b.lineLocked()
}

func (b *Buffer) lineLocked() string {
	if b.cursor >= len(b.entries) {
		return b.draft
	}
	return b.entries[b.cursor]
}
