// Package transcript holds the visible output of a terminal session: an append-only list of
// classed lines, the scroll-follow rule applied when lines are added, and the typing animator
// that reveals output one character at a time.
package transcript

import (
	"strings"
	"sync"

	"folioshell/pkg/foliotypes"
)

// DefaultThreshold is the proximity threshold, in rows, used when none is configured.
const DefaultThreshold = 5

// Line is one rendered transcript entry. Text may contain newlines, which are line breaks.
type Line struct {
	Text  string
	Class foliotypes.LineClass
}

// Rows returns the number of screen rows the line occupies, ignoring wrapping.
func (l Line) Rows() int {
	return strings.Count(l.Text, "\n") + 1
}

// Transcript is the ordered list of lines shown to the user. It only grows, except for Clear.
type Transcript struct {
	mu        sync.RWMutex
	lines     []Line
	scroller  Scroller
	threshold int
	revision  uint64
	epoch     uint64
}

// New creates an empty transcript bound to scroller. A nil scroller gets an unbounded Window.
func New(scroller Scroller, threshold int) *Transcript {
	if scroller == nil {
		scroller = NewWindow(0)
	}
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &Transcript{
		scroller:  scroller,
		threshold: threshold,
	}
}

// SetScroller rebinds the transcript to a new viewport and refreshes it with the current lines.
func (t *Transcript) SetScroller(s Scroller) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.scroller = s
	t.scroller.Refresh(t.lines)
	t.scroller.GotoBottom()
}

// Scroller returns the viewport the transcript is bound to.
func (t *Transcript) Scroller() Scroller {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.scroller
}

// AddLine appends a line. The viewport follows the new bottom only when it was within the
// proximity threshold of the bottom before the append, so a user who scrolled back stays put.
func (t *Transcript) AddLine(text string, class foliotypes.LineClass) {
	t.mu.Lock()
	defer t.mu.Unlock()

	follow := t.nearBottomLocked()
	t.lines = append(t.lines, Line{Text: normalize(text), Class: class})
	t.revision++
	t.settleLocked(follow)
}

// appendText extends line index of the given epoch with s, re-evaluating the follow rule.
// It reports false when the line no longer exists.
func (t *Transcript) appendText(epoch uint64, index int, s string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if epoch != t.epoch || index >= len(t.lines) {
		return false
	}
	follow := t.nearBottomLocked()
	t.lines[index].Text += s
	t.revision++
	t.settleLocked(follow)
	return true
}

// Clear removes every line.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.lines = nil
	t.revision++
	t.epoch++
	t.scroller.Refresh(t.lines)
	t.scroller.GotoBottom()
}

// Lines returns a copy of the transcript.
func (t *Transcript) Lines() []Line {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Line, len(t.lines))
	copy(out, t.lines)
	return out
}

// Len returns the number of lines.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.lines)
}

// Revision increases on every mutation; front ends use it to skip redundant redraws.
func (t *Transcript) Revision() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.revision
}

// Epoch increases on every Clear.
func (t *Transcript) Epoch() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.epoch
}

// NearBottom reports whether the viewport is within the proximity threshold of its bottom.
func (t *Transcript) NearBottom() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.nearBottomLocked()
}

func (t *Transcript) nearBottomLocked() bool {
	return t.scroller.MaxScrollOffset()-t.scroller.ScrollOffset() <= t.threshold
}

func (t *Transcript) settleLocked(follow bool) {
	t.scroller.Refresh(t.lines)
	if follow {
		t.scroller.GotoBottom()
	}
}

func normalize(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}
