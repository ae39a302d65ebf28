package transcript

// Scroller is the viewport a transcript renders into.
type Scroller interface {
	// ScrollOffset is the index of the first visible row.
	ScrollOffset() int
	// MaxScrollOffset is the offset at which the last row is visible.
	MaxScrollOffset() int
	// Refresh re-renders the viewport content from lines, keeping the offset when possible.
	Refresh(lines []Line)
	// GotoBottom scrolls to MaxScrollOffset.
	GotoBottom()
}

// Window is an in-memory Scroller with a fixed height. A height of zero shows everything.
type Window struct {
	height int
	rows   int
	offset int
}

// NewWindow creates a window showing height rows.
func NewWindow(height int) *Window {
	if height < 0 {
		height = 0
	}
	return &Window{height: height}
}

// ScrollOffset implements Scroller.
func (w *Window) ScrollOffset() int {
	return w.offset
}

// MaxScrollOffset implements Scroller.
func (w *Window) MaxScrollOffset() int {
	if w.height == 0 || w.rows <= w.height {
		return 0
	}
	return w.rows - w.height
}

// Refresh implements Scroller.
func (w *Window) Refresh(lines []Line) {
	rows := 0
	for _, l := range lines {
		rows += l.Rows()
	}
	w.rows = rows
	w.ScrollTo(w.offset)
}

// GotoBottom implements Scroller.
func (w *Window) GotoBottom() {
	w.offset = w.MaxScrollOffset()
}

// ScrollTo moves the window, clamped to [0, MaxScrollOffset].
func (w *Window) ScrollTo(offset int) {
	if max := w.MaxScrollOffset(); offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	w.offset = offset
}

// ScrollBy moves the window by delta rows.
func (w *Window) ScrollBy(delta int) {
	w.ScrollTo(w.offset + delta)
}

// Rows returns the number of content rows.
func (w *Window) Rows() int {
	return w.rows
}
