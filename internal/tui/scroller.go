package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"folioshell/internal/services"
	"folioshell/internal/transcript"
	"folioshell/pkg/foliotypes"
)

// viewportScroller adapts a bubbles viewport to transcript.Scroller. It renders lines with the
// current theme; markdown renders are cached per text, style and width.
type viewportScroller struct {
	vp       viewport.Model
	themes   *services.ThemeService
	markdown *services.MarkdownService
	cache    map[string]string
}

var _ transcript.Scroller = (*viewportScroller)(nil)

func newViewportScroller(themes *services.ThemeService, markdown *services.MarkdownService) *viewportScroller {
	return &viewportScroller{
		vp:       viewport.New(0, 0),
		themes:   themes,
		markdown: markdown,
		cache:    make(map[string]string),
	}
}

func (s *viewportScroller) ScrollOffset() int {
	return s.vp.YOffset
}

func (s *viewportScroller) MaxScrollOffset() int {
	if max := s.vp.TotalLineCount() - s.vp.Height; max > 0 {
		return max
	}
	return 0
}

func (s *viewportScroller) Refresh(lines []transcript.Line) {
	s.vp.SetContent(s.render(lines))
}

func (s *viewportScroller) GotoBottom() {
	s.vp.GotoBottom()
}

func (s *viewportScroller) resize(width, height int) {
	s.vp.Width = width
	s.vp.Height = height
}

func (s *viewportScroller) render(lines []transcript.Line) string {
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = s.renderLine(l)
	}
	return strings.Join(rendered, "\n")
}

func (s *viewportScroller) renderLine(l transcript.Line) string {
	if l.Class == foliotypes.ClassMarkdown && strings.TrimSpace(l.Text) != "" {
		style := s.themes.MarkdownStyle()
		key := fmt.Sprintf("%s/%d/%s", style, s.vp.Width, l.Text)
		if out, ok := s.cache[key]; ok {
			return out
		}
		out := s.markdown.RenderOrPlain(l.Text, style, s.vp.Width)
		s.cache[key] = out
		return out
	}

	style := s.themes.Style(l.Class)
	if l.Class != foliotypes.ClassASCII && s.vp.Width > 0 {
		style = style.Width(s.vp.Width)
	}
	return style.Render(l.Text)
}
