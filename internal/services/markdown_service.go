package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"folioshell/internal/logger"
)

// DefaultWordWrap is the wrap width used when the caller does not know the terminal width.
const DefaultWordWrap = 80

// MarkdownService renders markdown-class lines to ANSI text using glamour.
// Renderers are cached per style and width.
type MarkdownService struct {
	mu        sync.Mutex
	renderers map[string]*glamour.TermRenderer
}

// NewMarkdownService creates a new MarkdownService instance.
func NewMarkdownService() *MarkdownService {
	return &MarkdownService{
		renderers: make(map[string]*glamour.TermRenderer),
	}
}

// Render renders markdown with the given glamour standard style ("dark", "light", "notty", ...).
// Leading and trailing blank lines added by glamour are removed.
func (m *MarkdownService) Render(markdown, style string, width int) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", fmt.Errorf("markdown content cannot be empty")
	}
	if width <= 0 {
		width = DefaultWordWrap
	}
	if style == "" {
		style = "notty"
	}

	renderer, err := m.renderer(style, width)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	rendered, err := renderer.Render(markdown)
	m.mu.Unlock()
	if err != nil {
		return "", fmt.Errorf("failed to render markdown with style '%s': %w", style, err)
	}
	return strings.Trim(rendered, "\n"), nil
}

// RenderOrPlain renders markdown and returns the source text unchanged if rendering fails.
func (m *MarkdownService) RenderOrPlain(markdown, style string, width int) string {
	rendered, err := m.Render(markdown, style, width)
	if err != nil {
		logger.Debug("Markdown rendering failed, using source text", "style", style, "error", err)
		return markdown
	}
	return rendered
}

func (m *MarkdownService) renderer(style string, width int) (*glamour.TermRenderer, error) {
	key := fmt.Sprintf("%s/%d", style, width)

	m.mu.Lock()
	defer m.mu.Unlock()

	if r, ok := m.renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	m.renderers[key] = r
	return r, nil
}
