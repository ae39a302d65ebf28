package linemode

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"folioshell/internal/services"
	"folioshell/internal/transcript"
	"folioshell/pkg/foliotypes"
)

// Printer writes transcript content to a stream as it appears. It remembers how much was
// written so each Flush only emits the delta, including the characters of a line that is
// still being typed. Command echo lines are skipped unless ShowEcho is set, since an
// interactive line editor already shows them.
type Printer struct {
	ShowEcho bool

	out      io.Writer
	themes   *services.ThemeService
	markdown *services.MarkdownService
	width    int
	plain    bool

	mu      sync.Mutex
	epoch   uint64
	printed int
	partial int
}

// NewPrinter creates a printer. With plain set, no styling or escape sequences are written.
func NewPrinter(out io.Writer, themes *services.ThemeService, width int, plain bool) *Printer {
	return &Printer{
		out:      out,
		themes:   themes,
		markdown: services.NewMarkdownService(),
		width:    width,
		plain:    plain,
	}
}

// Flush writes what was added to t since the last call. typing reports whether the last line
// is still being revealed by the animator.
func (p *Printer) Flush(t *transcript.Transcript, typing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	lines := t.Lines()
	if epoch := t.Epoch(); epoch != p.epoch {
		p.epoch = epoch
		p.printed = 0
		p.partial = 0
		if !p.plain {
			fmt.Fprint(p.out, ansi.EraseEntireScreen+ansi.CursorHomePosition)
		}
	}
	if p.printed > len(lines) {
		p.printed = len(lines)
		p.partial = 0
	}

	for i := p.printed; i < len(lines); i++ {
		line := lines[i]
		if line.Class == foliotypes.ClassCommand && !p.ShowEcho {
			p.printed++
			continue
		}

		runes := []rune(line.Text)
		if p.partial > len(runes) {
			p.partial = len(runes)
		}
		delta := string(runes[p.partial:])

		if typing && i == len(lines)-1 {
			if delta != "" {
				fmt.Fprint(p.out, p.style(line.Class, delta))
			}
			p.partial = len(runes)
			return
		}

		if p.partial == 0 {
			fmt.Fprintln(p.out, p.renderLine(line))
		} else {
			fmt.Fprintln(p.out, p.style(line.Class, delta))
		}
		p.printed++
		p.partial = 0
	}
}

func (p *Printer) renderLine(line transcript.Line) string {
	if line.Class == foliotypes.ClassMarkdown && !p.plain {
		return p.markdown.RenderOrPlain(line.Text, p.themes.MarkdownStyle(), p.width)
	}
	return p.style(line.Class, line.Text)
}

func (p *Printer) style(class foliotypes.LineClass, s string) string {
	if p.plain {
		return ansi.Strip(s)
	}
	rows := strings.Split(s, "\n")
	style := p.themes.Style(class)
	for i, row := range rows {
		if row != "" {
			rows[i] = style.Render(row)
		}
	}
	return strings.Join(rows, "\n")
}
