// Package linemode is the line-oriented front end of folioshell: a readline prompt for
// interactive use and a batch runner for scripted use.
package linemode

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"folioshell/internal/logger"
	"folioshell/internal/terminal"
	"folioshell/internal/transcript"
	"folioshell/pkg/foliotypes"
)

// Options configures the interactive loop.
type Options struct {
	// Interval is the typing delay per character.
	Interval time.Duration
	// Width is the wrap width for markdown output.
	Width  int
	Stdin  io.ReadCloser
	Stdout io.Writer
}

// Session feeds submitted lines to a terminal and prints what they produce.
type Session struct {
	term     *terminal.Terminal
	printer  *Printer
	interval time.Duration
}

// NewSession creates a session printing through printer.
func NewSession(term *terminal.Terminal, printer *Printer, interval time.Duration) *Session {
	if interval <= 0 {
		interval = transcript.DefaultInterval
	}
	return &Session{term: term, printer: printer, interval: interval}
}

// Handle submits line, runs any async commands it started and plays typing animations to the
// end. Async results are delivered in completion order, which is submission order here.
func (s *Session) Handle(ctx context.Context, line string) {
	tasks := s.term.Submit(line)
	s.play(ctx)

	for _, task := range tasks {
		res := task.Run(ctx)
		s.term.Deliver(res)
		s.play(ctx)
	}
}

// Interrupt abandons the current line.
func (s *Session) Interrupt() {
	s.term.HandleKey(terminal.KeyCtrlC)
	s.flush()
}

// Flush prints pending transcript content.
func (s *Session) flush() {
	_, typing := s.term.Animator().Active()
	s.printer.Flush(s.term.Transcript(), typing)
}

// play drives the running animation, if any, until it completes or the user interrupts it.
// Interrupting flushes the rest of the text.
func (s *Session) play(ctx context.Context) {
	animator := s.term.Animator()
	gen, ok := animator.Active()
	if !ok {
		s.flush()
		return
	}

	playCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	player := transcript.NewPlayer(animator, s.interval, s.flush)
	if err := player.Play(playCtx, gen); err != nil {
		logger.Debug("Typing interrupted", "error", err)
	}
	s.flush()
}

// Run starts the interactive loop and blocks until exit, EOF or ctx cancellation.
func Run(ctx context.Context, term *terminal.Terminal, opts Options) error {
	if store := term.Store(); store != nil {
		store.Load(ctx)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt(term),
		AutoComplete:           NewCompleter(term.Registry()),
		HistoryLimit:           term.History().Max(),
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
		Stdin:                  opts.Stdin,
		Stdout:                 opts.Stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize readline: %w", err)
	}
	defer rl.Close()

	printer := NewPrinter(rl.Stdout(), term.Themes(), opts.Width, !term.Themes().ColorEnabled())
	session := NewSession(term, printer, opts.Interval)

	term.Greet()
	session.flush()

	var lastSaved string
	for {
		line, err := rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				session.Interrupt()
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(rl.Stdout(), "Goodbye!")
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}

		session.Handle(ctx, line)

		if trimmed := strings.TrimSpace(line); trimmed != "" && trimmed != lastSaved {
			if err := rl.SaveHistory(trimmed); err != nil {
				logger.Debug("Failed to save readline history", "error", err)
			}
			lastSaved = trimmed
		}
		rl.SetPrompt(prompt(term))

		if term.Exited() || ctx.Err() != nil {
			return nil
		}
	}
}

// Batch submits each line in order with animations disabled and prints the output plainly.
// It returns the number of lines that produced an error line.
func Batch(ctx context.Context, term *terminal.Terminal, lines []string, out io.Writer) int {
	printer := NewPrinter(out, term.Themes(), 0, true)
	printer.ShowEcho = true
	session := NewSession(term, printer, time.Nanosecond)

	failures := 0
	for _, line := range lines {
		before := term.Transcript().Epoch()
		start := term.Transcript().Len()

		session.Handle(ctx, line)

		added := term.Transcript().Lines()
		if term.Transcript().Epoch() != before {
			start = 0
		}
		if start > len(added) {
			start = len(added)
		}
		for _, l := range added[start:] {
			if l.Class == foliotypes.ClassError {
				failures++
				break
			}
		}
		if term.Exited() {
			break
		}
	}
	return failures
}

func prompt(term *terminal.Terminal) string {
	return term.Themes().PromptStyle().Render(term.Prompt()) + " "
}
