// Package tui is the full-screen front end of folioshell, built on bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folioshell/internal/logger"
	"folioshell/internal/services"
	"folioshell/internal/terminal"
	"folioshell/internal/transcript"
)

const (
	inputHeight     = 1
	statusBarHeight = 1
	separatorHeight = 1
	chromeHeight    = inputHeight + statusBarHeight + separatorHeight
)

// Model is the bubbletea model wrapping a terminal session.
type Model struct {
	ctx      context.Context
	term     *terminal.Terminal
	scroller *viewportScroller
	input    textinput.Model
	interval time.Duration

	typingGen uint64
	width     int
	height    int
	ready     bool
	quitting  bool
}

// NewModel creates a model for term. interval is the typing animation delay per character.
func NewModel(ctx context.Context, term *terminal.Terminal, interval time.Duration) Model {
	if interval <= 0 {
		interval = transcript.DefaultInterval
	}

	scroller := newViewportScroller(term.Themes(), services.NewMarkdownService())
	term.Transcript().SetScroller(scroller)

	ti := textinput.New()
	ti.Placeholder = "type 'help' and press Enter"
	ti.CharLimit = 256
	ti.Focus()

	m := Model{
		ctx:      ctx,
		term:     term,
		scroller: scroller,
		input:    ti,
		interval: interval,
	}
	m.syncPrompt()
	return m
}

// Init loads the portfolio data in the background.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if store := m.term.Store(); store != nil {
		ctx := m.ctx
		cmds = append(cmds, func() tea.Msg {
			return dataLoadedMsg{ok: store.Load(ctx)}
		})
	}
	return tea.Batch(cmds...)
}

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.scroller.vp, cmd = m.scroller.vp.Update(msg)
		return m, cmd

	case taskDoneMsg:
		m.term.Deliver(terminal.Result(msg))
		return m.afterTerminal(nil)

	case typeTickMsg:
		if msg.gen != m.typingGen {
			return m, nil
		}
		if m.term.Animator().Step(msg.gen) {
			return m, m.typeTick(msg.gen)
		}
		m.typingGen = 0
		return m, nil

	case dataLoadedMsg:
		logger.Debug("Portfolio data loaded", "ok", msg.ok)
		m.syncPrompt()
		m.scroller.Refresh(m.term.Transcript().Lines())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyMsg routes the keys the terminal interprets to it and everything else to the input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		return m.pressKey(terminal.KeyEnter)
	case tea.KeyUp:
		return m.pressKey(terminal.KeyUp)
	case tea.KeyDown:
		return m.pressKey(terminal.KeyDown)
	case tea.KeyTab:
		return m.pressKey(terminal.KeyTab)
	case tea.KeyCtrlC:
		return m.pressKey(terminal.KeyCtrlC)
	case tea.KeyCtrlL:
		return m.pressKey(terminal.KeyCtrlL)

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.KeyPgUp:
		m.scroller.vp.HalfViewUp()
		return m, nil
	case tea.KeyPgDown:
		m.scroller.vp.HalfViewDown()
		return m, nil
	case tea.KeyCtrlUp:
		m.scroller.vp.LineUp(1)
		return m, nil
	case tea.KeyCtrlDown:
		m.scroller.vp.LineDown(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// pressKey hands the current input to the terminal, applies k and copies the buffer back.
func (m Model) pressKey(k terminal.Key) (tea.Model, tea.Cmd) {
	m.term.SetBuffer(m.input.Value())
	tasks := m.term.HandleKey(k)
	m.input.SetValue(m.term.Buffer())
	m.input.CursorEnd()
	return m.afterTerminal(tasks)
}

// afterTerminal turns the terminal's new state into commands: tasks to run, a typing tick to
// schedule and quitting after exit.
func (m Model) afterTerminal(tasks []terminal.Task) (tea.Model, tea.Cmd) {
	m.syncPrompt()

	var cmds []tea.Cmd
	for _, task := range tasks {
		cmds = append(cmds, m.runTask(task))
	}

	if gen, ok := m.term.Animator().Active(); ok && gen != m.typingGen {
		m.typingGen = gen
		cmds = append(cmds, m.typeTick(gen))
	}

	if m.term.Exited() {
		m.term.Animator().Cancel()
		m.quitting = true
		cmds = append(cmds, tea.Quit)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) runTask(task terminal.Task) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return taskDoneMsg(task.Run(ctx))
	}
}

func (m Model) typeTick(gen uint64) tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return typeTickMsg{gen: gen}
	})
}

// handleWindowSize resizes the viewport and input and re-renders the transcript.
func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height

	vpHeight := msg.Height - chromeHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	m.scroller.resize(msg.Width, vpHeight)
	m.input.Width = msg.Width - len(m.term.Prompt()) - 2
	m.ready = true

	m.scroller.Refresh(m.term.Transcript().Lines())
	m.scroller.GotoBottom()
	return m, nil
}

func (m *Model) syncPrompt() {
	m.input.Prompt = m.term.Themes().PromptStyle().Render(m.term.Prompt()) + " "
}

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}
	if !m.ready {
		return "Initializing...\n"
	}

	return fmt.Sprintf("%s\n%s\n%s\n%s",
		m.scroller.vp.View(),
		separatorStyle.Render(strings.Repeat("─", m.width)),
		m.input.View(),
		m.renderStatusBar(),
	)
}

func (m Model) renderStatusBar() string {
	state := m.term.State()
	status := fmt.Sprintf("theme: %s │ history: %d │ Tab complete · ↑/↓ history · PgUp/PgDn scroll · Ctrl+D quit",
		m.term.Themes().Current(), m.term.History().Len())
	if state == terminal.StateSubmitting {
		return statusBusyStyle.Render("● ") + statusBarStyle.Render(status)
	}
	return statusBarStyle.Render("  " + status)
}

// Viewport returns the transcript viewport, for tests.
func (m Model) Viewport() viewport.Model {
	return m.scroller.vp
}

// Run starts the full-screen program and blocks until it exits.
func Run(ctx context.Context, term *terminal.Terminal, interval time.Duration) error {
	term.Greet()
	p := tea.NewProgram(
		NewModel(ctx, term, interval),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui failed: %w", err)
	}
	return nil
}
