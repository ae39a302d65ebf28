// Package terminal implements the input controller of a portfolio terminal session: it owns the
// input buffer, command history, transcript and typing animator, and turns key presses into
// dispatched commands.
package terminal

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"folioshell/internal/commands"
	"folioshell/internal/commands/builtin"
	"folioshell/internal/config"
	"folioshell/internal/data/embedded"
	"folioshell/internal/history"
	"folioshell/internal/logger"
	"folioshell/internal/portfolio"
	"folioshell/internal/services"
	"folioshell/internal/transcript"
	"folioshell/pkg/foliotypes"
)

const promptHost = "@portfolio:~$"

// DefaultPrompt is the prompt prefix of echoed command lines. Once a portfolio document with a
// personal name loads, the default prompt greets its owner instead of the guest.
const DefaultPrompt = "guest" + promptHost

// DefaultCooldown is how long the submission guard stays held after a submission.
const DefaultCooldown = 100 * time.Millisecond

// Options configures a Terminal. Zero values select defaults.
type Options struct {
	Prompt      string
	HistorySize int
	// Threshold is the proximity threshold in rows; negative selects the default.
	Threshold int
	Scroller  transcript.Scroller
	Cooldown  time.Duration
	// Typing enables the typing animator for outputs that ask for it.
	Typing bool

	Registry   *commands.Registry
	EasterEggs *commands.EasterEggs
	Store      *portfolio.Store
	Themes     *services.ThemeService
	// Builtins configures the builtin commands installed when Registry is nil.
	Builtins builtin.Options

	Context context.Context
	Now     func() time.Time
}

// OptionsFromConfig builds the collaborators of a session from cfg.
func OptionsFromConfig(cfg *config.Config) Options {
	themes := services.NewThemeService()
	if err := themes.Set(cfg.Theme); err != nil {
		logger.Warn("Configured theme not found, using default", "theme", cfg.Theme)
	}

	return Options{
		Prompt:      cfg.Prompt,
		HistorySize: cfg.HistorySize,
		Threshold:   cfg.ScrollThreshold,
		Cooldown:    cfg.SubmitCooldown,
		Typing:      cfg.TypingEnabled,
		Store:       portfolio.NewStore(portfolio.NewSource(cfg.DataURL, cfg.DataTimeout)),
		Themes:      themes,
		Builtins: builtin.Options{
			GitHub:     portfolio.NewGitHubClient(cfg.GitHubAPI, cfg.DataTimeout),
			GitHubUser: cfg.GitHubUser,
		},
	}
}

// Terminal is one interactive session.
type Terminal struct {
	id     string
	log    *log.Logger
	prompt string

	registry   *commands.Registry
	eggs       *commands.EasterEggs
	history    *history.Buffer
	transcript *transcript.Transcript
	animator   *transcript.Animator
	store      *portfolio.Store
	themes     *services.ThemeService

	ctx      context.Context
	now      func() time.Time
	cooldown time.Duration
	typing   bool

	mu         sync.Mutex
	buffer     string
	submitting bool
	busyUntil  time.Time
	exited     bool
}

// New creates a Terminal.
func New(opts Options) *Terminal {
	id := uuid.NewString()

	t := &Terminal{
		id:       id,
		log:      logger.NewStyledLogger("terminal").With("session", id),
		prompt:   opts.Prompt,
		registry: opts.Registry,
		eggs:     opts.EasterEggs,
		store:    opts.Store,
		themes:   opts.Themes,
		ctx:      opts.Context,
		now:      opts.Now,
		cooldown: opts.Cooldown,
		typing:   opts.Typing,
	}

	if t.prompt == "" {
		t.prompt = DefaultPrompt
	}
	if t.registry == nil {
		t.registry = commands.NewRegistry()
		if err := builtin.Register(t.registry, opts.Builtins); err != nil {
			t.log.Error("Failed to register builtin commands", "error", err)
		}
	}
	if t.eggs == nil {
		t.eggs = commands.DefaultEasterEggs()
	}
	if t.themes == nil {
		t.themes = services.NewThemeService()
	}
	if t.ctx == nil {
		t.ctx = context.Background()
	}
	if t.now == nil {
		t.now = time.Now
	}
	if t.cooldown < 0 {
		t.cooldown = 0
	}

	size := opts.HistorySize
	if size <= 0 {
		size = history.DefaultSize
	}
	t.history = history.New(size)
	t.transcript = transcript.New(opts.Scroller, opts.Threshold)
	t.animator = transcript.NewAnimator(t.transcript)

	t.log.Debug("Terminal session created", "commands", t.registry.Len(), "history", size)
	return t
}

// ID returns the session id.
func (t *Terminal) ID() string { return t.id }

// Prompt returns the prompt prefix. A configured prompt is returned as is; the default one
// follows the owner of the loaded document.
func (t *Terminal) Prompt() string {
	if t.prompt != DefaultPrompt || t.store == nil {
		return t.prompt
	}
	if user, ok := t.store.View().PromptUser(); ok {
		return user + promptHost
	}
	return t.prompt
}

// Registry returns the command registry.
func (t *Terminal) Registry() *commands.Registry { return t.registry }

// History returns the history buffer.
func (t *Terminal) History() *history.Buffer { return t.history }

// Transcript returns the transcript.
func (t *Terminal) Transcript() *transcript.Transcript { return t.transcript }

// Animator returns the typing animator.
func (t *Terminal) Animator() *transcript.Animator { return t.animator }

// Store returns the portfolio store, which may be nil.
func (t *Terminal) Store() *portfolio.Store { return t.store }

// Themes returns the theme service.
func (t *Terminal) Themes() *services.ThemeService { return t.themes }

// AddCommand registers cmd at runtime, replacing a command of the same name.
func (t *Terminal) AddCommand(cmd foliotypes.Command) error {
	if err := t.registry.Register(cmd); err != nil {
		return err
	}
	t.log.Debug("Command added", "command", cmd.Name())
	return nil
}

// SetBuffer replaces the input buffer.
func (t *Terminal) SetBuffer(s string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buffer = s
}

// Buffer returns the input buffer.
func (t *Terminal) Buffer() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buffer
}

// State reports whether submissions are currently accepted.
func (t *Terminal) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.submitting || t.now().Before(t.busyUntil) {
		return StateSubmitting
	}
	return StateIdle
}

// Exited reports whether the exit command ran.
func (t *Terminal) Exited() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.exited
}

// Greet prints the banner and the welcome line.
func (t *Terminal) Greet() {
	t.transcript.AddLine(strings.TrimRight(embedded.Banner, "\n"), foliotypes.ClassASCII)
	t.transcript.AddLine(
		fmt.Sprintf("Welcome to %s's portfolio. Type 'help' to see available commands.", t.env().Portfolio().Name()),
		foliotypes.ClassInfo)
}

// Submit replaces the buffer with line and presses Enter.
func (t *Terminal) Submit(line string) []Task {
	t.SetBuffer(line)
	return t.HandleKey(KeyEnter)
}

// HandleKey applies one key press. Async commands started by the key are returned as tasks.
func (t *Terminal) HandleKey(k Key) []Task {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch k {
	case KeyEnter:
		return t.submitLocked()
	case KeyUp:
		t.buffer = t.history.Previous(t.buffer)
	case KeyDown:
		t.buffer = t.history.Next()
	case KeyTab:
		t.completeLocked()
	case KeyCtrlC:
		t.animator.Cancel()
		t.transcript.AddLine(t.Prompt()+" ^C", foliotypes.ClassCommand)
		t.buffer = ""
		t.history.ResetCursor()
	case KeyCtrlL:
		t.clear()
	}
	return nil
}

// Deliver renders the result of a finished task.
func (t *Terminal) Deliver(res Result) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if res.Err != nil {
		t.log.Debug("Async command failed", "command", res.Command, "error", res.Err)
		t.transcript.AddLine(res.Err.Error(), foliotypes.ClassError)
		return
	}
	t.emitLocked(res.Output)
}

func (t *Terminal) submitLocked() []Task {
	raw := t.buffer
	input := strings.TrimSpace(raw)
	if input == "" {
		return nil
	}
	if t.submitting || t.now().Before(t.busyUntil) {
		t.log.Debug("Submission dropped while busy", "input", input)
		return nil
	}

	t.submitting = true
	defer func() {
		t.submitting = false
		t.busyUntil = t.now().Add(t.cooldown)
	}()

	t.animator.Cancel()
	t.transcript.AddLine(t.Prompt()+" "+raw, foliotypes.ClassCommand)
	t.history.Add(input)
	t.history.ResetCursor()
	t.buffer = ""

	return t.dispatchLocked(input)
}

// dispatchLocked runs input: easter eggs first, then the first token against the registry.
func (t *Terminal) dispatchLocked(input string) []Task {
	if out, ok := t.eggs.Match(input, t.env().Portfolio()); ok {
		t.log.Debug("Easter egg matched", "input", input)
		t.emitLocked(out)
		return nil
	}

	parts := strings.Split(input, " ")
	name := strings.ToLower(parts[0])
	args := parts[1:]

	cmd, ok := t.registry.Resolve(name)
	if !ok {
		t.transcript.AddLine(
			fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", name),
			foliotypes.ClassError)
		return nil
	}

	logger.CommandExecution(name, args)

	if foliotypes.IsAsync(cmd) {
		task := Task{ID: uuid.NewString(), Command: name}
		task.run = func(ctx context.Context) Result {
			out, err := t.execute(ctx, cmd, args)
			return Result{TaskID: task.ID, Command: name, Output: out, Err: err}
		}
		return []Task{task}
	}

	out, err := t.execute(t.ctx, cmd, args)
	if err != nil {
		t.transcript.AddLine(err.Error(), foliotypes.ClassError)
		return nil
	}
	t.emitLocked(out)
	return nil
}

// execute runs a command, converting a panic into an error.
func (t *Terminal) execute(ctx context.Context, cmd foliotypes.Command, args []string) (out foliotypes.Output, err error) {
	defer func() {
		if r := recover(); r != nil {
			t.log.Error("Command panicked", "command", cmd.Name(), "panic", r)
			out = foliotypes.Output{}
			err = fmt.Errorf("%v", r)
		}
	}()

	out, err = cmd.Execute(ctx, args, t.env())
	if err != nil {
		t.log.Debug("Command failed", "command", cmd.Name(), "error", err)
	}
	return out, err
}

func (t *Terminal) emitLocked(out foliotypes.Output) {
	switch out.Action {
	case foliotypes.ActionClear:
		t.clear()
	case foliotypes.ActionQuit:
		t.exited = true
	}

	if out.Text == "" && out.Action != foliotypes.ActionNone {
		return
	}

	class := out.Class
	if class == "" {
		class = foliotypes.ClassNormal
	}
	if out.Typed && t.typing && class != foliotypes.ClassMarkdown {
		t.animator.Start(out.Text, class)
		return
	}
	t.transcript.AddLine(out.Text, class)
}

// completeLocked completes the command name in the buffer. An empty buffer is left alone.
func (t *Terminal) completeLocked() {
	if strings.TrimSpace(t.buffer) == "" {
		return
	}
	matches := t.registry.Complete(t.buffer)
	switch len(matches) {
	case 0:
	case 1:
		t.buffer = matches[0]
	default:
		t.transcript.AddLine(t.Prompt()+" "+t.buffer, foliotypes.ClassCommand)
		t.transcript.AddLine(strings.Join(matches, " "), foliotypes.ClassInfo)
	}
}

func (t *Terminal) clear() {
	t.animator.Cancel()
	t.transcript.Clear()
}

func (t *Terminal) env() sessionEnv {
	return sessionEnv{t: t}
}
