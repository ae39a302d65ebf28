package transcript

import (
	"context"
	"sync"
	"time"

	"folioshell/pkg/foliotypes"
)

// DefaultInterval is the per-character typing delay.
const DefaultInterval = 30 * time.Millisecond

// Animator reveals output one character at a time. Each animation carries a generation number;
// starting or cancelling an animation bumps it, so ticks scheduled for an older animation
// become no-ops and two animations never interleave their characters.
type Animator struct {
	mu     sync.Mutex
	t      *Transcript
	gen    uint64
	active *animation
}

type animation struct {
	gen   uint64
	epoch uint64
	index int
	runes []rune
	pos   int
}

// NewAnimator creates an animator writing into t.
func NewAnimator(t *Transcript) *Animator {
	return &Animator{t: t}
}

// Start cancels any running animation, appends an empty line of the given class and returns
// the generation that Step must be called with.
func (a *Animator) Start(text string, class foliotypes.LineClass) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.cancelLocked()

	a.t.AddLine("", class)
	a.gen++
	a.active = &animation{
		gen:   a.gen,
		epoch: a.t.Epoch(),
		index: a.t.Len() - 1,
		runes: []rune(normalize(text)),
	}
	return a.gen
}

// Step reveals the next character of animation gen. It returns true while characters remain,
// and false once the animation finished or was superseded.
func (a *Animator) Step(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	anim := a.active
	if anim == nil || anim.gen != gen {
		return false
	}
	if anim.pos >= len(anim.runes) {
		a.active = nil
		return false
	}

	r := anim.runes[anim.pos]
	anim.pos++
	if !a.t.appendText(anim.epoch, anim.index, string(r)) {
		a.active = nil
		return false
	}
	if anim.pos >= len(anim.runes) {
		a.active = nil
		return false
	}
	return true
}

// Cancel ends the running animation, writing its remaining text at once.
func (a *Animator) Cancel() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.cancelLocked()
}

func (a *Animator) cancelLocked() {
	anim := a.active
	if anim == nil {
		return
	}
	a.active = nil
	a.gen++
	if anim.pos < len(anim.runes) {
		a.t.appendText(anim.epoch, anim.index, string(anim.runes[anim.pos:]))
	}
}

// Active returns the generation of the running animation, if any.
func (a *Animator) Active() (uint64, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		return 0, false
	}
	return a.active.gen, true
}

// Player drives an animation from a ticker, for front ends without their own event loop.
type Player struct {
	animator *Animator
	interval time.Duration
	onStep   func()
}

// NewPlayer creates a player stepping a every interval and calling onStep after each step.
func NewPlayer(a *Animator, interval time.Duration, onStep func()) *Player {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Player{animator: a, interval: interval, onStep: onStep}
}

// Play steps animation gen until it finishes, is superseded, or ctx is done. On ctx
// cancellation the remaining text is flushed.
func (p *Player) Play(ctx context.Context, gen uint64) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if cur, ok := p.animator.Active(); ok && cur == gen {
				p.animator.Cancel()
				p.notify()
			}
			return ctx.Err()
		case <-ticker.C:
			more := p.animator.Step(gen)
			p.notify()
			if !more {
				return nil
			}
		}
	}
}

func (p *Player) notify() {
	if p.onStep != nil {
		p.onStep()
	}
}
