package terminal

import (
	"context"
	"time"

	"folioshell/internal/portfolio"
	"folioshell/pkg/foliotypes"
)

// sessionEnv is the foliotypes.Env handed to commands.
type sessionEnv struct {
	t *Terminal
}

var _ foliotypes.Env = sessionEnv{}

func (e sessionEnv) Portfolio() foliotypes.Portfolio {
	if e.t.store == nil {
		return portfolio.View{}
	}
	return e.t.store.View()
}

func (e sessionEnv) Commands() []foliotypes.Command { return e.t.registry.All() }

func (e sessionEnv) History() []string { return e.t.history.Entries() }

func (e sessionEnv) Themes() foliotypes.ThemeSwitcher { return e.t.themes }

func (e sessionEnv) Reload(ctx context.Context) string {
	if e.t.store == nil {
		return portfolio.ReloadNoSource
	}
	return e.t.store.Reload(ctx)
}

func (e sessionEnv) Now() time.Time { return e.t.now() }

func (e sessionEnv) Prompt() string { return e.t.Prompt() }

func (e sessionEnv) DataSource() string {
	if e.t.store == nil {
		return "built-in"
	}
	return e.t.store.Summary()
}
