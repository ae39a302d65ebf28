package commands

import (
	"context"
	"fmt"

	"folioshell/pkg/foliotypes"
)

// ProduceFunc computes a command's output from its arguments.
type ProduceFunc func(ctx context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error)

// Func adapts a closure to foliotypes.Command. It is the shape runtime extensions register.
type Func struct {
	CommandName string
	Summary     string
	Syntax      string
	Produce     ProduceFunc
	Background  bool
}

// NewFunc creates a command from a closure returning plain text.
func NewFunc(name, description string, fn func(args []string) string) *Func {
	return &Func{
		CommandName: name,
		Summary:     description,
		Syntax:      name,
		Produce: func(_ context.Context, args []string, _ foliotypes.Env) (foliotypes.Output, error) {
			return foliotypes.Text(fn(args)), nil
		},
	}
}

// Name implements foliotypes.Command.
func (f *Func) Name() string { return f.CommandName }

// Description implements foliotypes.Command.
func (f *Func) Description() string { return f.Summary }

// Usage implements foliotypes.Command.
func (f *Func) Usage() string {
	if f.Syntax == "" {
		return f.CommandName
	}
	return f.Syntax
}

// Async implements foliotypes.AsyncCommand.
func (f *Func) Async() bool { return f.Background }

// Execute implements foliotypes.Command.
func (f *Func) Execute(ctx context.Context, args []string, env foliotypes.Env) (foliotypes.Output, error) {
	if f.Produce == nil {
		return foliotypes.Output{}, fmt.Errorf("command %s has no producer", f.CommandName)
	}
	return f.Produce(ctx, args, env)
}
