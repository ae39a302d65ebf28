package terminal

import (
	"context"
	"fmt"

	"folioshell/pkg/foliotypes"
)

// Task is the deferred execution of an async command. Front ends run it off the input path
// and hand the Result back through Terminal.Deliver.
type Task struct {
	ID      string
	Command string
	run     func(ctx context.Context) Result
}

// Result is the outcome of a Task.
type Result struct {
	TaskID  string
	Command string
	Output  foliotypes.Output
	Err     error
}

// Run executes the task. Panics inside the command are returned as errors.
func (t Task) Run(ctx context.Context) Result {
	if t.run == nil {
		return Result{TaskID: t.ID, Command: t.Command, Err: fmt.Errorf("task %s has nothing to run", t.Command)}
	}
	return t.run(ctx)
}
