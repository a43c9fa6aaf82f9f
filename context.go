package cosched

import (
	"context"
)

// taskContextKey is the context key under which a task stores itself.
type taskContextKey struct{}

// withTaskContext returns a copy of ctx carrying task, so the body and
// anything it calls can find its task again.
func withTaskContext(ctx context.Context, task *Task) context.Context {
	return context.WithValue(ctx, taskContextKey{}, task)
}

// TaskFromContext returns the task whose body received ctx.
func TaskFromContext(ctx context.Context) (*Task, bool) {
	val, ok := ctx.Value(taskContextKey{}).(*Task)
	return val, ok
}

// MustTaskFromContext is like TaskFromContext but panics when ctx does
// not belong to a task.
func MustTaskFromContext(ctx context.Context) *Task {
	val, ok := TaskFromContext(ctx)
	if !ok {
		panic("cosched: task not found in context")
	}
	return val
}

// Yield yields the task owning ctx. See Task.Yield.
func Yield(ctx context.Context) {
	MustTaskFromContext(ctx).Yield()
}
