package cosched

import "context"

// ErrGroup runs a group of tasks and keeps the first error one of them
// returned. There is no cancellation: after an error the remaining
// tasks still run to completion.
type ErrGroup interface {
	// Go spawns f as a child of the group's task.
	Go(func(context.Context) error)
	// GoWithContext spawns f with ctx as the parent context. ctx must
	// belong to the task that created the group.
	GoWithContext(context.Context, func(context.Context) error)
	// Wait parks task until every task of the group has finished and
	// returns the first error.
	Wait(*Task) error
}

// errGroup implements ErrGroup on top of a WaitGroup.
type errGroup struct {
	task *Task     // Task that created the group and spawns its members
	wg   WaitGroup // Counts members still running
	err  error     // First error returned by a member
}

// newErrGroup creates an empty group owned by task.
func newErrGroup(task *Task) *errGroup {
	return &errGroup{task: task}
}

func (g *errGroup) Go(f func(context.Context) error) {
	g.goctx(g.task.ctx, f)
}

func (g *errGroup) GoWithContext(ctx context.Context, f func(context.Context) error) {
	if task := MustTaskFromContext(ctx); task != g.task {
		panic("cosched: ctx task does not match ErrGroup task")
	}
	g.goctx(ctx, f)
}

// goctx spawns f as a member of the group with ctx as parent context.
func (g *errGroup) goctx(ctx context.Context, f func(context.Context) error) {
	g.wg.Add(1)
	g.task.sched.spawn(ctx, func(ctx context.Context, _ *Task) {
		defer g.wg.Done()
		if err := f(ctx); err != nil && g.err == nil {
			g.err = err
		}
	}, g.task)
}

func (g *errGroup) Wait(task *Task) error {
	g.wg.Wait(task)
	return g.err
}
