package cosched

import (
	"context"
	"fmt"
	"runtime/debug"
	"runtime/trace"
	"strings"

	"github.com/webriots/coro"
)

// Task is a spawned body suspended in, or running in, its own
// coroutine. A Task is the handle the ready queue and wait queues
// hold; the scheduler resumes it at most once per suspension.
type Task struct {
	id      uint64                          // Sequence number within the scheduler
	ctx     context.Context                 // Context handed to the body, carries the task
	sched   *Scheduler                      // Scheduler whose ready queue holds the task
	parent  *Task                           // Spawning task, nil for top-level tasks
	resume  func(struct{}) (struct{}, bool) // Continues the coroutine until it suspends or ends
	suspend func() struct{}                 // Hands control back to the scheduler
	cancel  func()                          // Releases the coroutine, nil once called
	state   TaskState                       // Lifecycle position
	err     error                           // *PanicError if the body panicked
}

// newTask creates a task whose coroutine runs fn on its first resume.
// The task is not queued.
func newTask(
	ctx context.Context,
	sched *Scheduler,
	fn func(context.Context, *Task),
	parent *Task,
) *Task {
	sched.nextID++

	task := &Task{
		id:     sched.nextID,
		sched:  sched,
		parent: parent,
	}

	task.ctx = withTaskContext(ctx, task)

	task.resume, task.cancel = coro.New(
		func(_ func(struct{}) struct{}, suspend func() struct{}) (z struct{}) {
			region := trace.StartRegion(task.ctx, taskTraceRegion)
			defer region.End()

			task.suspend = suspend
			task.err = task.invoke(fn)

			return
		},
	)

	return task
}

// invoke runs the body, turning a panic into a *PanicError.
func (t *Task) invoke(fn func(context.Context, *Task)) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v, Stack: debug.Stack()}
		}
	}()

	fn(t.ctx, t)
	return nil
}

// run resumes the task on the scheduler's goroutine until it suspends
// or completes.
func (t *Task) run() {
	if !t.state.resumable() {
		panic("cosched: resume of " + t.state.String() + " task")
	}

	t.Log("RUN")
	t.setState(TaskRunning)

	t.sched.running = t
	_, ok := t.resume(struct{}{})
	t.sched.running = nil

	if ok {
		if t.state == TaskRunning {
			panic("cosched: task suspended outside Yield or Park")
		}
		return
	}

	t.setState(TaskCompleted)
	t.sched.live--
	t.cancel()
	t.cancel = nil

	if t.err != nil {
		t.Logf("PANIC %v", t.err)
		if h := t.sched.opts.PanicHandler; h != nil {
			h(t, t.err)
		}
		return
	}

	t.Log("END")
}

// Yield suspends the running task and puts it back at the tail of the
// ready queue.
func (t *Task) Yield() {
	t.mustRun("Yield")
	t.Log("YIELD")
	t.setState(TaskReady)
	t.sched.enqueue(t)
	t.suspend()
}

// Park suspends the running task and puts it at the tail of q. It runs
// again only after a call to q.Unpark selects it. Park is meant for
// authors of synchronization primitives.
func (t *Task) Park(q *WaitQueue) {
	t.mustRun("Park")
	t.Log("PARK")
	t.setState(TaskParked)
	t.sched.parked++
	q.w.PushBack(t)
	t.suspend()
}

// Spawn starts a task on the same scheduler. The child inherits t's
// context and is queued behind every task already ready.
func (t *Task) Spawn(fn func(context.Context, *Task)) *Task {
	return t.sched.spawn(t.ctx, fn, t)
}

// Go is like Spawn for a body that only needs its context.
func (t *Task) Go(fn func(context.Context)) *Task {
	return t.Spawn(Fn(fn))
}

// Group returns an ErrGroup whose tasks are spawned by t.
func (t *Task) Group() ErrGroup {
	return newErrGroup(t)
}

// Do runs fn once for all tasks of the scheduler calling it with the
// same key while the first call is in flight. The last result reports
// whether the value was shared.
func (t *Task) Do(key any, fn func() (any, error)) (any, error, bool) {
	t.Logf("DO %v", key)
	return t.sched.single.do(t, key, fn)
}

// ID returns the task's sequence number, starting at 1 for the first
// task spawned on its scheduler.
func (t *Task) ID() uint64 {
	return t.id
}

// State returns the task's lifecycle position.
func (t *Task) State() TaskState {
	return t.state
}

// Err returns the *PanicError of a task whose body panicked, or nil.
func (t *Task) Err() error {
	return t.err
}

// Context returns the context handed to the task body.
func (t *Task) Context() context.Context {
	return t.ctx
}

// Scheduler returns the scheduler the task runs on.
func (t *Task) Scheduler() *Scheduler {
	return t.sched
}

// mustRun panics unless t is the task the scheduler is resuming.
func (t *Task) mustRun(op string) {
	if t.sched.running != t {
		panic("cosched: " + op + " called outside the running task")
	}
}

// setState moves t to state to and reports the change to the
// scheduler's transition hook.
func (t *Task) setState(to TaskState) {
	from := t.state
	t.state = to
	t.sched.transition(t, from, to)
}

// Log emits msg as a runtime/trace event prefixed by the task path.
func (t *Task) Log(msg string) {
	if trace.IsEnabled() {
		var sb strings.Builder
		taskpath(&sb, t)
		sb.WriteRune(' ')
		sb.WriteString(msg)
		trace.Log(t.ctx, traceCategory, sb.String())
	}
}

// Logf is Log with fmt.Sprintf formatting.
func (t *Task) Logf(format string, args ...any) {
	if trace.IsEnabled() {
		var sb strings.Builder
		taskpath(&sb, t)
		sb.WriteRune(' ')
		fmt.Fprintf(&sb, format, args...)
		trace.Log(t.ctx, traceCategory, sb.String())
	}
}

// taskpath writes the IDs from the top-level ancestor down to t.
func taskpath(sb *strings.Builder, t *Task) {
	if t == nil {
		return
	}
	taskpath(sb, t.parent)
	fmt.Fprintf(sb, "%d|", t.id)
}
