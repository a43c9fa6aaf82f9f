package cosched

import (
	"context"
	"runtime/trace"

	"github.com/gammazero/deque"
)

const (
	schedTraceTaskType = "cosched-loop"
	taskTraceRegion    = "cosched-task"
	traceCategory      = "cosched"
)

// Options configures a Scheduler.
type Options struct {
	// Context is the base context of every task spawned directly on
	// the scheduler and of the trace task wrapping Run. Nil means
	// context.Background().
	Context context.Context

	// PanicHandler, if set, is called on the scheduler's goroutine
	// after a task body panicked. The error is a *PanicError.
	PanicHandler func(*Task, error)

	// TransitionHook, if set, observes every task state change.
	TransitionHook func(t *Task, from, to TaskState)
}

// Scheduler owns the ready queue and drives tasks. It is not safe for
// concurrent use; every method must be called from the goroutine
// running Run or from one of its tasks.
type Scheduler struct {
	noCopy  noCopy             // Prevents copying of the scheduler
	opts    Options            // Options with defaults applied
	ready   deque.Deque[*Task] // Ready queue, resumed head first
	running *Task              // Task being resumed, nil between resumes
	looping bool               // Run is on the stack
	nextID  uint64             // Last task ID handed out
	live    int                // Spawned tasks not yet completed
	parked  int                // Tasks sitting in some WaitQueue
	single  singleFlight       // Backs Task.Do
}

// New creates a Scheduler with default options.
func New() *Scheduler {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a Scheduler with the given options.
func NewWithOptions(opts Options) *Scheduler {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	return &Scheduler{opts: opts}
}

// Spawn creates a task running fn and places it at the tail of the
// ready queue. Nothing runs until Run is called.
func (s *Scheduler) Spawn(fn func(context.Context, *Task)) *Task {
	return s.spawn(s.opts.Context, fn, nil)
}

// Go is like Spawn for a body that only needs its context. The task is
// available through TaskFromContext.
func (s *Scheduler) Go(fn func(context.Context)) *Task {
	return s.Spawn(Fn(fn))
}

// Run resumes the head of the ready queue until the queue is empty.
// Tasks still parked when it returns stay parked; Run may be called
// again once something made them ready.
func (s *Scheduler) Run() {
	if s.looping {
		panic("cosched: Run called from a running task")
	}
	s.looping = true
	defer func() { s.looping = false }()

	ctx, tracer := trace.NewTask(s.opts.Context, schedTraceTaskType)
	defer tracer.End()

	trace.Logf(ctx, traceCategory, "LOOP READY %v", s.ready.Len())

	for s.ready.Len() > 0 {
		s.ready.PopFront().run()
	}

	trace.Logf(ctx, traceCategory, "LOOP DONE LIVE %v PARKED %v", s.live, s.parked)
}

// Ready returns the number of tasks on the ready queue.
func (s *Scheduler) Ready() int {
	return s.ready.Len()
}

// Parked returns the number of tasks sitting in some WaitQueue.
func (s *Scheduler) Parked() int {
	return s.parked
}

// Live returns the number of spawned tasks that have not completed.
func (s *Scheduler) Live() int {
	return s.live
}

// Fn adapts a context-only function to the task body signature.
func Fn(fn func(context.Context)) func(context.Context, *Task) {
	return func(ctx context.Context, _ *Task) { fn(ctx) }
}

// spawn creates a task with ctx as parent context and queues it.
func (s *Scheduler) spawn(
	ctx context.Context,
	fn func(context.Context, *Task),
	parent *Task,
) *Task {
	t := newTask(ctx, s, fn, parent)
	s.live++
	t.Log("SPAWN")
	s.enqueue(t)
	return t
}

// enqueue appends t to the tail of the ready queue.
func (s *Scheduler) enqueue(t *Task) {
	s.ready.PushBack(t)
}

// transition reports a state change to the transition hook, if any.
func (s *Scheduler) transition(t *Task, from, to TaskState) {
	if s.opts.TransitionHook != nil {
		s.opts.TransitionHook(t, from, to)
	}
}
