package cosched

import "github.com/gammazero/deque"

// WaitQueue is a FIFO queue of parked tasks. The zero value is an empty
// queue. Only Task.Park adds to it and only Unpark removes from it.
type WaitQueue struct {
	noCopy noCopy             // Prevents copying of the queue
	w      deque.Deque[*Task] // Parked tasks, oldest first
}

// Len returns the number of parked tasks.
func (q *WaitQueue) Len() int {
	return q.w.Len()
}

// Unpark removes the task at the head of q and appends it to its
// scheduler's ready queue, returning it. The task does not run until a
// later iteration of Run. Unpark panics if q is empty.
func (q *WaitQueue) Unpark() *Task {
	if q.w.Len() == 0 {
		panic("cosched: unpark of empty wait queue")
	}

	t := q.w.PopFront()
	if t.state != TaskParked {
		panic("cosched: unpark of " + t.state.String() + " task")
	}

	t.Log("UNPARK")
	t.sched.parked--
	t.setState(TaskReady)
	t.sched.enqueue(t)
	return t
}
