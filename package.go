// Package cosched provides a single-threaded cooperative task runtime.
// Tasks are coroutines interleaved on the goroutine that calls
// Scheduler.Run; a task runs until it explicitly suspends.
//
// Key components:
//
//   - Scheduler: Owns the FIFO ready queue and the scheduling loop.
//     Run resumes the head of the ready queue until the queue is
//     empty, then returns.
//
//   - Task: A spawned body running in its own coroutine. A task leaves
//     the running state only through Yield (back onto the ready queue)
//     or Park (onto a WaitQueue).
//
//   - WaitQueue: A FIFO queue of parked tasks owned by a
//     synchronization primitive. Unpark moves its head back onto the
//     ready queue of the task's scheduler.
//
//   - Synchronization primitives: Semaphore, Mutex, WaitGroup,
//     ErrGroup and single flight, all built only from Park and Unpark.
//
// No I/O, timers, preemption or cancellation exist. A deadlock is not
// detected: Run returns as soon as nothing is runnable, leaving parked
// tasks parked. A Scheduler and everything attached to it must only be
// used from the goroutine that drives it and from its tasks.
package cosched
