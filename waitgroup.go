package cosched

// WaitGroup waits for a collection of tasks to finish. Tasks call
// Add(1) when they start and Done when they finish; other tasks call
// Wait to park until the counter is zero.
type WaitGroup struct {
	noCopy noCopy    // Prevents copying of the WaitGroup
	v      int       // Counter of unfinished tasks
	wait   WaitQueue // Tasks parked in Wait
}

// Add adds delta to the counter. When the counter reaches zero every
// waiting task is unparked. Add panics if the counter goes negative.
func (wg *WaitGroup) Add(delta int) {
	wg.v += delta

	if wg.v < 0 {
		panic("cosched: negative WaitGroup counter")
	}

	if wg.v > 0 {
		return
	}

	for wg.wait.Len() > 0 {
		wg.wait.Unpark()
	}
}

// Done decrements the counter by one.
func (wg *WaitGroup) Done() {
	wg.Add(-1)
}

// Wait parks task until the counter is zero. It returns immediately
// if the counter already is.
func (wg *WaitGroup) Wait(task *Task) {
	if wg.v == 0 {
		return
	}
	task.Park(&wg.wait)
}

// Count returns the current counter.
func (wg *WaitGroup) Count() int {
	return wg.v
}
