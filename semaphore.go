package cosched

// Semaphore is a counting semaphore for tasks. Releasing while tasks
// wait hands the unit straight to the first waiter, so units is never
// positive while the wait queue is non-empty. The zero value has no
// units.
type Semaphore struct {
	noCopy noCopy    // Prevents copying of the semaphore
	units  int       // Idle units, zero whenever wait is non-empty
	wait   WaitQueue // Tasks parked in Acquire
}

// NewSemaphore creates a semaphore holding units units.
func NewSemaphore(units int) *Semaphore {
	if units < 0 {
		panic("cosched: negative semaphore units")
	}
	return &Semaphore{units: units}
}

// Acquire takes one unit, parking t until a Release grants it one when
// none is available.
func (s *Semaphore) Acquire(t *Task) {
	if s.units > 0 {
		s.units--
		return
	}

	// The unit is transferred by Release before t is unparked.
	t.Park(&s.wait)
}

// TryAcquire takes one unit if available without suspending.
func (s *Semaphore) TryAcquire() bool {
	if s.units > 0 {
		s.units--
		return true
	}
	return false
}

// Release returns one unit. If tasks are waiting, the first one is
// made ready owning the unit; otherwise units grows by one. Release
// does not check that the unit was ever acquired.
func (s *Semaphore) Release() {
	if s.wait.Len() > 0 {
		s.wait.Unpark()
		return
	}
	s.units++
}

// Units returns the number of idle units.
func (s *Semaphore) Units() int {
	return s.units
}

// Waiters returns the number of tasks parked in Acquire.
func (s *Semaphore) Waiters() int {
	return s.wait.Len()
}
