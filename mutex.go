package cosched

// Mutex provides mutual exclusion for tasks. Unlock hands the lock to
// the first parked waiter instead of leaving it free, so a task that
// has not waited cannot take it in between. The zero value is
// unlocked.
type Mutex struct {
	noCopy noCopy    // Prevents copying of the mutex
	owner  *Task     // Task holding the lock, nil when unlocked
	wait   WaitQueue // Tasks parked in Lock
}

// Lock acquires the mutex for task, parking it while another task
// holds it.
func (m *Mutex) Lock(task *Task) {
	if m.owner == nil {
		m.owner = task
		return
	}
	if m.owner == task {
		panic("cosched: recursive Mutex.Lock")
	}

	task.Park(&m.wait)
}

// TryLock acquires the mutex for task if it is free.
func (m *Mutex) TryLock(task *Task) bool {
	if m.owner != nil {
		return false
	}
	m.owner = task
	return true
}

// Unlock releases the mutex, passing it to the first waiter if any.
func (m *Mutex) Unlock() {
	if m.owner == nil {
		panic("cosched: unlock of unlocked Mutex")
	}
	if m.wait.Len() == 0 {
		m.owner = nil
		return
	}
	m.owner = m.wait.Unpark()
}

// Owner returns the task holding the mutex, or nil.
func (m *Mutex) Owner() *Task {
	return m.owner
}

// WaitCount returns the number of tasks waiting to acquire the mutex.
func (m *Mutex) WaitCount() int {
	return m.wait.Len()
}
