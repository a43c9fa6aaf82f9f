package cosched

// TaskState is the lifecycle position of a Task.
type TaskState int

const (
	TaskCreated   TaskState = iota // spawned, never resumed
	TaskRunning                    // currently executing
	TaskReady                      // on the ready queue after Yield or Unpark
	TaskParked                     // in a WaitQueue
	TaskCompleted                  // body returned or panicked
)

func (s TaskState) String() string {
	switch s {
	case TaskCreated:
		return "created"
	case TaskRunning:
		return "running"
	case TaskReady:
		return "ready"
	case TaskParked:
		return "parked"
	case TaskCompleted:
		return "completed"
	}
	return "unknown"
}

// resumable reports whether the scheduler may resume a task in state s.
func (s TaskState) resumable() bool {
	return s == TaskCreated || s == TaskReady
}
