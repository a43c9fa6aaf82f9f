package cosched

import (
	"fmt"
	"strings"
)

// PanicError is the error recorded for a task whose body panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("cosched: task panicked: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	err, _ := e.Value.(error)
	return err
}

// DebugString returns the panic value followed by the stack of the
// goroutine that panicked.
func (e *PanicError) DebugString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "panic: %v\n\n", e.Value)
	b.Write(e.Stack)
	return b.String()
}
