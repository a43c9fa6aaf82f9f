package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/trace"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		if stopTrace != nil {
			_ = stopTrace()
		}
		traceFile, stopTrace = "", nil
	})

	err := Execute()
	return out.String(), err
}

func TestPingPong(t *testing.T) {
	defer goleak.VerifyNone(t)
	r := require.New(t)

	out, err := execute(t, "pingpong", "--rounds", "2")
	r.NoError(err)
	r.Equal("ping 0\npong 0\nping 1\npong 1\n", out)
}

func TestSemaphore(t *testing.T) {
	defer goleak.VerifyNone(t)
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "out.trace")
	out, err := execute(t, "--trace", path, "semaphore", "--tasks", "20", "--reps", "10", "--units", "1")
	r.NoError(err)
	r.Equal("counter 200 (expected 200), parked 0\n", out)
	r.False(trace.IsEnabled())
	r.Nil(stopTrace)

	info, err := os.Stat(path)
	r.NoError(err)
	r.NotZero(info.Size())
}

func TestTraceStoppedOnError(t *testing.T) {
	defer goleak.VerifyNone(t)
	r := require.New(t)

	path := filepath.Join(t.TempDir(), "fail.trace")
	_, err := execute(t, "--trace", path, "semaphore", "--tasks", "0", "--reps", "1", "--units", "1")
	r.EqualError(err, "--tasks and --reps must be positive")
	r.False(trace.IsEnabled())
	r.Nil(stopTrace)

	info, err := os.Stat(path)
	r.NoError(err)
	r.NotZero(info.Size())

	// A second traced run in the same process can start tracing again.
	path = filepath.Join(t.TempDir(), "again.trace")
	out, err := execute(t, "--trace", path, "pingpong", "--rounds", "1")
	r.NoError(err)
	r.Equal("ping 0\npong 0\n", out)
	r.False(trace.IsEnabled())
}

// Its parked tasks never finish, so it runs after the leak-checked tests.
func TestSemaphoreNoUnits(t *testing.T) {
	r := require.New(t)

	out, err := execute(t, "semaphore", "--tasks", "3", "--reps", "1", "--units", "0")
	r.NoError(err)
	r.Equal("counter 0 (expected 3), parked 3\n", out)
}
