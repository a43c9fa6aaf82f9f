package cosched_test

import (
	"context"
	"fmt"

	"github.com/webriots/cosched"
)

func Example() {
	s := cosched.New()

	for _, name := range []string{"ping", "pong"} {
		s.Go(func(ctx context.Context) {
			for i := 0; i < 3; i++ {
				fmt.Println(name, i)
				cosched.Yield(ctx)
			}
		})
	}

	s.Run()

	// Output:
	// ping 0
	// pong 0
	// ping 1
	// pong 1
	// ping 2
	// pong 2
}

func ExampleSemaphore() {
	s := cosched.New()
	sem := cosched.NewSemaphore(2)

	for i := 0; i < 4; i++ {
		s.Spawn(func(_ context.Context, task *cosched.Task) {
			sem.Acquire(task)
			fmt.Println("enter", i)
			task.Yield()
			fmt.Println("leave", i)
			sem.Release()
		})
	}

	s.Run()

	// Output:
	// enter 0
	// enter 1
	// leave 0
	// leave 1
	// enter 2
	// enter 3
	// leave 2
	// leave 3
}

func ExampleWaitQueue() {
	s := cosched.New()

	var q cosched.WaitQueue
	s.Spawn(func(_ context.Context, task *cosched.Task) {
		fmt.Println("parking")
		task.Park(&q)
		fmt.Println("unparked")
	})

	s.Run()
	fmt.Println("parked tasks:", s.Parked())

	q.Unpark()
	s.Run()

	// Output:
	// parking
	// parked tasks: 1
	// unparked
}
