package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"github.com/webriots/cosched"
)

// semaphoreCmd represents the semaphore command
var semaphoreCmd = &cobra.Command{
	Use:   "semaphore",
	Short: "count under a semaphore from many tasks",
	Long: `Spawns --tasks tasks that each --reps times acquire the semaphore,
increment a shared counter, yield, release and yield again, then prints
the counter.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tasks < 1 || reps < 1 {
			return errors.New("--tasks and --reps must be positive")
		}
		if units < 0 {
			return errors.New("--units must not be negative")
		}

		s := cosched.New()
		sem := cosched.NewSemaphore(units)

		acc := 0
		for i := 0; i < tasks; i++ {
			s.Spawn(func(_ context.Context, task *cosched.Task) {
				for j := 0; j < reps; j++ {
					sem.Acquire(task)
					acc++
					task.Yield()
					sem.Release()
					task.Yield()
				}
			})
		}

		s.Run()

		cmd.Printf("counter %d (expected %d), parked %d\n", acc, tasks*reps, s.Parked())
		return nil
	},
}

var tasks int
var reps int
var units int

func init() {
	rootCmd.AddCommand(semaphoreCmd)

	semaphoreCmd.Flags().IntVarP(&tasks, "tasks", "n", 1000, "number of tasks")
	semaphoreCmd.Flags().IntVarP(&reps, "reps", "r", 1000, "increments per task")
	semaphoreCmd.Flags().IntVarP(&units, "units", "u", 1, "initial semaphore units")
}
