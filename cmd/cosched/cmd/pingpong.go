package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/webriots/cosched"
)

// pingpongCmd represents the pingpong command
var pingpongCmd = &cobra.Command{
	Use:   "pingpong",
	Short: "alternate two tasks through Yield",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := cosched.New()

		for _, name := range []string{"ping", "pong"} {
			s.Go(func(ctx context.Context) {
				for i := 0; i < rounds; i++ {
					cmd.Println(name, i)
					cosched.Yield(ctx)
				}
			})
		}

		s.Run()
		return nil
	},
}

var rounds int

func init() {
	rootCmd.AddCommand(pingpongCmd)

	pingpongCmd.Flags().IntVarP(&rounds, "rounds", "n", 3, "rounds per task")
}
