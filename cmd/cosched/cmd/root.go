package cmd

import (
	"errors"
	"fmt"
	"os"
	"runtime/trace"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "cosched",
	Short: "run cooperative task workloads",
	Long: `cosched drives demo workloads on a single-threaded cooperative
scheduler. Pass --trace to record task events for go tool trace.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if traceFile == "" {
			return nil
		}
		f, err := os.Create(traceFile)
		if err != nil {
			return err
		}
		if err := trace.Start(f); err != nil {
			f.Close()
			return fmt.Errorf("start trace: %w", err)
		}
		stopTrace = func() error {
			trace.Stop()
			return f.Close()
		}
		return nil
	},
}

var traceFile string
var stopTrace func() error

// Execute runs the root command. A trace started by --trace is stopped
// whether or not the command failed.
func Execute() (err error) {
	defer func() {
		if stopTrace != nil {
			err = errors.Join(err, stopTrace())
			stopTrace = nil
		}
	}()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&traceFile, "trace", "t", "",
		"write a runtime trace to this file")
}
