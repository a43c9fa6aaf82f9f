package main

import (
	"os"

	"github.com/webriots/cosched/cmd/cosched/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
