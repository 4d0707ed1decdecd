package main

import (
	"os"

	"github.com/winterarc/tracker/cmd/arc/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
