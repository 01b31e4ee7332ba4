package main

import (
	"os"

	"github.com/jsongrep/jsongrep/cmd/jsongrep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCodeFor(err))
	}
}
