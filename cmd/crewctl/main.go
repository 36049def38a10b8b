package main

import (
	"os"

	"github.com/crewmind/crewrecall/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
