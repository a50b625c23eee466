package main

import (
	"fmt"
	"os"

	"github.com/runnerr0/browserhist/internal/cli"
)

var version = "dev"

func main() {
	if err := cli.Run(version); err != nil {
		fmt.Fprintln(os.Stderr, "browserhist:", err)
		os.Exit(1)
	}
}
