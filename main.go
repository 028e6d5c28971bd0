package main

import (
	"fmt"
	"os"

	"github.com/mcplug-ai/mcplug/internal/cli"
)

// Build info injected via ldflags at release time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := cli.Execute(version, commit, date); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
