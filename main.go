package main

import (
	"os"

	"github.com/lakshaymaurya-felt/winsweep/cmd"
)

// Populated by -ldflags at release build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
