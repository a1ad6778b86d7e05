package main

import (
	"os"

	"github.com/organizer-labs/file-organizer/internal/cli"
)

// version, commit, date, and mode are set via ldflags at build time.
// mode selects the deployment behavior: "dev" builds skip the sidecar
// bootstrap and enable verbose logging; "release" builds spawn the
// bundled backend on launch.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	mode    = "dev"
)

func main() {
	if err := cli.Execute(version, commit, date, mode); err != nil {
		os.Exit(1)
	}
}
