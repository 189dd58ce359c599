// Command bikeshare explores US bikeshare trip data from the terminal.
package main

import (
	"os"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
