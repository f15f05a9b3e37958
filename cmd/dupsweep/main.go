// Command dupsweep is the CLI entrypoint for the duplicate file sweeper.
package main

import (
	"os"

	"github.com/backmassage/dupsweep/internal/cli"
)

// version is injected at build time via -ldflags.
// When built with plain "go build" it retains its default.
var version = "1.0.0-dev"

func main() {
	os.Exit(cli.Execute(version))
}
