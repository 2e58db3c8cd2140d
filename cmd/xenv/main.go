// Command xenv checks that the environment variables a deployment needs are
// set, either in the environment or in layered config files.
package main

import (
	"os"
)

var version = "dev"

func main() {
	if err := newRootCommand(version).Execute(); err != nil {
		os.Exit(1)
	}
}
