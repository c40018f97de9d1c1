// Command decmath evaluates decimal math functions from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/db47h/decmath/cmd/decmath/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
