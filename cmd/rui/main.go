// Command rui runs the sample programs of the rui widget runtime in a
// terminal and checks theme files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/rui/cmd/rui/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
