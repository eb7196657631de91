// Command crisischeck assesses chat messages for crisis risk from the
// command line. It is the manual evaluation harness for the detector:
// single-message assessment and fixture-based accuracy runs.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
