// main holds the entry logic for the chartbench CLI.
package main

import (
	"fmt"
	"os"

	"github.com/lodlab/chartbench/cmd"
	"github.com/lodlab/chartbench/internal/runstore"
)

func main() {
	cmd.SetRunManager(runstore.Manager)

	err := cmd.Execute()

	// Flush run tracking and profiling before deciding the exit code.
	runstore.CloseStores()
	if perr := cmd.StopProfiling(); perr != nil {
		fmt.Fprintln(os.Stderr, "warning: could not stop profiling:", perr)
	}

	if err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}
