package main

import (
	"fmt"
	"os"

	shld "github.com/arthur-debert/shld/cmd/shld"
)

func main() {
	rootCmd := shld.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(shld.ExitCode(err))
	}
}
