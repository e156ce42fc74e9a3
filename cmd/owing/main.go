package main

import (
	"fmt"
	"os"

	"owing/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "owing:", err)
		os.Exit(1)
	}
}
