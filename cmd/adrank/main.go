package main

import (
	"fmt"
	"os"

	"github.com/aaronwald/adrank/internal/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
