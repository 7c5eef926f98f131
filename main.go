package main

import (
	"os"

	"github.com/kidwise/kidwise/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
