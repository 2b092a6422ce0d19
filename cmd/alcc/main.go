package main

import (
	"os"

	"github.com/msto63/alcc/cmd/alcc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
