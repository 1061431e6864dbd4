package main

import (
	"os"

	"github.com/kugyai/kugy-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
