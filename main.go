package main

import (
	"os"

	"github.com/avelys/blockplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
