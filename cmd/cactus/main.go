package main

import (
	"os"

	"cactus/cmd/cactus/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
