package main

import (
	"os"

	"piecework/cmd/piecework/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
