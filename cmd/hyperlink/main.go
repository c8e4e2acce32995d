package main

import (
	"os"

	"hyperlink/cmd/hyperlink/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
